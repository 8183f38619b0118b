package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/saathi/internal/i18n"
	"github.com/hitoshi/saathi/internal/model"
)

// TranslationHandler はUI翻訳テーブルのHTTPハンドラー。
type TranslationHandler struct{}

// NewTranslationHandler はTranslationHandlerを生成する。
func NewTranslationHandler() *TranslationHandler {
	return &TranslationHandler{}
}

// GetTable は指定言語の翻訳テーブル全体を返す。
// 未知の言語は英語にフォールバックする。
// GET /api/translations/:lang
func (h *TranslationHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	lang := model.Language(chi.URLParam(r, "lang"))

	writeJSONResponse(w, http.StatusOK, i18n.Table(lang))
}
