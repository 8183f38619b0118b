package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/hitoshi/saathi/internal/model"
)

// AssistantServiceInterface はアシスタントハンドラーが必要とするサービスインターフェース。
type AssistantServiceInterface interface {
	// Reply は入力テキストへの定型回答を返す。
	Reply(ctx context.Context, text string) string
}

// MessageSanitizer はチャット入力のサニタイズに必要なインターフェース。
type MessageSanitizer interface {
	Sanitize(input string) string
}

// AssistantHandler は健康アシスタントのHTTPハンドラー。
type AssistantHandler struct {
	service   AssistantServiceInterface
	sanitizer MessageSanitizer
}

// NewAssistantHandler はAssistantHandlerを生成する。
func NewAssistantHandler(service AssistantServiceInterface, sanitizer MessageSanitizer) *AssistantHandler {
	return &AssistantHandler{
		service:   service,
		sanitizer: sanitizer,
	}
}

// assistantMessageRequest はチャットメッセージのボディ。
type assistantMessageRequest struct {
	Text string `json:"text"`
}

// assistantMessageResponse はアシスタント回答のレスポンス。
type assistantMessageResponse struct {
	Reply string `json:"reply"`
}

// PostMessage はチャットメッセージを受け取り、定型回答を返す。
// POST /api/assistant/messages
func (h *AssistantHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var req assistantMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, invalidRequestBodyError())
		return
	}

	text := h.sanitizer.Sanitize(req.Text)
	if strings.TrimSpace(text) == "" {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewMissingFieldError("text"))
		return
	}

	reply := h.service.Reply(r.Context(), text)

	writeJSONResponse(w, http.StatusOK, assistantMessageResponse{Reply: reply})
}
