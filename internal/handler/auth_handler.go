// Package handler はHTTPハンドラーを提供する。
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hitoshi/saathi/internal/middleware"
	"github.com/hitoshi/saathi/internal/model"
)

// AuthServiceInterface は認証ハンドラーが必要とするサービスインターフェース。
type AuthServiceInterface interface {
	// Authenticate は資格情報の形式を検証し、セッションを発行する。
	Authenticate(ctx context.Context, method model.AuthMethod, credential, password string) (*model.Session, bool)
	// Register は携帯電話番号とOTPの形式を検証し、セッションを発行する。
	Register(ctx context.Context, mobile, otp string) (*model.Session, bool)
	// Logout はセッションを破棄し、ログインユーザーを解除する。
	Logout(ctx context.Context, sessionID string)
}

// UserStateInterface はセッションユーザーの状態操作に必要なインターフェース。
type UserStateInterface interface {
	CurrentUser() *model.User
	SetCurrentUserRole(role model.Role)
	SetLanguage(lang model.Language)
	Language() model.Language
}

// AuthHandlerConfig は認証ハンドラーの設定。
type AuthHandlerConfig struct {
	CookieSecure  bool
	SessionMaxAge int // セッションCookieの有効期間（秒）
}

// AuthHandler は認証関連のHTTPハンドラー。
type AuthHandler struct {
	service AuthServiceInterface
	users   UserStateInterface
	config  AuthHandlerConfig
}

// NewAuthHandler はAuthHandlerを生成する。
func NewAuthHandler(service AuthServiceInterface, users UserStateInterface, config AuthHandlerConfig) *AuthHandler {
	return &AuthHandler{
		service: service,
		users:   users,
		config:  config,
	}
}

// loginRequest はログインリクエストのボディ。
type loginRequest struct {
	Method     string `json:"method"`
	Credential string `json:"credential"`
	Password   string `json:"password"`
}

// registerRequest は新規登録リクエストのボディ。
type registerRequest struct {
	Mobile string `json:"mobile"`
	OTP    string `json:"otp"`
}

// updateRoleRequest は役割変更リクエストのボディ。
type updateRoleRequest struct {
	Role string `json:"role"`
}

// updateLanguageRequest は言語変更リクエストのボディ。
type updateLanguageRequest struct {
	Language string `json:"language"`
}

// userResponse はセッションユーザーのAPIレスポンス。
type userResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Language string `json:"language"`
}

// Login はログインを処理する。
// POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, invalidRequestBodyError())
		return
	}

	method := model.AuthMethod(req.Method)
	if !method.IsValid() {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidAuthMethodError(req.Method))
		return
	}

	session, ok := h.service.Authenticate(r.Context(), method, req.Credential, req.Password)
	if !ok {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewAuthFailedError())
		return
	}

	h.setSessionCookie(w, session.ID)
	writeJSONResponse(w, http.StatusOK, toUserResponse(h.users.CurrentUser()))
}

// Register は新規登録を処理する。
// POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, invalidRequestBodyError())
		return
	}

	session, ok := h.service.Register(r.Context(), req.Mobile, req.OTP)
	if !ok {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewOTPInvalidError())
		return
	}

	h.setSessionCookie(w, session.ID)
	writeJSONResponse(w, http.StatusOK, toUserResponse(h.users.CurrentUser()))
}

// Logout はセッションを破棄する。
// POST /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.SessionCookieName)
	if err == nil && cookie.Value != "" {
		h.service.Logout(r.Context(), cookie.Value)
	}

	// セッションCookieをクリア
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}

// Me は現在のログインユーザー情報を返す。
// GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := h.users.CurrentUser()
	if user == nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	writeJSONResponse(w, http.StatusOK, toUserResponse(user))
}

// UpdateRole はセッションユーザーの役割を変更する。
// PUT /auth/role
func (h *AuthHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req updateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, invalidRequestBodyError())
		return
	}

	role := model.Role(req.Role)
	if !role.IsValid() {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRoleError(req.Role))
		return
	}

	h.users.SetCurrentUserRole(role)

	user := h.users.CurrentUser()
	if user == nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSONResponse(w, http.StatusOK, toUserResponse(user))
}

// UpdateLanguage はアプリ全体の表示言語を変更する。
// PUT /auth/language
func (h *AuthHandler) UpdateLanguage(w http.ResponseWriter, r *http.Request) {
	var req updateLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, invalidRequestBodyError())
		return
	}

	lang := model.Language(req.Language)
	if !lang.IsValid() {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidLanguageError(req.Language))
		return
	}

	h.users.SetLanguage(lang)
	writeJSONResponse(w, http.StatusOK, map[string]string{"language": string(lang)})
}

// setSessionCookie はセッションCookieを設定する（HTTP Only）。
func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   h.config.SessionMaxAge,
		HttpOnly: true,
		Secure:   h.config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// toUserResponse はmodel.UserをAPIレスポンスに変換する。
func toUserResponse(user *model.User) userResponse {
	if user == nil {
		return userResponse{}
	}
	return userResponse{
		ID:       user.ID,
		Name:     user.Name,
		Phone:    user.Phone,
		Role:     string(user.Role),
		Language: string(user.Language),
	}
}
