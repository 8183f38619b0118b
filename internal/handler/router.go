package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/saathi/internal/middleware"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	SessionFinder     middleware.SessionFinder
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter

	// 認証
	AuthService AuthServiceInterface
	UserState   UserStateInterface
	AuthConfig  AuthHandlerConfig

	// 患者
	PatientService PatientServiceInterface

	// 介護者
	CaretakerService CaretakerServiceInterface

	// アシスタント
	AssistantService AssistantServiceInterface
	Sanitizer        MessageSanitizer

	// メトリクスエンドポイント
	MetricsHandler http.Handler
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	CORSMiddleware → RecoveryMiddleware → LoggingMiddleware
//	→ SessionMiddleware → RateLimitMiddleware(GeneralMiddleware)
//
// ログイン・登録ルートはミドルウェアチェーンの外に配置し、
// リモートIPキーの認証レート制限のみを適用する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	// CORS ミドルウェアを最上位に適用（全ルートに効く）
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewLoggingMiddleware(slog.Default()))

	authHandler := NewAuthHandler(deps.AuthService, deps.UserState, deps.AuthConfig)
	patientHandler := NewPatientHandler(deps.PatientService)
	caretakerHandler := NewCaretakerHandler(deps.CaretakerService)
	assistantHandler := NewAssistantHandler(deps.AssistantService, deps.Sanitizer)
	translationHandler := NewTranslationHandler()

	// --- 認証不要のルート ---

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	// 翻訳テーブル（ログイン画面でも必要）
	r.Get("/api/translations/{lang}", translationHandler.GetTable)

	// 認証ルート
	r.Route("/auth", func(r chi.Router) {
		// ログイン・登録はセッション確立前のためIPキーのレート制限を適用
		r.With(deps.RateLimiter.AuthMiddleware()).Post("/login", authHandler.Login)
		r.With(deps.RateLimiter.AuthMiddleware()).Post("/register", authHandler.Register)
		r.Post("/logout", authHandler.Logout)

		// セッションが必要な認証ルート
		r.Group(func(r chi.Router) {
			r.Use(middleware.NewSessionMiddleware(deps.SessionFinder))
			r.Get("/me", authHandler.Me)
			r.Put("/role", authHandler.UpdateRole)
			r.Put("/language", authHandler.UpdateLanguage)
		})
	})

	// --- 認証が必要なルート ---
	// ミドルウェアスタック: Session → RateLimit(General)
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewSessionMiddleware(deps.SessionFinder))
		r.Use(deps.RateLimiter.GeneralMiddleware())

		// 患者管理
		r.Route("/api/patients", func(r chi.Router) {
			// GET /api/patients - 介護者向けの担当患者一覧
			r.Get("/", caretakerHandler.ListPatients)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", patientHandler.GetPatient)
				r.Post("/medications", patientHandler.AddMedication)
				r.Post("/medications/{medID}/taken", patientHandler.MarkMedicationTaken)
				r.Post("/symptoms", patientHandler.AddSymptom)
				r.Post("/caretakers", patientHandler.AddCaretaker)
				r.Post("/help", patientHandler.RequestHelp)
			})
		})

		// 介護者カタログ
		r.Get("/api/caretakers/catalog", patientHandler.GetCatalog)

		// 支援要請
		r.Route("/api/help-requests", func(r chi.Router) {
			r.Get("/", caretakerHandler.ListHelpRequests)
			r.Post("/{id}/resolve", caretakerHandler.ResolveHelpRequest)
		})

		// 健康アシスタント
		r.Post("/api/assistant/messages", assistantHandler.PostMessage)
	})

	return r
}
