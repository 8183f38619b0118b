package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/saathi/internal/caretaker"
	"github.com/hitoshi/saathi/internal/middleware"
	"github.com/hitoshi/saathi/internal/model"
)

// CaretakerServiceInterface は介護者ハンドラーが必要とするサービスインターフェース。
type CaretakerServiceInterface interface {
	// AssignedPatients は介護者に割り当てられた患者の状態一覧を返す。
	AssignedPatients(ctx context.Context, caretakerID string) []caretaker.PatientStatus
	// PendingHelpRequests は未対応の支援要請を返す。
	PendingHelpRequests(ctx context.Context) []model.HelpRequest
	// AllHelpRequests は全支援要請を返す。
	AllHelpRequests(ctx context.Context) []model.HelpRequest
	// ResolveHelpRequest は支援要請を対応済みにする。冪等。
	ResolveHelpRequest(ctx context.Context, requestID string)
}

// CaretakerHandler は介護者ダッシュボードのHTTPハンドラー。
type CaretakerHandler struct {
	service CaretakerServiceInterface
}

// NewCaretakerHandler はCaretakerHandlerを生成する。
func NewCaretakerHandler(service CaretakerServiceInterface) *CaretakerHandler {
	return &CaretakerHandler{service: service}
}

// patientStatusResponse は担当患者の状態サマリのAPIレスポンス。
type patientStatusResponse struct {
	Patient           patientResponse      `json:"patient"`
	Adherence         int                  `json:"adherence"`
	MissedMedications []medicationResponse `json:"missed_medications"`
	RecentSymptoms    []symptomResponse    `json:"recent_symptoms"`
}

// ListPatients は認証済み介護者の担当患者一覧を状態サマリ付きで返す。
// GET /api/patients
func (h *CaretakerHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	statuses := h.service.AssignedPatients(r.Context(), userID)

	resp := make([]patientStatusResponse, 0, len(statuses))
	for _, status := range statuses {
		resp = append(resp, toPatientStatusResponse(status))
	}

	writeJSONResponse(w, http.StatusOK, resp)
}

// ListHelpRequests は支援要請の一覧を返す。
// status=pendingクエリで未対応のみに絞り込める。
// GET /api/help-requests
func (h *CaretakerHandler) ListHelpRequests(w http.ResponseWriter, r *http.Request) {
	var requests []model.HelpRequest
	if r.URL.Query().Get("status") == string(model.HelpRequestPending) {
		requests = h.service.PendingHelpRequests(r.Context())
	} else {
		requests = h.service.AllHelpRequests(r.Context())
	}

	resp := make([]helpRequestResponse, 0, len(requests))
	for _, req := range requests {
		resp = append(resp, toHelpRequestResponse(req))
	}

	writeJSONResponse(w, http.StatusOK, resp)
}

// ResolveHelpRequest は支援要請を対応済みにする。
// 存在しないIDや対応済みのIDに対しても204を返す。
// POST /api/help-requests/:id/resolve
func (h *CaretakerHandler) ResolveHelpRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")

	h.service.ResolveHelpRequest(r.Context(), requestID)
	w.WriteHeader(http.StatusNoContent)
}

// toPatientStatusResponse はcaretaker.PatientStatusをAPIレスポンスに変換する。
func toPatientStatusResponse(status caretaker.PatientStatus) patientStatusResponse {
	missed := make([]medicationResponse, 0, len(status.MissedMedications))
	for _, med := range status.MissedMedications {
		missed = append(missed, toMedicationResponse(med))
	}

	recent := make([]symptomResponse, 0, len(status.RecentSymptoms))
	for _, sym := range status.RecentSymptoms {
		recent = append(recent, toSymptomResponse(sym))
	}

	return patientStatusResponse{
		Patient:           toPatientResponse(&status.Patient),
		Adherence:         status.Adherence,
		MissedMedications: missed,
		RecentSymptoms:    recent,
	}
}
