package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/saathi/internal/model"
	"github.com/hitoshi/saathi/internal/patient"
)

// PatientServiceInterface は患者ハンドラーが必要とするサービスインターフェース。
type PatientServiceInterface interface {
	// GetPatient は患者のスナップショットを返す。見つからない場合はnil。
	GetPatient(ctx context.Context, patientID string) *model.Patient
	// Catalog は介護者カタログを返す。
	Catalog(ctx context.Context) []model.CaretakerOption
	// AddMedication は服薬予定を追加する。患者が存在しない場合は(nil, nil)。
	AddMedication(ctx context.Context, patientID string, in patient.MedicationInput) (*model.Medication, error)
	// MarkMedicationTaken は服薬済みを記録する。冪等。
	MarkMedicationTaken(ctx context.Context, patientID, medicationID string)
	// AddSymptom は症状を記録する。患者が存在しない場合は(nil, nil)。
	AddSymptom(ctx context.Context, patientID string, in patient.SymptomInput) (*model.Symptom, error)
	// LinkCaretaker はカタログの介護者を患者に紐付ける。
	LinkCaretaker(ctx context.Context, patientID, caretakerID string) error
	// AddCustomCaretaker は手入力の介護者を登録し紐付ける。
	AddCustomCaretaker(ctx context.Context, patientID, name, phone string) (*model.Caretaker, error)
	// RequestHelp は支援要請を登録する。患者が存在しない場合はnil。
	RequestHelp(ctx context.Context, patientID string) *model.HelpRequest
}

// PatientHandler は患者の自己管理操作のHTTPハンドラー。
type PatientHandler struct {
	service PatientServiceInterface
}

// NewPatientHandler はPatientHandlerを生成する。
func NewPatientHandler(service PatientServiceInterface) *PatientHandler {
	return &PatientHandler{service: service}
}

// addMedicationRequest は服薬予定追加リクエストのボディ。
type addMedicationRequest struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	ReminderTime string `json:"reminder_time"`
	Instructions string `json:"instructions"`
}

// addSymptomRequest は症状記録リクエストのボディ。
type addSymptomRequest struct {
	Name        string   `json:"name"`
	Severity    int      `json:"severity"`
	Description string   `json:"description"`
	Triggers    []string `json:"triggers"`
}

// addCaretakerRequest は介護者追加リクエストのボディ。
// CaretakerIDが指定されていればカタログ紐付け、無ければ手入力登録。
type addCaretakerRequest struct {
	CaretakerID string `json:"caretaker_id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
}

// medicationResponse は服薬予定のAPIレスポンス。
type medicationResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	ReminderTime string `json:"reminder_time"`
	Instructions string `json:"instructions"`
	Taken        bool   `json:"taken"`
}

// symptomResponse は症状記録のAPIレスポンス。
type symptomResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Severity    int       `json:"severity"`
	Band        string    `json:"band"`
	Description string    `json:"description"`
	Triggers    []string  `json:"triggers"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// patientResponse は患者詳細のAPIレスポンス。
type patientResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Phone       string               `json:"phone"`
	Conditions  []string             `json:"conditions"`
	Medications []medicationResponse `json:"medications"`
	Symptoms    []symptomResponse    `json:"symptoms"`
	Caretakers  []string             `json:"caretakers"`
}

// caretakerOptionResponse は介護者カタログのAPIレスポンス。
type caretakerOptionResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Experience     string  `json:"experience"`
	Rating         float64 `json:"rating"`
	Specialization string  `json:"specialization"`
	Available      bool    `json:"available"`
}

// caretakerResponse は介護者のAPIレスポンス。
type caretakerResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	Patients []string `json:"patients"`
}

// helpRequestResponse は支援要請のAPIレスポンス。
type helpRequestResponse struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	CreatedAt   time.Time `json:"created_at"`
	Status      string    `json:"status"`
	Urgency     string    `json:"urgency"`
}

// apiErrorResponse は統一エラーフォーマットのレスポンス。
type apiErrorResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Category string `json:"category"`
	Action   string `json:"action"`
}

// GetPatient は患者詳細を取得する。
// GET /api/patients/:id
func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "id")

	p := h.service.GetPatient(r.Context(), patientID)
	if p == nil {
		writeAPIErrorResponse(w, http.StatusNotFound, model.NewPatientNotFoundError(patientID))
		return
	}

	writeJSONResponse(w, http.StatusOK, toPatientResponse(p))
}

// GetCatalog は介護者カタログを返す。
// GET /api/caretakers/catalog
func (h *PatientHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	options := h.service.Catalog(r.Context())

	resp := make([]caretakerOptionResponse, 0, len(options))
	for _, opt := range options {
		resp = append(resp, caretakerOptionResponse{
			ID:             opt.ID,
			Name:           opt.Name,
			Experience:     opt.Experience,
			Rating:         opt.Rating,
			Specialization: opt.Specialization,
			Available:      opt.Available,
		})
	}

	writeJSONResponse(w, http.StatusOK, resp)
}

// AddMedication は服薬予定を追加する。
// POST /api/patients/:id/medications
func (h *PatientHandler) AddMedication(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "id")

	var req addMedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, invalidRequestBodyError())
		return
	}

	med, err := h.service.AddMedication(r.Context(), patientID, patient.MedicationInput{
		Name:         req.Name,
		Dosage:       req.Dosage,
		Frequency:    req.Frequency,
		ReminderTime: req.ReminderTime,
		Instructions: req.Instructions,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if med == nil {
		// 存在しない患者への追加は黙って無視する
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSONResponse(w, http.StatusCreated, toMedicationResponse(*med))
}

// MarkMedicationTaken は服薬済みを記録する。冪等。
// POST /api/patients/:id/medications/:medID/taken
func (h *PatientHandler) MarkMedicationTaken(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "id")
	medicationID := chi.URLParam(r, "medID")

	h.service.MarkMedicationTaken(r.Context(), patientID, medicationID)
	w.WriteHeader(http.StatusNoContent)
}

// AddSymptom は症状を記録する。
// POST /api/patients/:id/symptoms
func (h *PatientHandler) AddSymptom(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "id")

	var req addSymptomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, invalidRequestBodyError())
		return
	}

	symptom, err := h.service.AddSymptom(r.Context(), patientID, patient.SymptomInput{
		Name:        req.Name,
		Severity:    req.Severity,
		Description: req.Description,
		Triggers:    req.Triggers,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if symptom == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSONResponse(w, http.StatusCreated, toSymptomResponse(*symptom))
}

// AddCaretaker は介護者を患者に追加する。
// カタログIDの紐付けと手入力登録の両方を受け付ける。
// POST /api/patients/:id/caretakers
func (h *PatientHandler) AddCaretaker(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "id")

	var req addCaretakerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, invalidRequestBodyError())
		return
	}

	if req.CaretakerID != "" {
		if err := h.service.LinkCaretaker(r.Context(), patientID, req.CaretakerID); err != nil {
			handleServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	caretaker, err := h.service.AddCustomCaretaker(r.Context(), patientID, req.Name, req.Phone)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if caretaker == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSONResponse(w, http.StatusCreated, caretakerResponse{
		ID:       caretaker.ID,
		Name:     caretaker.Name,
		Phone:    caretaker.Phone,
		Patients: caretaker.Patients,
	})
}

// RequestHelp は支援要請を登録する。重複要請も受け付ける。
// POST /api/patients/:id/help
func (h *PatientHandler) RequestHelp(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "id")

	req := h.service.RequestHelp(r.Context(), patientID)
	if req == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSONResponse(w, http.StatusCreated, toHelpRequestResponse(*req))
}

// toPatientResponse はmodel.PatientをAPIレスポンスに変換する。
func toPatientResponse(p *model.Patient) patientResponse {
	medications := make([]medicationResponse, 0, len(p.Medications))
	for _, med := range p.Medications {
		medications = append(medications, toMedicationResponse(med))
	}

	symptoms := make([]symptomResponse, 0, len(p.Symptoms))
	for _, sym := range p.Symptoms {
		symptoms = append(symptoms, toSymptomResponse(sym))
	}

	caretakers := p.Caretakers
	if caretakers == nil {
		caretakers = []string{}
	}
	conditions := p.Conditions
	if conditions == nil {
		conditions = []string{}
	}

	return patientResponse{
		ID:          p.ID,
		Name:        p.Name,
		Phone:       p.Phone,
		Conditions:  conditions,
		Medications: medications,
		Symptoms:    symptoms,
		Caretakers:  caretakers,
	}
}

func toMedicationResponse(med model.Medication) medicationResponse {
	return medicationResponse{
		ID:           med.ID,
		Name:         med.Name,
		Dosage:       med.Dosage,
		Frequency:    med.Frequency,
		ReminderTime: med.ReminderTime,
		Instructions: med.Instructions,
		Taken:        med.Taken,
	}
}

func toSymptomResponse(sym model.Symptom) symptomResponse {
	triggers := sym.Triggers
	if triggers == nil {
		triggers = []string{}
	}
	return symptomResponse{
		ID:          sym.ID,
		Name:        sym.Name,
		Severity:    sym.Severity,
		Band:        string(model.BandForSeverity(sym.Severity)),
		Description: sym.Description,
		Triggers:    triggers,
		RecordedAt:  sym.RecordedAt,
	}
}

func toHelpRequestResponse(req model.HelpRequest) helpRequestResponse {
	return helpRequestResponse{
		ID:          req.ID,
		PatientID:   req.PatientID,
		PatientName: req.PatientName,
		CreatedAt:   req.CreatedAt,
		Status:      string(req.Status),
		Urgency:     string(req.Urgency),
	}
}

// writeJSONResponse はJSONレスポンスを書き込む。
func writeJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// writeAPIErrorResponse は統一エラーフォーマットでエラーレスポンスを書き込む。
func writeAPIErrorResponse(w http.ResponseWriter, statusCode int, apiErr *model.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(apiErrorResponse{
		Code:     apiErr.Code,
		Message:  apiErr.Message,
		Category: apiErr.Category,
		Action:   apiErr.Action,
	})
}

// invalidRequestBodyError はリクエストボディ解析失敗のAPIErrorを返す。
func invalidRequestBodyError() *model.APIError {
	return &model.APIError{
		Code:     "INVALID_REQUEST",
		Message:  "リクエストボディの解析に失敗しました。",
		Category: "validation",
		Action:   "正しいJSON形式でリクエストしてください。",
	}
}

// handleServiceError はサービス層から返されたエラーを適切なHTTPステータスコードに変換する。
func handleServiceError(w http.ResponseWriter, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		writeAPIErrorResponse(w, mapAPIErrorToHTTPStatus(apiErr), apiErr)
		return
	}

	// APIError以外のエラーは内部サーバーエラーとして扱う
	slog.Error("internal server error", slog.String("error", err.Error()))
	writeAPIErrorResponse(w, http.StatusInternalServerError, &model.APIError{
		Code:     "INTERNAL_ERROR",
		Message:  "内部エラーが発生しました。",
		Category: "system",
		Action:   "しばらく待ってから再度お試しください。",
	})
}

// mapAPIErrorToHTTPStatus はAPIErrorコードからHTTPステータスコードにマッピングする。
func mapAPIErrorToHTTPStatus(apiErr *model.APIError) int {
	switch apiErr.Code {
	case model.ErrCodeAuthFailed, model.ErrCodeOTPInvalid:
		return http.StatusUnauthorized
	case model.ErrCodePatientNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
