package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hitoshi/saathi/internal/caretaker"
	"github.com/hitoshi/saathi/internal/model"
)

// --- モック定義 ---

type mockCaretakerService struct {
	assignedPatientsFn    func(ctx context.Context, caretakerID string) []caretaker.PatientStatus
	pendingHelpRequestsFn func(ctx context.Context) []model.HelpRequest
	allHelpRequestsFn     func(ctx context.Context) []model.HelpRequest
	resolveHelpRequestFn  func(ctx context.Context, requestID string)
}

func (m *mockCaretakerService) AssignedPatients(ctx context.Context, caretakerID string) []caretaker.PatientStatus {
	if m.assignedPatientsFn != nil {
		return m.assignedPatientsFn(ctx, caretakerID)
	}
	return nil
}

func (m *mockCaretakerService) PendingHelpRequests(ctx context.Context) []model.HelpRequest {
	if m.pendingHelpRequestsFn != nil {
		return m.pendingHelpRequestsFn(ctx)
	}
	return nil
}

func (m *mockCaretakerService) AllHelpRequests(ctx context.Context) []model.HelpRequest {
	if m.allHelpRequestsFn != nil {
		return m.allHelpRequestsFn(ctx)
	}
	return nil
}

func (m *mockCaretakerService) ResolveHelpRequest(ctx context.Context, requestID string) {
	if m.resolveHelpRequestFn != nil {
		m.resolveHelpRequestFn(ctx, requestID)
	}
}

// --- ListPatients のテスト ---

func TestCaretakerHandler_ListPatients_ReturnsStatuses(t *testing.T) {
	svc := &mockCaretakerService{
		assignedPatientsFn: func(ctx context.Context, caretakerID string) []caretaker.PatientStatus {
			if caretakerID != "caretaker1" {
				t.Errorf("caretakerID = %q, want caretaker1", caretakerID)
			}
			return []caretaker.PatientStatus{
				{
					Patient: model.Patient{
						User: model.User{ID: "patient1", Name: "Rajesh Kumar"},
						Medications: []model.Medication{
							{ID: "med1", Name: "Metformin", Taken: false},
						},
					},
					Adherence: 0,
					MissedMedications: []model.Medication{
						{ID: "med1", Name: "Metformin", Taken: false},
					},
					RecentSymptoms: []model.Symptom{
						{ID: "sym1", Name: "Headache", Severity: 5},
					},
				},
			}
		},
	}
	h := NewCaretakerHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	req = withUserID(req, "caretaker1")
	w := httptest.NewRecorder()

	h.ListPatients(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp []patientStatusResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("statuses length = %d, want 1", len(resp))
	}
	if resp[0].Adherence != 0 {
		t.Errorf("adherence = %d, want 0", resp[0].Adherence)
	}
	if len(resp[0].MissedMedications) != 1 || resp[0].MissedMedications[0].Name != "Metformin" {
		t.Errorf("missed medications = %+v, want Metformin", resp[0].MissedMedications)
	}
	if len(resp[0].RecentSymptoms) != 1 {
		t.Errorf("recent symptoms length = %d, want 1", len(resp[0].RecentSymptoms))
	}
}

func TestCaretakerHandler_ListPatients_MissingUserID_Returns401(t *testing.T) {
	h := NewCaretakerHandler(&mockCaretakerService{})

	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	w := httptest.NewRecorder()

	h.ListPatients(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestCaretakerHandler_ListPatients_NoAssignments_ReturnsEmptyArray(t *testing.T) {
	h := NewCaretakerHandler(&mockCaretakerService{})

	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	req = withUserID(req, "caretaker9")
	w := httptest.NewRecorder()

	h.ListPatients(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Body.String(); got != "[]\n" {
		t.Errorf("body = %q, want empty JSON array", got)
	}
}

// --- ListHelpRequests のテスト ---

func TestCaretakerHandler_ListHelpRequests_PendingFilter(t *testing.T) {
	pendingCalled := false
	svc := &mockCaretakerService{
		pendingHelpRequestsFn: func(ctx context.Context) []model.HelpRequest {
			pendingCalled = true
			return []model.HelpRequest{
				{ID: "help1", PatientID: "patient1", Status: model.HelpRequestPending, Urgency: model.UrgencyHigh},
			}
		},
		allHelpRequestsFn: func(ctx context.Context) []model.HelpRequest {
			t.Fatal("AllHelpRequests should not be called with status=pending")
			return nil
		},
	}
	h := NewCaretakerHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/help-requests?status=pending", nil)
	w := httptest.NewRecorder()

	h.ListHelpRequests(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !pendingCalled {
		t.Error("PendingHelpRequests should be called")
	}

	var resp []helpRequestResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].Status != string(model.HelpRequestPending) {
		t.Errorf("help requests = %+v, want 1 pending", resp)
	}
}

func TestCaretakerHandler_ListHelpRequests_NoFilter_ReturnsAll(t *testing.T) {
	svc := &mockCaretakerService{
		allHelpRequestsFn: func(ctx context.Context) []model.HelpRequest {
			return []model.HelpRequest{
				{ID: "help1", Status: model.HelpRequestResolved},
				{ID: "help2", Status: model.HelpRequestPending},
			}
		},
	}
	h := NewCaretakerHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/help-requests", nil)
	w := httptest.NewRecorder()

	h.ListHelpRequests(w, req)

	var resp []helpRequestResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Errorf("help requests length = %d, want 2", len(resp))
	}
}

// --- ResolveHelpRequest のテスト ---

func TestCaretakerHandler_ResolveHelpRequest_Returns204(t *testing.T) {
	var gotRequestID string
	svc := &mockCaretakerService{
		resolveHelpRequestFn: func(ctx context.Context, requestID string) {
			gotRequestID = requestID
		},
	}
	h := NewCaretakerHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/help-requests/help1/resolve", nil)
	req = withChiURLParam(req, "id", "help1")
	w := httptest.NewRecorder()

	h.ResolveHelpRequest(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if gotRequestID != "help1" {
		t.Errorf("requestID = %q, want %q", gotRequestID, "help1")
	}
}
