package store

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/hitoshi/saathi/internal/model"
)

// newTestStore は決定的なIDと時刻を持つStoreを生成する。
func newTestStore() *Store {
	s := New()
	seq := 0
	s.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	s.now = func() time.Time {
		return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	}
	return s
}

// TestAddMedication_AppendsAtEnd は新規服薬予定がリスト末尾に
// Taken=falseで追加されることを検証する。
func TestAddMedication_AppendsAtEnd(t *testing.T) {
	s := newTestStore()

	med := s.AddMedication(SeedPatientID, MedicationInput{
		Name:         "Amlodipine",
		Dosage:       "5mg",
		Frequency:    "Once Daily",
		ReminderTime: "20:00",
	})
	if med == nil {
		t.Fatal("expected medication to be created")
	}
	if med.Taken {
		t.Error("expected new medication to start with Taken=false")
	}

	p := s.PatientByID(SeedPatientID)
	last := p.Medications[len(p.Medications)-1]
	if last.ID != med.ID || last.Name != "Amlodipine" {
		t.Errorf("expected new medication at end of list, got %+v", last)
	}
}

// TestAddMedication_UnknownPatient は未知の患者IDに対する追加が
// 状態を変更しないことを検証する。
func TestAddMedication_UnknownPatient(t *testing.T) {
	s := newTestStore()
	before := s.Patients()

	if med := s.AddMedication("nope", MedicationInput{Name: "X"}); med != nil {
		t.Fatalf("expected nil for unknown patient, got %+v", med)
	}

	if !reflect.DeepEqual(before, s.Patients()) {
		t.Error("expected patient collection to be unchanged")
	}
}

// TestMarkMedicationTaken_Idempotent は服薬記録が冪等で、
// 未知のIDに対しては全リストが構造的に不変であることを検証する。
func TestMarkMedicationTaken_Idempotent(t *testing.T) {
	s := newTestStore()

	s.MarkMedicationTaken(SeedPatientID, "med1")
	once := s.Patients()

	s.MarkMedicationTaken(SeedPatientID, "med1")
	twice := s.Patients()

	if !reflect.DeepEqual(once, twice) {
		t.Error("expected marking taken twice to equal marking once")
	}
	if !twice[0].Medications[0].Taken {
		t.Error("expected medication to be marked taken")
	}

	// 未知の服薬ID・患者IDはどちらも無変更
	s.MarkMedicationTaken(SeedPatientID, "no-such-med")
	s.MarkMedicationTaken("no-such-patient", "med1")
	if !reflect.DeepEqual(twice, s.Patients()) {
		t.Error("expected unknown ids to leave all lists unchanged")
	}
}

// TestAddSymptom は症状が記録時刻付きで末尾に追加されることを検証する。
func TestAddSymptom(t *testing.T) {
	s := newTestStore()

	sym := s.AddSymptom(SeedPatientID, SymptomInput{
		Name:        "Dizziness",
		Severity:    4,
		Description: "Mild dizziness after lunch",
		Triggers:    []string{"skipped breakfast"},
	})
	if sym == nil {
		t.Fatal("expected symptom to be created")
	}
	if sym.RecordedAt.IsZero() {
		t.Error("expected RecordedAt to be set")
	}

	p := s.PatientByID(SeedPatientID)
	if len(p.Symptoms) != 1 || p.Symptoms[0].ID != sym.ID {
		t.Errorf("expected symptom in patient list, got %+v", p.Symptoms)
	}

	if s.AddSymptom("nope", SymptomInput{Name: "X", Severity: 2}) != nil {
		t.Error("expected nil for unknown patient")
	}
}

// TestAddCaretaker_AllowsDanglingAndDuplicates は介護者リンクが
// 実在検証なし・重複許容で追加されることを検証する。
func TestAddCaretaker_AllowsDanglingAndDuplicates(t *testing.T) {
	s := newTestStore()

	s.AddCaretaker(SeedPatientID, "ghost-caretaker")
	s.AddCaretaker(SeedPatientID, "ghost-caretaker")

	p := s.PatientByID(SeedPatientID)
	count := 0
	for _, id := range p.Caretakers {
		if id == "ghost-caretaker" {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected duplicate dangling link to be kept, got %d entries", count)
	}
	if len(s.Caretakers()) != 0 {
		t.Error("expected no caretaker record to be materialized for a plain link")
	}
}

// TestAddCustomCaretaker はCaretakerレコードの作成とリンクが
// 1回の操作で両方行われることを検証する。
func TestAddCustomCaretaker(t *testing.T) {
	s := newTestStore()

	ct := s.AddCustomCaretaker(SeedPatientID, "Asha", "999")
	if ct == nil {
		t.Fatal("expected caretaker to be created")
	}
	if ct.Role != model.RoleCaretaker {
		t.Errorf("expected role caretaker, got %s", ct.Role)
	}
	if !reflect.DeepEqual(ct.Patients, []string{SeedPatientID}) {
		t.Errorf("expected patients list [%s], got %v", SeedPatientID, ct.Patients)
	}

	records := s.Caretakers()
	if len(records) != 1 || records[0].Name != "Asha" {
		t.Fatalf("expected exactly one caretaker record, got %+v", records)
	}

	p := s.PatientByID(SeedPatientID)
	count := 0
	for _, id := range p.Caretakers {
		if id == ct.ID {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected link to appear exactly once, got %d", count)
	}

	if s.AddCustomCaretaker("nope", "X", "1") != nil {
		t.Error("expected nil for unknown patient")
	}
}

// TestRequestCaretakerHelp_DuplicatesExpected は連続した支援要請が
// 重複排除されずに積まれることを検証する。
func TestRequestCaretakerHelp_DuplicatesExpected(t *testing.T) {
	s := newTestStore()

	first := s.RequestCaretakerHelp(SeedPatientID)
	second := s.RequestCaretakerHelp(SeedPatientID)
	if first == nil || second == nil {
		t.Fatal("expected both requests to be created")
	}
	if first.ID == second.ID {
		t.Error("expected distinct request ids")
	}

	reqs := s.HelpRequests()
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(reqs))
	}
	for _, req := range reqs {
		if req.Status != model.HelpRequestPending {
			t.Errorf("expected status pending, got %s", req.Status)
		}
		if req.Urgency != model.UrgencyHigh {
			t.Errorf("expected urgency high, got %s", req.Urgency)
		}
		if req.PatientName != "Rajesh Kumar" {
			t.Errorf("expected denormalized patient name, got %s", req.PatientName)
		}
	}

	if s.RequestCaretakerHelp("nope") != nil {
		t.Error("expected nil for unknown patient")
	}
}

// TestResolveHelpRequest は支援要請の解決が冪等で、
// 未知のIDに対して無変更であることを検証する。
func TestResolveHelpRequest(t *testing.T) {
	s := newTestStore()
	req := s.RequestCaretakerHelp(SeedPatientID)

	s.ResolveHelpRequest(req.ID)
	once := s.HelpRequests()
	s.ResolveHelpRequest(req.ID)

	if !reflect.DeepEqual(once, s.HelpRequests()) {
		t.Error("expected resolving twice to equal resolving once")
	}
	if once[0].Status != model.HelpRequestResolved {
		t.Errorf("expected status resolved, got %s", once[0].Status)
	}
	if len(s.PendingHelpRequests()) != 0 {
		t.Error("expected no pending requests after resolution")
	}

	before := s.HelpRequests()
	s.ResolveHelpRequest("no-such-request")
	if !reflect.DeepEqual(before, s.HelpRequests()) {
		t.Error("expected unknown id to leave requests unchanged")
	}
}

// TestPatientsForCaretaker は介護者IDによる担当患者の絞り込みを検証する。
func TestPatientsForCaretaker(t *testing.T) {
	s := newTestStore()

	assigned := s.PatientsForCaretaker("caretaker1")
	if len(assigned) != 1 || assigned[0].ID != SeedPatientID {
		t.Errorf("expected seed patient to be assigned to caretaker1, got %+v", assigned)
	}

	if got := s.PatientsForCaretaker("unknown"); len(got) != 0 {
		t.Errorf("expected no patients for unknown caretaker, got %+v", got)
	}
}

// TestSessionAndLanguage はセッションユーザーと言語の置き換えを検証する。
func TestSessionAndLanguage(t *testing.T) {
	s := newTestStore()

	if s.CurrentUser() != nil {
		t.Error("expected no session user at start")
	}

	s.SetCurrentUser(&model.User{ID: "user1", Name: "Demo User", Role: model.RolePatient})
	u := s.CurrentUser()
	if u == nil || u.Name != "Demo User" {
		t.Fatalf("expected installed session user, got %+v", u)
	}

	s.SetCurrentUserRole(model.RoleCaretaker)
	if got := s.CurrentUser().Role; got != model.RoleCaretaker {
		t.Errorf("expected role caretaker after selection, got %s", got)
	}

	s.SetLanguage(model.LanguageHindi)
	if s.Language() != model.LanguageHindi {
		t.Error("expected language to be replaced")
	}

	s.SetCurrentUser(nil)
	if s.CurrentUser() != nil {
		t.Error("expected nil user after logout")
	}
}

// TestSnapshotIsolation はスナップショットへの変更が
// ストア内部に波及しないことを検証する。
func TestSnapshotIsolation(t *testing.T) {
	s := newTestStore()

	p := s.PatientByID(SeedPatientID)
	p.Medications[0].Taken = true
	p.Caretakers[0] = "tampered"

	fresh := s.PatientByID(SeedPatientID)
	if fresh.Medications[0].Taken {
		t.Error("expected snapshot mutation not to affect store")
	}
	if fresh.Caretakers[0] != "caretaker1" {
		t.Error("expected caretaker links to be isolated")
	}
}
