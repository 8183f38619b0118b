// Package patient は患者側操作のドメインロジックを提供する。
//
// 入力の検証とサニタイズを行ったうえで状態コンテナの変更操作を呼び出す。
// 必須項目の未入力は検証エラーとして呼び出し元に返すが、存在しない
// 患者IDへの操作はコンテナの契約どおり静かに何もしない。
package patient

import (
	"context"
	"log/slog"

	"github.com/hitoshi/saathi/internal/model"
	"github.com/hitoshi/saathi/internal/store"
)

// CareStore は患者側操作が必要とする状態コンテナのインターフェース。
// store.Storeの部分集合として定義する。
type CareStore interface {
	PatientByID(id string) *model.Patient
	Catalog() []model.CaretakerOption
	AddMedication(patientID string, in store.MedicationInput) *model.Medication
	AddSymptom(patientID string, in store.SymptomInput) *model.Symptom
	MarkMedicationTaken(patientID, medicationID string)
	AddCaretaker(patientID, caretakerID string)
	AddCustomCaretaker(patientID, name, phone string) *model.Caretaker
	RequestCaretakerHelp(patientID string) *model.HelpRequest
}

// Sanitizer はユーザー入力の自由テキストをサニタイズするインターフェース。
// security.TextSanitizerServiceの部分集合として定義する。
type Sanitizer interface {
	Sanitize(input string) string
	SanitizeAll(inputs []string) []string
}

// Recorder は患者側操作メトリクスの記録インターフェース。
type Recorder interface {
	RecordMedicationAdded()
	RecordMedicationTaken()
	RecordSymptomLogged(band string)
	RecordHelpRequested()
}

// nopRecorder はメトリクス未設定時のフォールバック。
type nopRecorder struct{}

func (nopRecorder) RecordMedicationAdded() {}

func (nopRecorder) RecordMedicationTaken() {}

func (nopRecorder) RecordSymptomLogged(band string) {}

func (nopRecorder) RecordHelpRequested() {}

// Service は患者側操作のサービス。
type Service struct {
	store     CareStore
	sanitizer Sanitizer
	metrics   Recorder
}

// NewService はServiceを生成する。metricsにnilを渡すと記録を行わない。
func NewService(careStore CareStore, sanitizer Sanitizer, metrics Recorder) *Service {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &Service{
		store:     careStore,
		sanitizer: sanitizer,
		metrics:   metrics,
	}
}

// MedicationInput は服薬予定の作成入力。
type MedicationInput struct {
	Name         string
	Dosage       string
	Frequency    string
	ReminderTime string
	Instructions string
}

// SymptomInput は症状記録の作成入力。
type SymptomInput struct {
	Name        string
	Severity    int
	Description string
	Triggers    []string
}

// GetPatient は患者のスナップショットを返す。見つからない場合はnilを返す。
func (s *Service) GetPatient(ctx context.Context, patientID string) *model.Patient {
	return s.store.PatientByID(patientID)
}

// Catalog は介護者カタログを返す。
func (s *Service) Catalog(ctx context.Context) []model.CaretakerOption {
	return s.store.Catalog()
}

// AddMedication は服薬予定を追加する。
// 名前・用量・頻度・リマインダー時刻は必須。患者が見つからない場合は
// 何もせずnilを返す（エラーにしない）。
func (s *Service) AddMedication(ctx context.Context, patientID string, in MedicationInput) (*model.Medication, error) {
	switch {
	case in.Name == "":
		return nil, model.NewMissingFieldError("name")
	case in.Dosage == "":
		return nil, model.NewMissingFieldError("dosage")
	case in.Frequency == "":
		return nil, model.NewMissingFieldError("frequency")
	case in.ReminderTime == "":
		return nil, model.NewMissingFieldError("reminderTime")
	}

	med := s.store.AddMedication(patientID, store.MedicationInput{
		Name:         s.sanitizer.Sanitize(in.Name),
		Dosage:       s.sanitizer.Sanitize(in.Dosage),
		Frequency:    s.sanitizer.Sanitize(in.Frequency),
		ReminderTime: in.ReminderTime,
		Instructions: s.sanitizer.Sanitize(in.Instructions),
	})
	if med == nil {
		return nil, nil
	}

	s.metrics.RecordMedicationAdded()
	slog.Info("medication added",
		slog.String("patient_id", patientID),
		slog.String("medication_id", med.ID),
	)
	return med, nil
}

// MarkMedicationTaken は服薬記録を付ける。冪等であり、IDが
// 見つからない場合は何もしない。
func (s *Service) MarkMedicationTaken(ctx context.Context, patientID, medicationID string) {
	s.store.MarkMedicationTaken(patientID, medicationID)
	s.metrics.RecordMedicationTaken()

	slog.Info("medication marked taken",
		slog.String("patient_id", patientID),
		slog.String("medication_id", medicationID),
	)
}

// AddSymptom は症状記録を追加する。
// 名前は必須、重症度は1〜10の範囲でなければならない。
func (s *Service) AddSymptom(ctx context.Context, patientID string, in SymptomInput) (*model.Symptom, error) {
	if in.Name == "" {
		return nil, model.NewMissingFieldError("name")
	}
	if in.Severity < model.SeverityMin || in.Severity > model.SeverityMax {
		return nil, model.NewInvalidSeverityError(in.Severity)
	}

	sym := s.store.AddSymptom(patientID, store.SymptomInput{
		Name:        s.sanitizer.Sanitize(in.Name),
		Severity:    in.Severity,
		Description: s.sanitizer.Sanitize(in.Description),
		Triggers:    s.sanitizer.SanitizeAll(in.Triggers),
	})
	if sym == nil {
		return nil, nil
	}

	s.metrics.RecordSymptomLogged(string(model.BandForSeverity(sym.Severity)))
	slog.Info("symptom logged",
		slog.String("patient_id", patientID),
		slog.String("symptom_id", sym.ID),
		slog.Int("severity", sym.Severity),
	)
	return sym, nil
}

// LinkCaretaker はカタログ選択などで得た介護者IDを患者にリンクする。
// IDの実在検証と重複排除は行わない（コンテナの契約を引き継ぐ）。
func (s *Service) LinkCaretaker(ctx context.Context, patientID, caretakerID string) error {
	if caretakerID == "" {
		return model.NewMissingFieldError("caretaker_id")
	}

	s.store.AddCaretaker(patientID, caretakerID)
	slog.Info("caretaker linked",
		slog.String("patient_id", patientID),
		slog.String("caretaker_id", caretakerID),
	)
	return nil
}

// AddCustomCaretaker は患者が独自に登録する介護者を作成しリンクする。
// 名前と電話番号は必須。患者が見つからない場合は何もせずnilを返す。
func (s *Service) AddCustomCaretaker(ctx context.Context, patientID, name, phone string) (*model.Caretaker, error) {
	if name == "" {
		return nil, model.NewMissingFieldError("name")
	}
	if phone == "" {
		return nil, model.NewMissingFieldError("phone")
	}

	ct := s.store.AddCustomCaretaker(patientID, s.sanitizer.Sanitize(name), s.sanitizer.Sanitize(phone))
	if ct == nil {
		return nil, nil
	}

	slog.Info("custom caretaker added",
		slog.String("patient_id", patientID),
		slog.String("caretaker_id", ct.ID),
	)
	return ct, nil
}

// RequestHelp は支援要請を追加する。スロットリングは行わず、
// 連続呼び出しはそのまま複数の要請になる。患者が見つからない場合は
// 何もせずnilを返す。
func (s *Service) RequestHelp(ctx context.Context, patientID string) *model.HelpRequest {
	req := s.store.RequestCaretakerHelp(patientID)
	if req == nil {
		return nil
	}

	s.metrics.RecordHelpRequested()
	slog.Info("help requested",
		slog.String("patient_id", patientID),
		slog.String("request_id", req.ID),
	)
	return req
}
