// Package caretaker は介護者側ダッシュボードの読み取りモデルを提供する。
//
// 状態コンテナのスナップショットから服薬遵守率・未服薬・直近の症状などの
// 派生値をその都度計算する。派生値は保存されない。
package caretaker

import (
	"context"
	"log/slog"

	"github.com/hitoshi/saathi/internal/model"
)

// recentSymptomLimit はダッシュボードに表示する直近症状の件数。
const recentSymptomLimit = 5

// CareReader は介護者側ビューが必要とする状態コンテナの読み取り操作。
// store.Storeの部分集合として定義する。
type CareReader interface {
	PatientsForCaretaker(caretakerID string) []model.Patient
	PatientByID(id string) *model.Patient
	PendingHelpRequests() []model.HelpRequest
	HelpRequests() []model.HelpRequest
	ResolveHelpRequest(requestID string)
}

// PatientStatus は担当患者1人分のダッシュボード表示データ。
type PatientStatus struct {
	Patient           model.Patient
	Adherence         int // 服薬遵守率（%）
	MissedMedications []model.Medication
	RecentSymptoms    []model.Symptom
}

// Service は介護者側の読み取りサービス。
type Service struct {
	store CareReader
}

// NewService はServiceを生成する。
func NewService(careStore CareReader) *Service {
	return &Service{store: careStore}
}

// AssignedPatients は指定介護者の担当患者を派生値付きで返す。
// 担当関係は患者側の介護者IDリストで判定する。
func (s *Service) AssignedPatients(ctx context.Context, caretakerID string) []PatientStatus {
	patients := s.store.PatientsForCaretaker(caretakerID)

	out := make([]PatientStatus, 0, len(patients))
	for _, p := range patients {
		out = append(out, buildStatus(p))
	}
	return out
}

// PatientStatusByID は患者1人分のダッシュボード表示データを返す。
// 見つからない場合はnilを返す。
func (s *Service) PatientStatusByID(ctx context.Context, patientID string) *PatientStatus {
	p := s.store.PatientByID(patientID)
	if p == nil {
		return nil
	}

	status := buildStatus(*p)
	return &status
}

// PendingHelpRequests は未対応の支援要請を作成順で返す。
func (s *Service) PendingHelpRequests(ctx context.Context) []model.HelpRequest {
	return s.store.PendingHelpRequests()
}

// AllHelpRequests は全支援要請を作成順で返す。
func (s *Service) AllHelpRequests(ctx context.Context) []model.HelpRequest {
	return s.store.HelpRequests()
}

// ResolveHelpRequest は支援要請を対応済みにする。
// 冪等であり、未知のIDは静かに無視される。
func (s *Service) ResolveHelpRequest(ctx context.Context, requestID string) {
	s.store.ResolveHelpRequest(requestID)

	slog.Info("help request resolved", slog.String("request_id", requestID))
}

// buildStatus は患者スナップショットから派生値を計算する。
func buildStatus(p model.Patient) PatientStatus {
	return PatientStatus{
		Patient:           p,
		Adherence:         model.MedicationAdherence(p.Medications),
		MissedMedications: missedMedications(p.Medications),
		RecentSymptoms:    recentSymptoms(p.Symptoms),
	}
}

// missedMedications は未服薬の服薬予定を返す。
func missedMedications(medications []model.Medication) []model.Medication {
	var out []model.Medication
	for _, med := range medications {
		if !med.Taken {
			out = append(out, med)
		}
	}
	return out
}

// recentSymptoms は直近の症状を新しい順に最大5件返す。
// 症状リストは追加順（＝時系列順）であることを前提とする。
func recentSymptoms(symptoms []model.Symptom) []model.Symptom {
	start := len(symptoms) - recentSymptomLimit
	if start < 0 {
		start = 0
	}

	tail := symptoms[start:]
	out := make([]model.Symptom, 0, len(tail))
	for i := len(tail) - 1; i >= 0; i-- {
		out = append(out, tail[i])
	}
	return out
}
