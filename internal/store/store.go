// Package store はアプリケーションの状態コンテナを提供する。
//
// セッション識別・表示言語・全可変コレクション（患者、介護者、介護者カタログ、
// 支援要請）の唯一の正であり、他のコンポーネントはすべてこのストアを通して
// 読み書きする。永続化は行わず、プロセス終了とともに全状態は破棄される。
//
// 変更操作は書き込みロック、スナップショット読み取りは読み取りロックを取得し、
// 部分的な更新が観測されることはない。存在しないIDに対する変更操作は
// エラーを返さず、状態を変更しないまま静かに終了する。
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hitoshi/saathi/internal/model"
)

// Store はプロセス内の全アプリケーション状態を保持する。
// 生成時にデモデータがシードされる。
type Store struct {
	mu sync.RWMutex

	currentUser  *model.User
	language     model.Language
	patients     []model.Patient
	caretakers   []model.Caretaker
	catalog      []model.CaretakerOption
	helpRequests []model.HelpRequest

	// テストから差し替えるための時刻とID生成のシーム。
	now   func() time.Time
	newID func() string
}

// New はデモデータをシードしたStoreを生成する。
func New() *Store {
	return &Store{
		language:   model.LanguageEnglish,
		patients:   seedPatients(),
		caretakers: []model.Caretaker{},
		catalog:    seedCatalog(),
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// MedicationInput は服薬予定の作成入力を表す。
// IDとTakenはストアが採番・初期化する。
type MedicationInput struct {
	Name         string
	Dosage       string
	Frequency    string
	ReminderTime string
	Instructions string
	NextDose     *time.Time
}

// SymptomInput は症状記録の作成入力を表す。
// IDと記録時刻はストアが採番・設定する。
type SymptomInput struct {
	Name        string
	Severity    int
	Description string
	Triggers    []string
}

// SetCurrentUser はセッションユーザーを置き換える。検証は行わない。
// nilを渡すとログアウト状態になる。
func (s *Store) SetCurrentUser(user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user == nil {
		s.currentUser = nil
		return
	}
	u := *user
	s.currentUser = &u
}

// CurrentUser は現在のセッションユーザーのコピーを返す。
// 未ログインの場合はnilを返す。
func (s *Store) CurrentUser() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.currentUser == nil {
		return nil
	}
	u := *s.currentUser
	return &u
}

// SetLanguage は表示言語を置き換える。
// 表示ラベルの検索にのみ影響し、保存済みデータは変更しない。
func (s *Store) SetLanguage(lang model.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
}

// Language は現在の表示言語を返す。
func (s *Store) Language() model.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// SetCurrentUserRole はセッションユーザーの役割を変更する。
// 未ログインの場合は何もしない。
func (s *Store) SetCurrentUserRole(role model.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUser == nil {
		return
	}
	s.currentUser.Role = role
}

// AddMedication は指定患者の服薬リスト末尾に新しい服薬予定を追加する。
// IDはストアが採番し、Takenはfalseで初期化する。
// 患者が見つからない場合は何もせずnilを返す。
func (s *Store) AddMedication(patientID string, in MedicationInput) *model.Medication {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findPatient(patientID)
	if p == nil {
		return nil
	}

	med := model.Medication{
		ID:           s.newID(),
		Name:         in.Name,
		Dosage:       in.Dosage,
		Frequency:    in.Frequency,
		ReminderTime: in.ReminderTime,
		Instructions: in.Instructions,
		Taken:        false,
		NextDose:     in.NextDose,
	}
	p.Medications = append(p.Medications, med)

	return &med
}

// AddSymptom は指定患者の症状リスト末尾に新しい症状記録を追加する。
// IDと記録時刻はストアが設定する。患者が見つからない場合は何もせずnilを返す。
func (s *Store) AddSymptom(patientID string, in SymptomInput) *model.Symptom {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findPatient(patientID)
	if p == nil {
		return nil
	}

	sym := model.Symptom{
		ID:          s.newID(),
		Name:        in.Name,
		Severity:    in.Severity,
		Description: in.Description,
		Triggers:    append([]string(nil), in.Triggers...),
		RecordedAt:  s.now(),
	}
	p.Symptoms = append(p.Symptoms, sym)

	symCopy := sym
	symCopy.Triggers = append([]string(nil), sym.Triggers...)
	return &symCopy
}

// MarkMedicationTaken は該当する服薬予定のTakenをtrueにする。
// 冪等であり、2回適用しても1回適用した場合と同じ状態になる。
// 患者または服薬予定が見つからない場合は何もしない。
func (s *Store) MarkMedicationTaken(patientID, medicationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findPatient(patientID)
	if p == nil {
		return
	}

	for i := range p.Medications {
		if p.Medications[i].ID == medicationID {
			p.Medications[i].Taken = true
			return
		}
	}
}

// AddCaretaker は患者の介護者IDリストにcaretakerIDを追加する。
// IDがCaretakerコレクションに実在するかは検証せず、重複追加も許容する。
// 患者が見つからない場合は何もしない。
func (s *Store) AddCaretaker(patientID, caretakerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findPatient(patientID)
	if p == nil {
		return
	}
	p.Caretakers = append(p.Caretakers, caretakerID)
}

// AddCustomCaretaker は新しいCaretakerレコードを作成し、患者にリンクする。
// 2つのコレクションの更新は同一の書き込みロック内で行われる。
// 患者が見つからない場合は何もせずnilを返す。
func (s *Store) AddCustomCaretaker(patientID, name, phone string) *model.Caretaker {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findPatient(patientID)
	if p == nil {
		return nil
	}

	ct := model.Caretaker{
		User: model.User{
			ID:       s.newID(),
			Name:     name,
			Phone:    phone,
			Role:     model.RoleCaretaker,
			Language: s.language,
		},
		Patients: []string{patientID},
	}
	s.caretakers = append(s.caretakers, ct)
	p.Caretakers = append(p.Caretakers, ct.ID)

	return copyCaretaker(&ct)
}

// RequestCaretakerHelp は患者の支援要請を追加する。
// 患者名は作成時点のスナップショットとして保存され、statusはpending、
// urgencyはhighで固定される。重複要請の抑制は行わず、連続呼び出しは
// そのまま複数の要請として積まれる。患者が見つからない場合は何もせずnilを返す。
func (s *Store) RequestCaretakerHelp(patientID string) *model.HelpRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findPatient(patientID)
	if p == nil {
		return nil
	}

	req := model.HelpRequest{
		ID:          s.newID(),
		PatientID:   patientID,
		PatientName: p.Name,
		CreatedAt:   s.now(),
		Status:      model.HelpRequestPending,
		Urgency:     model.UrgencyHigh,
	}
	s.helpRequests = append(s.helpRequests, req)

	return &req
}

// ResolveHelpRequest は支援要請をresolvedにする。
// 冪等であり、要請が見つからない場合は何もしない。
func (s *Store) ResolveHelpRequest(requestID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.helpRequests {
		if s.helpRequests[i].ID == requestID {
			s.helpRequests[i].Status = model.HelpRequestResolved
			return
		}
	}
}

// Patients は全患者のスナップショットを返す。
func (s *Store) Patients() []model.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Patient, 0, len(s.patients))
	for i := range s.patients {
		out = append(out, *copyPatient(&s.patients[i]))
	}
	return out
}

// PatientByID は指定IDの患者のスナップショットを返す。
// 見つからない場合はnilを返す。
func (s *Store) PatientByID(id string) *model.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.findPatient(id)
	if p == nil {
		return nil
	}
	return copyPatient(p)
}

// PatientsForCaretaker は介護者IDリストに指定IDを含む患者を返す。
func (s *Store) PatientsForCaretaker(caretakerID string) []model.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Patient
	for i := range s.patients {
		for _, id := range s.patients[i].Caretakers {
			if id == caretakerID {
				out = append(out, *copyPatient(&s.patients[i]))
				break
			}
		}
	}
	return out
}

// Caretakers は全Caretakerレコードのスナップショットを返す。
func (s *Store) Caretakers() []model.Caretaker {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Caretaker, 0, len(s.caretakers))
	for i := range s.caretakers {
		out = append(out, *copyCaretaker(&s.caretakers[i]))
	}
	return out
}

// Catalog は介護者カタログを返す。カタログはシード後変更されない。
func (s *Store) Catalog() []model.CaretakerOption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.CaretakerOption(nil), s.catalog...)
}

// HelpRequests は全支援要請のスナップショットを作成順で返す。
func (s *Store) HelpRequests() []model.HelpRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.HelpRequest(nil), s.helpRequests...)
}

// PendingHelpRequests は未対応の支援要請を作成順で返す。
func (s *Store) PendingHelpRequests() []model.HelpRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.HelpRequest
	for _, req := range s.helpRequests {
		if req.Status == model.HelpRequestPending {
			out = append(out, req)
		}
	}
	return out
}

// findPatient は患者コレクション内の実体を返す。呼び出し側でロックを取得すること。
func (s *Store) findPatient(id string) *model.Patient {
	for i := range s.patients {
		if s.patients[i].ID == id {
			return &s.patients[i]
		}
	}
	return nil
}

// copyPatient は患者の深いコピーを返す。
// スナップショットへの変更がストア内部に波及しないようにする。
func copyPatient(p *model.Patient) *model.Patient {
	out := *p
	out.Medications = append([]model.Medication(nil), p.Medications...)
	out.Symptoms = make([]model.Symptom, 0, len(p.Symptoms))
	for _, sym := range p.Symptoms {
		sym.Triggers = append([]string(nil), sym.Triggers...)
		out.Symptoms = append(out.Symptoms, sym)
	}
	out.Caretakers = append([]string(nil), p.Caretakers...)
	out.Conditions = append([]string(nil), p.Conditions...)
	return &out
}

// copyCaretaker はCaretakerレコードの深いコピーを返す。
func copyCaretaker(c *model.Caretaker) *model.Caretaker {
	out := *c
	out.Patients = append([]string(nil), c.Patients...)
	return &out
}
