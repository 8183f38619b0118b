// Package model はドメインモデルを定義する。
package model

// Role はユーザーの役割を表す。
type Role string

const (
	// RolePatient は患者役割。
	RolePatient Role = "patient"
	// RoleCaretaker は介護者役割。
	RoleCaretaker Role = "caretaker"
)

// IsValid は既知の役割かどうかを返す。
func (r Role) IsValid() bool {
	return r == RolePatient || r == RoleCaretaker
}

// Language は表示言語を表す。
type Language string

const (
	// LanguageEnglish は英語表示。
	LanguageEnglish Language = "en"
	// LanguageHindi はヒンディー語表示。
	LanguageHindi Language = "hi"
)

// IsValid はサポートされている言語かどうかを返す。
func (l Language) IsValid() bool {
	return l == LanguageEnglish || l == LanguageHindi
}

// AuthMethod はログイン方式を表す。
type AuthMethod string

const (
	// AuthMethodEmail はメールアドレスによるログイン。
	AuthMethodEmail AuthMethod = "email"
	// AuthMethodMobile は携帯電話番号によるログイン。
	AuthMethodMobile AuthMethod = "mobile"
	// AuthMethodUsername はユーザー名+パスワードによるログイン。
	AuthMethodUsername AuthMethod = "username"
)

// IsValid は既知のログイン方式かどうかを返す。
func (m AuthMethod) IsValid() bool {
	switch m {
	case AuthMethodEmail, AuthMethodMobile, AuthMethodUsername:
		return true
	}
	return false
}

// User はサービス利用者の基本情報を表す。
// PatientとCaretakerの共通部分。
type User struct {
	ID       string
	Name     string
	Phone    string
	Role     Role
	Language Language
}

// Patient は患者を表す。
// MedicationsとSymptomsは追加順（＝時系列順）を保持する。
// Caretakersは介護者IDのリストで、Caretakerコレクションに実体が
// 存在しないIDを含むことがある（カタログ選択によるリンクは実体を作らない）。
type Patient struct {
	User
	Medications []Medication
	Symptoms    []Symptom
	Caretakers  []string
	Conditions  []string
}

// Caretaker は介護者を表す。
// Patientsは担当患者IDのリスト。
type Caretaker struct {
	User
	Patients []string
}

// CaretakerOption は介護者カタログのエントリを表す。
// 起動時にシードされる読み取り専用データで、実行時には変更されない。
type CaretakerOption struct {
	ID             string
	Name           string
	Experience     string
	Rating         float64
	Specialization string
	Available      bool
}
