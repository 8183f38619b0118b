// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: auth, validation, care, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeAuthFailed        = "AUTH_FAILED"
	ErrCodeOTPInvalid        = "OTP_INVALID"
	ErrCodeInvalidAuthMethod = "INVALID_AUTH_METHOD"
	ErrCodeInvalidRole       = "INVALID_ROLE"
	ErrCodeInvalidLanguage   = "INVALID_LANGUAGE"
	ErrCodeMissingField      = "MISSING_FIELD"
	ErrCodeInvalidSeverity   = "INVALID_SEVERITY"
	ErrCodePatientNotFound   = "PATIENT_NOT_FOUND"
)

// NewAuthFailedError は認証失敗エラーを生成する。
// 具体的な失敗理由は漏らさず、一般的な再試行メッセージのみを返す。
func NewAuthFailedError() *APIError {
	return &APIError{
		Code:     ErrCodeAuthFailed,
		Message:  "認証に失敗しました。",
		Category: "auth",
		Action:   "入力内容を確認して再度お試しください。",
	}
}

// NewOTPInvalidError はOTP検証失敗エラーを生成する。
func NewOTPInvalidError() *APIError {
	return &APIError{
		Code:     ErrCodeOTPInvalid,
		Message:  "携帯電話番号またはOTPが正しくありません。",
		Category: "auth",
		Action:   "10桁以上の携帯電話番号と6桁のOTPを入力してください。",
	}
}

// NewInvalidAuthMethodError は未知のログイン方式エラーを生成する。
func NewInvalidAuthMethodError(method string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidAuthMethod,
		Message:  fmt.Sprintf("サポートされていないログイン方式です: %s", method),
		Category: "validation",
		Action:   "email、mobile、username のいずれかを指定してください。",
	}
}

// NewInvalidRoleError は未知の役割エラーを生成する。
func NewInvalidRoleError(role string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidRole,
		Message:  fmt.Sprintf("サポートされていない役割です: %s", role),
		Category: "validation",
		Action:   "patient または caretaker を指定してください。",
	}
}

// NewInvalidLanguageError は未知の言語エラーを生成する。
func NewInvalidLanguageError(lang string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidLanguage,
		Message:  fmt.Sprintf("サポートされていない言語です: %s", lang),
		Category: "validation",
		Action:   "en または hi を指定してください。",
	}
}

// NewMissingFieldError は必須項目未入力エラーを生成する。
func NewMissingFieldError(field string) *APIError {
	return &APIError{
		Code:     ErrCodeMissingField,
		Message:  fmt.Sprintf("必須項目が入力されていません: %s", field),
		Category: "validation",
		Action:   "すべての必須項目を入力してください。",
	}
}

// NewInvalidSeverityError は重症度範囲外エラーを生成する。
func NewInvalidSeverityError(severity int) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidSeverity,
		Message:  fmt.Sprintf("重症度が範囲外です: %d", severity),
		Category: "validation",
		Action:   "重症度は1から10の整数で指定してください。",
	}
}

// NewPatientNotFoundError は患者未検出エラーを生成する。
func NewPatientNotFoundError(patientID string) *APIError {
	return &APIError{
		Code:     ErrCodePatientNotFound,
		Message:  fmt.Sprintf("指定された患者が見つかりません: %s", patientID),
		Category: "care",
		Action:   "患者IDを確認してください。",
	}
}
