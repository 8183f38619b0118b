// Package model はドメインモデルを定義する。
package model

import "time"

// HelpRequestStatus は支援要請の状態を表す。
type HelpRequestStatus string

const (
	// HelpRequestPending は未対応の支援要請。
	HelpRequestPending HelpRequestStatus = "pending"
	// HelpRequestResolved は対応済みの支援要請。
	HelpRequestResolved HelpRequestStatus = "resolved"
)

// Urgency は支援要請の緊急度を表す。
type Urgency string

const (
	// UrgencyLow は低緊急度。
	UrgencyLow Urgency = "low"
	// UrgencyMedium は中緊急度。
	UrgencyMedium Urgency = "medium"
	// UrgencyHigh は高緊急度。作成時は常にこの値が設定される。
	UrgencyHigh Urgency = "high"
)

// HelpRequest は患者から介護者への支援要請を表す。
// PatientNameは作成時点の患者名のスナップショットで、
// その後の名前変更には追随しない。
type HelpRequest struct {
	ID          string
	PatientID   string
	PatientName string
	CreatedAt   time.Time
	Status      HelpRequestStatus
	Urgency     Urgency
}
