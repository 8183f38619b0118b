// Package model はドメインモデルを定義する。
package model

import (
	"math"
	"time"
)

// Medication は患者の服薬予定を表す。
// Takenは作成時false固定で、服薬記録操作によってのみtrueに変わり、
// 以後falseには戻らない。
type Medication struct {
	ID           string
	Name         string
	Dosage       string
	Frequency    string
	ReminderTime string // HH:MM形式。日付・タイムゾーンは持たない。
	Instructions string
	Taken        bool
	NextDose     *time.Time
}

// MedicationAdherence は服薬遵守率（%）を計算する。
// round(服薬済み数 / 総数 * 100)。服薬予定が空の場合は0を返す。
func MedicationAdherence(medications []Medication) int {
	if len(medications) == 0 {
		return 0
	}

	taken := 0
	for _, med := range medications {
		if med.Taken {
			taken++
		}
	}

	return int(math.Round(float64(taken) / float64(len(medications)) * 100))
}
