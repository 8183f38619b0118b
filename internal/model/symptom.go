// Package model はドメインモデルを定義する。
package model

import "time"

// Symptom は患者が記録した症状を表す。作成後は変更されない。
type Symptom struct {
	ID          string
	Name        string
	Severity    int // 1〜10
	Description string
	Triggers    []string
	RecordedAt  time.Time
}

// SeverityBand は症状の重症度レベルを表す。
type SeverityBand string

const (
	// SeverityMild は軽度（1〜3）。
	SeverityMild SeverityBand = "mild"
	// SeverityModerate は中等度（4〜6）。
	SeverityModerate SeverityBand = "moderate"
	// SeverityHigh は高度（7〜8）。
	SeverityHigh SeverityBand = "high"
	// SeveritySevere は重度（9〜10）。
	SeveritySevere SeverityBand = "severe"
)

// SeverityMin は重症度の下限値。
const SeverityMin = 1

// SeverityMax は重症度の上限値。
const SeverityMax = 10

// BandForSeverity は重症度の数値をレベルに対応付ける。
// 患者ビューと介護者ビューで同一の区分けを共有する。
func BandForSeverity(severity int) SeverityBand {
	switch {
	case severity <= 3:
		return SeverityMild
	case severity <= 6:
		return SeverityModerate
	case severity <= 8:
		return SeverityHigh
	default:
		return SeveritySevere
	}
}
