// Package security はアプリケーションのセキュリティ機能を提供する。
//
// TextSanitizerService はユーザーが入力した自由テキスト（症状の説明、
// 介護者名、チャット入力など）からHTMLをすべて除去し、保存・表示時の
// XSSリスクからユーザーを保護する。bluemondayの厳格ポリシーを使用し、
// タグは一切許可しない。
package security

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// TextSanitizerService は自由テキストのサニタイズ機能のインターフェースを定義する。
// ストアへの書き込み前にすべてのユーザー入力に適用される。
type TextSanitizerService interface {
	// Sanitize は入力からHTMLタグをすべて除去したプレーンテキストを返す。
	// エンティティ参照は元の文字に戻し、前後の空白を取り除く。
	// 空文字列の入力には空文字列を返す。
	// 同一入力に対して常に同一出力を返す（冪等）。
	Sanitize(input string) string
}

// textSanitizer はTextSanitizerServiceの実装。
// bluemondayのポリシーを保持し、スレッドセーフにサニタイズ処理を行う。
type textSanitizer struct {
	policy *bluemonday.Policy
}

// NewTextSanitizer はTextSanitizerServiceの新しいインスタンスを生成する。
// StrictPolicyはタグと属性を一切許可せず、テキストノードのみを残す。
func NewTextSanitizer() *textSanitizer {
	return &textSanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// Sanitize は入力からHTMLタグをすべて除去したプレーンテキストを返す。
func (s *textSanitizer) Sanitize(input string) string {
	if input == "" {
		return ""
	}

	stripped := s.policy.Sanitize(input)

	// StrictPolicyは残ったテキストをエンティティ参照にエスケープするため、
	// プレーンテキストとして保存できるよう元の文字に戻す。
	return strings.TrimSpace(html.UnescapeString(stripped))
}

// SanitizeAll は複数の入力をまとめてサニタイズする。
// 症状のトリガーリストなどスライス入力向け。
func (s *textSanitizer) SanitizeAll(inputs []string) []string {
	if inputs == nil {
		return nil
	}

	out := make([]string, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, s.Sanitize(in))
	}
	return out
}
