// Package assistant はキーワード照合による健康情報アシスタントを提供する。
//
// 自然言語理解は行わない。入力を小文字化し、固定されたトピックリストを
// 先頭から順に調べ、いずれかのキーワードを部分文字列として含む最初の
// トピックの定型回答を返す。トピックの並び順は動作上の契約であり、
// 並び替えは回答の変化を意味する。
package assistant

import "strings"

// topic は(キーワード集合, 定型回答)の組を表す。
type topic struct {
	name     string
	keywords []string
	reply    string
}

// topics は優先順に評価されるトピックリスト。
// 複数トピックのキーワードを含む入力は、リスト上で先に現れる
// トピックに解決される（最良一致ではなく先勝ち）。
var topics = []topic{
	{
		name:     "headache",
		keywords: []string{"headache", "head pain"},
		reply:    headacheReply,
	},
	{
		name:     "back_pain",
		keywords: []string{"back pain", "backache"},
		reply:    backPainReply,
	},
	{
		name:     "blood_pressure",
		keywords: []string{"blood pressure", "bp", "hypertension"},
		reply:    bloodPressureReply,
	},
	{
		name:     "diabetes",
		keywords: []string{"diabetes", "blood sugar", "glucose"},
		reply:    diabetesReply,
	},
	{
		name:     "joint_pain",
		keywords: []string{"joint pain", "arthritis", "knee pain"},
		reply:    jointPainReply,
	},
	{
		name:     "sleep",
		keywords: []string{"sleep", "insomnia", "tired"},
		reply:    sleepReply,
	},
	{
		name:     "chest_pain",
		keywords: []string{"chest pain", "heart pain"},
		reply:    chestPainReply,
	},
	{
		name:     "medication",
		keywords: []string{"medication", "medicine", "pill"},
		reply:    medicationReply,
	},
	{
		name:     "general_health",
		keywords: []string{"health", "wellness"},
		reply:    generalHealthReply,
	},
}

// fallbackTopicName は未一致時にメトリクス等で使用するトピック名。
const fallbackTopicName = "fallback"

// Respond は自由入力テキストに対する定型回答を返す。
// 状態を持たず副作用もない純粋な対応付けで、同一入力には常に同一回答を返す。
func Respond(input string) string {
	reply, _ := respondWithTopic(input)
	return reply
}

// respondWithTopic は回答と一致したトピック名を返す。
func respondWithTopic(input string) (string, string) {
	lower := strings.ToLower(input)

	for _, tp := range topics {
		for _, kw := range tp.keywords {
			if strings.Contains(lower, kw) {
				return tp.reply, tp.name
			}
		}
	}

	return FallbackReply, fallbackTopicName
}
