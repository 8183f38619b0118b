package assistant

import (
	"context"
	"time"
)

// Recorder はアシスタント関連メトリクスの記録インターフェース。
// metrics.Collectorの部分集合として定義する。
type Recorder interface {
	RecordAssistantReply(topic string)
	RecordAssistantLatency(d time.Duration)
}

// nopRecorder はメトリクス未設定時のフォールバック。
type nopRecorder struct{}

func (nopRecorder) RecordAssistantReply(topic string) {}

func (nopRecorder) RecordAssistantLatency(d time.Duration) {}

// Service は応答エンジンを人工的な遅延で包むチャットサービス。
// 遅延は外部AIバックエンドの応答時間を模擬するためのもので、
// 一度開始した応答はキャンセルされず必ず完了する。
type Service struct {
	delay   time.Duration
	metrics Recorder
}

// NewService はServiceを生成する。metricsにnilを渡すと記録を行わない。
func NewService(metrics Recorder, delay time.Duration) *Service {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &Service{
		delay:   delay,
		metrics: metrics,
	}
}

// Reply は入力テキストへの定型回答を返す。
// 設定された遅延だけ待機してからエンジンを呼び出す。
// コンテキストのキャンセルは観測しない（応答は常に完了する）。
func (s *Service) Reply(ctx context.Context, text string) string {
	start := time.Now()

	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	reply, topicName := respondWithTopic(text)

	s.metrics.RecordAssistantReply(topicName)
	s.metrics.RecordAssistantLatency(time.Since(start))

	return reply
}
