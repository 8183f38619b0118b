// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector はPrometheusメトリクスを収集する実装。
// 各サービスは必要なメソッドだけを部分インターフェースとして受け取る。
type Collector struct {
	authAttempts     *prometheus.CounterVec
	medicationsAdded prometheus.Counter
	medicationsTaken prometheus.Counter
	symptomsLogged   *prometheus.CounterVec
	helpRequests     prometheus.Counter
	assistantReplies *prometheus.CounterVec
	assistantLatency prometheus.Histogram
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		authAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "saathi_auth_attempts_total",
			Help: "認証試行の合計数（方式・結果別）",
		}, []string{"method", "result"}),
		medicationsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "saathi_medications_added_total",
			Help: "追加された服薬予定の合計数",
		}),
		medicationsTaken: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "saathi_medications_taken_total",
			Help: "服薬記録操作の合計数",
		}),
		symptomsLogged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "saathi_symptoms_logged_total",
			Help: "記録された症状の合計数（重症度レベル別）",
		}, []string{"band"}),
		helpRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "saathi_help_requests_total",
			Help: "支援要請の合計数",
		}),
		assistantReplies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "saathi_assistant_replies_total",
			Help: "アシスタント回答の合計数（トピック別）",
		}, []string{"topic"}),
		assistantLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "saathi_assistant_latency_seconds",
			Help:    "アシスタント応答のレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.authAttempts,
		c.medicationsAdded,
		c.medicationsTaken,
		c.symptomsLogged,
		c.helpRequests,
		c.assistantReplies,
		c.assistantLatency,
	)

	return c
}

// RecordAuthAttempt は認証試行を方式・結果別に記録する。
func (c *Collector) RecordAuthAttempt(method string, success bool) {
	c.authAttempts.WithLabelValues(method, strconv.FormatBool(success)).Inc()
}

// RecordMedicationAdded は服薬予定の追加を記録する。
func (c *Collector) RecordMedicationAdded() {
	c.medicationsAdded.Inc()
}

// RecordMedicationTaken は服薬記録操作を記録する。
func (c *Collector) RecordMedicationTaken() {
	c.medicationsTaken.Inc()
}

// RecordSymptomLogged は症状記録を重症度レベル別に記録する。
func (c *Collector) RecordSymptomLogged(band string) {
	c.symptomsLogged.WithLabelValues(band).Inc()
}

// RecordHelpRequested は支援要請を記録する。
func (c *Collector) RecordHelpRequested() {
	c.helpRequests.Inc()
}

// RecordAssistantReply はアシスタント回答をトピック別に記録する。
func (c *Collector) RecordAssistantReply(topic string) {
	c.assistantReplies.WithLabelValues(topic).Inc()
}

// RecordAssistantLatency はアシスタント応答のレイテンシを記録する。
func (c *Collector) RecordAssistantLatency(d time.Duration) {
	c.assistantLatency.Observe(d.Seconds())
}

// Handler は/metricsエンドポイント用のHTTPハンドラーを返す。
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
