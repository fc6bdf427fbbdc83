package core

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gorlea-ink/gorlea/pkg/metrics"
)

type Metrics struct {
	apiResponseTime    *prometheus.HistogramVec
	apiErrorCounter    *prometheus.CounterVec
	poemResponseTime   *prometheus.HistogramVec
	poemErrorCounter   *prometheus.CounterVec
	transcribeTime     *prometheus.HistogramVec
	transcribeErrorCnt *prometheus.CounterVec
}

func NewMetrics(ns, system string) *Metrics {
	metrics.SetupMetricsManager(ns, system, prometheus.DefaultRegisterer.(*prometheus.Registry))

	m := &Metrics{
		apiResponseTime:    metrics.NewHistogramVec("api_response_time", []string{"api"}),
		apiErrorCounter:    metrics.NewCounterVec("api_error", []string{"method", "api", "status"}),
		poemResponseTime:   metrics.NewHistogramVec("poem_response_time", []string{"model"}),
		poemErrorCounter:   metrics.NewCounterVec("poem_error", []string{"type"}),
		transcribeTime:     metrics.NewHistogramVec("transcribe_time", nil),
		transcribeErrorCnt: metrics.NewCounterVec("transcribe_error", []string{"type"}),
	}

	return m
}

func (m *Metrics) ApiResponseTimer(api string) *prometheus.Timer {
	return prometheus.NewTimer(m.apiResponseTime.WithLabelValues(api))
}

func (m *Metrics) ApiErrorInc(method, api string, status int) {
	m.apiErrorCounter.WithLabelValues(method, api, strconv.Itoa(status)).Inc()
}

func (m *Metrics) PoemResponseTimer(model string) *prometheus.Timer {
	return prometheus.NewTimer(m.poemResponseTime.WithLabelValues(model))
}

func (m *Metrics) PoemErrorInc(types string) {
	m.poemErrorCounter.WithLabelValues(types).Inc()
}

func (m *Metrics) TranscribeTimer() *prometheus.Timer {
	return prometheus.NewTimer(m.transcribeTime.WithLabelValues())
}

func (m *Metrics) TranscribeErrorInc(types string) {
	m.transcribeErrorCnt.WithLabelValues(types).Inc()
}
