// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package metrics exports Prometheus metrics about the executions of an
// httpc.Client by installing event handlers into its handler group.
//
//	reg := prometheus.NewRegistry()
//	col, err := metrics.New(reg, "myapp")
//	...
//	handlers := &httpc.HandlerGroup{}
//	col.Install(handlers)
//	client, err := httpc.New(httpc.WithHandlers(handlers))
package metrics

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gogama/httpc"
	"github.com/gogama/httpc/request"
)

// A Collector holds the metrics recorded for client executions. It is
// safe for concurrent use.
type Collector struct {
	executionsTotal *prometheus.CounterVec
	durationSeconds *prometheus.HistogramVec
	cookiesSent     prometheus.Counter
	cookiesReceived prometheus.Counter
	inFlight        prometheus.Gauge
}

// New creates a Collector and registers its metrics with reg. If reg
// is nil, prometheus.DefaultRegisterer is used. The namespace prefixes
// every metric name and may be empty.
//
// Metrics:
//   - {namespace}_http_client_executions_total: counter by method and kind
//   - {namespace}_http_client_duration_seconds: histogram by method
//   - {namespace}_http_client_cookies_sent_total: cookies attached to requests
//   - {namespace}_http_client_cookies_received_total: cookies merged into jars
//   - {namespace}_http_client_in_flight: executions currently running
func New(reg prometheus.Registerer, namespace string) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		executionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http_client",
				Name:      "executions_total",
				Help:      "Total request executions by method and error kind.",
			},
			[]string{"method", "kind"},
		),
		durationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http_client",
				Name:      "duration_seconds",
				Help:      "Duration of request executions in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		cookiesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http_client",
			Name:      "cookies_sent_total",
			Help:      "Total cookies attached to outgoing requests.",
		}),
		cookiesReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http_client",
			Name:      "cookies_received_total",
			Help:      "Total cookies merged into the jar from responses.",
		}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http_client",
			Name:      "in_flight",
			Help:      "Number of request executions currently running.",
		}),
	}

	for _, col := range []prometheus.Collector{
		c.executionsTotal,
		c.durationSeconds,
		c.cookiesSent,
		c.cookiesReceived,
		c.inFlight,
	} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("httpc/metrics: register: %w", err)
		}
	}

	return c, nil
}

// Install adds the collector's handlers to g. The handlers record an
// execution when it starts and when it ends.
func (c *Collector) Install(g *httpc.HandlerGroup) {
	g.PushBack(httpc.BeforeExecutionStart, httpc.HandlerFunc(c.started))
	g.PushBack(httpc.AfterExecutionEnd, httpc.HandlerFunc(c.ended))
}

func (c *Collector) started(_ httpc.Event, _ *request.Execution) {
	c.inFlight.Inc()
}

func (c *Collector) ended(_ httpc.Event, e *request.Execution) {
	c.inFlight.Dec()

	method := methodLabel(e.Request.Method)
	c.executionsTotal.WithLabelValues(method, kindLabel(e.Err)).Inc()
	c.durationSeconds.WithLabelValues(method).Observe(e.Duration().Seconds())
	c.cookiesSent.Add(float64(e.CookiesSent))
	c.cookiesReceived.Add(float64(e.CookiesReceived))
}

// methodLabel collapses extension methods into "other".
func methodLabel(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodConnect,
		http.MethodOptions, http.MethodTrace:
		return method
	}
	return "other"
}

func kindLabel(err error) string {
	k := httpc.Classify(err)
	if k == httpc.None {
		return "ok"
	}
	return toSnake(k.String())
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && !(s[i-1] >= 'A' && s[i-1] <= 'Z') {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
