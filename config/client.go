// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/gogama/httpc"
	"github.com/gogama/httpc/backend"
)

type build struct {
	base      backend.Backend
	tp        trace.TracerProvider
	logOutput io.Writer
	opts      []httpc.Option
}

// BuildOption customizes NewClient.
type BuildOption func(*build)

// WithBaseBackend sets the backend which the configured decorators
// wrap. The default is a zero-value backend.HTTP.
func WithBaseBackend(b backend.Backend) BuildOption {
	return func(bd *build) { bd.base = b }
}

// WithTracerProvider sets the tracer provider used when tracing is
// enabled. The default is the global provider from otel.
func WithTracerProvider(tp trace.TracerProvider) BuildOption {
	return func(bd *build) { bd.tp = tp }
}

// WithLogOutput sets where the client logs. The default is os.Stderr.
func WithLogOutput(w io.Writer) BuildOption {
	return func(bd *build) { bd.logOutput = w }
}

// WithClientOptions appends options passed to httpc.New after the
// ones derived from the configuration, so they take precedence.
func WithClientOptions(opts ...httpc.Option) BuildOption {
	return func(bd *build) { bd.opts = append(bd.opts, opts...) }
}

// Logger returns a zerolog logger writing JSON to w at the configured
// level.
func (c *Config) Logger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("httpc/config: log level: %w", err)
	}
	return zerolog.New(w).Level(level).With().Timestamp().Str("component", "httpc").Logger(), nil
}

// Backend wraps base in the decorators enabled by c. From the inside
// out: user agent, request ID, tracing, throttle.
func (c *Config) Backend(base backend.Backend, tp trace.TracerProvider, logger zerolog.Logger) (backend.Backend, error) {
	b := base
	if b == nil {
		b = &backend.HTTP{}
	}
	if c.UserAgent != "" {
		b = backend.UserAgent(b, c.UserAgent)
	}
	if c.RequestIDHeader != "" {
		b = backend.RequestID(b, c.RequestIDHeader)
	}
	if c.Tracing {
		if tp == nil {
			tp = otel.GetTracerProvider()
		}
		b = backend.Trace(b, tp)
	}
	if c.Throttle.RPS > 0 {
		var err error
		b, err = backend.Throttle(b, c.Throttle.RPS, c.Throttle.Burst, logger)
		if err != nil {
			return nil, fmt.Errorf("httpc/config: throttle: %w", err)
		}
	}
	return b, nil
}

// NewClient builds a Client from c.
func (c *Config) NewClient(opts ...BuildOption) (*httpc.Client, error) {
	bd := build{logOutput: os.Stderr}
	for _, opt := range opts {
		opt(&bd)
	}

	logger, err := c.Logger(bd.logOutput)
	if err != nil {
		return nil, err
	}
	b, err := c.Backend(bd.base, bd.tp, logger)
	if err != nil {
		return nil, err
	}

	clientOpts := append([]httpc.Option{
		httpc.WithBackend(b),
		httpc.WithCookieStore(c.CookieStore),
		httpc.WithLogger(logger),
	}, bd.opts...)
	return httpc.New(clientOpts...)
}
