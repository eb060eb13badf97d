// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package backend

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/gogama/httpc/request"
)

const tracerName = "github.com/gogama/httpc/backend"

// Trace wraps next so that every call runs inside a client span from
// tp. The span context is injected into the request headers with the
// global text map propagator before next is called. A nil tp disables
// tracing without removing the wrapper.
func Trace(next Backend, tp trace.TracerProvider) Backend {
	if tp == nil {
		tp = noop.NewTracerProvider()
	}
	tracer := tp.Tracer(tracerName)

	return Func(func(ctx context.Context, r *request.Request) (*request.Response, error) {
		ctx, span := tracer.Start(ctx, "httpc "+r.Method,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("http.request.method", r.Method),
				attribute.String("url.full", urlString(r)),
			),
		)
		defer span.End()

		if r.Header == nil {
			r.Header = make(http.Header)
		}
		otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(r.Header))

		resp, err := next.Execute(ctx, r)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return resp, err
		}

		span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
		if resp.StatusCode >= 500 {
			span.SetStatus(codes.Error, resp.Status)
		}
		return resp, nil
	})
}

func urlString(r *request.Request) string {
	if r.URL == nil {
		return ""
	}
	return r.URL.Redacted()
}
