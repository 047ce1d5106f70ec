package rest

import (
	"context"
	"net/http"

	"github.com/delta10/signalen-console/util/tracing"
	"github.com/delta10/signalen-console/util/values"
	"github.com/lucsky/cuid"
)

const defaultRequestSource = "console"

// RequestTracing attaches a tracing context to every request. Browsers
// talking to the console do not send tracing headers, so missing values are
// filled in rather than rejected.
func RequestTracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(values.HeaderRequestID)
		if requestID == "" {
			requestID = cuid.New()
		}
		requestSource := r.Header.Get(values.HeaderRequestSource)
		if requestSource == "" {
			requestSource = defaultRequestSource
		}

		tc := tracing.Context{
			RequestID:     requestID,
			RequestSource: requestSource,
		}
		ctx := context.WithValue(r.Context(), values.ContextTracingKey, tc)

		w.Header().Set(values.HeaderRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// tracingFromContext recovers the tracing context placed by RequestTracing.
func tracingFromContext(ctx context.Context) *tracing.Context {
	tc, ok := ctx.Value(values.ContextTracingKey).(tracing.Context)
	if !ok {
		return &tracing.Context{}
	}
	return &tc
}
