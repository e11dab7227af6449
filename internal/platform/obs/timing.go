package obs

import (
	"context"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// Op duration histogram, attached once at startup before serving begins.
var opDurations *prometheus.HistogramVec

func SetOpDurations(h *prometheus.HistogramVec) { opDurations = h }

// WithRequestID tags a context so per-op log lines can be correlated with
// the originating request.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// Time logs an operation's duration (and error, if any) on return and feeds
// the op duration histogram when one is attached.
//
//	defer obs.Time(ctx, "directions.GetRoutes")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if opDurations != nil {
			opDurations.WithLabelValues(name).Observe(dur.Seconds())
		}

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}
