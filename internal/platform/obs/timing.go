package obs

import (
	"context"
	"postcode-distance/internal/platform/logger"
	"postcode-distance/internal/platform/metrics"
	"time"

	"github.com/rs/zerolog"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// RequestID returns the request id stored by the HTTP middleware, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time observes an operation in metrics.OperationDuration and logs it at
// debug level. Use as:
//
//	defer obs.Time(ctx, "op")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)

		var err error
		if errp != nil {
			err = *errp
		}

		result := "ok"
		if err != nil {
			result = "error"
		}
		metrics.OperationDuration.WithLabelValues(name, result).Observe(dur.Seconds())

		log := logger.Get()
		var ev *zerolog.Event
		if err != nil {
			ev = log.Debug().Err(err)
		} else {
			ev = log.Debug()
		}
		ev.Str("req_id", RequestID(ctx)).
			Str("op", name).
			Int64("dur_ms", dur.Milliseconds()).
			Str("result", result).
			Msg("operation timed")
	}
}
