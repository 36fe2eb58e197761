package resilience

import "context"

// FallbackFunc is executed when the breaker is open or overloaded.
type FallbackFunc func(ctx context.Context, err error) (interface{}, error)

// NoopFallback returns the breaker open error without additional handling.
func NoopFallback(ctx context.Context, err error) (interface{}, error) {
	return nil, ErrCircuitOpen
}

// StaticFallback returns a fallback that always yields the supplied value.
func StaticFallback(value interface{}) FallbackFunc {
	return func(ctx context.Context, err error) (interface{}, error) {
		return value, nil
	}
}

// ExecuteWithFallback runs the primary operation and, on any error, the
// degraded one. The degraded result is reported so callers can flag it.
func ExecuteWithFallback(ctx context.Context, primary, degraded Operation) (interface{}, bool, error) {
	result, err := primary(ctx)
	if err == nil {
		return result, false, nil
	}

	result, fallbackErr := degraded(ctx)
	if fallbackErr != nil {
		return nil, true, fallbackErr
	}
	return result, true, nil
}
