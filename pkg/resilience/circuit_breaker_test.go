package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCircuitBreakerTripsAndReturnsOpenError(t *testing.T) {
	breaker := NewCircuitBreaker(Settings{
		Name:             "trip-breaker",
		Timeout:          50 * time.Millisecond,
		Interval:         50 * time.Millisecond,
		FailureThreshold: 2,
		SuccessThreshold: 1,
	}, nil)

	ctx := context.Background()
	failingOp := func(context.Context) (interface{}, error) {
		return nil, errors.New("boom")
	}

	for i := 0; i < 2; i++ {
		if _, err := breaker.Execute(ctx, failingOp); err == nil {
			t.Fatalf("expected failure on iteration %d", i)
		}
	}

	if breaker.Allow() {
		t.Fatalf("breaker should be open after consecutive failures")
	}

	if _, err := breaker.Execute(ctx, func(context.Context) (interface{}, error) {
		return "ok", nil
	}); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
}

func TestCircuitBreakerPassesThroughOnSuccess(t *testing.T) {
	breaker := NewCircuitBreaker(Settings{
		Name:             "success-breaker",
		Timeout:          time.Second,
		Interval:         time.Second,
		FailureThreshold: 5,
		SuccessThreshold: 1,
	}, nil)

	ctx := context.Background()
	result, err := breaker.Execute(ctx, func(context.Context) (interface{}, error) {
		return "response", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.(string) != "response" {
		t.Fatalf("expected response, got %v", result)
	}
}

func TestCircuitBreakerInvokesFallbackWhenOpen(t *testing.T) {
	breaker := NewCircuitBreaker(Settings{
		Name:             "fallback-breaker",
		Timeout:          time.Second,
		Interval:         time.Second,
		FailureThreshold: 1,
		SuccessThreshold: 1,
	}, StaticFallback("degraded"))

	ctx := context.Background()
	failingOp := func(context.Context) (interface{}, error) {
		return nil, errors.New("boom")
	}

	if _, err := breaker.Execute(ctx, failingOp); err == nil {
		t.Fatal("expected initial failure")
	}

	result, err := breaker.Execute(ctx, failingOp)
	if err != nil {
		t.Fatalf("expected fallback result, got error: %v", err)
	}
	if result.(string) != "degraded" {
		t.Fatalf("expected degraded, got %v", result)
	}
}

func TestExecuteWithFallback(t *testing.T) {
	ctx := context.Background()

	result, degraded, err := ExecuteWithFallback(ctx,
		func(context.Context) (interface{}, error) { return "live", nil },
		func(context.Context) (interface{}, error) { return "sample", nil },
	)
	if err != nil || degraded {
		t.Fatalf("expected live result, got degraded=%v err=%v", degraded, err)
	}
	if result.(string) != "live" {
		t.Fatalf("expected live, got %v", result)
	}

	result, degraded, err = ExecuteWithFallback(ctx,
		func(context.Context) (interface{}, error) { return nil, errors.New("upstream down") },
		func(context.Context) (interface{}, error) { return "sample", nil },
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !degraded {
		t.Fatal("expected degraded flag to be set")
	}
	if result.(string) != "sample" {
		t.Fatalf("expected sample, got %v", result)
	}
}
