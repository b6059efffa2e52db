package circuitbreaker_test

import (
	"errors"
	"testing"

	"github.com/sony/gobreaker"

	"bizeyes/internal/resilience/circuitbreaker"
)

func TestExecute_Success(t *testing.T) {
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig("test"))

	got, err := cb.Execute(func() (interface{}, error) {
		return 42, nil
	})
	if err != nil {
		t.Fatalf("Execute err=%v", err)
	}
	if got.(int) != 42 {
		t.Errorf("got %v, want 42", got)
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("state = %v, want closed", cb.State())
	}
}

func TestExecute_TripsAfterFailures(t *testing.T) {
	cfg := circuitbreaker.DefaultConfig("trip-test")
	cfg.MinRequests = 3
	cfg.FailureThreshold = 0.5
	cb := circuitbreaker.New(cfg)

	boom := errors.New("upstream down")
	for i := 0; i < 5; i++ {
		_, _ = cb.Execute(func() (interface{}, error) {
			return nil, boom
		})
	}

	if !cb.IsOpen() {
		t.Fatalf("breaker should be open after consecutive failures, state=%v", cb.State())
	}

	// Open circuit rejects immediately without invoking the function.
	called := false
	_, err := cb.Execute(func() (interface{}, error) {
		called = true
		return nil, nil
	})
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("err = %v, want ErrOpenState", err)
	}
	if called {
		t.Error("function must not run while circuit is open")
	}
}

func TestG2BAPIConfig(t *testing.T) {
	cfg := circuitbreaker.G2BAPIConfig()
	if cfg.Name != "g2b-api" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.FailureThreshold <= 0 || cfg.FailureThreshold > 1 {
		t.Errorf("FailureThreshold = %v out of range", cfg.FailureThreshold)
	}
}
