package model

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"github.com/rgarhwal/intern-advisor/internal/ai"
)

type stubGenerator struct {
	model string
}

func (s *stubGenerator) GenerateContent(context.Context, string, *ai.GenerateConfig) (string, error) {
	return "", nil
}

func (s *stubGenerator) Model() string { return s.model }

func TestAcquireInitializesOnce(t *testing.T) {
	var builds atomic.Int32
	handle := NewWithFactory(func(context.Context) (ai.Generator, error) {
		builds.Add(1)
		return &stubGenerator{model: "stub"}, nil
	}, zap.NewNop())

	ctx := context.Background()

	const workers = 32
	generators := make([]ai.Generator, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			gen, err := handle.Acquire(ctx)
			if err != nil {
				t.Errorf("acquire %d: %v", i, err)
				return
			}
			generators[i] = gen
		}(i)
	}
	wg.Wait()

	if got := builds.Load(); got != 1 {
		t.Fatalf("expected exactly one build, got %d", got)
	}
	for i := 1; i < workers; i++ {
		if generators[i] != generators[0] {
			t.Fatalf("acquirer %d got a different generator", i)
		}
	}
	if !handle.Ready() {
		t.Fatalf("expected handle to be ready")
	}
}

func TestAcquireFailureIsSticky(t *testing.T) {
	var builds atomic.Int32
	buildErr := errors.New("no credentials")
	handle := NewWithFactory(func(context.Context) (ai.Generator, error) {
		builds.Add(1)
		return nil, buildErr
	}, zap.NewNop())

	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := handle.Acquire(ctx); !errors.Is(err, buildErr) {
			t.Fatalf("acquire %d: expected sticky error, got %v", i, err)
		}
	}

	if got := builds.Load(); got != 1 {
		t.Fatalf("expected a single failed build attempt, got %d", got)
	}
	if handle.Ready() {
		t.Fatalf("expected handle not ready after failed init")
	}
}

func TestAcquireConcurrentFailureConverges(t *testing.T) {
	handle := NewWithFactory(func(context.Context) (ai.Generator, error) {
		return nil, errors.New("unavailable")
	}, zap.NewNop())

	ctx := context.Background()

	const workers = 16
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = handle.Acquire(ctx)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err == nil {
			t.Fatalf("acquirer %d unexpectedly succeeded", i)
		}
		if err != errs[0] {
			t.Fatalf("acquirer %d observed a different error: %v vs %v", i, err, errs[0])
		}
	}
}
