// Package model owns the process-wide handle to the generative AI service.
// Initialization is lazy, happens at most once, and its outcome is sticky:
// a failure at first access disables the AI path for the process lifetime
// and every caller degrades to the fallback instead of seeing an error.
package model

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/rgarhwal/intern-advisor/internal/ai"
	"github.com/rgarhwal/intern-advisor/internal/ai/gemini"
	"github.com/rgarhwal/intern-advisor/internal/secrets"
)

// Config describes how to construct the underlying Gemini client.
type Config struct {
	APIKey     string `mapstructure:"api-key"`
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
}

// factory builds the generator on first acquire. Swappable in tests.
type factory func(ctx context.Context) (ai.Generator, error)

// Handle resolves to a shared generator on first use. The first caller wins
// initialization; concurrent callers block on the mutex and then observe the
// same resolved state. Resolved handles take the atomic fast path without
// lock contention.
type Handle struct {
	logger  *zap.Logger
	build   factory
	mu      sync.Mutex
	done    atomic.Bool
	gen     ai.Generator
	initErr error
}

// New creates an unresolved handle. No credential is read and no network
// call happens until the first Acquire.
func New(cfg Config, logger *zap.Logger) *Handle {
	return &Handle{
		logger: logger,
		build: func(ctx context.Context) (ai.Generator, error) {
			apiKey, err := secrets.Load(secrets.Source{
				Name:  "gemini api key",
				Value: cfg.APIKey,
				File:  cfg.APIKeyFile,
				Env:   "GEMINI_API_KEY",
			})
			if err != nil {
				return nil, err
			}
			return gemini.NewGenerator(ctx, apiKey, cfg.Model)
		},
	}
}

// NewWithFactory creates a handle with a custom generator factory.
func NewWithFactory(build func(ctx context.Context) (ai.Generator, error), logger *zap.Logger) *Handle {
	return &Handle{logger: logger, build: build}
}

// Acquire returns the shared generator, initializing it on first call.
// The resolved outcome is permanent for the process: a failed initialization
// is never retried, so a transient outage at startup leaves the process on
// the fallback path by design of the surrounding orchestrators.
func (h *Handle) Acquire(ctx context.Context) (ai.Generator, error) {
	if h.done.Load() {
		return h.gen, h.initErr
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// Re-check under the lock: another caller may have resolved the handle
	// while this one was waiting.
	if h.done.Load() {
		return h.gen, h.initErr
	}

	gen, err := h.build(ctx)
	if err != nil {
		h.initErr = err
		if h.logger != nil {
			h.logger.Warn("ai generator initialization failed; fallback responses will be used for this process",
				zap.Error(err),
			)
		}
	} else {
		h.gen = gen
		if h.logger != nil {
			h.logger.Info("ai generator initialized", zap.String("model", gen.Model()))
		}
	}

	// Publish after both fields are written so no acquirer observes a
	// half-initialized handle.
	h.done.Store(true)

	return h.gen, h.initErr
}

// Ready reports whether the handle has resolved to a usable generator.
func (h *Handle) Ready() bool {
	return h.done.Load() && h.initErr == nil
}
