// Package engine contains the two request orchestrators: candidate ranking
// and conversational replies. Both prefer the generative model and degrade to
// the static catalog whenever the model is unavailable, slow, or returns
// output that fails validation. Callers of the ranking path never see an
// error; the chat path surfaces only input-validation errors.
package engine

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/rgarhwal/intern-advisor/internal/ai"
	"github.com/rgarhwal/intern-advisor/internal/catalog"
	"github.com/rgarhwal/intern-advisor/internal/history"
	"github.com/rgarhwal/intern-advisor/internal/intern"
	"github.com/rgarhwal/intern-advisor/internal/model"
	"github.com/rgarhwal/intern-advisor/internal/profile"
	"github.com/rgarhwal/intern-advisor/internal/rank"
)

// MaxMessageLen bounds a single chat message in characters. Longer messages
// are rejected before any model call.
const MaxMessageLen = 500

var (
	// ErrEmptyMessage is returned for a blank chat message.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrMessageTooLong is returned when a chat message exceeds MaxMessageLen.
	ErrMessageTooLong = errors.New("message is too long")
)

// Config tunes the orchestrators. Zero values fall back to the defaults
// applied by New.
type Config struct {
	RequestTimeout     time.Duration `mapstructure:"request-timeout"`
	CandidateCount     int           `mapstructure:"candidate-count"`
	MaxCandidateTokens int32         `mapstructure:"max-candidate-tokens"`
	MaxChatTokens      int32         `mapstructure:"max-chat-tokens"`
	Temperature        float32       `mapstructure:"temperature"`
}

const (
	defaultRequestTimeout     = 30 * time.Second
	defaultCandidateCount     = 6
	defaultMaxCandidateTokens = 1000
	defaultMaxChatTokens      = 500
	defaultTemperature        = 0.7
)

// Recommendations is the result of a ranking request. UsedFallback reports
// whether the candidate pool came from the static catalog rather than the
// model; the ranking itself is applied either way.
type Recommendations struct {
	Candidates   []*intern.Candidate `json:"candidates"`
	UsedFallback bool                `json:"usedFallback"`
}

// ChatReply is the result of a chat request, including the updated session
// history so the caller can persist it.
type ChatReply struct {
	Reply        string        `json:"reply"`
	UsedFallback bool          `json:"usedFallback"`
	History      history.Turns `json:"-"`
}

// Engine orchestrates model access, parsing, ranking and fallback.
type Engine struct {
	handle *model.Handle
	ranker *rank.Ranker
	logger *zap.Logger
	cfg    Config
}

func New(handle *model.Handle, ranker *rank.Ranker, cfg Config, logger *zap.Logger) *Engine {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if cfg.CandidateCount <= 0 {
		cfg.CandidateCount = defaultCandidateCount
	}
	if cfg.MaxCandidateTokens <= 0 {
		cfg.MaxCandidateTokens = defaultMaxCandidateTokens
	}
	if cfg.MaxChatTokens <= 0 {
		cfg.MaxChatTokens = defaultMaxChatTokens
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = defaultTemperature
	}
	return &Engine{handle: handle, ranker: ranker, logger: logger, cfg: cfg}
}

// GetRankedCandidates returns the quota-balanced top candidates for the
// profile. The model supplies the pool when available; any failure along the
// AI path silently swaps in the static catalog. The method never fails.
func (e *Engine) GetRankedCandidates(ctx context.Context, prof *profile.Profile) *Recommendations {
	pool, usedFallback := e.candidatePool(ctx, prof)
	if usedFallback {
		fallbackUses.WithLabelValues("recommendations").Inc()
	}
	return &Recommendations{
		Candidates:   e.ranker.Rank(pool, prof),
		UsedFallback: usedFallback,
	}
}

func (e *Engine) candidatePool(ctx context.Context, prof *profile.Profile) ([]*intern.Candidate, bool) {
	gen, err := e.handle.Acquire(ctx)
	if err != nil {
		return catalog.Pool(), true
	}

	aiRequests.WithLabelValues("recommendations").Inc()

	ctx, cancel := context.WithTimeout(ctx, e.cfg.RequestTimeout)
	defer cancel()

	raw, err := gen.GenerateContent(ctx, buildCandidatePrompt(prof, e.cfg.CandidateCount), &ai.GenerateConfig{
		MaxOutputTokens: e.cfg.MaxCandidateTokens,
		Temperature:     e.cfg.Temperature,
	})
	if err != nil {
		aiFailures.WithLabelValues("recommendations", "generate").Inc()
		e.logger.Warn("candidate generation failed, using static pool", zap.Error(err))
		return catalog.Pool(), true
	}

	candidates, err := intern.ParseCandidates(raw)
	if err != nil {
		aiFailures.WithLabelValues("recommendations", "parse").Inc()
		e.logger.Warn("candidate response rejected, using static pool", zap.Error(err))
		return catalog.Pool(), true
	}

	if len(candidates) > e.cfg.CandidateCount {
		candidates = candidates[:e.cfg.CandidateCount]
	}
	e.logger.Debug("candidates generated", zap.Int("count", len(candidates)))
	return candidates, false
}

// GetChatReply answers a chat message in the context of the profile and the
// session history. Input validation errors are returned to the caller; every
// failure past validation degrades to the keyword responder instead.
func (e *Engine) GetChatReply(ctx context.Context, message string, prof *profile.Profile, turns history.Turns) (*ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if utf8.RuneCountInString(message) > MaxMessageLen {
		return nil, ErrMessageTooLong
	}

	reply, usedFallback := e.chatReply(ctx, message, prof, turns)
	return &ChatReply{
		Reply:        reply,
		UsedFallback: usedFallback,
		History:      turns.Append(history.Turn{UserMessage: message, BotReply: reply}),
	}, nil
}

func (e *Engine) chatReply(ctx context.Context, message string, prof *profile.Profile, turns history.Turns) (string, bool) {
	gen, err := e.handle.Acquire(ctx)
	if err != nil {
		fallbackUses.WithLabelValues("chat").Inc()
		return e.fallbackReply(message, prof), true
	}

	aiRequests.WithLabelValues("chat").Inc()

	ctx, cancel := context.WithTimeout(ctx, e.cfg.RequestTimeout)
	defer cancel()

	raw, err := gen.GenerateContent(ctx, buildChatPrompt(message, prof, turns), &ai.GenerateConfig{
		MaxOutputTokens: e.cfg.MaxChatTokens,
		Temperature:     e.cfg.Temperature,
	})
	if err != nil {
		aiFailures.WithLabelValues("chat", "generate").Inc()
		fallbackUses.WithLabelValues("chat").Inc()
		e.logger.Warn("chat generation failed, using keyword responder", zap.Error(err))
		return e.fallbackReply(message, prof), true
	}

	reply := normalizeReply(raw)
	if reply == "" {
		aiFailures.WithLabelValues("chat", "empty").Inc()
		fallbackUses.WithLabelValues("chat").Inc()
		return e.fallbackReply(message, prof), true
	}
	return reply, false
}

func (e *Engine) fallbackReply(message string, prof *profile.Profile) string {
	return catalog.Respond(message, catalog.ReplyContext{
		Name:             prof.DisplayName(),
		ProfileKnown:     prof != nil,
		ProfileCompleted: prof != nil && prof.ProfileCompleted,
	})
}

var blankRuns = regexp.MustCompile(`\n{3,}`)

// normalizeReply cleans model output for direct display: literal backslash-n
// sequences become real newlines and runs of blank lines collapse to one.
func normalizeReply(raw string) string {
	s := strings.ReplaceAll(raw, `\n\n`, "\n\n")
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = blankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
