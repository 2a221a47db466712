package llm

import (
	"context"
	"time"

	"github.com/abhisek/pathdash/internal/debug"
	"github.com/abhisek/pathdash/internal/store"
)

// LoggingProvider is a decorator that writes every LLM request to the debug
// log and, when an event repo is set, to the store.
type LoggingProvider struct {
	inner    Provider
	provider string
	events   store.LLMEventRepo
}

// WithLogging wraps a Provider with request logging. events may be nil.
func WithLogging(p Provider, providerName string, events store.LLMEventRepo) Provider {
	return &LoggingProvider{inner: p, provider: providerName, events: events}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	elapsed := time.Since(start)

	purpose := PurposeFrom(ctx)
	ev := store.LLMEvent{
		Provider:  l.provider,
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: elapsed.Milliseconds(),
		Success:   err == nil,
	}
	if err != nil {
		debug.Log("llm %s purpose=%s failed after %v: %v", l.inner.ModelID(), purpose, elapsed, err)
		ev.ErrorMessage = err.Error()
	} else {
		debug.Log("llm %s purpose=%s tokens=%d/%d stop=%s took %v",
			resp.Model, purpose, resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.StopReason, elapsed)
		if resp.Model != "" {
			ev.Model = resp.Model
		}
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
	}
	l.record(ctx, ev)

	if err != nil {
		return nil, err
	}
	return resp, nil
}

// record persists ev. Failures are logged and never surface to the caller.
func (l *LoggingProvider) record(ctx context.Context, ev store.LLMEvent) {
	if l.events == nil {
		return
	}
	if err := l.events.Append(context.WithoutCancel(ctx), ev); err != nil {
		debug.LogErr("record llm event", err)
	}
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
