package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LLMEvent is one recorded LLM API call.
type LLMEvent struct {
	ID           int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEventRepo records LLM API calls for later inspection.
type LLMEventRepo interface {
	// Append records a call. A zero Timestamp is set to now.
	Append(ctx context.Context, e LLMEvent) error

	// Recent returns the newest events first. An empty purpose matches every
	// event; limit <= 0 means no limit.
	Recent(ctx context.Context, purpose string, limit int) ([]LLMEvent, error)
}

// llmEventRepo implements LLMEventRepo with raw SQL.
type llmEventRepo struct {
	db *sql.DB
}

func (r *llmEventRepo) Append(ctx context.Context, e LLMEvent) error {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_events (timestamp, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Timestamp.UTC().Format(time.RFC3339Nano), e.Provider, e.Model, e.Purpose,
		e.InputTokens, e.OutputTokens, e.LatencyMs, e.Success, e.ErrorMessage)
	if err != nil {
		return fmt.Errorf("save LLM event: %w", err)
	}
	return nil
}

func (r *llmEventRepo) Recent(ctx context.Context, purpose string, limit int) ([]LLMEvent, error) {
	q := `SELECT id, timestamp, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message
		FROM llm_events`
	var args []any
	if purpose != "" {
		q += ` WHERE purpose = ?`
		args = append(args, purpose)
	}
	q += ` ORDER BY id DESC`
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var out []LLMEvent
	for rows.Next() {
		var (
			e  LLMEvent
			ts string
		)
		if err := rows.Scan(&e.ID, &ts, &e.Provider, &e.Model, &e.Purpose,
			&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success, &e.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan LLM event: %w", err)
		}
		e.Timestamp, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parse timestamp %q: %w", ts, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
