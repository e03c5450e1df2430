package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/telemetry"
)

// Session tracks one play of one game: a log context and a trace span that
// collects the game's events until End.
type Session struct {
	ID     string
	GameID string

	logger  *log.Logger
	span    trace.Span
	started time.Time
	last    core.GameState
	events  int
}

// StartSession opens the "game.session" span and logs the start.
func StartSession(ctx context.Context, logger *log.Logger, gameID string, cfg core.RuntimeConfig) *Session {
	id := uuid.New().String()
	_, span := telemetry.Tracer("tui").Start(ctx, "game.session",
		trace.WithAttributes(
			attribute.String("game.id", gameID),
			attribute.String("session.id", id),
			attribute.Int64("game.seed", cfg.Seed),
			attribute.String("game.variant", cfg.Variant),
		),
	)

	s := &Session{
		ID:      id,
		GameID:  gameID,
		logger:  logger.With("session", id, "game", gameID),
		span:    span,
		started: time.Now(),
	}
	s.logger.Info("session started", "seed", cfg.Seed, "variant", cfg.Variant,
		"screen", cfg.ScreenW, "rows", cfg.ScreenH)
	return s
}

// Record logs and traces the events of one frame.
func (s *Session) Record(res core.StepResult) {
	for _, ev := range res.Events {
		s.events++
		s.logger.Debug("game event", "event", ev, "score", res.State.Score)
		s.span.AddEvent(ev, trace.WithAttributes(attribute.Int("score", res.State.Score)))
	}
	if res.State.GameOver && !s.last.GameOver {
		s.logger.Info("game over", "score", res.State.Score)
	}
	s.last = res.State
}

// End closes the span with the final score.
func (s *Session) End() {
	elapsed := time.Since(s.started)
	s.span.SetAttributes(
		attribute.Int("game.score", s.last.Score),
		attribute.Bool("game.over", s.last.GameOver),
		attribute.Int("game.events", s.events),
	)
	s.span.End()
	s.logger.Info("session ended", "score", s.last.Score, "duration", elapsed.Round(time.Millisecond))
}
