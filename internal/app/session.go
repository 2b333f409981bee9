package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"pingpong/internal/core"
	"pingpong/internal/input"
	"pingpong/internal/score"
	"pingpong/internal/storage"
)

// Session ties one tracker to its store and to the surface it is shown on.
// It is driven from a single goroutine, one button event at a time.
type Session struct {
	cfg        *Config
	store      storage.Store
	tracker    *score.Tracker
	bindings   input.Bindings
	recognizer *input.Recognizer
	surface    core.Surface
}

// Snapshot is the observable state of a session.
type Snapshot struct {
	Player1   string `json:"player1"`
	Player2   string `json:"player2"`
	Score1    int    `json:"score1"`
	Score2    int    `json:"score2"`
	Text      string `json:"text"`
	UndoDepth int    `json:"undo_depth"`
}

// Open opens the configured store, restores the saved scores and renders the
// first frame onto surface. A nil surface is allowed.
func Open(ctx context.Context, cfg *Config, surface core.Surface) (*Session, error) {
	return openSession(ctx, cfg, surface, time.Now)
}

func openSession(ctx context.Context, cfg *Config, surface core.Surface, now func() time.Time) (*Session, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	store, err := storage.Open(cfg.Store, cfg.StoreConfig())
	if err != nil {
		return nil, err
	}
	tracker, err := score.Load(ctx, store)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	bindings := input.DefaultBindings()
	s := &Session{
		cfg:        cfg,
		store:      store,
		tracker:    tracker,
		bindings:   bindings,
		recognizer: input.NewRecognizer(bindings, cfg.LongPress, now),
		surface:    surface,
	}
	log.Printf("restored %s from %s store", tracker.ScoreText(), cfg.Store)
	s.Render()
	return s, nil
}

// Press records that button b went down.
func (s *Session) Press(b input.Button) {
	s.recognizer.Down(b)
}

// Release records that button b came up and applies the resulting press.
// It reports whether the face was redrawn.
func (s *Session) Release(b input.Button) bool {
	p, ok := s.recognizer.Up(b)
	if !ok {
		return false
	}
	return s.Handle(b, p)
}

// Handle applies an already classified press.
func (s *Session) Handle(b input.Button, p input.Press) bool {
	if !input.Handle(s.tracker, s.bindings, b, p) {
		return false
	}
	s.Render()
	return true
}

// Dispatch applies ev directly, bypassing the button bindings.
func (s *Session) Dispatch(ev score.Event) bool {
	if !score.Dispatch(s.tracker, ev) {
		return false
	}
	s.Render()
	return true
}

// Frame returns the text of every face region.
func (s *Session) Frame() core.Frame {
	return core.NewFrame(s.cfg.Player1Name, s.tracker.ScoreText(), s.cfg.Player2Name)
}

// Render pushes the current frame onto the surface.
func (s *Session) Render() {
	s.Frame().Apply(s.surface)
}

// Snapshot reports the current state.
func (s *Session) Snapshot() Snapshot {
	p1, p2 := s.tracker.Scores()
	return Snapshot{
		Player1:   s.cfg.Player1Name,
		Player2:   s.cfg.Player2Name,
		Score1:    p1,
		Score2:    p2,
		Text:      s.tracker.ScoreText(),
		UndoDepth: s.tracker.UndoDepth(),
	}
}

// Close saves the scores and closes the store.
func (s *Session) Close(ctx context.Context) error {
	if s == nil || s.store == nil {
		return nil
	}
	var saveErr error
	if err := score.Save(ctx, s.store, s.tracker); err != nil {
		saveErr = fmt.Errorf("save scores: %w", err)
	} else {
		log.Printf("saved %s to %s store", s.tracker.ScoreText(), s.cfg.Store)
	}
	closeErr := s.store.Close()
	s.store = nil
	return errors.Join(saveErr, closeErr)
}
