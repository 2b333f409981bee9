package score

import (
	"context"
	"fmt"

	"pingpong/internal/storage"
)

// Storage keys for the persisted scores. The undo history has no key.
const (
	KeyPlayer1Score uint32 = 1
	KeyPlayer2Score uint32 = 2
)

// Load builds a tracker from the scores saved in store. Missing keys default
// to zero.
func Load(ctx context.Context, store storage.Store) (*Tracker, error) {
	p1, err := readScore(ctx, store, KeyPlayer1Score)
	if err != nil {
		return nil, err
	}
	p2, err := readScore(ctx, store, KeyPlayer2Score)
	if err != nil {
		return nil, err
	}
	t := New()
	t.Restore(p1, p2)
	return t, nil
}

// Save writes both scores of t to store.
func Save(ctx context.Context, store storage.Store, t *Tracker) error {
	p1, p2 := t.Scores()
	if err := store.WriteInt(ctx, KeyPlayer1Score, p1); err != nil {
		return fmt.Errorf("save player 1 score: %w", err)
	}
	if err := store.WriteInt(ctx, KeyPlayer2Score, p2); err != nil {
		return fmt.Errorf("save player 2 score: %w", err)
	}
	return nil
}

func readScore(ctx context.Context, store storage.Store, key uint32) (int, error) {
	v, ok, err := store.ReadInt(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("load score key %d: %w", key, err)
	}
	if !ok {
		return 0, nil
	}
	return v, nil
}
