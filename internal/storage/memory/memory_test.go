package memory

import (
	"context"
	"testing"
)

func TestOverwrite(t *testing.T) {
	ctx := context.Background()
	s := New()
	if err := s.WriteInt(ctx, 2, 3); err != nil {
		t.Fatalf("WriteInt: %v", err)
	}
	if err := s.WriteInt(ctx, 2, 9); err != nil {
		t.Fatalf("WriteInt: %v", err)
	}
	v, ok, err := s.ReadInt(ctx, 2)
	if err != nil || !ok || v != 9 {
		t.Fatalf("ReadInt = %d %v %v, want 9 true nil", v, ok, err)
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := New()
	if err := s.WriteInt(ctx, 1, 1); err == nil {
		t.Fatalf("WriteInt with canceled context should fail")
	}
	if _, _, err := s.ReadInt(ctx, 1); err == nil {
		t.Fatalf("ReadInt with canceled context should fail")
	}
}
