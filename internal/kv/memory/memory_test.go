package memory

import (
	"context"
	"testing"
)

func TestPutGet(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, ok, err := s.Get(ctx, "budget"); err != nil || ok {
		t.Fatalf("Get on empty store: ok=%v err=%v", ok, err)
	}

	if err := s.Put(ctx, "budget", "500"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	v, ok, err := s.Get(ctx, "budget")
	if err != nil || !ok || v != "500" {
		t.Fatalf("Get = %q ok=%v err=%v, want 500", v, ok, err)
	}

	// Overwrite replaces.
	if err := s.Put(ctx, "budget", "750"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if v, _, _ := s.Get(ctx, "budget"); v != "750" {
		t.Fatalf("Get after overwrite = %q, want 750", v)
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
}

func TestNewSeeded(t *testing.T) {
	s := NewSeeded(map[string]string{"period": "week"})
	v, ok, err := s.Get(context.Background(), "period")
	if err != nil || !ok || v != "week" {
		t.Fatalf("seeded Get = %q ok=%v err=%v", v, ok, err)
	}
}
