package usage

import (
	"context"
	"errors"
	"testing"
)

func TestCanConsumeWithinLimit(t *testing.T) {
	svc := NewService(3)
	ctx := context.Background()

	ok, u, err := svc.CanConsume(ctx, "user-1", 1)
	if err != nil {
		t.Fatalf("CanConsume: %v", err)
	}
	if !ok {
		t.Fatalf("expected fresh user to be allowed")
	}
	if u.Limit != 3 || u.Used != 0 {
		t.Fatalf("expected limit=3 used=0, got limit=%d used=%d", u.Limit, u.Used)
	}
}

func TestConsumeBlocksAtLimit(t *testing.T) {
	svc := NewService(3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.Consume(ctx, "user-1", 1); err != nil {
			t.Fatalf("Consume %d: %v", i+1, err)
		}
	}

	ok, _, err := svc.CanConsume(ctx, "user-1", 1)
	if err != nil {
		t.Fatalf("CanConsume: %v", err)
	}
	if ok {
		t.Fatalf("expected user with 3 scans to be blocked")
	}

	if _, err := svc.Consume(ctx, "user-1", 1); !errors.Is(err, ErrLimitReached) {
		t.Fatalf("expected ErrLimitReached, got %v", err)
	}
}

func TestCanConsumeAllowsUserWithTwoScans(t *testing.T) {
	svc := NewService(3)
	ctx := context.Background()

	if _, err := svc.Consume(ctx, "user-2", 2); err != nil {
		t.Fatalf("Consume: %v", err)
	}
	ok, u, err := svc.CanConsume(ctx, "user-2", 1)
	if err != nil {
		t.Fatalf("CanConsume: %v", err)
	}
	if !ok {
		t.Fatalf("expected user with 2 scans to be allowed")
	}
	if u.Remaining() != 1 {
		t.Fatalf("expected 1 remaining, got %d", u.Remaining())
	}
}

func TestRefundRestoresConsumedScan(t *testing.T) {
	svc := NewService(3)
	ctx := context.Background()

	if _, err := svc.Consume(ctx, "user-4", 3); err != nil {
		t.Fatalf("Consume: %v", err)
	}
	u, err := svc.Refund(ctx, "user-4", 1)
	if err != nil {
		t.Fatalf("Refund: %v", err)
	}
	if u.Used != 2 {
		t.Fatalf("expected used=2 after refund, got %d", u.Used)
	}

	// A refunded slot can be consumed again.
	if _, err := svc.Consume(ctx, "user-4", 1); err != nil {
		t.Fatalf("Consume after refund: %v", err)
	}
}

func TestRefundClampsAtZero(t *testing.T) {
	svc := NewService(3)
	ctx := context.Background()

	u, err := svc.Refund(ctx, "user-5", 2)
	if err != nil {
		t.Fatalf("Refund: %v", err)
	}
	if u.Used != 0 {
		t.Fatalf("expected used=0, got %d", u.Used)
	}
}

func TestResetClearsUsage(t *testing.T) {
	svc := NewService(3)
	ctx := context.Background()

	if _, err := svc.Consume(ctx, "user-3", 3); err != nil {
		t.Fatalf("Consume: %v", err)
	}
	u, err := svc.Reset(ctx, "user-3")
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if u.Used != 0 {
		t.Fatalf("expected used=0 after reset, got %d", u.Used)
	}
}
