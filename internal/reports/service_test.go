package reports

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCreateAssignsIDAndCreatedAt(t *testing.T) {
	svc := NewService(NewMemoryRepo(), 3)

	report, err := svc.Create(context.Background(), Report{
		UserID:   "user-1",
		JobTitle: "Backend Engineer",
		Fields:   Fields{MatchScore: 72},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if report.ID == "" {
		t.Fatalf("expected store-assigned id")
	}
	if report.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be set")
	}

	got, err := svc.Get(context.Background(), "user-1", report.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.MatchScore != 72 {
		t.Fatalf("expected matchScore 72, got %d", got.MatchScore)
	}
}

func TestCreateIgnoresCallerSuppliedID(t *testing.T) {
	svc := NewService(NewMemoryRepo(), 3)

	report, err := svc.Create(context.Background(), Report{ID: "forged", UserID: "user-1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if report.ID == "forged" {
		t.Fatalf("caller-supplied id must be replaced")
	}
}

func TestCreateRequiresUser(t *testing.T) {
	svc := NewService(NewMemoryRepo(), 3)
	if _, err := svc.Create(context.Background(), Report{}); err == nil {
		t.Fatalf("expected error for missing userID")
	}
}

func TestListReturnsNewestFirst(t *testing.T) {
	svc := NewService(NewMemoryRepo(), 3)
	userID := "user-1"

	for _, stamp := range []string{
		"2024-01-01T00:00:00Z",
		"2024-03-01T00:00:00Z",
		"2024-02-01T00:00:00Z",
	} {
		createdAt, err := time.Parse(time.RFC3339, stamp)
		if err != nil {
			t.Fatalf("parse %s: %v", stamp, err)
		}
		if _, err := svc.Create(context.Background(), Report{UserID: userID, CreatedAt: createdAt}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	list, err := svc.List(context.Background(), userID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(list))
	}
	want := []string{"2024-03-01T00:00:00Z", "2024-02-01T00:00:00Z", "2024-01-01T00:00:00Z"}
	for i, stamp := range want {
		if got := list[i].CreatedAt.Format(time.RFC3339); got != stamp {
			t.Fatalf("position %d: expected %s, got %s", i, stamp, got)
		}
	}
}

func TestCreateBlockedAtLimit(t *testing.T) {
	svc := NewService(NewMemoryRepo(), 3)
	userID := "user-1"

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(context.Background(), Report{UserID: userID}); err != nil {
			t.Fatalf("Create %d: %v", i+1, err)
		}
	}

	if _, err := svc.Create(context.Background(), Report{UserID: userID}); !errors.Is(err, ErrLimitReached) {
		t.Fatalf("expected ErrLimitReached for fourth report, got %v", err)
	}

	// Another user is unaffected.
	if _, err := svc.Create(context.Background(), Report{UserID: "user-2"}); err != nil {
		t.Fatalf("Create for other user: %v", err)
	}

	list, err := svc.List(context.Background(), userID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 persisted reports, got %d", len(list))
	}
}

func TestGetScopedToOwner(t *testing.T) {
	svc := NewService(NewMemoryRepo(), 3)

	report, err := svc.Create(context.Background(), Report{UserID: "user-1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Get(context.Background(), "user-2", report.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for foreign user, got %v", err)
	}
}
