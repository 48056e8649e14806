package gemini

import (
	"context"
	"testing"
)

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New(context.Background(), "   ", ""); err == nil {
		t.Fatalf("expected error for missing api key")
	}
}

func TestNewDefaultsModel(t *testing.T) {
	client, err := New(context.Background(), "test-key", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if client.Model() != defaultModel {
		t.Fatalf("expected default model %q, got %q", defaultModel, client.Model())
	}
}

func TestNewKeepsExplicitModel(t *testing.T) {
	client, err := New(context.Background(), "test-key", "gemini-2.5-pro")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if client.Model() != "gemini-2.5-pro" {
		t.Fatalf("expected explicit model to be kept, got %q", client.Model())
	}
}
