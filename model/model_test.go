package model

import (
	"context"
	"testing"
)

// Interface compliance (compile-time assertion)
var _ Model = (*MockModel)(nil)

func TestMockModel_CannedResponse(t *testing.T) {
	m := NewMockModel("mock", "mock")
	m.AddResponse("hello", "world")

	resp, err := m.Complete(context.Background(), Request{Prompt: "hello"})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if resp.Text != "world" {
		t.Fatalf("expected canned response, got %q", resp.Text)
	}

	resp, err = m.Complete(context.Background(), Request{Prompt: "unknown"})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if resp.Text != "Mock response to: unknown" {
		t.Fatalf("expected echo fallback, got %q", resp.Text)
	}
}

func TestMockModel_EmptyPrompt(t *testing.T) {
	m := NewMockModel("mock", "mock")
	if _, err := m.Complete(context.Background(), Request{}); err == nil {
		t.Fatal("expected error for empty prompt")
	}
}

func TestMockModel_CancelledContext(t *testing.T) {
	m := NewMockModel("mock", "mock")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.Complete(ctx, Request{Prompt: "hello"}); err == nil {
		t.Fatal("expected context error")
	}
}
