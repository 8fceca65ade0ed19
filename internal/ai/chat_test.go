package ai_test

import (
	"context"
	"errors"
	"testing"

	"github.com/vitalmind/vitalmind/internal/ai"
)

func TestBuildChatPrompt(t *testing.T) {
	got := ai.BuildChatPrompt([]ai.ChatMessage{
		{Role: "user", Content: "I slept badly"},
		{Role: "ai", Content: "How many hours did you get?"},
		{Role: "user", Content: "about 4"},
	})

	want := "User: I slept badly\nAI: How many hours did you get?\nUser: about 4\nAI:"

	if got != want {
		t.Fatalf("prompt = %q, want %q", got, want)
	}
}

func TestServiceChat_TrimsReply(t *testing.T) {
	var gotPrompt string

	gen := &fakeGenerator{
		generateFn: func(ctx context.Context, prompt string) (string, error) {
			gotPrompt = prompt
			return "  Try winding down earlier.\n", nil
		},
	}

	svc := ai.NewService(gen, nil, nil)

	res := svc.Chat(context.Background(), []ai.ChatMessage{
		{Role: "user", Content: "hi"},
	})

	if res.Fallback {
		t.Fatal("unexpected fallback")
	}

	if res.Reply != "Try winding down earlier." {
		t.Fatalf("reply = %q", res.Reply)
	}

	if gotPrompt != "User: hi\nAI:" {
		t.Fatalf("prompt = %q", gotPrompt)
	}
}

func TestServiceChat_FallbackOnError(t *testing.T) {
	gen := &fakeGenerator{
		generateFn: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("upstream down")
		},
	}

	svc := ai.NewService(gen, nil, nil)

	res := svc.Chat(context.Background(), []ai.ChatMessage{
		{Role: "user", Content: "hi"},
	})

	if !res.Fallback {
		t.Fatal("expected fallback result")
	}

	if res.Reply != "Sorry, I couldn't generate a response." {
		t.Fatalf("reply = %q", res.Reply)
	}
}

func TestServiceChat_EveryTurnHitsUpstream(t *testing.T) {
	gen := &fakeGenerator{
		generateFn: func(ctx context.Context, prompt string) (string, error) {
			return "ok", nil
		},
	}

	svc := ai.NewService(gen, nil, nil)
	ctx := context.Background()

	history := []ai.ChatMessage{{Role: "user", Content: "hi"}}
	_ = svc.Chat(ctx, history)
	_ = svc.Chat(ctx, history)

	if gen.calls != 2 {
		t.Fatalf("upstream called %d times, want 2", gen.calls)
	}
}
