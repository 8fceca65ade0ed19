package ai_test

import (
	"strings"
	"testing"

	"github.com/vitalmind/vitalmind/internal/ai"
	"github.com/vitalmind/vitalmind/internal/domain/suggestion"
)

func floatPtr(v float64) *float64 { return &v }

func TestBuildPrompt(t *testing.T) {
	req := suggestion.GenerateRequest{
		SleepHours:  floatPtr(7.5),
		WaterIntake: floatPtr(2),
		Meals:       "Oatmeal, salad",
		Mood:        "Happy",
	}

	prompt := ai.BuildPrompt(req)

	for _, want := range []string{
		"- Sleep: 7.5 hours",
		"- Water Intake: 2 liters",
		"- Meals: Oatmeal, salad",
		"- Mood: Happy",
		"- Notes: None",
		"exactly 3 suggestions",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPrompt_MissingMetrics(t *testing.T) {
	prompt := ai.BuildPrompt(suggestion.GenerateRequest{})

	for _, want := range []string{
		"- Sleep: Not recorded hours",
		"- Water Intake: Not recorded liters",
		"- Meals: Not recorded",
		"- Mood: Not recorded",
		"- Notes: None",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestTrimSuggestion(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "exact_three",
			in:   "1. a\n2. b\n3. c",
			want: "1. a\n2. b\n3. c",
		},
		{
			name: "drops_extra_lines",
			in:   "1. a\n2. b\n3. c\n4. d",
			want: "1. a\n2. b\n3. c",
		},
		{
			name: "skips_blank_lines",
			in:   "\n1. a\n\n  \n2. b\n3. c\n",
			want: "1. a\n2. b\n3. c",
		},
		{
			name: "fewer_than_three",
			in:   "1. a",
			want: "1. a",
		},
		{
			name: "trims_whitespace",
			in:   "  1. a  \n 2. b\n3. c",
			want: "1. a\n2. b\n3. c",
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			if got := ai.TrimSuggestion(tt.in, 3); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
