package ai

import (
	"fmt"
	"strings"

	"github.com/vitalmind/vitalmind/internal/domain/suggestion"
)

const notRecorded = "Not recorded"

// BuildPrompt renders the day's metrics into the advisor prompt.
// Missing numeric fields become "Not recorded" so the model knows to
// give general tips instead of inventing numbers.
func BuildPrompt(req suggestion.GenerateRequest) string {
	var b strings.Builder

	b.WriteString("Act as a professional health advisor. Based on the following daily health metrics, ")
	b.WriteString("provide 3 practical, actionable suggestions to improve the user's health and wellbeing. ")
	b.WriteString("Keep the suggestions concise.\n\n")

	b.WriteString("Today's Health Metrics:\n")
	b.WriteString("- Sleep: " + formatFloat(req.SleepHours) + " hours\n")
	b.WriteString("- Water Intake: " + formatFloat(req.WaterIntake) + " liters\n")
	b.WriteString("- Meals: " + orPlaceholder(req.Meals, notRecorded) + "\n")
	b.WriteString("- Mood: " + orPlaceholder(req.Mood, notRecorded) + "\n")
	b.WriteString("- Notes: " + orPlaceholder(req.Notes, "None") + "\n\n")

	b.WriteString("Provide exactly 3 suggestions, one per line, numbered 1. to 3. ")
	b.WriteString("Make the tone encouraging and positive. If any metrics are missing, provide general health tips.")

	return b.String()
}

func formatFloat(v *float64) string {
	if v == nil {
		return notRecorded
	}
	return fmt.Sprintf("%g", *v)
}

func orPlaceholder(v, placeholder string) string {
	if strings.TrimSpace(v) == "" {
		return placeholder
	}
	return v
}
