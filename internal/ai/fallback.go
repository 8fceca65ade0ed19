package ai

import "strings"

// Served whenever the upstream service is unreachable. Availability
// beats accuracy here: suggestion delivery never hard-fails a request.
var fallbackTips = []string{
	"1. Aim for 7-9 hours of sleep each night for optimal recovery",
	"2. Drink at least 2 liters of water daily to stay hydrated",
	"3. Practice mindfulness or deep breathing when feeling stressed",
}

func FallbackText() string {
	return strings.Join(fallbackTips, "\n")
}

// TrimSuggestion keeps the first maxLines non-empty lines. The prompt
// asks for exactly 3 suggestions; anything past that is model rambling.
func TrimSuggestion(text string, maxLines int) string {
	if maxLines <= 0 {
		return text
	}

	kept := make([]string, 0, maxLines)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}

		kept = append(kept, line)

		if len(kept) == maxLines {
			break
		}
	}

	return strings.Join(kept, "\n")
}
