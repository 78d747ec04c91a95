package questions

import (
	"regexp"
	"strings"
)

// minQuestionLen filters stray fragments left over after marker stripping.
const minQuestionLen = 15

var (
	headerLine    = regexp.MustCompile(`(?i)^(question|category|section|note)`)
	numberMarker  = regexp.MustCompile(`^\d+[.)-]\s*`)
	dashMarker    = regexp.MustCompile(`^-\s*`)
	bulletMarker  = regexp.MustCompile(`^\*\s*`)
	letterMarker  = regexp.MustCompile(`(?i)^[a-z][.)]\s*`)
	questionLabel = regexp.MustCompile(`(?i)^(q:|question:)`)
	interrogative = regexp.MustCompile(`(?i)^(what|how|why|when|where|who|tell|describe|explain|can you|do you|have you)`)
)

// ParseQuestions turns freeform numbered-list text into a deduplicated list
// of well-formed questions, preserving first-seen order.
func ParseQuestions(response string) []string {
	var out []string
	seen := make(map[string]struct{})

	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// Header lines (e.g. "Category: Technical") are not content.
		if headerLine.MatchString(line) {
			continue
		}

		cleaned := numberMarker.ReplaceAllString(line, "")
		cleaned = dashMarker.ReplaceAllString(cleaned, "")
		cleaned = bulletMarker.ReplaceAllString(cleaned, "")
		cleaned = letterMarker.ReplaceAllString(cleaned, "")
		cleaned = strings.TrimSpace(cleaned)
		cleaned = questionLabel.ReplaceAllString(cleaned, "")
		cleaned = strings.TrimSpace(cleaned)

		if len(cleaned) <= minQuestionLen {
			continue
		}

		if !strings.HasSuffix(cleaned, "?") && !strings.HasSuffix(cleaned, ".") && !strings.HasSuffix(cleaned, ":") {
			if interrogative.MatchString(cleaned) {
				cleaned += "?"
			}
		}

		if _, dup := seen[cleaned]; dup {
			continue
		}
		seen[cleaned] = struct{}{}
		out = append(out, cleaned)
	}

	return out
}
