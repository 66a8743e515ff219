package llm

import "strings"

// ExtractJSON pulls the first top-level JSON object out of model output
// that may carry surrounding prose. Returns "" when no object is found.
func ExtractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start == -1 || end == -1 || end <= start {
		return ""
	}

	return text[start : end+1]
}
