package review

import (
	"fmt"
	"strings"
)

const promptTemplate = `Read the guidelines in CLAUDE.md.
Review the code changes in github PR %[1]s (this branch), use gh cli if needed.
Act as a critical and brutally honest senior software engineer.
Write the report to %[2]s.
If you see an opportunity to improve, include code fragments in the report showing how to improve the code.`

// ReportFileName is the file the agent is told to write for PR id.
func ReportFileName(id string) string {
	return fmt.Sprintf("GEMINI_REVIEW_PR%s.md", id)
}

// BuildPrompt returns the agent instructions for PR id.
func BuildPrompt(id string) string {
	return fmt.Sprintf(promptTemplate, id, ReportFileName(id))
}

// NormalizeID strips a leading "#" and rejects identifiers that cannot be
// embedded in a report file name.
func NormalizeID(raw string) (string, error) {
	id := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if id == "" {
		return "", fmt.Errorf("PR identifier is empty")
	}
	if strings.ContainsAny(id, "/\\ \t\n") {
		return "", fmt.Errorf("invalid PR identifier %q: must not contain path separators or whitespace", raw)
	}
	return id, nil
}
