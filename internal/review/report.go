package review

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/richhaase/gemini-pr-review/internal/domain"
)

// Relocate moves the report for PR id from reviewDir into outputDir and
// returns its new path. An empty outputDir means the current directory.
// If the agent did not write the report, Relocate returns
// domain.ErrMissingReport and leaves outputDir untouched.
func Relocate(reviewDir, outputDir, id string) (string, error) {
	name := ReportFileName(id)
	src := filepath.Join(reviewDir, name)

	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", domain.ErrMissingReport, src)
		}
		return "", fmt.Errorf("failed to check report %s: %w", src, err)
	}

	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		outputDir = wd
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	dst := filepath.Join(outputDir, name)
	if err := os.Rename(src, dst); err != nil {
		return "", fmt.Errorf("failed to move report to %s: %w", dst, err)
	}
	return dst, nil
}
