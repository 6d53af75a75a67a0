package review

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportFileName(t *testing.T) {
	assert.Equal(t, "GEMINI_REVIEW_PR42.md", ReportFileName("42"))
}

func TestBuildPrompt_NamesPRAndReport(t *testing.T) {
	p := BuildPrompt("42")

	assert.Contains(t, p, "github PR 42 (this branch)")
	assert.Contains(t, p, "Write the report to GEMINI_REVIEW_PR42.md.")
	assert.True(t, strings.HasPrefix(p, "Read the guidelines in CLAUDE.md."))
}

func TestBuildPrompt_OnlyVariesByID(t *testing.T) {
	a := BuildPrompt("1")
	b := BuildPrompt("2")

	assert.Equal(t, a, strings.ReplaceAll(b, "2", "1"))
	assert.Equal(t, a, BuildPrompt("1"))
}

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"42", "42", false},
		{"#42", "42", false},
		{" 7 ", "7", false},
		{"", "", true},
		{"#", "", true},
		{"../42", "", true},
		{"4 2", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := NormalizeID(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
