package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "logguard.dev/pkg/logguard/internal/model"
)

func TestScanLines(t *testing.T) {
	profile := m.NewScanProfile()

	t.Run("counts and classifies each call line", func(t *testing.T) {
		lines := []string{
			"function render() {",
			`  console.log("start");`,
			"  if (DEBUG_CONFIG.enabled) {",
			`    console.log("debug");`,
			"  }",
			"}",
		}

		result := ScanLines(lines, profile)

		assert.Equal(t, 2, result.Total)
		assert.Equal(t, 1, result.Guarded)
		assert.Equal(t, 1, result.Unguarded)

		require.Len(t, result.Occurrences, 1)
		assert.Equal(t, 2, result.Occurrences[0].Line)
		assert.Equal(t, `console.log("start");`, result.Occurrences[0].Text)
	})

	t.Run("lines without the call produce no occurrences", func(t *testing.T) {
		lines := []string{
			"const a = 1;",
			"logger.info('x');",
			"// a comment",
		}

		result := ScanLines(lines, profile)

		assert.Zero(t, result.Total)
		assert.Empty(t, result.Occurrences)
	})

	t.Run("a line counts once even with multiple calls on it", func(t *testing.T) {
		lines := []string{
			`console.log("a"); console.log("b");`,
		}

		result := ScanLines(lines, profile)

		assert.Equal(t, 1, result.Total)
		assert.Equal(t, 1, result.Unguarded)
	})

	t.Run("total is guarded plus unguarded", func(t *testing.T) {
		lines := []string{
			`console.log(1);`,
			"if (DEBUG_CONFIG) {",
			"  console.log(2);",
			"}",
			`console.log(3);`,
			"if (DEBUG_CONFIG) {",
			"  console.log(4);",
			"}",
		}

		result := ScanLines(lines, profile)

		assert.Equal(t, result.Total, result.Guarded+result.Unguarded)
		assert.Equal(t, 4, result.Total)
		assert.Equal(t, 2, result.Guarded)
	})

	t.Run("empty input", func(t *testing.T) {
		result := ScanLines(nil, profile)
		assert.Zero(t, result.Total)
	})
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", nil},
		{"single line no newline", "a", []string{"a"}},
		{"single line with newline", "a\n", []string{"a"}},
		{"two lines", "a\nb\n", []string{"a", "b"}},
		{"blank middle line", "a\n\nb\n", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines([]byte(tt.content)))
		})
	}
}
