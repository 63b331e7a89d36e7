package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/chakra/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInfluenceLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected schema.InfluenceLevel
	}{
		{
			name:     "smallest value possible",
			input:    0.0,
			expected: schema.FaintLevel,
		},
		{
			name:     "just before moderate",
			input:    0.0699,
			expected: schema.FaintLevel,
		},
		{
			name:     "exactly moderate",
			input:    0.07,
			expected: schema.ModerateLevel,
		},
		{
			name:     "just below uniform share",
			input:    0.142,
			expected: schema.ModerateLevel,
		},
		{
			name:     "uniform share",
			input:    1.0 / 7.0,
			expected: schema.StrongLevel,
		},
		{
			name:     "just before dominant",
			input:    0.2499,
			expected: schema.StrongLevel,
		},
		{
			name:     "exactly dominant",
			input:    0.25,
			expected: schema.DominantLevel,
		},
		{
			name:     "everything",
			input:    1.0,
			expected: schema.DominantLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetInfluenceLevel(tt.input))
			assert.Equal(t, string(tt.expected), GetPlainLabel(tt.input))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	tests := []struct {
		name      string
		influence float64
		label     schema.InfluenceLevel
	}{
		{"faint", 0.01, schema.FaintLevel},
		{"moderate", 0.1, schema.ModerateLevel},
		{"strong", 0.2, schema.StrongLevel},
		{"dominant", 0.4, schema.DominantLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetColorLabel(tt.influence)
			// Should contain the plain label
			assert.Contains(t, result, string(tt.label))
		})
	}
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		file, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, file)
	})

	t.Run("valid path creates file", func(t *testing.T) {
		tempFile := filepath.Join(t.TempDir(), "test_output.txt")

		file, err := SelectOutputFile(tempFile)
		require.NoError(t, err)
		assert.NotNil(t, file)
		_ = file.Close()

		// Verify file was created
		_, err = os.Stat(tempFile)
		assert.NoError(t, err)
	})

	t.Run("missing directory fails", func(t *testing.T) {
		_, err := SelectOutputFile(filepath.Join(t.TempDir(), "nope", "out.csv"))
		assert.Error(t, err)
	})
}

func TestGetAnalysisDBFilePath(t *testing.T) {
	path := GetAnalysisDBFilePath()

	// Should not be empty
	assert.NotEmpty(t, path)

	// Should contain the database name
	assert.Contains(t, path, ".chakra_history.db")

	// Should be in home directory
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, homeDir), "path %s should start with home dir %s", path, homeDir)
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{"yes", true, false},
		{"YES", true, false},
		{"true", true, false},
		{"1", true, false},
		{"no", false, false},
		{"False", false, false},
		{"0", false, false},
		{"maybe", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
