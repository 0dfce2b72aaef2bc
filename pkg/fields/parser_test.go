package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autofiler/autofiler/pkg/errors"
)

func clientYearRules() Rules {
	return Rules{
		{Name: "client", Allowed: []string{"ACME", "GLOBEX"}},
		{Name: "year", Allowed: nil},
	}
}

func TestParse_Success(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     map[string]string
	}{
		{
			name:     "simple two-field name",
			filename: "ACME-2023.pdf",
			want:     map[string]string{"client": "ACME", "year": "2023"},
		},
		{
			name:     "surplus segments are ignored",
			filename: "ACME-2023-report-final.pdf",
			want:     map[string]string{"client": "ACME", "year": "2023"},
		},
		{
			name:     "allowed check is case-insensitive but value keeps its case",
			filename: "acme-2023.pdf",
			want:     map[string]string{"client": "acme", "year": "2023"},
		},
		{
			name:     "segments are trimmed",
			filename: "ACME - 2023 - notes.pdf",
			want:     map[string]string{"client": "ACME", "year": "2023"},
		},
		{
			name:     "unrestricted field accepts anything",
			filename: "GLOBEX-draft.pdf",
			want:     map[string]string{"client": "GLOBEX", "year": "draft"},
		},
		{
			name:     "no extension",
			filename: "ACME-2023",
			want:     map[string]string{"client": "ACME", "year": "2023"},
		},
	}

	rules := clientYearRules()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := rules.Parse(tt.filename)
			require.NoError(t, err)
			assert.Equal(t, tt.want, map[string]string(record))
		})
	}
}

func TestParse_InsufficientFields(t *testing.T) {
	tests := []struct {
		name     string
		filename string
	}{
		{name: "single segment", filename: "report.pdf"},
		{name: "no dash at all", filename: "notes"},
	}

	rules := clientYearRules()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rules.Parse(tt.filename)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInsufficientFields))
		})
	}
}

func TestParse_InvalidFieldValue(t *testing.T) {
	rules := clientYearRules()

	_, err := rules.Parse("xyz-2023.pdf")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidFieldValue))

	details := errors.GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "client", details["field"])
	assert.Equal(t, 1, details["position"])
	assert.Equal(t, "xyz", details["value"])
}

func TestParse_ExactSegmentCountProceeds(t *testing.T) {
	// two segments, two rules: not a skip even when values look short
	rules := clientYearRules()

	record, err := rules.Parse("acme-23.pdf")
	require.NoError(t, err)
	assert.Equal(t, "23", record["year"])
}

func TestParse_IsPure(t *testing.T) {
	rules := clientYearRules()

	first, err := rules.Parse("ACME-2023.pdf")
	require.NoError(t, err)
	second, err := rules.Parse("ACME-2023.pdf")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
