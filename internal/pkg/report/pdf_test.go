package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() Report {
	return Report{
		Login:       "dupont.jean",
		DisplayName: "Jean DUPONT",
		Year:        2025,
		Month:       3,
		GeneratedAt: time.Date(2025, 4, 1, 2, 0, 0, 0, time.UTC),
		Entries: []Entry{
			{Day: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Type: "day"},
			{Day: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), Type: "night"},
			{Day: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), Type: "travel"},
		},
	}
}

func TestPDFRenderer_Render(t *testing.T) {
	renderer := NewPDFRenderer()

	content, err := renderer.Render(sampleReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
	assert.Equal(t, ".pdf", renderer.Ext())
}

func TestPDFRenderer_Render_Deterministic(t *testing.T) {
	renderer := NewPDFRenderer()
	r := sampleReport()

	first, err := renderer.Render(r)
	require.NoError(t, err)
	second, err := renderer.Render(r)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReport_CountByType(t *testing.T) {
	counts := sampleReport().CountByType()
	assert.Equal(t, Counts{Day: 1, Night: 1, Travel: 1}, counts)
}

func TestReport_Period(t *testing.T) {
	assert.Equal(t, "03/2025", sampleReport().Period())
}

func TestTypeLabel(t *testing.T) {
	assert.Equal(t, "Day", TypeLabel("day"))
	assert.Equal(t, "Night", TypeLabel("night"))
	assert.Equal(t, "Travel", TypeLabel("travel"))
	assert.Equal(t, "other", TypeLabel("other"))
}
