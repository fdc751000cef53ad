package report

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/podium/internal/domain"
	"github.com/felixgeelhaar/podium/internal/status"
)

var buildTime = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

func sampleFile() *status.File {
	return &status.File{
		Program:     "Q3 Portfolio",
		Fingerprint: "abc123",
		Projects: []domain.Project{
			{
				ID: "apollo",
				Milestones: []domain.Milestone{
					{Name: "Kickoff", Status: domain.StatusCompleted, TargetDate: "2025-05-01"},
					{Name: "Beta", Status: domain.StatusInProgress, TargetDate: "2025-06-01"},
					{Name: "Launch", Status: domain.StatusNotStarted, TargetDate: "2025-09-01"},
				},
			},
		},
		Risks: []domain.Risk{
			{Title: "Vendor delay", Severity: domain.SeverityHigh},
			{Title: "Churn", Severity: domain.SeverityLow, Status: domain.RiskClosed},
		},
	}
}

func TestBuild(t *testing.T) {
	deck := Build(sampleFile(), "status.yaml", buildTime)

	require.NotEmpty(t, deck.ID)
	assert.Equal(t, "Q3 Portfolio", deck.Program)
	assert.Equal(t, "status.yaml", deck.Source.Path)
	assert.Equal(t, "abc123", deck.Source.Fingerprint)

	require.Len(t, deck.Slides, 5)
	assert.Equal(t, SlideTitle, deck.Slides[0].Kind)
	assert.Equal(t, SlideTable, deck.Slides[1].Kind)
	assert.Equal(t, SlideChart, deck.Slides[2].Kind)
	assert.Equal(t, SlideChart, deck.Slides[3].Kind)
	assert.Equal(t, SlideTable, deck.Slides[4].Kind)
}

func TestBuild_HealthChartMatchesMilestones(t *testing.T) {
	deck := Build(sampleFile(), "status.yaml", buildTime)

	chart := deck.Slides[2].Chart
	require.NotNil(t, chart)
	require.Len(t, chart.Values, 4)

	total := 0.0
	for _, v := range chart.Values {
		total += v
	}
	assert.Equal(t, 3.0, total)
	// the in-progress milestone due 2025-06-01 is late as of the build time
	assert.Equal(t, []float64{1, 0, 1, 1}, chart.Values)
}

func TestBuild_TrendChartHasFourPoints(t *testing.T) {
	deck := Build(sampleFile(), "status.yaml", buildTime)

	chart := deck.Slides[3].Chart
	require.NotNil(t, chart)
	assert.Equal(t, []string{"Week 1", "Week 2", "Week 3", "Week 4"}, chart.Labels)
	assert.Len(t, chart.Values, 4)
}

func TestBuild_EmptyFile(t *testing.T) {
	deck := Build(&status.File{}, "empty.yaml", buildTime)

	assert.Equal(t, "Status Report", deck.Program)
	require.Len(t, deck.Slides, 5)

	summary := deck.Slides[1].Table
	require.NotNil(t, summary)
	assert.Contains(t, summary.Rows, []string{"Completion", "0.0%"})
	assert.Contains(t, summary.Rows, []string{"SPI", "1.00"})
}

func TestManifestRoundTrip(t *testing.T) {
	deck := Build(sampleFile(), "status.yaml", buildTime)
	path := filepath.Join(t.TempDir(), "out", "deck.yaml")

	require.NoError(t, WriteManifest(deck, path))

	got, err := ReadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, deck.ID, got.ID)
	assert.Equal(t, deck.Program, got.Program)
	require.Len(t, got.Slides, len(deck.Slides))
	assert.Equal(t, deck.Slides[1].Table, got.Slides[1].Table)
	assert.Equal(t, deck.Slides[3].Chart, got.Slides[3].Chart)
}
