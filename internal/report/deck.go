// Package report assembles deck content from computed metrics. It produces
// the structured slides a presentation assembler consumes; it knows nothing
// about any presentation file format.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/podium/internal/metrics"
	"github.com/felixgeelhaar/podium/internal/status"
)

// SlideKind distinguishes how a slide's content is rendered downstream.
type SlideKind string

const (
	SlideTitle SlideKind = "title"
	SlideTable SlideKind = "table"
	SlideChart SlideKind = "chart"
)

// Table is row/column content for a table slide.
type Table struct {
	Columns []string   `json:"columns" yaml:"columns"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// ChartSeries is one labeled data series for a chart slide.
type ChartSeries struct {
	Name   string    `json:"name" yaml:"name"`
	Labels []string  `json:"labels" yaml:"labels"`
	Values []float64 `json:"values" yaml:"values"`
}

// Slide is one deck slide. Exactly one of Table or Chart is set for the
// corresponding kind; a title slide carries neither.
type Slide struct {
	Kind     SlideKind    `json:"kind" yaml:"kind"`
	Title    string       `json:"title" yaml:"title"`
	Subtitle string       `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Table    *Table       `json:"table,omitempty" yaml:"table,omitempty"`
	Chart    *ChartSeries `json:"chart,omitempty" yaml:"chart,omitempty"`
}

// Source records where the deck's data came from.
type Source struct {
	Path        string `json:"path" yaml:"path"`
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
}

// Deck is the assembled deck content handed to the presentation layer.
type Deck struct {
	ID          string    `json:"id" yaml:"id"`
	Program     string    `json:"program" yaml:"program"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Source      Source    `json:"source" yaml:"source"`
	Slides      []Slide   `json:"slides" yaml:"slides"`
}

// Build computes program and risk metrics for a loaded status file and
// assembles the deck content: title slide, schedule summary table, milestone
// health chart, four-week trend chart and risk summary table.
func Build(file *status.File, sourcePath string, now time.Time) *Deck {
	program := metrics.ComputeProgramMetrics(file.Projects, now)
	risk := metrics.ComputeRiskMetrics(file.Risks)

	title := file.Program
	if title == "" {
		title = "Status Report"
	}

	deck := &Deck{
		ID:          uuid.NewString(),
		Program:     title,
		GeneratedAt: now,
		Source:      Source{Path: sourcePath, Fingerprint: file.Fingerprint},
	}

	deck.Slides = append(deck.Slides,
		Slide{
			Kind:     SlideTitle,
			Title:    title,
			Subtitle: fmt.Sprintf("Generated %s", now.Format("2006-01-02")),
		},
		scheduleSummarySlide(program),
		healthChartSlide(program.Health),
		trendChartSlide(program.Trend),
		riskSummarySlide(risk),
	)
	return deck
}

func scheduleSummarySlide(m metrics.ProgramMetrics) Slide {
	return Slide{
		Kind:  SlideTable,
		Title: "Schedule Summary",
		Table: &Table{
			Columns: []string{"Metric", "Value"},
			Rows: [][]string{
				{"Projects", fmt.Sprintf("%d", m.TotalProjects)},
				{"Milestones", fmt.Sprintf("%d", m.TotalMilestones)},
				{"Completion", fmt.Sprintf("%.1f%%", m.CompletionRate)},
				{"SPI", fmt.Sprintf("%.2f", m.SPI)},
			},
		},
	}
}

func healthChartSlide(h metrics.MilestoneHealth) Slide {
	return Slide{
		Kind:  SlideChart,
		Title: "Milestone Health",
		Chart: &ChartSeries{
			Name:   "Milestones",
			Labels: []string{"Completed", "In Progress", "Not Started", "Late"},
			Values: []float64{
				float64(h.Completed),
				float64(h.InProgress),
				float64(h.NotStarted),
				float64(h.Late),
			},
		},
	}
}

func trendChartSlide(t metrics.ScheduleTrend) Slide {
	return Slide{
		Kind:  SlideChart,
		Title: "Schedule Trend",
		Chart: &ChartSeries{
			Name:   "SPI",
			Labels: t.Labels,
			Values: t.Values,
		},
	}
}

func riskSummarySlide(m metrics.RiskMetrics) Slide {
	return Slide{
		Kind:  SlideTable,
		Title: "Risk Summary",
		Table: &Table{
			Columns: []string{"Metric", "Value"},
			Rows: [][]string{
				{"Risk Score", fmt.Sprintf("%d / 100", m.Score)},
				{"Open", fmt.Sprintf("%d", m.OpenRisks)},
				{"Closed", fmt.Sprintf("%d", m.ClosedRisks)},
				{"Critical", fmt.Sprintf("%d", m.Distribution.Critical)},
				{"High", fmt.Sprintf("%d", m.Distribution.High)},
				{"Medium", fmt.Sprintf("%d", m.Distribution.Medium)},
				{"Low", fmt.Sprintf("%d", m.Distribution.Low)},
			},
		},
	}
}
