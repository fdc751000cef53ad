// Package metrics computes schedule and risk metrics over project-status
// records. All computations are pure functions over their inputs: no I/O, no
// shared state, safe for concurrent callers as long as the caller does not
// mutate the input slices during the call.
package metrics

import (
	"math"
	"time"

	"github.com/felixgeelhaar/podium/internal/domain"
)

// trendWeeks is the number of week boundaries reported in the schedule trend.
const trendWeeks = 4

// MilestoneHealth partitions every milestone into exactly one bucket.
// Completed + InProgress + NotStarted + Late always equals the total
// milestone count.
type MilestoneHealth struct {
	Completed  int `json:"completed" yaml:"completed"`
	InProgress int `json:"in_progress" yaml:"in_progress"`
	NotStarted int `json:"not_started" yaml:"not_started"`
	Late       int `json:"late" yaml:"late"`
}

// Total returns the sum of all buckets.
func (h MilestoneHealth) Total() int {
	return h.Completed + h.InProgress + h.NotStarted + h.Late
}

// ScheduleTrend holds the SPI as it would have appeared at each of the last
// four week boundaries, oldest first. Labels and Values are parallel.
type ScheduleTrend struct {
	Labels []string  `json:"labels" yaml:"labels"`
	Values []float64 `json:"values" yaml:"values"`
}

// ProgramMetrics is the aggregate schedule picture across all projects,
// computed fresh on every call.
type ProgramMetrics struct {
	CompletionRate  float64         `json:"completion_rate" yaml:"completion_rate"`
	SPI             float64         `json:"spi" yaml:"spi"`
	Health          MilestoneHealth `json:"milestone_health" yaml:"milestone_health"`
	Trend           ScheduleTrend   `json:"schedule_trend" yaml:"schedule_trend"`
	TotalMilestones int             `json:"total_milestones" yaml:"total_milestones"`
	TotalProjects   int             `json:"total_projects" yaml:"total_projects"`
	LastUpdated     time.Time       `json:"last_updated" yaml:"last_updated"`
}

// RiskDistribution counts risks per normalized severity. The four buckets
// partition all risks; unrecognized severities land in Medium.
type RiskDistribution struct {
	Critical int `json:"critical" yaml:"critical"`
	High     int `json:"high" yaml:"high"`
	Medium   int `json:"medium" yaml:"medium"`
	Low      int `json:"low" yaml:"low"`
}

// Total returns the sum of all severity buckets.
func (d RiskDistribution) Total() int {
	return d.Critical + d.High + d.Medium + d.Low
}

// RiskMetrics is the aggregate risk picture across all tracked risks.
type RiskMetrics struct {
	Score        int              `json:"risk_score" yaml:"risk_score"`
	Distribution RiskDistribution `json:"risk_distribution" yaml:"risk_distribution"`
	TotalRisks   int              `json:"total_risks" yaml:"total_risks"`
	OpenRisks    int              `json:"open_risks" yaml:"open_risks"`
	ClosedRisks  int              `json:"closed_risks" yaml:"closed_risks"`
}

// ComputeProgramMetrics flattens the milestones of all projects and computes
// completion rate, Schedule Performance Index, milestone health buckets and
// the four-week SPI trend as of now.
//
// The SPI earned term counts every completed milestone, whether or not its
// target date has passed, so the index can exceed 1.0 when completions run
// ahead of their due dates. This matches the established reporting behavior
// and is kept deliberately.
//
// Malformed or absent target dates never fail the computation: such
// milestones are excluded from the date-dependent planned counts but still
// counted in the total and in the status-based health buckets.
func ComputeProgramMetrics(projects []domain.Project, now time.Time) ProgramMetrics {
	today := dateOf(now)

	var milestones []domain.Milestone
	for _, p := range projects {
		milestones = append(milestones, p.Milestones...)
	}

	m := ProgramMetrics{
		SPI:           1.0,
		TotalProjects: len(projects),
		LastUpdated:   now,
	}
	m.TotalMilestones = len(milestones)

	completed := 0
	planned := 0
	for _, ms := range milestones {
		if ms.Status == domain.StatusCompleted {
			completed++
		}
		if due, ok := parseTargetDate(ms.TargetDate); ok && !due.After(today) {
			planned++
		}
	}

	if len(milestones) > 0 {
		m.CompletionRate = round1(100 * float64(completed) / float64(len(milestones)))
	}
	if planned > 0 {
		m.SPI = round2(float64(completed) / float64(planned))
	}

	m.Health = classifyHealth(milestones, today)
	m.Trend = scheduleTrend(milestones, today)
	return m
}

// classifyHealth partitions milestones into health buckets. Completed wins
// over everything; an unfinished milestone whose target date is strictly
// before today is late regardless of whether work has started; unknown
// statuses are treated conservatively as not started.
func classifyHealth(milestones []domain.Milestone, today time.Time) MilestoneHealth {
	var h MilestoneHealth
	for _, ms := range milestones {
		if ms.Status == domain.StatusCompleted {
			h.Completed++
			continue
		}
		if due, ok := parseTargetDate(ms.TargetDate); ok && due.Before(today) {
			h.Late++
			continue
		}
		if ms.Status == domain.StatusInProgress {
			h.InProgress++
		} else {
			h.NotStarted++
		}
	}
	return h
}

// scheduleTrend recomputes the SPI at each of the last four week boundaries.
// Unlike the headline SPI, both the planned and earned terms are restricted
// to milestones due on or before the boundary, so each point reflects what
// the index would have shown at that time.
func scheduleTrend(milestones []domain.Milestone, today time.Time) ScheduleTrend {
	trend := ScheduleTrend{
		Labels: make([]string, 0, trendWeeks),
		Values: make([]float64, 0, trendWeeks),
	}
	for i := 0; i < trendWeeks; i++ {
		boundary := today.AddDate(0, 0, -7*(trendWeeks-1-i))
		planned := 0
		earned := 0
		for _, ms := range milestones {
			due, ok := parseTargetDate(ms.TargetDate)
			if !ok || due.After(boundary) {
				continue
			}
			planned++
			if ms.Status == domain.StatusCompleted {
				earned++
			}
		}
		value := 1.0
		if planned > 0 {
			value = round2(float64(earned) / float64(planned))
		}
		trend.Labels = append(trend.Labels, weekLabel(i))
		trend.Values = append(trend.Values, value)
	}
	return trend
}

func weekLabel(i int) string {
	return [trendWeeks]string{"Week 1", "Week 2", "Week 3", "Week 4"}[i]
}

// ComputeRiskMetrics computes the weighted risk score and severity
// distribution for a batch of risk records. The score is the weighted
// average severity expressed as a percentage of the maximum possible
// severity, rounded to the nearest integer. Records with an unrecognized
// severity are weighted and bucketed as medium; records with no status
// count as open. An empty batch scores zero.
func ComputeRiskMetrics(risks []domain.Risk) RiskMetrics {
	m := RiskMetrics{TotalRisks: len(risks)}
	if len(risks) == 0 {
		return m
	}

	weighted := 0
	for _, r := range risks {
		sev := r.Severity.Normalize()
		weighted += sev.Weight()
		switch sev {
		case domain.SeverityCritical:
			m.Distribution.Critical++
		case domain.SeverityHigh:
			m.Distribution.High++
		case domain.SeverityMedium:
			m.Distribution.Medium++
		case domain.SeverityLow:
			m.Distribution.Low++
		}
		if r.EffectiveStatus() == domain.RiskClosed {
			m.ClosedRisks++
		} else {
			m.OpenRisks++
		}
	}

	m.Score = int(math.Round(float64(weighted) / float64(len(risks))))
	return m
}

// parseTargetDate parses an ISO-8601 target date, accepting a bare date or a
// full timestamp. It reports ok=false for empty or malformed values so
// callers can exclude them from date-dependent terms.
func parseTargetDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return dateOf(t), true
	}
	return time.Time{}, false
}

// dateOf truncates a timestamp to its UTC calendar date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
