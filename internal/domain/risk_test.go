package domain

import "testing"

func TestSeverityWeight(t *testing.T) {
	tests := []struct {
		severity Severity
		want     int
	}{
		{SeverityCritical, 100},
		{SeverityHigh, 75},
		{SeverityMedium, 50},
		{SeverityLow, 25},
		{Severity("catastrophic"), 0},
		{Severity(""), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			if got := tt.severity.Weight(); got != tt.want {
				t.Errorf("Severity(%q).Weight() = %d, want %d", tt.severity, got, tt.want)
			}
		})
	}
}

func TestSeverityNormalize(t *testing.T) {
	// known severities pass through untouched
	for _, s := range []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical} {
		if got := s.Normalize(); got != s {
			t.Errorf("Normalize(%q) = %q, want unchanged", s, got)
		}
	}
	// unknown severities score conservatively as medium
	for _, s := range []Severity{"", "catastrophic", "HIGH"} {
		if got := s.Normalize(); got != SeverityMedium {
			t.Errorf("Normalize(%q) = %q, want %q", s, got, SeverityMedium)
		}
	}
}

func TestNewRiskStatus(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"open", false},
		{"closed", false},
		{"", true},
		{"resolved", true},
		{"Open", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			_, err := NewRiskStatus(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewRiskStatus(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestRiskEffectiveStatus(t *testing.T) {
	if got := (Risk{Status: RiskClosed}).EffectiveStatus(); got != RiskClosed {
		t.Errorf("EffectiveStatus() = %q, want closed", got)
	}
	// omitted status defaults to open
	if got := (Risk{}).EffectiveStatus(); got != RiskOpen {
		t.Errorf("EffectiveStatus() = %q, want open", got)
	}
}
