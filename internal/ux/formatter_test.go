package ux

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

type deckSummary struct {
	Program string `json:"program" yaml:"program"`
	Slides  int    `json:"slides" yaml:"slides"`
}

func (d deckSummary) String() string {
	return fmt.Sprintf("%s (%d slides)", d.Program, d.Slides)
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"json format", "json", false},
		{"yaml format", "yaml", false},
		{"text format", "text", false},
		{"empty format defaults to text", "", false},
		{"unknown format", "csv", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFormatter(tt.format, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewFormatter() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter, err := NewFormatter("json", &FormatterOptions{Writer: &buf})
	if err != nil {
		t.Fatalf("NewFormatter() error = %v", err)
	}

	if err := formatter.Format(deckSummary{Program: "Q3 Portfolio", Slides: 5}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, `"program": "Q3 Portfolio"`) {
		t.Errorf("JSON output missing expected field: %s", output)
	}
	if !strings.Contains(output, `"slides": 5`) {
		t.Errorf("JSON output missing expected field: %s", output)
	}
}

func TestJSONFormatterCompact(t *testing.T) {
	var buf bytes.Buffer
	formatter, err := NewFormatter("json", &FormatterOptions{
		Writer:  &buf,
		Compact: true,
	})
	if err != nil {
		t.Fatalf("NewFormatter() error = %v", err)
	}

	if err := formatter.Format(deckSummary{Program: "Q3 Portfolio", Slides: 5}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	// Compact JSON is a single line
	if got := strings.Count(buf.String(), "\n"); got > 1 {
		t.Errorf("Compact JSON should be single line, got: %s", buf.String())
	}
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter, err := NewFormatter("yaml", &FormatterOptions{Writer: &buf})
	if err != nil {
		t.Fatalf("NewFormatter() error = %v", err)
	}

	if err := formatter.Format(deckSummary{Program: "Q3 Portfolio", Slides: 5}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "program: Q3 Portfolio") {
		t.Errorf("YAML output missing expected field: %s", output)
	}
	if !strings.Contains(output, "slides: 5") {
		t.Errorf("YAML output missing expected field: %s", output)
	}
}

func TestTextFormatter(t *testing.T) {
	tests := []struct {
		name    string
		data    any
		want    string
		wantErr bool
	}{
		{
			name: "string data",
			data: "deck written to deck.yaml",
			want: "deck written to deck.yaml",
		},
		{
			name: "stringer",
			data: deckSummary{Program: "Q3 Portfolio", Slides: 5},
			want: "Q3 Portfolio (5 slides)",
		},
		{
			name:    "struct without String method",
			data:    struct{ N int }{42},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			formatter, err := NewFormatter("text", &FormatterOptions{Writer: &buf})
			if err != nil {
				t.Fatalf("NewFormatter() error = %v", err)
			}

			err = formatter.Format(tt.data)
			if (err != nil) != tt.wantErr {
				t.Errorf("Format() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if output := strings.TrimSpace(buf.String()); output != tt.want {
					t.Errorf("Format() output = %q, want %q", output, tt.want)
				}
			}
		})
	}
}
