package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/weiihann/gensuite/harness"
)

func TestText(t *testing.T) {
	r := &harness.Result{
		Workload:   "sieve",
		Unit:       "Sieves/sec",
		Iterations: 42,
		Avg:        101.5,
		Min:        99.004,
		Max:        103.996,
		Overall:    101.25,
		Metadata: []harness.Field{
			{Key: "Limit", Value: "2000000"},
			{Key: "Primes", Value: "148933"},
		},
	}

	var buf bytes.Buffer
	if err := Text(&buf, r); err != nil {
		t.Fatalf("Text failed: %v", err)
	}

	want := `Iterations: 42
Sieves/sec avg: 101.50
Sieves/sec min: 99.00
Sieves/sec max: 104.00
Sieves/sec overall: 101.25
Limit: 2000000
Primes: 148933
`
	if got := buf.String(); got != want {
		t.Errorf("Text output:\n%s\nwant:\n%s", got, want)
	}
}

func TestTextZeroRun(t *testing.T) {
	r := &harness.Result{
		Unit:     "GFLOP/s",
		Metadata: []harness.Field{{Key: "Size", Value: "128x128"}},
	}

	var buf bytes.Buffer
	if err := Text(&buf, r); err != nil {
		t.Fatalf("Text failed: %v", err)
	}

	want := "Iterations: 0\nGFLOP/s avg: 0.00\nGFLOP/s min: 0.00\n" +
		"GFLOP/s max: 0.00\nGFLOP/s overall: 0.00\nSize: 128x128\n"
	if got := buf.String(); got != want {
		t.Errorf("Text output = %q, want %q", got, want)
	}
}

func TestGenerate(t *testing.T) {
	results := []harness.Result{
		{
			Workload:   "matmul",
			Unit:       "GFLOP/s",
			Iterations: 1000,
			Elapsed:    2 * time.Second,
			Avg:        4,
			Min:        3.5,
			Max:        4.5,
			Overall:    4,
			StdDev:     0.5,
			Samples:    []float64{3.5, 4.5},
			Metadata:   []harness.Field{{Key: "Size", Value: "128x128"}},
		},
		{
			Workload: "sieve",
			Unit:     "Sieves/sec",
			Metadata: []harness.Field{
				{Key: "Limit", Value: "2000000"},
				{Key: "Primes", Value: "148933"},
			},
		},
	}

	var buf bytes.Buffer
	if err := Generate(&buf, results); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"| matmul | GFLOP/s | 1000 | 2.00s | 4.00 | 3.50 | 4.50 | 4.00 | 12.5% | 2 |",
		"| sieve | Sieves/sec | 0 | 0ms | 0.00 | 0.00 | 0.00 | 0.00 | - | 0 |",
		"| matmul | Size: 128x128 |",
		"| sieve | Limit: 2000000, Primes: 148933 |",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestGenerateEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := Generate(&buf, nil)
	if err == nil {
		t.Error("expected error for empty results")
	}
}

func TestGenerateJSON(t *testing.T) {
	results := []harness.Result{
		{Workload: "bigint", Unit: "Multiplies/sec", Iterations: 7, Samples: []float64{1, 2}},
	}

	var buf bytes.Buffer
	if err := GenerateJSON(&buf, results); err != nil {
		t.Fatalf("GenerateJSON failed: %v", err)
	}

	var parsed []harness.Result
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(parsed) != 1 {
		t.Fatalf("expected 1 result, got %d", len(parsed))
	}
	if parsed[0].Workload != "bigint" {
		t.Errorf("workload = %q, want bigint", parsed[0].Workload)
	}
	if parsed[0].Iterations != 7 {
		t.Errorf("iterations = %d, want 7", parsed[0].Iterations)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		input time.Duration
		want  string
	}{
		{0, "0ms"},
		{500 * time.Millisecond, "500ms"},
		{999 * time.Millisecond, "999ms"},
		{time.Second, "1.00s"},
		{1500 * time.Millisecond, "1.50s"},
		{60 * time.Second, "60.00s"},
	}

	for _, tt := range tests {
		got := formatDuration(tt.input)
		if got != tt.want {
			t.Errorf("formatDuration(%s) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatCV(t *testing.T) {
	tests := []struct {
		stddev, avg float64
		want        string
	}{
		{0, 0, "-"},
		{1, 10, "10.0%"},
		{0, 5, "0.0%"},
	}

	for _, tt := range tests {
		if got := formatCV(tt.stddev, tt.avg); got != tt.want {
			t.Errorf("formatCV(%v, %v) = %q, want %q", tt.stddev, tt.avg, got, tt.want)
		}
	}
}
