package randstat

import (
	"testing"

	"randlab/domain/core"
)

func TestTestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     TestConfig
		wantErr bool
	}{
		{"valid", TestConfig{DomainSize: 100, SampleSize: 10000, Seed: 1}, false},
		{"valid minimal", TestConfig{DomainSize: 1, SampleSize: 1}, false},
		{"zero N", TestConfig{DomainSize: 0, SampleSize: 10}, true},
		{"negative N", TestConfig{DomainSize: -5, SampleSize: 10}, true},
		{"zero sample size", TestConfig{DomainSize: 10, SampleSize: 0}, true},
		{"negative sample size", TestConfig{DomainSize: 10, SampleSize: -1}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.cfg.Validate()
			if test.wantErr && err == nil {
				t.Errorf("Expected validation error for %+v, got none", test.cfg)
			}
			if !test.wantErr && err != nil {
				t.Errorf("Unexpected validation error for %+v: %v", test.cfg, err)
			}
			if test.wantErr && !core.IsInvalidConfigError(err) {
				t.Errorf("Expected invalid config error, got %v", err)
			}
		})
	}
}

func TestParseGeneratorKind(t *testing.T) {
	tests := []struct {
		input    string
		expected GeneratorKind
		hasError bool
	}{
		{"modulo_uniform", ModuloUniform, false},
		{"modulo", ModuloUniform, false},
		{"Range_Uniform", RangeUniform, false},
		{"uniform", RangeUniform, false},
		{"clipped_normal", ClippedNormal, false},
		{"normal", ClippedNormal, false},
		{"mersenne", 0, true},
		{"", 0, true},
	}

	for _, test := range tests {
		got, err := ParseGeneratorKind(test.input)
		if test.hasError {
			if err == nil {
				t.Errorf("Expected error for input %q, got kind %v", test.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unexpected error for input %q: %v", test.input, err)
		}
		if got != test.expected {
			t.Errorf("Expected %v for input %q, got %v", test.expected, test.input, got)
		}
	}
}

func TestGeneratorKindRoundTrip(t *testing.T) {
	for _, kind := range Kinds() {
		parsed, err := ParseGeneratorKind(kind.String())
		if err != nil {
			t.Fatalf("Failed to parse %q: %v", kind.String(), err)
		}
		if parsed != kind {
			t.Errorf("Round trip changed %v to %v", kind, parsed)
		}
	}
}

func TestSampleFrequencies(t *testing.T) {
	s := Sample{0, 1, 1, 3, 3, 3}
	counts := s.Frequencies(5)

	// The frequency table must always cover all N values, zero-filled.
	if len(counts) != 5 {
		t.Fatalf("Expected 5 entries, got %d", len(counts))
	}

	expected := []int{1, 2, 0, 3, 0}
	total := 0
	for i, c := range counts {
		if c != expected[i] {
			t.Errorf("Count for value %d: expected %d, got %d", i, expected[i], c)
		}
		total += c
	}
	if total != s.Len() {
		t.Errorf("Counts sum to %d, expected sample size %d", total, s.Len())
	}
}

func TestSampleFloat64s(t *testing.T) {
	s := Sample{3, 1, 4}
	f := s.Float64s()
	if len(f) != 3 || f[0] != 3.0 || f[1] != 1.0 || f[2] != 4.0 {
		t.Errorf("Unexpected conversion result: %v", f)
	}
}
