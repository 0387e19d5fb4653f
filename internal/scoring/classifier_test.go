package scoring

import (
	"testing"

	"scl90-api/internal/domain"
)

func TestClassifyFactorBoundaries(t *testing.T) {
	cases := []struct {
		average float64
		want    domain.Level
	}{
		{0, domain.LevelNormal},
		{1.99, domain.LevelNormal},
		{2.0, domain.LevelMild},
		{2.99, domain.LevelMild},
		{3.0, domain.LevelModerate},
		{3.99, domain.LevelModerate},
		{4.0, domain.LevelSevere},
		{4.5, domain.LevelSevere},
	}
	for _, tc := range cases {
		if got := ClassifyFactor(tc.average); got != tc.want {
			t.Fatalf("ClassifyFactor(%v) = %s, want %s", tc.average, got, tc.want)
		}
	}
}

func TestClassifyFactorMonotonic(t *testing.T) {
	prev := ClassifyFactor(0)
	for avg := 0.0; avg <= 4.0; avg += 0.01 {
		level := ClassifyFactor(avg)
		if level < prev {
			t.Fatalf("classification decreased at average %v", avg)
		}
		prev = level
	}
}

func TestClassifyOverall(t *testing.T) {
	for _, level := range domain.Levels() {
		assessment := ClassifyOverall(float64(level) + 1.0)
		if assessment.Text == "" {
			t.Fatalf("empty overall text for level %s", level)
		}
		if assessment.ColorToken != level.ColorToken() {
			t.Fatalf("overall color %q does not match level %s", assessment.ColorToken, level)
		}
	}
}
