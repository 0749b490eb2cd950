package sampling

import (
	"fmt"

	"github.com/dkoslow/prevgen/internal/types"
)

// Plan computes where to take samples from a video timeline. It returns
// evenly spaced start times so that every interval [t, t+sampleDuration]
// stays within [0, duration].
//
// Edge cases:
//   - duration <= sampleDuration: a single sample at 0 (the source is too
//     short for more than one non-overlapping sample).
//   - samples == 1: a single sample centered in the usable span. The even
//     distribution formula degenerates at n=1, so the centered placement is a
//     fixed, documented choice.
func Plan(duration float64, samples int, sampleDuration float64) ([]float64, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("duration must be > 0, got %g: %w", duration, types.ErrInvalidInput)
	}
	if samples < 1 {
		return nil, fmt.Errorf("samples must be >= 1, got %d: %w", samples, types.ErrInvalidInput)
	}
	if sampleDuration <= 0 {
		return nil, fmt.Errorf("sample duration must be > 0, got %g: %w", sampleDuration, types.ErrInvalidInput)
	}

	if duration <= sampleDuration {
		return []float64{0}, nil
	}

	// span is the last valid start time.
	span := duration - sampleDuration
	if samples == 1 {
		return []float64{span / 2}, nil
	}

	step := span / float64(samples-1)
	out := make([]float64, samples)
	for i := range out {
		t := float64(i) * step
		// Clamp against floating-point overshoot on the last step.
		if t > span {
			t = span
		}
		if t < 0 {
			t = 0
		}
		out[i] = t
	}
	return out, nil
}
