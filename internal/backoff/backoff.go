// Package backoff provides the delay sequence used while polling contended
// vertex locks.
package backoff

import (
	"context"
	rand "math/rand/v2"
	"time"
)

// DefaultBase is the first polling delay.
const DefaultBase = 2 * time.Microsecond

// Exponential yields exponentially growing, jittered delays up to a ceiling.
//
// Given the previous nominal delay (prev), the next nominal delay is
// prev*multiplier. The returned delay is drawn uniformly from
// [nominal/2, nominal] so that two workers contending on the same pair of
// vertices drift apart instead of retrying in lockstep.
//
// Behavior:
//   - Base <= 0 falls back to DefaultBase
//   - Multiplier <= 1.0 falls back to 2.0
//   - Next reports exhausted once the nominal delay exceeds the ceiling
//
// An Exponential is not safe for concurrent use; each lock wait owns one.
type Exponential struct {
	base    time.Duration
	ceiling time.Duration
	mult    float64
	rng     *rand.Rand
	nominal time.Duration
}

// NewExponential creates a delay sequence.
//
// Parameters:
//   - base: First nominal delay
//   - ceiling: Largest nominal delay before the sequence is exhausted (<= 0 means unbounded)
//   - mult: Growth factor per step
//   - rng: Jitter source (nil uses the package-level generator)
//
// Returns:
//   - *Exponential: Sequence positioned before its first delay
func NewExponential(base, ceiling time.Duration, mult float64, rng *rand.Rand) *Exponential {
	if base <= 0 {
		base = DefaultBase
	}
	if mult <= 1.0 {
		mult = 2.0
	}

	return &Exponential{base: base, ceiling: ceiling, mult: mult, rng: rng}
}

// Next advances the sequence.
//
// Returns:
//   - time.Duration: Jittered delay to sleep, clamped to the ceiling
//   - bool: false once the nominal delay has grown past the ceiling
func (e *Exponential) Next() (time.Duration, bool) {
	if e.nominal <= 0 {
		e.nominal = e.base
	} else {
		e.nominal = time.Duration(float64(e.nominal) * e.mult)
	}

	nominal := e.nominal
	exhausted := e.ceiling > 0 && nominal > e.ceiling
	if exhausted {
		nominal = e.ceiling
	}

	return jitter(nominal, e.rng), !exhausted
}

// Reset positions the sequence before its first delay again.
func (e *Exponential) Reset() {
	e.nominal = 0
}

// jitter returns a delay drawn uniformly from [d/2, d].
//
//nolint:gosec // non-crypto backoff jitter
func jitter(d time.Duration, rng *rand.Rand) time.Duration {
	half := int64(d / 2)
	if half <= 0 {
		return d
	}

	var j int64
	if rng != nil {
		j = rng.Int64N(half + 1)
	} else {
		j = rand.Int64N(half + 1)
	}

	return time.Duration(half + j)
}

// Sleep waits for d or until ctx is done.
//
// Returns:
//   - error: ctx.Err() if the context ended first, nil otherwise
func Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
