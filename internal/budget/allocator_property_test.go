package budget

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRedistribute_Invariants_SumAndNonNegativity property-tests the two
// core allocation invariants: the outputs always sum to the requested
// total and no slot ever goes negative.
func TestRedistribute_Invariants_SumAndNonNegativity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 500; trial++ {
		total := rng.Intn(100000)
		n := rng.Intn(20)

		out := Redistribute(total, n)
		assert.Len(t, out, n, "trial %d: output length must match item count", trial)

		sum := 0
		for j, v := range out {
			assert.GreaterOrEqual(t, v, 0,
				"trial %d slot %d: allocation must be non-negative", trial, j)
			sum += v
		}
		if n > 0 {
			assert.Equal(t, total, sum,
				"trial %d: sum must equal total (total=%d n=%d)", trial, total, n)
		}
	}
}

// TestRedistribute_Invariant_FrontLoadedByAtMostOne verifies the spread
// between any two slots never exceeds one unit and earlier slots are
// never smaller than later ones.
func TestRedistribute_Invariant_FrontLoadedByAtMostOne(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		total := rng.Intn(5000)
		n := rng.Intn(15) + 1

		out := Redistribute(total, n)
		for i := 1; i < len(out); i++ {
			assert.GreaterOrEqual(t, out[i-1], out[i],
				"trial %d: slot %d must not be smaller than slot %d", trial, i-1, i)
			assert.LessOrEqual(t, out[0]-out[len(out)-1], 1,
				"trial %d: spread must be at most one unit", trial)
		}
	}
}
