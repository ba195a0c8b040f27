// Package budget holds the integer allocation arithmetic that keeps a
// project's total budget and its per-task prices in agreement.
//
// Two directions exist: Redistribute pushes a total down onto the tasks
// (the total is authoritative), Reconcile pulls the total up from the
// tasks (the task prices are authoritative). Callers pick the direction
// per operation; see the mutation methods on domain.Project.
package budget

import "math"

// Redistribute splits total into n non-negative integers that sum to
// exactly total. Every slot gets floor(total/n); the first total mod n
// slots get one extra unit, so earlier positions absorb the remainder.
// A final correction folds any residual difference into the last slot,
// which keeps the sum exact even if a caller hands in a total that was
// not pre-rounded through ClampTotal.
func Redistribute(total, n int) []int {
	if n <= 0 {
		return nil
	}
	if total < 0 {
		total = 0
	}

	base := total / n
	remainder := total % n

	out := make([]int, n)
	for i := range out {
		out[i] = base
		if i < remainder {
			out[i]++
		}
	}

	sum := 0
	for _, v := range out {
		sum += v
	}
	if sum != total {
		out[n-1] += total - sum
	}
	return out
}

// Reconcile returns the sum of prices. Used when an individual price was
// edited directly and the total must follow the items.
func Reconcile(prices []int) int {
	sum := 0
	for _, p := range prices {
		sum += p
	}
	return sum
}

// RoundAmount coerces a raw numeric input to an integer amount: round to
// nearest with ties away from zero, NaN and infinities collapse to 0.
// Negative amounts are preserved here; use ClampTotal for budget fields.
func RoundAmount(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}

// ClampTotal coerces a raw budget input to a usable total: invalid or
// negative values become 0, everything else rounds to nearest.
func ClampTotal(v float64) int {
	n := RoundAmount(v)
	if n < 0 {
		return 0
	}
	return n
}
