// Package goals evaluates cumulative revenue against the threshold
// ladder and detects upward crossings for celebration events.
package goals

import (
	"sort"

	"github.com/matteobrandi/traccia/internal/domain"
)

// Status is the evaluated state of one goal against current revenue.
type Status struct {
	Goal      domain.Goal
	Achieved  bool
	Progress  float64 // 0..1, clamped
	Remaining int     // 0 when achieved
}

// Evaluate computes the status of every goal for the given revenue.
// Output is ordered by ascending target regardless of input order.
func Evaluate(ladder []domain.Goal, revenue int) []Status {
	sorted := make([]domain.Goal, len(ladder))
	copy(sorted, ladder)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Target < sorted[j].Target })

	out := make([]Status, len(sorted))
	for i, g := range sorted {
		s := Status{Goal: g, Achieved: revenue >= g.Target}
		if g.Target > 0 {
			s.Progress = float64(revenue) / float64(g.Target)
		} else {
			s.Progress = 1
		}
		if s.Progress > 1 {
			s.Progress = 1
		}
		if s.Progress < 0 {
			s.Progress = 0
		}
		if !s.Achieved {
			s.Remaining = g.Target - revenue
		}
		out[i] = s
	}
	return out
}

// NextActive returns the lowest-target goal not yet achieved, or nil
// when the whole ladder is done.
func NextActive(ladder []domain.Goal, revenue int) *domain.Goal {
	for _, s := range Evaluate(ladder, revenue) {
		if !s.Achieved {
			g := s.Goal
			return &g
		}
	}
	return nil
}
