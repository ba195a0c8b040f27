package goals

import "github.com/matteobrandi/traccia/internal/domain"

// Tracker detects upward crossings of goal thresholds. A goal fires at
// most once per tracker lifetime: revenue dropping back below a target
// and rising over it again never re-fires the same goal ID.
type Tracker struct {
	ladder  []domain.Goal
	awarded map[string]bool
}

// NewTracker creates a Tracker over the given ladder. IDs in seen are
// treated as already awarded, so restored state never re-celebrates.
func NewTracker(ladder []domain.Goal, seen []string) *Tracker {
	awarded := make(map[string]bool, len(seen))
	for _, id := range seen {
		awarded[id] = true
	}
	return &Tracker{ladder: ladder, awarded: awarded}
}

// Advance moves the tracker to the given revenue and returns the goals
// newly crossed on the way up, in ascending target order.
func (t *Tracker) Advance(revenue int) []domain.Goal {
	var crossed []domain.Goal
	for _, s := range Evaluate(t.ladder, revenue) {
		if s.Achieved && !t.awarded[s.Goal.ID] {
			t.awarded[s.Goal.ID] = true
			crossed = append(crossed, s.Goal)
		}
	}
	return crossed
}

// Awarded reports whether the given goal ID has already fired.
func (t *Tracker) Awarded(id string) bool {
	return t.awarded[id]
}
