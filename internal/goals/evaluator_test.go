package goals

import (
	"testing"

	"github.com/matteobrandi/traccia/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ladder() []domain.Goal {
	return []domain.Goal{
		{ID: "g1", Name: "First", Target: 1000, Ordinal: 1},
		{ID: "g2", Name: "Second", Target: 3000, Ordinal: 2},
		{ID: "g3", Name: "Third", Target: 5000, Ordinal: 3},
	}
}

func TestEvaluate_AchievedAndRemaining(t *testing.T) {
	statuses := Evaluate(ladder(), 1500)

	require.Len(t, statuses, 3)
	assert.True(t, statuses[0].Achieved)
	assert.Equal(t, 0, statuses[0].Remaining)
	assert.Equal(t, 1.0, statuses[0].Progress)

	assert.False(t, statuses[1].Achieved)
	assert.Equal(t, 1500, statuses[1].Remaining)
	assert.InDelta(t, 0.5, statuses[1].Progress, 0.001)
}

func TestEvaluate_SortsByTarget(t *testing.T) {
	shuffled := []domain.Goal{
		{ID: "g3", Target: 5000},
		{ID: "g1", Target: 1000},
		{ID: "g2", Target: 3000},
	}

	statuses := Evaluate(shuffled, 0)

	assert.Equal(t, "g1", statuses[0].Goal.ID)
	assert.Equal(t, "g3", statuses[2].Goal.ID)
}

func TestEvaluate_ExactThresholdCounts(t *testing.T) {
	statuses := Evaluate(ladder(), 1000)
	assert.True(t, statuses[0].Achieved)
}

func TestNextActive(t *testing.T) {
	next := NextActive(ladder(), 1500)
	require.NotNil(t, next)
	assert.Equal(t, "g2", next.ID)
}

func TestNextActive_AllAchieved(t *testing.T) {
	assert.Nil(t, NextActive(ladder(), 99999))
}

func TestTracker_FiresOncePerCrossing(t *testing.T) {
	tr := NewTracker(ladder(), nil)

	assert.Empty(t, tr.Advance(900))

	crossed := tr.Advance(1000)
	require.Len(t, crossed, 1)
	assert.Equal(t, "g1", crossed[0].ID)

	// Oscillating around the threshold never re-fires.
	assert.Empty(t, tr.Advance(1100))
	assert.Empty(t, tr.Advance(800))
	assert.Empty(t, tr.Advance(1100))
}

func TestTracker_MultipleCrossingsInOneJump(t *testing.T) {
	tr := NewTracker(ladder(), nil)

	crossed := tr.Advance(3500)

	require.Len(t, crossed, 2)
	assert.Equal(t, "g1", crossed[0].ID)
	assert.Equal(t, "g2", crossed[1].ID)
}

func TestTracker_RestoredAwardsNeverRefire(t *testing.T) {
	tr := NewTracker(ladder(), []string{"g1"})

	crossed := tr.Advance(1200)

	assert.Empty(t, crossed)
	assert.True(t, tr.Awarded("g1"))
}
