package domain

// Goal is a revenue threshold on the motivation ladder. Goals are
// evaluated against cumulative earned revenue, never stored with it.
type Goal struct {
	ID      string
	Name    string
	Target  int
	Ordinal int
	Reward  string
}

// DefaultGoals returns the built-in ladder, ordered by ascending target.
func DefaultGoals() []Goal {
	return []Goal{
		{ID: "first-milestone", Name: "First Milestone", Target: 1000, Ordinal: 1, Reward: "Off the ground"},
		{ID: "liftoff", Name: "Liftoff", Target: 3000, Ordinal: 2, Reward: "Growing fast"},
		{ID: "quality", Name: "Quality", Target: 5000, Ordinal: 3, Reward: "Seasoned hand"},
		{ID: "champion", Name: "Champion", Target: 10000, Ordinal: 4, Reward: "Top of the field"},
		{ID: "master", Name: "Master", Target: 20000, Ordinal: 5, Reward: "Master of the craft"},
	}
}
