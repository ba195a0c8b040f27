// Package notify carries the fire-and-forget celebration events the
// presentation layer subscribes to: no return values, no retries.
package notify

import (
	"fmt"
	"io"

	"github.com/matteobrandi/traccia/internal/domain"
	"github.com/rs/zerolog"
)

// Notifier receives discrete celebration events. Implementations must
// not block the mutation path.
type Notifier interface {
	ProjectCompleted(p *domain.Project)
	GoalAchieved(g domain.Goal)
}

// NoopNotifier discards all events. Useful for tests.
type NoopNotifier struct{}

func (NoopNotifier) ProjectCompleted(*domain.Project) {}
func (NoopNotifier) GoalAchieved(domain.Goal)         {}

// LogNotifier writes celebration events to a structured logger.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier creates a Notifier that logs events at info level.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) ProjectCompleted(p *domain.Project) {
	n.log.Info().
		Str("event", "project_completed").
		Str("project_id", p.ID).
		Str("title", p.Title).
		Int("earned", p.Earned).
		Msg("project completed")
}

func (n *LogNotifier) GoalAchieved(g domain.Goal) {
	n.log.Info().
		Str("event", "goal_achieved").
		Str("goal_id", g.ID).
		Str("name", g.Name).
		Int("target", g.Target).
		Msg("goal achieved")
}

// ConsoleNotifier prints one celebration line per event, for
// interactive runs where the log file is out of sight.
type ConsoleNotifier struct {
	Out io.Writer
}

func (n ConsoleNotifier) ProjectCompleted(p *domain.Project) {
	fmt.Fprintf(n.Out, "🎉 Project %q completed, €%d earned.\n", p.Title, p.Earned)
}

func (n ConsoleNotifier) GoalAchieved(g domain.Goal) {
	fmt.Fprintf(n.Out, "🏆 Goal reached: %s (€%d). %s\n", g.Name, g.Target, g.Reward)
}

// Multi fans events out to several notifiers in order.
type Multi []Notifier

func (m Multi) ProjectCompleted(p *domain.Project) {
	for _, n := range m {
		n.ProjectCompleted(p)
	}
}

func (m Multi) GoalAchieved(g domain.Goal) {
	for _, n := range m {
		n.GoalAchieved(g)
	}
}
