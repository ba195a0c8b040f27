package formatter

import (
	"fmt"
	"strings"

	"github.com/matteobrandi/traccia/internal/goals"
)

// FormatGoalLadder renders the goal ladder with per-goal progress bars.
func FormatGoalLadder(statuses []goals.Status, revenue int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n\n",
		StyleDim.Render("TOTAL REVENUE"),
		StyleGreen.Render(Money(revenue))))

	for _, s := range statuses {
		mark := StyleDim.Render("○")
		if s.Achieved {
			mark = StyleGreen.Render("●")
		}

		line := fmt.Sprintf("%s %s %s  %s",
			mark,
			Bold(s.Goal.Name),
			Dim(Money(s.Goal.Target)),
			RenderProgress(s.Progress, 16),
		)
		b.WriteString(line)
		if !s.Achieved {
			b.WriteString(Dim(fmt.Sprintf("  %s to go", Money(s.Remaining))))
		}
		if s.Goal.Reward != "" && s.Achieved {
			b.WriteString("  " + StylePurple.Render(s.Goal.Reward))
		}
		b.WriteString("\n")
	}

	return RenderBox("Revenue goals", strings.TrimRight(b.String(), "\n"))
}
