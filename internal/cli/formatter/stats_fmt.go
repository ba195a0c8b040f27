package formatter

import (
	"fmt"
	"strings"

	"github.com/matteobrandi/traccia/internal/service"
)

// FormatStats renders the portfolio snapshot.
func FormatStats(s *service.Stats) string {
	var b strings.Builder

	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("%-18s %s\n", StyleDim.Render(label), value))
	}

	row("Total revenue", StyleGreen.Render(Money(s.TotalRevenue)))
	row("Projects", fmt.Sprintf("%s %s %s",
		StyleGreen.Render(fmt.Sprintf("%d active", s.ActiveCount)),
		StyleBlue.Render(fmt.Sprintf("%d completed", s.CompletedCount)),
		StyleYellow.Render(fmt.Sprintf("%d paused", s.PausedCount))))
	row("Avg project value", StyleFg.Render(fmt.Sprintf("€%.0f", s.AvgProjectValue)))
	row("Tasks", StyleFg.Render(fmt.Sprintf("%d/%d done", s.CompletedTaskCount, s.TaskCount)))
	row("Task completion", RenderProgress(s.TaskCompletionRate/100, 16))

	return RenderBox("Stats", strings.TrimRight(b.String(), "\n"))
}
