package formatter

import (
	"fmt"
	"strings"

	"github.com/matteobrandi/traccia/internal/ingest"
)

// FormatDraft renders a project draft for review before it is accepted.
func FormatDraft(d *ingest.ProjectDraft) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(d.Title) + "\n")
	if d.Client != "" {
		b.WriteString(StylePurple.Render(d.Client) + "\n")
	}
	if d.Description != "" {
		b.WriteString(StyleDim.Render(d.Description) + "\n")
	}
	b.WriteString(fmt.Sprintf("\n%s %s\n", StyleDim.Render("SUGGESTED BUDGET"), StyleFg.Render(Money(d.Budget))))

	if len(d.Tasks) > 0 {
		b.WriteString("\n")
		for i, t := range d.Tasks {
			b.WriteString(fmt.Sprintf("%s %s  %s",
				Dim(fmt.Sprintf("%2d.", i+1)),
				StyleFg.Render(t.Name),
				StyleYellow.Render(Money(t.Price))))
			if t.Hours > 0 {
				b.WriteString(Dim(fmt.Sprintf("  %dh", t.Hours)))
			}
			b.WriteString("\n")
		}
	}

	return RenderBox("Draft", strings.TrimRight(b.String(), "\n"))
}
