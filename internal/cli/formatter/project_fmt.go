package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matteobrandi/traccia/internal/domain"
)

// FormatProjectList renders a styled project list inside a bordered box.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"ID", "TITLE", "CLIENT", "BUDGET", "EARNED", "PROGRESS", "STATUS"}
	rows := make([][]string, 0, len(projects))

	for _, p := range projects {
		client := p.Client
		if strings.TrimSpace(client) == "" {
			client = Dim("--")
		}
		rows = append(rows, []string{
			Dim(TruncID(p.ID)),
			Bold(p.Title),
			client,
			Money(p.TotalBudget),
			StyleGreen.Render(Money(p.Earned)),
			RenderProgress(p.CompletionPct/100, 10),
			StatusPill(p.Status),
		})
	}

	return RenderBox("Projects", RenderTable(headers, rows))
}

// FormatProjectInspect renders a project card with its task list.
func FormatProjectInspect(p *domain.Project) string {
	left := buildMetadataPanel(p)
	right := buildTaskPanel(p)

	combined := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
	return RenderBox("", combined)
}

func buildMetadataPanel(p *domain.Project) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(p.Title) + "\n")
	if p.Client != "" {
		b.WriteString(StylePurple.Render(p.Client) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("STATUS "), StatusPill(p.Status)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ID     "), Dim(TruncID(p.ID))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("BUDGET "), StyleFg.Render(Money(p.TotalBudget))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("EARNED "), StyleGreen.Render(Money(p.Earned))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("DONE   "), RenderProgress(p.CompletionPct/100, 12)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("CREATED"), StyleFg.Render(HumanDate(p.CreatedAt))))

	if p.Description != "" {
		b.WriteString("\n" + StyleDim.Render(p.Description) + "\n")
	}
	return b.String()
}

func buildTaskPanel(p *domain.Project) string {
	if len(p.Tasks) == 0 {
		return Dim("No tasks yet.")
	}

	var b strings.Builder
	b.WriteString(Header("Tasks") + "\n")
	for i, t := range p.Tasks {
		name := StyleFg.Render(t.Name)
		if t.Completed {
			name = StyleDim.Strikethrough(true).Render(t.Name)
		}
		b.WriteString(fmt.Sprintf("%s %s %s  %s",
			Dim(fmt.Sprintf("%2d.", i+1)),
			TaskMark(t.Completed),
			name,
			StyleYellow.Render(Money(t.Price)),
		))
		if t.Hours > 0 {
			b.WriteString(Dim(fmt.Sprintf("  %dh", t.Hours)))
		}
		b.WriteString("\n")
	}
	return b.String()
}
