package views

import (
	"fmt"
	"strings"

	"cityscout/internal/domain"
	"cityscout/internal/logic"

	"github.com/charmbracelet/lipgloss"
)

// CardHeight is the number of lines an event card takes
const CardHeight = 3

// EventRenderer handles rendering of event cards
type EventRenderer struct {
	styles *Styles
}

// NewEventRenderer creates a new event renderer
func NewEventRenderer(styles *Styles) *EventRenderer {
	return &EventRenderer{
		styles: styles,
	}
}

// RenderCard renders an event as a card of CardHeight lines
func (r *EventRenderer) RenderCard(e domain.Event, isSelected bool, width int) string {
	marker := "  "
	nameStyle := r.styles.CardTitle
	if isSelected {
		marker = r.styles.Highlight.Render("› ")
		nameStyle = nameStyle.Foreground(lipgloss.Color("99"))
	}

	title := r.RenderBadge(e.Category) + " " + nameStyle.Render(e.Name)
	if e.Featured {
		title += " " + r.styles.Featured.Render("★")
	}

	where := e.City
	if e.Location != "" {
		where = e.Location + ", " + e.City
	}
	when := r.styles.Subtitle.Render(fmt.Sprintf("%s · %s", logic.FormatDate(e.Date), where))

	preview := r.styles.Dim.Render(logic.Preview(e.Description))

	lines := []string{marker + title, "    " + when, "    " + preview}
	if width > 4 {
		clip := lipgloss.NewStyle().MaxWidth(width)
		for i, line := range lines {
			lines[i] = clip.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// RenderBadge renders the colored category label
func (r *EventRenderer) RenderBadge(category domain.Category) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(GetCategoryColor(category))).
		Bold(true).
		Render("[" + logic.CategoryTitle(string(category)) + "]")
}

// RenderDetails renders the full event for the detail pager
func (r *EventRenderer) RenderDetails(e domain.Event) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render(e.Name))
	b.WriteString("\n\n")
	b.WriteString(r.RenderBadge(e.Category))
	if e.Featured {
		b.WriteString("  " + r.styles.Featured.Render("★ Featured"))
	}
	b.WriteString("\n\n")

	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(r.styles.Label.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}
	row("Date", logic.FormatDate(e.Date))
	row("City", e.City)
	row("Location", e.Location)
	row("Image", e.Image)
	row("ID", fmt.Sprintf("%d", e.ID))

	if e.Description != "" {
		b.WriteString("\n")
		b.WriteString(e.Description)
		b.WriteString("\n")
	}
	return b.String()
}
