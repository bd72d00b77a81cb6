package autocomplete

import (
	"fmt"
	"strings"

	"cityscout/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

// rowIndent lines dropdown rows up under the input text
const rowIndent = "  "

// View renders the input line followed by one line per suggestion while the
// dropdown is open. Row i of the dropdown is line i+1 of the output.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())

	state := m.selection.State()
	if !state.Open {
		return b.String()
	}
	for i, s := range state.Suggestions {
		b.WriteString("\n")
		b.WriteString(m.renderRow(s, i == state.Highlighted))
	}
	return b.String()
}

// Height returns the number of lines View produces
func (m *Model) Height() int {
	state := m.selection.State()
	if !state.Open {
		return 1
	}
	return 1 + len(state.Suggestions)
}

func (m *Model) renderRow(s domain.Suggestion, selected bool) string {
	name := highlightSpan(s.City.Name, s.Span, m.styles.Highlight)
	parts := []string{name}
	if s.City.Country != "" {
		parts = append(parts, m.styles.Country.Render(s.City.Country))
	}
	parts = append(parts, m.styles.Badge.Render(fmt.Sprintf("%d events", s.City.EventCount)))
	line := strings.Join(parts, "  ")

	if selected {
		return m.styles.SelectionBg.Render("› " + line)
	}
	return rowIndent + line
}

func highlightSpan(name string, span *domain.Span, style lipgloss.Style) string {
	if span == nil || span.Start < 0 || span.End > len(name) || span.Start >= span.End {
		return name
	}
	return name[:span.Start] + style.Render(name[span.Start:span.End]) + name[span.End:]
}
