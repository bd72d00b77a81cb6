package views

import (
	"cityscout/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Confirm       lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Label         lipgloss.Style
	LabelFocused  lipgloss.Style
	Field         lipgloss.Style
	Highlight     lipgloss.Style
	SelectionBg   lipgloss.Style
	Badge         lipgloss.Style
	Country       lipgloss.Style
	CardTitle     lipgloss.Style
	Featured      lipgloss.Style
	Popup         lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Confirm:  lipgloss.NewStyle().Bold(true),
		Dim:      lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10),
		LabelFocused:  lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true).Width(10),
		Field:         lipgloss.NewStyle(),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Badge:         lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Country:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		CardTitle:     lipgloss.NewStyle().Bold(true),
		Featured:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}

// GetCategoryColor returns the badge color for an event category
func GetCategoryColor(category domain.Category) string {
	switch category {
	case domain.CategoryMusic:
		return "170" // magenta
	case domain.CategorySports:
		return "78" // green
	case domain.CategoryArts:
		return "214" // yellow
	case domain.CategoryFood:
		return "203" // red
	case domain.CategoryTechnology:
		return "33" // blue
	case domain.CategoryBusiness:
		return "51" // cyan
	default:
		return "241"
	}
}
