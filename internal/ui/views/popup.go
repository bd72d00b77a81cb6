package views

import (
	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopup centers a bordered popup on an otherwise empty screen
func (pr *PopupRenderer) RenderPopup(content string, width, height int) string {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	box := pr.styles.Popup.
		MaxWidth(width - 4).
		Render(content + "\n\n" + pr.styles.Help.Render("esc to close"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
