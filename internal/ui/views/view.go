package views

import (
	"fmt"
	"strings"

	"cityscout/internal/domain"
	"cityscout/internal/ui/state"

	"github.com/charmbracelet/lipgloss"
)

// Card region owners
const (
	OwnerFeatured = "featured"
	OwnerResults  = "results"
)

// frameTop is the number of lines the main container pads above the layout
const frameTop = 1

// FieldView is one labelled form row
type FieldView struct {
	Owner   string
	Label   string
	Body    string // may span several lines when a dropdown is open
	Focused bool
}

// PageView contains all the state needed for rendering a page
type PageView struct {
	Width    int
	Height   int
	Location string
	Title    string
	Subtitle string
	Fields   []FieldView
	Banner   state.Banner

	// Heading is rendered above the cards, e.g. the results summary
	Heading   string
	EmptyText string
	EmptyHint string

	Cards       []domain.Event
	CardOwner   string
	Cursor      int // -1 for no highlighted card
	Offset      int
	Visible     int // 0 shows every card
	ListFocused bool

	Status string
	Help   string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	eventRender *EventRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		eventRender: NewEventRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles returns the styles shared by every renderer
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Events returns the event card renderer
func (r *Renderer) Events() *EventRenderer {
	return r.eventRender
}

// Popup renders content centered on the screen
func (r *Renderer) Popup(content string, width, height int) string {
	return r.popupRender.RenderPopup(content, width, height)
}

// Layout lays a page out line by line without the outer frame
func (r *Renderer) Layout(v PageView) *Layout {
	l := &Layout{}

	l.Add(r.renderTitleLine(v))
	if v.Subtitle != "" {
		l.Add(r.styles.Subtitle.Render(v.Subtitle))
	}
	l.Blank()

	for _, f := range v.Fields {
		l.AddRegion(RegionField, f.Owner, 0, r.renderField(f))
	}

	if v.Banner.Kind != state.BannerNone {
		l.Blank()
		l.Add(r.renderBanner(v.Banner))
	}
	l.Blank()

	switch {
	case v.EmptyText != "":
		l.Add(r.styles.Confirm.Render(v.EmptyText))
		if v.EmptyHint != "" {
			l.Add(r.styles.Dim.Render(v.EmptyHint))
		}
	case v.Heading != "":
		l.Add(r.styles.Title.Render(v.Heading))
		l.Blank()
	}

	r.renderCards(l, v)
	return l
}

// Render produces the complete view and the layout used for hit-testing
func (r *Renderer) Render(v PageView) (string, *Layout) {
	l := r.Layout(v)
	content := l.String()

	footer := make([]string, 0, 2)
	if v.Status != "" {
		footer = append(footer, r.styles.Status.Render(v.Status))
	}
	if v.Help != "" {
		footer = append(footer, r.styles.Help.Render(v.Help))
	}

	// Push the footer to the bottom of the screen
	if len(footer) > 0 {
		availableLines := v.Height - 2
		if availableLines <= 0 {
			availableLines = 22
		}
		paddingNeeded := availableLines - l.Lines() - len(footer)
		if paddingNeeded > 0 {
			content += strings.Repeat("\n", paddingNeeded)
		}
		content += "\n" + strings.Join(footer, "\n")
	}

	mainStyle := r.styles.Main
	if v.Height > 0 {
		mainStyle = mainStyle.MaxHeight(v.Height)
	}
	return mainStyle.Render(content), l
}

// HitTest maps a screen row to the region under it
func HitTest(l *Layout, y int) (Region, int, bool) {
	if l == nil {
		return Region{}, 0, false
	}
	return l.RegionAt(y - frameTop)
}

func (r *Renderer) renderTitleLine(v PageView) string {
	logo := r.styles.Title.Render(v.Title)
	if v.Location == "" {
		return logo
	}

	right := r.styles.Dim.Render(v.Location)
	termWidth := v.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func (r *Renderer) renderField(f FieldView) string {
	label := r.styles.Label.Render(f.Label)
	if f.Focused {
		label = r.styles.LabelFocused.Render(f.Label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, label, r.styles.Field.Render(f.Body))
}

func (r *Renderer) renderBanner(b state.Banner) string {
	var text string
	switch b.Kind {
	case state.BannerError:
		text = r.styles.StatusError.Render(b.Text)
	case state.BannerConfirm:
		text = r.styles.StatusWarning.Render(b.Text)
	default:
		text = r.styles.StatusSuccess.Render(b.Text)
	}
	if b.Hint != "" {
		text += "\n" + r.styles.Dim.Render(b.Hint)
	}
	return text
}

func (r *Renderer) renderCards(l *Layout, v PageView) {
	if len(v.Cards) == 0 {
		return
	}

	first, last := 0, len(v.Cards)
	if v.Visible > 0 {
		first = min(max(v.Offset, 0), len(v.Cards)-1)
		last = min(first+v.Visible, len(v.Cards))
	}

	if first > 0 {
		l.Add(r.styles.Dim.Render(fmt.Sprintf("↑ %d more above ↑", first)))
	}
	cardWidth := v.Width - 4
	for i := first; i < last; i++ {
		selected := v.ListFocused && i == v.Cursor
		l.AddRegion(RegionCard, v.CardOwner, i, r.eventRender.RenderCard(v.Cards[i], selected, cardWidth))
		if i < last-1 {
			l.Blank()
		}
	}
	if below := len(v.Cards) - last; below > 0 {
		l.Add(r.styles.Dim.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}
}
