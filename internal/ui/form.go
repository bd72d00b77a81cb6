package ui

import (
	"strings"

	"cityscout/internal/config"
	"cityscout/internal/domain"
	"cityscout/internal/eventbus"
	"cityscout/internal/logic"
	"cityscout/internal/ui/autocomplete"
	inputtypes "cityscout/internal/ui/input/types"
	"cityscout/internal/ui/services/events"
	"cityscout/internal/ui/services/timer"
	"cityscout/internal/ui/views"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const anyCategory = -1

// searchForm is the city / category / date form shown on both pages
type searchForm struct {
	id       string
	city     *autocomplete.Model
	category int // index into domain.Categories, anyCategory for none
	date     textinput.Model
	focus    inputtypes.Field
}

type formOptions struct {
	primary  bool
	settings config.SuggestSettings
	tick     timer.TickFunc
	bus      eventbus.EventBus
}

func newSearchForm(id string, directory logic.Directory, document *events.Bus, opts formOptions) *searchForm {
	date := textinput.New()
	date.Placeholder = "YYYY-MM-DD"
	date.Prompt = ""
	date.CharLimit = 10
	date.Width = 12

	return &searchForm{
		id: id,
		city: autocomplete.New(id+"-city", directory, document, autocomplete.Options{
			Primary:     opts.primary,
			Placeholder: "Enter a city",
			Width:       30,
			Settings:    opts.settings,
			Tick:        opts.tick,
			Bus:         opts.bus,
		}),
		category: anyCategory,
		date:     date,
	}
}

func (f *searchForm) categoryOwner() string { return f.id + "-category" }
func (f *searchForm) dateOwner() string     { return f.id + "-date" }

// fieldFor maps a hit-test owner back to a field
func (f *searchForm) fieldFor(owner string) inputtypes.Field {
	switch owner {
	case f.city.ID():
		return inputtypes.FieldCity
	case f.categoryOwner():
		return inputtypes.FieldCategory
	case f.dateOwner():
		return inputtypes.FieldDate
	}
	return inputtypes.FieldNone
}

// Criteria reads the form into filter criteria
func (f *searchForm) Criteria() domain.FilterCriteria {
	criteria := domain.FilterCriteria{
		City: strings.TrimSpace(f.city.Value()),
		Date: strings.TrimSpace(f.date.Value()),
	}
	if f.category != anyCategory {
		criteria.Category = string(domain.Categories[f.category])
	}
	return criteria
}

// Fill writes criteria into the form without triggering suggestions
func (f *searchForm) Fill(criteria domain.FilterCriteria) tea.Cmd {
	f.category = anyCategory
	if c, ok := domain.ParseCategory(logic.Normalize(criteria.Category)); ok {
		for i, known := range domain.Categories {
			if known == c {
				f.category = i
			}
		}
	}
	f.date.SetValue(criteria.Date)
	return f.city.Reset(criteria.City)
}

// Focused returns the field with focus
func (f *searchForm) Focused() inputtypes.Field {
	return f.focus
}

// FocusField moves focus to field. FieldNone blurs the form.
func (f *searchForm) FocusField(field inputtypes.Field) tea.Cmd {
	if field == f.focus {
		return nil
	}

	var cmds []tea.Cmd
	switch f.focus {
	case inputtypes.FieldCity:
		cmds = append(cmds, f.city.Blur())
	case inputtypes.FieldDate:
		f.date.Blur()
	}

	f.focus = field
	switch field {
	case inputtypes.FieldCity:
		cmds = append(cmds, f.city.Focus())
	case inputtypes.FieldDate:
		cmds = append(cmds, f.date.Focus())
	}
	return tea.Batch(cmds...)
}

// CycleField moves focus delta fields along the tab order, wrapping around
func (f *searchForm) CycleField(delta int) tea.Cmd {
	current := -1
	for i, field := range inputtypes.Fields {
		if field == f.focus {
			current = i
		}
	}
	n := len(inputtypes.Fields)
	next := 0
	if current >= 0 {
		next = ((current+delta)%n + n) % n
	}
	return f.FocusField(inputtypes.Fields[next])
}

// CycleCategory steps through "any" and the known categories
func (f *searchForm) CycleCategory(delta int) {
	n := len(domain.Categories) + 1
	pos := f.category + 1 // "any" sits at position 0
	f.category = ((pos+delta)%n+n)%n - 1
}

// ClearCategory resets the category to "any"
func (f *searchForm) ClearCategory() {
	f.category = anyCategory
}

// UpdateDate forwards a message to the date input
func (f *searchForm) UpdateDate(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.date, cmd = f.date.Update(msg)
	return cmd
}

// Fields returns the form rows for rendering
func (f *searchForm) Fields() []views.FieldView {
	category := "Any category"
	if f.category != anyCategory {
		category = logic.CategoryTitle(string(domain.Categories[f.category]))
	}
	if f.focus == inputtypes.FieldCategory {
		category = "‹ " + category + " ›"
	}

	return []views.FieldView{
		{Owner: f.city.ID(), Label: "City", Body: f.city.View(), Focused: f.focus == inputtypes.FieldCity},
		{Owner: f.categoryOwner(), Label: "Category", Body: category, Focused: f.focus == inputtypes.FieldCategory},
		{Owner: f.dateOwner(), Label: "Date", Body: f.date.View(), Focused: f.focus == inputtypes.FieldDate},
	}
}

// Destroy releases the city field's timers and listeners
func (f *searchForm) Destroy() {
	f.city.Destroy()
	f.date.Blur()
	f.focus = inputtypes.FieldNone
}
