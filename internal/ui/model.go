package ui

import (
	"fmt"
	"strconv"

	"cityscout/internal/config"
	"cityscout/internal/domain"
	"cityscout/internal/eventbus"
	"cityscout/internal/logic"
	"cityscout/internal/ui/autocomplete"
	"cityscout/internal/ui/handlers"
	"cityscout/internal/ui/input"
	inputtypes "cityscout/internal/ui/input/types"
	"cityscout/internal/ui/services/events"
	"cityscout/internal/ui/services/navigation"
	"cityscout/internal/ui/services/timer"
	"cityscout/internal/ui/state"
	"cityscout/internal/ui/views"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// Options wires the model to its data
type Options struct {
	Directory logic.Directory
	Events    logic.EventStore
	// Tick replaces tea.Tick for every field timer
	Tick timer.TickFunc
	// Resume is an encoded query to reopen on start, e.g. "city=Paris"
	Resume string
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state

	// UI-specific state not in AppState
	width  int
	height int
	help   help.Model
	layout *views.Layout // last rendered layout, for hit-testing

	directory logic.Directory
	events    logic.EventStore
	tick      timer.TickFunc
	resume    string

	document     *events.Bus            // synchronous in-process bus for widgets
	nav          *navigation.Service    // page history
	cursor       *navigation.Cursor     // results list cursor
	renderer     *views.Renderer        // view renderer
	inputHandler *input.Handler         // input handling
	eventHandler *handlers.EventHandler // domain events and status line
	pager        *PagerOps              // detail pager
	home         *searchForm            // home page form
	results      *searchForm            // results page filter form, rebuilt per search
	formSeq      int                    // makes results form ids unique
	logger       *log.Logger
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, opts Options) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	document := events.NewBus()

	appState := state.NewAppState()
	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		help:         help.New(),
		directory:    opts.Directory,
		events:       opts.Events,
		tick:         opts.Tick,
		resume:       opts.Resume,
		document:     document,
		nav:          navigation.NewService(document, navigation.Entry{Page: navigation.PageHome}),
		cursor:       navigation.NewCursor(document),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		eventHandler: handlers.NewEventHandler(appState),
		pager:        NewPagerOps(),
		logger:       log.WithPrefix("ui"),
	}

	m.home = newSearchForm("home", m.directory, document, m.formOptions(true))
	if !cfg.UI.HideFeatured {
		m.state.Featured = logic.Featured(m.events.Events())
	}

	document.Subscribe(events.TypeOf(navigation.NavigatedEvent{}), func(e any) tea.Cmd {
		nav := e.(navigation.NavigatedEvent)
		m.logger.Debug("navigated", "from", nav.From.URL(), "to", nav.To.URL(), "replace", nav.Replace, "back", nav.Back)
		return nil
	})
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

func (m *Model) formOptions(primary bool) formOptions {
	return formOptions{
		primary:  primary,
		settings: m.config.Suggest,
		tick:     m.tick,
		bus:      m.bus,
	}
}

// Init focuses the home form, or reopens the resumed search
func (m *Model) Init() tea.Cmd {
	if m.resume != "" {
		criteria := navigation.ParseQuery(m.resume)
		if criteria.City != "" {
			m.logger.Info("resuming search", "query", m.resume)
			m.home.Fill(criteria)
			return m.runSearch(criteria)
		}
	}
	return m.home.FocusField(inputtypes.FieldCity)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, m.cursor.SetViewportHeight(msg.Height, views.CardHeight+1)

	case tea.KeyMsg:
		if m.state.Popup != "" {
			switch msg.String() {
			case "esc", "q", "enter":
				m.state.Popup = ""
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		if m.state.Popup != "" || m.state.InPagerMode {
			return m, nil
		}
		return m, m.handleMouse(msg)

	case tea.BlurMsg:
		if form := m.activeForm(); form.Focused() == inputtypes.FieldCity {
			return m, form.city.Blur()
		}
		return m, nil

	case tea.FocusMsg:
		if form := m.activeForm(); form.Focused() == inputtypes.FieldCity && !form.city.Focused() {
			return m, form.city.Focus()
		}
		return m, nil

	case timer.FiredMsg:
		if field := m.fieldByID(msg.Owner); field != nil {
			return m, field.Update(msg)
		}
		return m, nil

	case autocomplete.CommitMsg:
		m.logger.Debug("city chosen", "field", msg.Owner, "city", msg.City.Name)
		if m.state.Banner.Kind == state.BannerError {
			m.state.ClearBanner()
		}
		return m, nil

	case autocomplete.SubmitRequestedMsg:
		if m.state.Page != navigation.PageHome || msg.Owner != m.home.city.ID() {
			return m, nil
		}
		if m.bus != nil {
			m.bus.Publish(eventbus.SubmitRequestedEvent{Field: msg.Owner})
		}
		return m, m.submit()

	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case pagerMsg:
		if msg.err != nil {
			m.logger.Warn("pager failed", "error", msg.err)
			m.state.Popup = msg.content
			return m, m.eventHandler.SetStatus(fmt.Sprintf("Pager unavailable: %v", msg.err))
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.InPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPagerMode = false
		return m, nil

	case handlers.StatusExpiredMsg:
		m.eventHandler.Expire(msg)
		return m, nil
	}

	// cursor blink and other widget messages
	form := m.activeForm()
	switch form.Focused() {
	case inputtypes.FieldCity:
		return m, form.city.Update(msg)
	case inputtypes.FieldDate:
		return m, form.UpdateDate(msg)
	}
	return m, nil
}

// handleKey gives the focused city dropdown the first look at a key, then
// the input modes, then the focused text field.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	var cmds []tea.Cmd

	form := m.activeForm()
	cityTried := false
	if m.inputHandler.CurrentMode() == inputtypes.ModeForm && form.Focused() == inputtypes.FieldCity {
		cmd, consumed := form.city.HandleKey(msg)
		cmds = append(cmds, cmd)
		if consumed {
			return tea.Batch(cmds...)
		}
		cityTried = true
	}

	actions, consumed := m.inputHandler.HandleKey(msg, m.context())
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}

	if !consumed && m.inputHandler.CurrentMode() == inputtypes.ModeForm {
		form = m.activeForm()
		switch form.Focused() {
		case inputtypes.FieldCity:
			if !cityTried {
				cmd, _ := form.city.HandleKey(msg)
				cmds = append(cmds, cmd)
			}
		case inputtypes.FieldDate:
			cmds = append(cmds, form.UpdateDate(msg))
		}
	}
	return tea.Batch(cmds...)
}

// handleMouse hit-tests the pointer against the last rendered layout and
// forwards clicks and motion to the widgets through the document bus.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	region, offset, found := views.HitTest(m.layout, msg.Y)

	hit := events.Hit{Row: events.RowInput}
	if found && region.Kind == views.RegionField {
		hit.Owner = region.Owner
		if offset > 0 {
			hit.Row = offset - 1
		}
	}

	switch {
	case msg.Action == tea.MouseActionMotion:
		return m.document.Publish(events.MotionEvent{Hit: hit, X: msg.X, Y: msg.Y})

	case msg.Button == tea.MouseButtonWheelUp && m.state.Page == navigation.PageResults:
		return m.cursor.Navigate(navigation.DirectionUp)

	case msg.Button == tea.MouseButtonWheelDown && m.state.Page == navigation.PageResults:
		return m.cursor.Navigate(navigation.DirectionDown)

	case msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft:
		return nil
	}

	cmds := []tea.Cmd{m.document.Publish(events.ClickEvent{Hit: hit, X: msg.X, Y: msg.Y})}
	if !found {
		return tea.Batch(cmds...)
	}

	switch region.Kind {
	case views.RegionField:
		// clicks on dropdown rows leave focus where it is
		if offset > 0 {
			break
		}
		form := m.activeForm()
		field := form.fieldFor(region.Owner)
		if field == inputtypes.FieldNone {
			break
		}
		if field == inputtypes.FieldCategory && form.Focused() == inputtypes.FieldCategory {
			form.CycleCategory(1)
			break
		}
		if m.inputHandler.CurrentMode() != inputtypes.ModeForm {
			cmds = append(cmds, m.changeMode(inputtypes.ModeForm))
		}
		cmds = append(cmds, form.FocusField(field))

	case views.RegionCard:
		if region.Owner == views.OwnerFeatured {
			if region.Index < len(m.state.Featured) {
				cmds = append(cmds, m.openEvent(m.state.Featured[region.Index].ID))
			}
			break
		}
		if m.inputHandler.CurrentMode() == inputtypes.ModeList && m.cursor.Index() == region.Index {
			cmds = append(cmds, m.processAction(inputtypes.OpenEventAction{}))
			break
		}
		cmds = append(cmds, m.changeMode(inputtypes.ModeList), m.cursor.MoveToIndex(region.Index))
	}
	return tea.Batch(cmds...)
}

// processAction applies one input action to the model
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	form := m.activeForm()

	switch a := action.(type) {
	case inputtypes.QuitAction:
		return tea.Quit

	case inputtypes.FocusFieldAction:
		// fields only take focus while the form mode is active
		if a.Field != inputtypes.FieldNone && m.inputHandler.CurrentMode() != inputtypes.ModeForm {
			return nil
		}
		return form.FocusField(a.Field)

	case inputtypes.CycleFieldAction:
		return form.CycleField(a.Delta)

	case inputtypes.CycleCategoryAction:
		form.CycleCategory(a.Delta)
		return nil

	case inputtypes.ClearCategoryAction:
		form.ClearCategory()
		return nil

	case inputtypes.SubmitAction:
		return m.submit()

	case inputtypes.ConfirmAction:
		pending := m.state.Pending
		m.state.ClearBanner()
		if !a.Accept || pending == nil {
			m.logger.Debug("unknown city search declined")
			return nil
		}
		return m.runSearch(*pending)

	case inputtypes.ApplyFiltersAction:
		return m.applyFilters()

	case inputtypes.ClearFiltersAction:
		return m.clearFilters()

	case inputtypes.NavigateAction:
		return m.cursor.Navigate(a.Direction)

	case inputtypes.OpenEventAction:
		event, ok := m.state.EventAt(m.cursor.Index())
		if !ok {
			return nil
		}
		return m.openEvent(event.ID)

	case inputtypes.BackAction:
		return m.back()

	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}
	return nil
}

// submit validates the home form and opens the results page
func (m *Model) submit() tea.Cmd {
	criteria := m.home.Criteria()

	if criteria.City == "" {
		m.state.ShowBanner(state.BannerError, "Please enter a city name", "")
		return m.focusHomeField(inputtypes.FieldCity)
	}
	if criteria.Date != "" && !logic.ValidDate(criteria.Date) {
		m.state.ShowBanner(state.BannerError, "Please enter the date as YYYY-MM-DD", "")
		return m.focusHomeField(inputtypes.FieldDate)
	}

	if _, known := m.directory.Lookup(criteria.City); !known {
		suggestion := logic.DidYouMean(criteria.City, m.directory.Cities())
		hint := ""
		if suggestion != "" {
			hint = fmt.Sprintf("Did you mean %s?", suggestion)
		}
		m.state.ShowBanner(state.BannerConfirm,
			fmt.Sprintf(`"%s" is not in our current database. Search anyway? (y/n)`, criteria.City), hint)
		m.state.Pending = &criteria
		if m.bus != nil {
			m.bus.Publish(eventbus.UnknownCityEvent{City: criteria.City, Suggestion: suggestion})
		}
		return m.changeMode(inputtypes.ModeConfirm)
	}

	return m.runSearch(criteria)
}

func (m *Model) focusHomeField(field inputtypes.Field) tea.Cmd {
	cmds := []tea.Cmd{m.changeMode(inputtypes.ModeForm)}
	return tea.Batch(append(cmds, m.home.FocusField(field))...)
}

// runSearch navigates from the home page to the results for criteria
func (m *Model) runSearch(criteria domain.FilterCriteria) tea.Cmd {
	m.state.ClearBanner()
	cmds := []tea.Cmd{m.nav.Navigate(navigation.PageResults, criteria)}

	if m.bus != nil {
		m.bus.Publish(eventbus.SearchSubmittedEvent{
			Criteria: criteria,
			Query:    navigation.BuildQuery(criteria),
		})
	}
	return tea.Batch(append(cmds, m.showResults(criteria, true))...)
}

// applyFilters re-filters the results page from its form
func (m *Model) applyFilters() tea.Cmd {
	criteria := m.results.Criteria()
	if criteria.Date != "" && !logic.ValidDate(criteria.Date) {
		m.state.ShowBanner(state.BannerError, "Please enter the date as YYYY-MM-DD", "")
		return m.results.FocusField(inputtypes.FieldDate)
	}
	m.state.ClearBanner()

	var cmds []tea.Cmd
	if criteria == m.state.Criteria {
		cmds = append(cmds, m.nav.Replace(criteria))
	} else {
		cmds = append(cmds, m.nav.Navigate(navigation.PageResults, criteria))
	}
	cmds = append(cmds, m.showResults(criteria, false))

	if m.bus != nil {
		m.bus.Publish(eventbus.FiltersAppliedEvent{Criteria: criteria, Matches: m.state.ResultCount()})
	}
	return tea.Batch(cmds...)
}

// clearFilters lists every event again
func (m *Model) clearFilters() tea.Cmd {
	m.state.ClearBanner()
	criteria := domain.FilterCriteria{}
	cmds := []tea.Cmd{
		m.nav.Navigate(navigation.PageResults, criteria),
		m.showResults(criteria, true),
	}
	if m.bus != nil {
		m.bus.Publish(eventbus.FiltersClearedEvent{})
	}
	return tea.Batch(cmds...)
}

// back returns to the previous history entry
func (m *Model) back() tea.Cmd {
	entry, ok, cmd := m.nav.Back()
	if !ok {
		return nil
	}
	if entry.Page == navigation.PageResults {
		return tea.Batch(cmd, m.showResults(entry.Criteria, true))
	}
	return tea.Batch(cmd, m.showHome())
}

// showResults filters the events and switches to the results page.
// rebuild replaces the filter form with one holding criteria.
func (m *Model) showResults(criteria domain.FilterCriteria, rebuild bool) tea.Cmd {
	var cmds []tea.Cmd
	if m.state.Page == navigation.PageHome {
		cmds = append(cmds, m.home.FocusField(inputtypes.FieldNone))
	}

	result := logic.Filter(m.events.Events(), criteria, m.directory)
	m.state.Page = navigation.PageResults
	m.state.SetResults(criteria, result)
	m.cursor.Reset(len(result.Events))
	m.logger.Debug("showing results", "url", m.nav.URL(), "matches", len(result.Events))

	if rebuild || m.results == nil {
		m.rebuildResultsForm(criteria)
	}

	if len(result.Events) > 0 {
		return tea.Batch(append(cmds, m.changeMode(inputtypes.ModeList))...)
	}
	cmds = append(cmds, m.changeMode(inputtypes.ModeForm), m.results.FocusField(inputtypes.FieldCity))
	return tea.Batch(cmds...)
}

func (m *Model) rebuildResultsForm(criteria domain.FilterCriteria) {
	if m.results != nil {
		m.results.Destroy()
	}
	m.formSeq++
	m.results = newSearchForm("filter-"+strconv.Itoa(m.formSeq), m.directory, m.document, m.formOptions(false))
	m.results.Fill(criteria)
}

// showHome switches back to the home page
func (m *Model) showHome() tea.Cmd {
	if m.results != nil {
		m.results.Destroy()
		m.results = nil
	}
	m.state.Page = navigation.PageHome
	m.state.SetResults(domain.FilterCriteria{}, domain.FilterResult{})
	m.cursor.Reset(0)
	return m.focusHomeField(inputtypes.FieldCity)
}

// openEvent shows an event in the pager, or in a popup without a terminal
func (m *Model) openEvent(id int) tea.Cmd {
	event, ok := m.events.Get(id)
	if !ok {
		m.logger.Warn("event not in store", "id", id)
		return m.eventHandler.SetStatus(fmt.Sprintf("Event %d is no longer available", id))
	}
	if m.bus != nil {
		m.bus.Publish(eventbus.EventOpenedEvent{ID: event.ID})
	}
	content := m.renderer.Events().RenderDetails(event)
	if m.pager.Available() {
		return m.showInPager(content)
	}
	m.state.Popup = content
	return nil
}

// changeMode switches input modes and applies the modes' enter/exit actions
func (m *Model) changeMode(mode inputtypes.Mode) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range m.inputHandler.ChangeMode(mode, m.context()) {
		cmds = append(cmds, m.processAction(action))
	}
	return tea.Batch(cmds...)
}

func (m *Model) context() input.ModelContext {
	return input.ModelContext{
		CurrentPage: m.state.Page,
		Focused:     m.activeForm().Focused(),
		Results:     m.state.ResultCount(),
	}
}

// activeForm returns the form on the current page
func (m *Model) activeForm() *searchForm {
	if m.state.Page == navigation.PageResults && m.results != nil {
		return m.results
	}
	return m.home
}

// fieldByID finds a live autocomplete field
func (m *Model) fieldByID(id string) *autocomplete.Model {
	switch {
	case id == m.home.city.ID():
		return m.home.city
	case m.results != nil && id == m.results.city.ID():
		return m.results.city
	}
	return nil
}

// View renders the UI
func (m *Model) View() string {
	if m.state.InPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}
	if m.state.Popup != "" {
		return m.renderer.Popup(m.state.Popup, m.width, m.height)
	}

	view, layout := m.renderer.Render(m.pageView())
	m.layout = layout
	return view
}

func (m *Model) pageView() views.PageView {
	form := m.activeForm()
	mode := m.inputHandler.CurrentMode()

	keys := helpKeys{mode: mode, page: m.state.Page}
	if form.city.Selection().Open && form.Focused() == inputtypes.FieldCity {
		dropdown := form.city.KeyMap()
		keys.dropdown = &dropdown
	}

	v := views.PageView{
		Width:    m.width,
		Height:   m.height,
		Title:    "cityscout",
		Location: m.nav.URL(),
		Fields:   form.Fields(),
		Banner:   m.state.Banner,
		Cursor:   -1,
		Status:   m.state.StatusMessage,
		Help:     m.help.View(keys),
	}

	if m.state.Page == navigation.PageHome {
		v.Subtitle = "Find events happening in your city"
		if len(m.state.Featured) > 0 {
			v.Heading = "Featured Events"
			v.Cards = m.state.Featured
			v.CardOwner = views.OwnerFeatured
		}
		return v
	}

	criteria := m.state.Criteria
	v.Subtitle = logic.ResultsTitle(criteria)
	if count := m.state.ResultCount(); count > 0 {
		v.Heading = logic.ResultsSummary(count, criteria)
	} else {
		v.EmptyText, v.EmptyHint = logic.NoResultsMessage(criteria, m.state.Result)
	}
	v.Cards = m.state.Result.Events
	v.CardOwner = views.OwnerResults
	v.Cursor = m.cursor.Index()
	v.Offset = m.cursor.ViewportOffset()
	v.Visible = m.cursor.ViewportHeight()
	v.ListFocused = mode == inputtypes.ModeList
	return v
}
