package autocomplete

import (
	"strings"

	"cityscout/internal/config"
	"cityscout/internal/domain"
	"cityscout/internal/eventbus"
	"cityscout/internal/logic"
	"cityscout/internal/ui/services/events"
	"cityscout/internal/ui/services/search"
	"cityscout/internal/ui/services/selection"
	"cityscout/internal/ui/services/timer"
	"cityscout/internal/ui/views"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

const (
	blurTask   = "blur"
	submitTask = "submit"
)

// Options configure a field
type Options struct {
	// Primary fields request a form submit shortly after a commit
	Primary     bool
	Placeholder string
	Width       int
	Settings    config.SuggestSettings
	// Tick replaces tea.Tick for every timer of the field
	Tick timer.TickFunc
	// Bus receives CitySelectedEvent on commit. May be nil.
	Bus eventbus.EventBus
}

// Model is a city input with a suggestion dropdown. It is used through a
// pointer and owned by exactly one host, which routes its FiredMsg values
// (by Owner) and document clicks to it.
type Model struct {
	id     string
	opts   Options
	input  textinput.Model
	keys   KeyMap
	styles *views.Styles

	search    *search.Service
	selection *selection.Machine
	blur      *timer.Task
	submit    *timer.Task

	bus         eventbus.EventBus
	unsubscribe []func()
	destroyed   bool
	logger      *log.Logger
}

// New creates a field and attaches it to the document bus
func New(id string, directory logic.Directory, document *events.Bus, opts Options) *Model {
	input := textinput.New()
	input.Placeholder = opts.Placeholder
	input.Prompt = ""
	input.CharLimit = 100
	if opts.Width > 0 {
		input.Width = opts.Width
	}

	m := &Model{
		id:     id,
		opts:   opts,
		input:  input,
		keys:   DefaultKeyMap(),
		styles: views.NewStyles(),
		search: search.NewService(id, directory,
			timer.New(id, search.TaskName, opts.Settings.DebounceDelay(), opts.Tick),
			document,
			search.Options{MinLength: opts.Settings.MinLength, MaxSuggestions: opts.Settings.MaxSuggestions},
		),
		selection: selection.NewMachine(id, document),
		blur:      timer.New(id, blurTask, opts.Settings.BlurGrace(), opts.Tick),
		submit:    timer.New(id, submitTask, opts.Settings.SubmitDelay(), opts.Tick),
		bus:       opts.Bus,
		logger:    log.WithPrefix("autocomplete").With("field", id),
	}

	m.unsubscribe = []func(){
		document.Subscribe(events.TypeOf(events.ClickEvent{}), m.onClick),
		document.Subscribe(events.TypeOf(events.MotionEvent{}), m.onMotion),
	}
	return m
}

// ID returns the field id used to route messages and hits
func (m *Model) ID() string {
	return m.id
}

// Value returns the current input text
func (m *Model) Value() string {
	return m.input.Value()
}

// Focused reports whether the input has focus
func (m *Model) Focused() bool {
	return m.input.Focused()
}

// Selection returns a snapshot of the dropdown state
func (m *Model) Selection() domain.SelectionState {
	return m.selection.State()
}

// Evaluations returns how many times suggestions were computed
func (m *Model) Evaluations() int {
	return m.search.Evaluations()
}

// KeyMap returns the dropdown bindings for help rendering
func (m *Model) KeyMap() KeyMap {
	return m.keys
}

// Reset replaces the input text without scheduling a search and closes
// the dropdown.
func (m *Model) Reset(value string) tea.Cmd {
	m.search.Cancel()
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.selection.Close(selection.ReasonEmpty)
}

// Focus gives the input focus and offers suggestions right away: matches
// when the text is long enough, popular cities when it is empty.
func (m *Model) Focus() tea.Cmd {
	if m.destroyed {
		return nil
	}
	m.blur.Cancel()
	cmds := []tea.Cmd{m.input.Focus()}

	value := m.input.Value()
	switch {
	case strings.TrimSpace(value) != "" && m.search.Eligible(value):
		cmds = append(cmds, m.evaluate())
	case logic.Normalize(value) == "":
		cmds = append(cmds, m.selection.Show(m.search.Defaults()))
	}
	return tea.Batch(cmds...)
}

// Blur drops focus. The dropdown stays open for the blur grace period so a
// click on a suggestion can still land.
func (m *Model) Blur() tea.Cmd {
	if m.destroyed {
		return nil
	}
	m.input.Blur()
	if !m.selection.IsOpen() && !m.search.Pending() {
		return nil
	}
	return m.blur.Arm()
}

// Destroy cancels every pending timer and detaches from the document bus.
// The field ignores all messages afterwards.
func (m *Model) Destroy() {
	if m.destroyed {
		return
	}
	m.search.Cancel()
	m.blur.Cancel()
	m.submit.Cancel()
	for _, off := range m.unsubscribe {
		off()
	}
	m.unsubscribe = nil
	m.selection.Close(selection.ReasonDestroy)
	m.input.Blur()
	m.destroyed = true
	m.logger.Debug("destroyed")
}

// Update handles timer firings, keys and cursor blink messages
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.destroyed {
		return nil
	}

	switch msg := msg.(type) {
	case timer.FiredMsg:
		return m.handleFired(msg)
	case tea.KeyMsg:
		cmd, _ := m.HandleKey(msg)
		return cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// HandleKey processes a key press for the focused field. consumed is false
// for keys the host should handle itself, such as Enter with the dropdown
// closed, Tab, or any key that left the text unchanged.
func (m *Model) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if m.destroyed || !m.input.Focused() {
		return nil, false
	}

	if m.selection.IsOpen() {
		switch {
		case key.Matches(msg, m.keys.Next):
			return m.selection.Next(), true
		case key.Matches(msg, m.keys.Prev):
			return m.selection.Prev(), true
		case key.Matches(msg, m.keys.Accept):
			city, ok, cmd := m.selection.Confirm()
			if !ok {
				return nil, true
			}
			return m.commit(city, cmd), true
		case key.Matches(msg, m.keys.Tab):
			city, ok, cmd := m.selection.Confirm()
			if !ok {
				return nil, false
			}
			return m.commit(city, cmd), false
		case key.Matches(msg, m.keys.Dismiss):
			m.search.Cancel()
			return m.selection.Dismiss(), true
		}
	}

	switch msg.Type {
	case tea.KeyEnter, tea.KeyTab, tea.KeyShiftTab, tea.KeyEsc, tea.KeyUp, tea.KeyDown:
		return nil, false
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		// cursor movement and shortcuts stay visible to the host
		return cmd, false
	}
	m.search.Cancel()
	return tea.Batch(cmd, m.search.Schedule(m.input.Value())), true
}

func (m *Model) handleFired(msg timer.FiredMsg) tea.Cmd {
	switch {
	case m.search.Accept(msg):
		return m.evaluate()
	case m.blur.Accept(msg):
		m.search.Cancel()
		return m.selection.Close(selection.ReasonBlur)
	case m.submit.Accept(msg):
		m.logger.Debug("requesting submit")
		return emit(SubmitRequestedMsg{Owner: m.id})
	}
	return nil
}

// evaluate recomputes suggestions from the value the input holds now
func (m *Model) evaluate() tea.Cmd {
	list, ok := m.search.Evaluate(m.input.Value())
	if !ok {
		return m.selection.Close(selection.ReasonTooShort)
	}
	return m.selection.Show(list)
}

// commit writes the chosen city into the input. A commit wins over a
// pending blur close and over a debounced evaluation still in flight.
func (m *Model) commit(city domain.City, transition tea.Cmd) tea.Cmd {
	m.search.Cancel()
	m.blur.Cancel()
	m.input.SetValue(city.Name)
	m.input.CursorEnd()
	m.logger.Debug("committed", "city", city.Name)

	if m.bus != nil {
		m.bus.Publish(eventbus.CitySelectedEvent{Field: m.id, City: city})
	}

	cmds := []tea.Cmd{transition, emit(CommitMsg{Owner: m.id, City: city})}
	if m.opts.Primary {
		cmds = append(cmds, m.submit.Arm())
	}
	return tea.Batch(cmds...)
}

func (m *Model) onClick(e any) tea.Cmd {
	click := e.(events.ClickEvent)
	if click.Owner != m.id {
		m.search.Cancel()
		return m.selection.Close(selection.ReasonOutside)
	}
	if click.Row == events.RowInput {
		return nil
	}
	city, ok, cmd := m.selection.Pick(click.Row)
	if !ok {
		return cmd
	}
	return m.commit(city, cmd)
}

func (m *Model) onMotion(e any) tea.Cmd {
	motion := e.(events.MotionEvent)
	if motion.Owner != m.id || motion.Row < 0 {
		return nil
	}
	return m.selection.Hover(motion.Row)
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
