package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"datepick/internal/config"
	"datepick/internal/dateadapter"
	"datepick/internal/selection"
	"datepick/internal/strategy"
	"datepick/internal/ui/views"
)

// Option customises a Model.
type Option func(*Model)

// WithRangeStrategy replaces the default range selection strategy.
func WithRangeStrategy(s strategy.RangeStrategy[time.Time]) Option {
	return func(m *Model) {
		m.strategy = s
	}
}

// Model is the calendar picker. It owns the global selection model and
// forwards key presses to it, through the range strategy in range mode.
type Model struct {
	config   *config.Config
	adapter  *dateadapter.TimeAdapter
	strategy strategy.RangeStrategy[time.Time]
	sel      selector

	active time.Time

	// UI-specific state
	width         int
	height        int
	keys          KeyMap
	help          help.Model
	renderer      *views.Renderer
	helpRenderer  *HelpRenderer
	statusMessage string
	statusIsError bool

	unsubscribe func()
	done        bool
	result      Result
}

// NewModel creates a picker for cfg. The cursor starts on cfg.StartDate, or
// today when it is unset.
func NewModel(cfg *config.Config, adapter *dateadapter.TimeAdapter, opts ...Option) (*Model, error) {
	m := &Model{
		config:   cfg,
		adapter:  adapter,
		keys:     DefaultKeyMap(cfg.UseActions),
		help:     help.New(),
		renderer: views.NewRenderer(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.strategy == nil {
		m.strategy = strategy.NewDefault[time.Time](adapter)
	}

	m.active = adapter.Today()
	if cfg.StartDate != "" {
		start, err := adapter.Parse(cfg.StartDate, cfg.DateFormat)
		if err != nil {
			return nil, fmt.Errorf("invalid start date: %w", err)
		}
		m.active = start
	}

	switch cfg.Mode {
	case config.ModeSingle:
		global := selection.NewSingleModel[time.Time](adapter)
		m.unsubscribe = global.Subscribe(func(c selection.Change[*time.Time]) {
			log.Printf("Selection changed: %s", formatOptional(c.Selection, cfg.DateFormat, "none"))
		})
		m.sel = newSingleSelector(adapter, global, cfg.UseActions)
	case config.ModeRange:
		global := selection.NewRangeModel[time.Time](adapter)
		m.unsubscribe = global.Subscribe(func(c selection.Change[selection.DateRange[time.Time]]) {
			log.Printf("Selection changed: %s → %s",
				formatOptional(c.Selection.Start, cfg.DateFormat, "start"),
				formatOptional(c.Selection.End, cfg.DateFormat, "end"))
		})
		m.sel = newRangeSelector(adapter, m.strategy, global, cfg.UseActions, cfg.ShowPreview)
	default:
		return nil, fmt.Errorf("unknown selection mode %q", cfg.Mode)
	}
	m.keys.Move.SetEnabled(cfg.Mode == config.ModeRange)
	m.helpRenderer = NewHelpRenderer(m.keys)
	return m, nil
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			m.setStatus(fmt.Sprintf("Could not show help: %v", msg.err), true)
		}
	case tea.KeyMsg:
		if m.done {
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.setStatus("", false)
	rs, isRange := m.sel.(*rangeSelector)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.finish(true)
	case key.Matches(msg, m.keys.Cancel):
		if isRange && rs.dragging() {
			rs.cancelDrag()
			m.setStatus("Move cancelled", false)
			return m, nil
		}
		return m.finish(true)
	case key.Matches(msg, m.keys.Help):
		return m, showHelpInPager(m.helpRenderer.Render(m.config.Mode))
	case key.Matches(msg, m.keys.Left):
		m.moveTo(m.adapter.AddCalendarDays(m.active, -1))
	case key.Matches(msg, m.keys.Right):
		m.moveTo(m.adapter.AddCalendarDays(m.active, 1))
	case key.Matches(msg, m.keys.Up):
		m.moveTo(m.adapter.AddCalendarDays(m.active, -7))
	case key.Matches(msg, m.keys.Down):
		m.moveTo(m.adapter.AddCalendarDays(m.active, 7))
	case key.Matches(msg, m.keys.PrevMonth):
		m.moveTo(m.adapter.AddCalendarMonths(m.active, -1))
	case key.Matches(msg, m.keys.NextMonth):
		m.moveTo(m.adapter.AddCalendarMonths(m.active, 1))
	case key.Matches(msg, m.keys.PrevYear):
		m.moveTo(m.adapter.AddCalendarYears(m.active, -1))
	case key.Matches(msg, m.keys.NextYear):
		m.moveTo(m.adapter.AddCalendarYears(m.active, 1))
	case key.Matches(msg, m.keys.Today):
		m.moveTo(m.adapter.Today())
	case key.Matches(msg, m.keys.Move):
		if rs.dragging() {
			rs.drop(m.active)
			return m, nil
		}
		if !rs.grab(m.active) {
			m.setStatus("Select a complete range before moving it", true)
		}
	case key.Matches(msg, m.keys.Select):
		if isRange && rs.dragging() {
			rs.drop(m.active)
			return m, nil
		}
		m.sel.pick(m.active)
		if !m.sel.buffered() && m.sel.complete() {
			return m.finish(false)
		}
	case key.Matches(msg, m.keys.Clear):
		m.sel.clear()
	case key.Matches(msg, m.keys.Apply):
		return m.finish(false)
	}
	return m, nil
}

// moveTo moves the cursor and refreshes previews.
func (m *Model) moveTo(d time.Time) {
	m.active = d
	m.sel.hover(d)
}

// finish commits or discards buffered edits, closes the models and quits.
func (m *Model) finish(cancelled bool) (tea.Model, tea.Cmd) {
	if cancelled {
		m.sel.cancel()
	} else {
		m.sel.apply()
	}
	m.result = m.sel.result()
	m.result.Cancelled = cancelled
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	m.sel.close()
	m.done = true
	return m, tea.Quit
}

func (m *Model) setStatus(msg string, isError bool) {
	m.statusMessage = msg
	m.statusIsError = isError
}

// Active returns the date under the cursor.
func (m *Model) Active() time.Time {
	return m.active
}

// Done reports whether the picker has finished.
func (m *Model) Done() bool {
	return m.done
}

// Result returns the committed selection once the picker is done.
func (m *Model) Result() Result {
	return m.result
}

// View implements tea.Model
func (m *Model) View() string {
	if m.done {
		return ""
	}
	title := "Select a date range"
	if m.config.Mode == config.ModeSingle {
		title = "Select a date"
	}
	first := m.adapter.FirstOfMonth(m.active)

	state := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Title:          title,
		Month:          first,
		DaysInMonth:    m.adapter.DaysInMonth(first.Year(), first.Month()),
		LeadingDays:    (int(m.adapter.DayOfWeek(first)) - m.config.FirstDayOfWeek + 7) % 7,
		Active:         m.active,
		Today:          m.adapter.Today(),
		FirstDayOfWeek: time.Weekday(m.config.FirstDayOfWeek),
		Classify:       m.sel.classify,
		Summary:        m.sel.summary(m.config.DateFormat),
		Valid:          m.sel.valid() || !m.sel.complete(),
		StatusMessage:  m.statusMessage,
		StatusIsError:  m.statusIsError,
		Pending:        m.sel.buffered(),
	}
	if rs, ok := m.sel.(*rangeSelector); ok {
		state.Dragging = rs.dragging()
	}
	if m.config.UISettings.ShowHelp {
		state.HelpView = m.help.View(m.keys)
	}
	return m.renderer.Render(state)
}
