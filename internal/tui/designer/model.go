// Package designer implements the interactive form, live preview and
// generated-code panel of the timed button designer.
package designer

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/timedbutton/internal/codegen"
	"github.com/alexisbeaulieu97/timedbutton/internal/config"
	"github.com/alexisbeaulieu97/timedbutton/internal/export"
	"github.com/alexisbeaulieu97/timedbutton/internal/logger"
	"github.com/alexisbeaulieu97/timedbutton/internal/preview"
)

const (
	toastDuration   = 4 * time.Second
	countdownPeriod = time.Second
	minWidth        = 80
	minHeight       = 24
)

// Options configures a designer Model.
type Options struct {
	Button   config.Button
	Clock    preview.Clock
	Exporter *export.Service
	Logger   *logger.Logger
	Context  context.Context
}

// toast is the currently displayed notification.
type toast struct {
	id           int
	notification export.Notification
}

// Model is the Bubble Tea state of the designer. It owns the button
// configuration and the preview scheduler; all mutation goes through
// setField and resetDelay.
type Model struct {
	ctx       context.Context
	button    config.Button
	controls  []control
	focus     int
	scheduler *preview.Scheduler
	shown     chan struct{}
	exporter  *export.Service
	log       *logger.Logger

	code     viewport.Model
	help     help.Model
	keys     keyMap
	showHelp bool

	toast        *toast
	toastSeq     int
	countdownSeq int

	width    int
	height   int
	tooSmall bool
	quitting bool
}

// NewModel creates the designer and arms the preview for the initial delay.
func NewModel(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	exporter := opts.Exporter
	if exporter == nil {
		exporter = export.NewService(export.SystemClipboard{}, export.DirSaver{}, export.LogNotifier{Logger: log}, log)
	}

	shown := make(chan struct{}, 1)
	onShow := func() {
		select {
		case shown <- struct{}{}:
		default:
		}
	}

	m := Model{
		ctx:       ctx,
		button:    opts.Button,
		controls:  buildControls(),
		scheduler: preview.NewScheduler(opts.Clock, onShow),
		shown:     shown,
		exporter:  exporter,
		log:       log,
		code:      viewport.New(60, 14),
		help:      help.New(),
		keys:      defaultKeyMap(),
		width:     120,
		height:    40,
	}

	m.syncControls()
	m.controls[0].focus()
	m.refreshCode()
	m.scheduler.Reset(m.button.DelaySeconds)

	return m
}

// Init starts listening for preview flips and the countdown refresh.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		waitForPreviewCmd(m.shown),
		countdownTickCmd(m.countdownSeq),
	)
}

// Button returns the current configuration.
func (m Model) Button() config.Button {
	return m.button
}

// PreviewVisible reports the visibility flag driving the preview.
func (m Model) PreviewVisible() bool {
	return m.scheduler.Visible()
}

// GeneratedCode returns the document shown in the output panel.
func (m Model) GeneratedCode() string {
	return codegen.Generate(m.button)
}

// Focused returns the field bound to the focused control.
func (m Model) Focused() config.Field {
	return m.controls[m.focus].field
}

// Stop disposes the preview scheduler.
func (m Model) Stop() {
	m.scheduler.Stop()
}

// setField replaces one field of the configuration and propagates the
// change. A changed delay re-arms the preview scheduler.
func (m *Model) setField(field config.Field, value string) tea.Cmd {
	previous := m.button
	m.button = m.button.With(field, value)
	if m.button == previous {
		return nil
	}

	m.log.WithFields(map[string]any{"field": string(field), "value": m.button.Value(field)}).Debug("field updated")
	m.syncControls()
	m.refreshCode()

	if m.button.DelaySeconds != previous.DelaySeconds {
		return m.resetDelay()
	}
	return nil
}

// resetDelay re-arms the preview and restarts the countdown refresh.
func (m *Model) resetDelay() tea.Cmd {
	m.scheduler.Reset(m.button.DelaySeconds)
	m.countdownSeq++
	if !m.scheduler.Pending() {
		return nil
	}
	return countdownTickCmd(m.countdownSeq)
}

// resetButton replaces the whole configuration with defaults.
func (m *Model) resetButton() tea.Cmd {
	previous := m.button
	m.button = config.Defaults()
	for i := range m.controls {
		if m.controls[i].editable() {
			m.controls[i].input.SetValue("")
		}
		m.controls[i].blur()
	}
	m.syncControls()
	cmd := m.controls[m.focus].focus()
	m.refreshCode()
	m.log.Info("configuration reset to defaults")

	if previous.DelaySeconds != m.button.DelaySeconds {
		return tea.Batch(cmd, m.resetDelay())
	}
	return cmd
}

func (m *Model) syncControls() {
	for i := range m.controls {
		m.controls[i].sync(m.button)
	}
}

func (m *Model) refreshCode() {
	m.code.SetContent(codeStyle.Render(codegen.Generate(m.button)))
}

// moveFocus blurs the current control and focuses the one step positions away.
func (m *Model) moveFocus(step int) tea.Cmd {
	current := &m.controls[m.focus]
	current.blur()
	current.sync(m.button)

	n := len(m.controls)
	m.focus = ((m.focus+step)%n + n) % n
	return m.controls[m.focus].focus()
}

// showToast displays n and schedules its dismissal.
func (m *Model) showToast(n export.Notification) tea.Cmd {
	m.toastSeq++
	m.toast = &toast{id: m.toastSeq, notification: n}
	return toastExpireCmd(m.toastSeq, toastDuration)
}

// resize adapts the panel geometry to the terminal size.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.tooSmall = width < minWidth || height < minHeight

	_, right := m.columnWidths()
	m.code.Width = right - 4
	codeHeight := height - 24
	if codeHeight < 6 {
		codeHeight = 6
	}
	m.code.Height = codeHeight
	m.help.Width = width
}

// columnWidths splits the terminal into the form and preview/code columns.
func (m Model) columnWidths() (int, int) {
	left := 56
	right := m.width - left - 2
	if right < 40 {
		right = 40
	}
	return left, right
}
