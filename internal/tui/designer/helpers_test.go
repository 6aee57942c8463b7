package designer

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/timedbutton/internal/config"
	"github.com/alexisbeaulieu97/timedbutton/internal/export"
	"github.com/alexisbeaulieu97/timedbutton/internal/preview"
)

// fakeClock only advances when told to.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	clock *fakeClock
	at    time.Time
	f     func()
	done  bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) preview.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.done && !t.at.After(c.now) {
			t.done = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	active := !t.done
	t.done = true
	return active
}

type fakeClipboard struct {
	mu   sync.Mutex
	text string
	err  error
}

func (f *fakeClipboard) WriteText(_ context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

type harness struct {
	model     Model
	clock     *fakeClock
	clipboard *fakeClipboard
	dir       string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	clock := newFakeClock()
	cb := &fakeClipboard{}
	dir := t.TempDir()
	svc := export.NewService(cb, export.DirSaver{Dir: dir}, nil, nil)

	m := NewModel(Options{
		Button:   config.Defaults(),
		Clock:    clock,
		Exporter: svc,
	})
	t.Cleanup(m.Stop)

	return &harness{model: m, clock: clock, clipboard: cb, dir: dir}
}

// send feeds msg through Update and returns the produced command.
func (h *harness) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := h.model.Update(msg)
	m, ok := next.(Model)
	require.True(t, ok)
	h.model = m
	return cmd
}

func (h *harness) key(t *testing.T, k tea.KeyType) tea.Cmd {
	t.Helper()
	return h.send(t, tea.KeyMsg{Type: k})
}

func (h *harness) typeText(t *testing.T, s string) {
	t.Helper()
	h.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// focusControl tabs until the control at index has focus.
func (h *harness) focusControl(t *testing.T, index int) {
	t.Helper()
	for i := 0; i < len(h.model.controls) && h.model.focus != index; i++ {
		h.key(t, tea.KeyTab)
	}
	require.Equal(t, index, h.model.focus)
}

// clearFocused deletes the focused input's text one rune at a time.
func (h *harness) clearFocused(t *testing.T) {
	t.Helper()
	c := &h.model.controls[h.model.focus]
	c.input.CursorEnd()
	for n := len([]rune(c.input.Value())); n > 0; n-- {
		h.key(t, tea.KeyBackspace)
	}
	require.Empty(t, h.model.controls[h.model.focus].input.Value())
}

// controlIndex returns the first control bound to field with the given kind.
func controlIndex(t *testing.T, m Model, field config.Field, kind controlKind) int {
	t.Helper()
	for i, c := range m.controls {
		if c.field == field && c.kind == kind {
			return i
		}
	}
	t.Fatalf("no %v control for %s", kind, field)
	return -1
}
