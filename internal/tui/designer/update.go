package designer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case PreviewShownMsg:
		m.log.Debug("preview visible")
		return m, waitForPreviewCmd(m.shown)

	case CountdownTickMsg:
		if msg.Seq != m.countdownSeq || !m.scheduler.Pending() {
			return m, nil
		}
		return m, countdownTickCmd(m.countdownSeq)

	case CopyResultMsg:
		return m, m.showToast(msg.Notification)

	case DownloadResultMsg:
		return m, m.showToast(msg.Notification)

	case ToastExpiredMsg:
		if m.toast != nil && m.toast.id == msg.ID {
			m.toast = nil
		}
		return m, nil
	}

	// Remaining messages (cursor blink) go to the focused input.
	return m.updateFocusedInput(msg)
}

// handleKeyPress routes keyboard input to global actions or the focused control.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.scheduler.Stop()
		m.log.Info("designer closed")
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m, m.moveFocus(1)

	case key.Matches(msg, m.keys.Prev):
		return m, m.moveFocus(-1)

	case key.Matches(msg, m.keys.Copy):
		return m, copyCmd(m.ctx, m.exporter, m.button)

	case key.Matches(msg, m.keys.Download):
		return m, downloadCmd(m.ctx, m.exporter, m.button)

	case key.Matches(msg, m.keys.Reset):
		return m, m.resetButton()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		var cmd tea.Cmd
		m.code, cmd = m.code.Update(msg)
		return m, cmd
	}

	current := m.controls[m.focus]
	if current.cyclable() {
		switch {
		case key.Matches(msg, m.keys.CycleLeft):
			return m, m.setField(current.field, current.cycle(m.button.Value(current.field), -1))
		case key.Matches(msg, m.keys.CycleRight):
			return m, m.setField(current.field, current.cycle(m.button.Value(current.field), 1))
		}
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

// updateFocusedInput forwards msg to the focused text input and writes its
// value back to the bound field when it changed.
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	current := &m.controls[m.focus]
	if !current.editable() {
		return m, nil
	}

	before := current.input.Value()
	var cmd tea.Cmd
	current.input, cmd = current.input.Update(msg)
	after := current.input.Value()
	if after == before {
		return m, cmd
	}

	if changeCmd := m.setField(current.field, after); changeCmd != nil {
		return m, tea.Batch(cmd, changeCmd)
	}
	return m, cmd
}

// previewPlaceholder is shown until the preview timer fires.
func (m Model) previewPlaceholder() string {
	return fmt.Sprintf("Button will appear in %d seconds...", remainingSeconds(m.scheduler.Remaining()))
}
