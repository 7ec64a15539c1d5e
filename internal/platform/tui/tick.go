// Package tui provides the Bubble Tea host for the runner.
// It drives frames from a tick loop, turns key presses into held-key
// signals and rasterises each frame into a character grid.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after 1/fps seconds.
// The model re-arms it after every frame that asks for another.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = DefaultFPS
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
