package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"rankreel/composer"
)

// Model is the scrubber state: a composed job plus the current global
// frame cursor. Everything shown is recomputed from the cursor on each
// View call; there is no playback state to corrupt.
type Model struct {
	result *composer.Result
	frame  int
}

// NewModel creates the scrubber positioned at frame 0.
func NewModel(result *composer.Result) Model {
	return Model{result: result}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Frame step sizes for the scrub keys.
const (
	stepFine   = 1
	stepCoarse = 30
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	last := m.result.Timeline.TotalFrames - 1

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "left", "h":
		m.frame = clampFrame(m.frame-stepFine, last)
	case "right", "l":
		m.frame = clampFrame(m.frame+stepFine, last)
	case "shift+left", "H":
		m.frame = clampFrame(m.frame-stepCoarse, last)
	case "shift+right", "L":
		m.frame = clampFrame(m.frame+stepCoarse, last)
	case "home", "g":
		m.frame = 0
	case "end", "G":
		m.frame = last
	case "tab", "n":
		m.frame = m.nextSceneStart()
	}

	return m, nil
}

func clampFrame(frame, last int) int {
	if frame < 0 {
		return 0
	}
	if frame > last {
		return last
	}
	return frame
}

// nextSceneStart jumps the cursor to the following scene, wrapping to
// the intro after the outro.
func (m Model) nextSceneStart() int {
	for _, s := range m.result.Timeline.Scenes {
		if s.Start > m.frame {
			return s.Start
		}
	}
	return 0
}
