// Command preview composes a record file and opens an interactive
// timeline scrubber. Because the animation contract is a pure function
// of the frame index, the scrubber can jump anywhere in the video and
// always shows exactly what the renderer would produce for that frame.
//
// Usage: preview <record.json>
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"rankreel/cmd/preview/tui"
	"rankreel/composer"
	"rankreel/config"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: preview <record.json>")
		os.Exit(2)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "read record: %v\n", err)
		os.Exit(1)
	}

	// Keep compose logging out of the TUI frame.
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.ErrorLevel)

	comp, err := composer.New(config.DefaultFormat(), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "composer init: %v\n", err)
		os.Exit(1)
	}

	result, err := comp.Compose(context.Background(), "preview", raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "compose failed: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(tui.NewModel(result), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "preview error: %v\n", err)
		os.Exit(1)
	}
}
