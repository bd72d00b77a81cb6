package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// PagerOps shows long content in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Available reports whether the pager can take over the terminal
func (p *PagerOps) Available() bool {
	return p != nil && p.program != nil
}

// Show hands the terminal to ov until the user quits it
func (p *PagerOps) Show(content string) error {
	if !p.Available() {
		return fmt.Errorf("pager: program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("pager: release terminal: %w", err)
	}
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("pager: %w", err)
	}

	// Don't write the document back to our screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// showInPager returns a command that pauses rendering while the pager runs
func (m *Model) showInPager(content string) tea.Cmd {
	return func() tea.Msg {
		m.pager.program.Send(pauseRenderingMsg{})
		err := m.pager.Show(content)
		m.pager.program.Send(resumeRenderingMsg{})

		return pagerMsg{content: content, err: err}
	}
}
