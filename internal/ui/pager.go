package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"jobs4u/internal/domain"
)

// Pager shows long text outside the bubbletea screen
type Pager interface {
	SetProgram(p *tea.Program)
	ShowInPager(content string) error
}

// PagerOps runs the ov pager on top of a released terminal
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowInPager shows content using ov
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Give ov time to leave the alternate screen
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Do not leave the text behind on our screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// JobDocument renders a job as plain text for the pager, including any
// fields the search service sent that the screen does not show
func JobDocument(job domain.Job) string {
	var b strings.Builder

	b.WriteString(job.Title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len([]rune(job.Title))))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Company:  %s\n", job.Company)
	fmt.Fprintf(&b, "Location: %s\n", job.Location)
	fmt.Fprintf(&b, "Apply at: %s\n", job.URL)

	if len(job.Extra) > 0 {
		keys := make([]string, 0, len(job.Extra))
		for k := range job.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "%s: %s\n", k, strings.Trim(string(job.Extra[k]), `"`))
		}
	}

	b.WriteString("\n")
	b.WriteString(strings.TrimSpace(job.Description))
	b.WriteString("\n")
	return b.String()
}
