package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ngx-go/ngx/acquire"
	"github.com/ngx-go/ngx/bindgen"
	"github.com/ngx-go/ngx/buildcfg"
	"github.com/ngx-go/ngx/configure"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2E7D32")).
			Padding(0, 1)

	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateEditRelease modelState = iota
	stateRunning
	stateDone
)

type stepStatus int

const (
	stepPending stepStatus = iota
	stepRunning
	stepOK
	stepFailed
)

type buildStep struct {
	name   string
	detail string
	status stepStatus
}

type buildModel struct {
	err     error
	cfg     buildcfg.Config
	outDir  string
	input   textinput.Model
	steps   []buildStep
	current int
	state   modelState

	src   *acquire.Source
	art   *configure.Artifacts
	files []string
}

func newBuildModel(cfg buildcfg.Config, outDir string) *buildModel {
	ti := textinput.New()
	ti.Placeholder = cfg.Release
	ti.Prompt = "release: "
	ti.Width = 20
	ti.Focus()

	return &buildModel{
		cfg:    cfg,
		outDir: outDir,
		input:  ti,
		state:  stateEditRelease,
		steps: []buildStep{
			{name: "acquire source"},
			{name: "configure and compile"},
			{name: "generate bindings"},
		},
	}
}

type stepDoneMsg struct {
	err    error
	idx    int
	detail string
	src    *acquire.Source
	art    *configure.Artifacts
	files  []string
}

func (m *buildModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *buildModel) runStep(idx int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		switch idx {
		case 0:
			src, err := acquire.Acquire(ctx, m.cfg)
			if err != nil {
				return stepDoneMsg{idx: idx, err: err}
			}
			detail := src.Dir
			if src.Cached {
				detail += " (cached)"
			}
			return stepDoneMsg{idx: idx, detail: detail, src: src}

		case 1:
			art, err := configure.NewRunner(m.cfg, m.src).Run(ctx)
			if err != nil {
				return stepDoneMsg{idx: idx, err: err}
			}
			return stepDoneMsg{idx: idx, detail: art.Archive, art: art}

		case 2:
			gen := &bindgen.Generator{
				Allow:     bindgen.Default(),
				Artifacts: m.art,
				Release:   m.cfg.Release,
				OutDir:    m.outDir,
				CC:        m.cfg.CC,
			}
			files, err := gen.Run(ctx)
			if err != nil {
				return stepDoneMsg{idx: idx, err: err}
			}
			return stepDoneMsg{idx: idx, detail: fmt.Sprintf("%d files into %s", len(files), m.outDir), files: files}
		}

		return stepDoneMsg{idx: idx, err: fmt.Errorf("unknown step %d", idx)}
	}
}

func (m *buildModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateEditRelease || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "enter":
			switch m.state {
			case stateEditRelease:
				if v := strings.TrimSpace(m.input.Value()); v != "" {
					m.cfg.Release = v
				}
				if err := m.cfg.Validate(); err != nil {
					m.err = err
					return m, nil
				}
				m.err = nil
				m.input.Blur()
				m.state = stateRunning
				m.steps[0].status = stepRunning
				return m, m.runStep(0)

			case stateDone:
				return m, tea.Quit
			}
		}

	case stepDoneMsg:
		if msg.err != nil {
			m.steps[msg.idx].status = stepFailed
			m.err = msg.err
			m.state = stateDone
			return m, nil
		}
		m.steps[msg.idx].status = stepOK
		m.steps[msg.idx].detail = msg.detail
		if msg.src != nil {
			m.src = msg.src
		}
		if msg.art != nil {
			m.art = msg.art
		}
		if msg.files != nil {
			m.files = msg.files
		}

		m.current = msg.idx + 1
		if m.current >= len(m.steps) {
			m.state = stateDone
			return m, nil
		}
		m.steps[m.current].status = stepRunning
		return m, m.runStep(m.current)
	}

	if m.state == stateEditRelease {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *buildModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ngx-build"))
	b.WriteString("\n\n")

	switch m.state {
	case stateEditRelease:
		b.WriteString("Which nginx release to build against?\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter start • ctrl+c quit"))

	case stateRunning, stateDone:
		for _, s := range m.steps {
			switch s.status {
			case stepPending:
				b.WriteString(helpStyle.Render("  ○ " + s.name))
			case stepRunning:
				b.WriteString(stepStyle.Render("  … " + s.name))
			case stepOK:
				b.WriteString(doneStyle.Render("  ✓ " + s.name))
				if s.detail != "" {
					b.WriteString(" ")
					b.WriteString(detailStyle.Render(s.detail))
				}
			case stepFailed:
				b.WriteString(errorStyle.Render("  ✗ " + s.name))
			}
			b.WriteString("\n")
		}

		if m.state == stateDone {
			b.WriteString("\n")
			if m.err != nil {
				b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			} else {
				b.WriteString(doneStyle.Render(fmt.Sprintf("Build complete: release %s", m.cfg.Release)))
				for _, f := range m.files {
					b.WriteString("\n  ")
					b.WriteString(detailStyle.Render(f))
				}
			}
			b.WriteString("\n\n")
			b.WriteString(helpStyle.Render("enter exit • q quit"))
		} else {
			b.WriteString("\n")
			b.WriteString(helpStyle.Render("ctrl+c abort"))
		}
	}

	return b.String()
}

func runInteractive(cfg buildcfg.Config, outDir string) error {
	// Package log output would corrupt the TUI frame.
	acquire.SetLogger(zap.NewNop())
	configure.SetLogger(zap.NewNop())
	bindgen.SetLogger(zap.NewNop())

	p := tea.NewProgram(newBuildModel(cfg, outDir), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
