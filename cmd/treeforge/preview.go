package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/treeforge/treeforge/structure"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	dirStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	fileStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// styledOutline renders the tree preview, coloring directories and files.
func styledOutline(tree *structure.Tree, noColor bool) string {
	if noColor {
		return structure.Outline(tree)
	}
	var sb strings.Builder
	var render func(n *structure.Node, depth int)
	render = func(n *structure.Node, depth int) {
		for _, c := range n.Children {
			sb.WriteString(strings.Repeat("  ", depth))
			if c.IsDir() {
				sb.WriteString(dirStyle.Render(c.Name + "/"))
			} else {
				sb.WriteString(fileStyle.Render(c.Name))
			}
			sb.WriteString("\n")
			if c.IsDir() {
				render(c, depth+1)
			}
		}
	}
	if tree.Root != nil {
		render(tree.Root, 0)
	}
	return sb.String()
}

// confirmModel is the Bubble Tea model for the preview + confirmation
// screen: a scrollable viewport over the outline, ended by y/enter or
// n/esc.
type confirmModel struct {
	viewport  viewport.Model
	content   string
	dest      string
	ready     bool
	confirmed bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y", "enter":
			m.confirmed = true
			return m, tea.Quit
		case "n", "N", "q", "esc", "ctrl+c":
			m.confirmed = false
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m confirmModel) View() string {
	if !m.ready {
		return "loading preview..."
	}
	header := titleStyle.Render(fmt.Sprintf("Will create under %s:", m.dest)) + "\n\n"
	footer := "\n" + footerStyle.Render("y/enter: create   n/esc: abort   ↑/↓: scroll")
	return header + m.viewport.View() + footer
}

// confirmInteractive shows the preview in a TUI and reports the choice.
func confirmInteractive(outline, dest string) (bool, error) {
	m := confirmModel{content: outline, dest: dest}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return false, fmt.Errorf("failed to run preview: %w", err)
	}
	fm, ok := final.(confirmModel)
	return ok && fm.confirmed, nil
}

// askConfirm is the plain-terminal fallback when no TTY is available.
func askConfirm() bool {
	fmt.Print("Proceed? [y/N]: ")
	var resp string
	if _, err := fmt.Scanln(&resp); err != nil {
		return false
	}
	resp = strings.ToLower(strings.TrimSpace(resp))
	return resp == "y" || resp == "yes"
}
