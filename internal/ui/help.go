package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// Render renders the full help text shown in the pager.
func (r *HelpRenderer) Render(mode string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	section := func(name string, bindings ...key.Binding) {
		help.WriteString(sectionStyle.Render(name))
		help.WriteString("\n")
		for _, b := range bindings {
			if !b.Enabled() {
				continue
			}
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
		}
	}

	help.WriteString(titleStyle.Render("datepick Help"))
	help.WriteString("\n")

	k := r.keys
	section("Navigation", k.Left, k.Right, k.Up, k.Down, k.PrevMonth, k.NextMonth, k.PrevYear, k.NextYear, k.Today)
	section("Selection", k.Select, k.Clear, k.Apply, k.Cancel)
	if mode == "range" {
		section("Moving a range", k.Move)
		help.WriteString(descStyle.Render("  Put the cursor on the start or end of a selected range and press m,\n" +
			"  move, then press m again. Starting anywhere else shifts the whole range."))
		help.WriteString("\n")
		if !k.Apply.Enabled() {
			help.WriteString(descStyle.Render("  Without actions the picker closes as soon as the range is complete,\n" +
				"  so moving needs --actions=true."))
			help.WriteString("\n")
		}
	}
	section("Other", k.Help, k.Quit)

	return help.String()
}

// pagerCommand shows content in the ov pager. It implements
// tea.ExecCommand so bubbletea releases the terminal while it runs.
type pagerCommand struct {
	content string
}

func (c *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ov drives the terminal itself.
func (c *pagerCommand) SetStdin(io.Reader)  {}
func (c *pagerCommand) SetStdout(io.Writer) {}
func (c *pagerCommand) SetStderr(io.Writer) {}

// showHelpInPager returns a command that runs the pager over content.
func showHelpInPager(content string) tea.Cmd {
	return tea.Exec(&pagerCommand{content: content}, func(err error) tea.Msg {
		return helpPagerMsg{err: err}
	})
}
