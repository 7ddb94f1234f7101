package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/andresmejia3/veil/pkg/stego"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Styles
var (
	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	docStyle      = lipgloss.NewStyle().Margin(1, 2)
)

type fileItem struct {
	path  string
	name  string
	isDir bool
}

type phase int

const (
	phaseBrowse phase = iota
	phaseMessage
	phaseDone
)

type model struct {
	path      string
	files     []fileItem
	cursor    int
	carrier   string
	phase     phase
	textInput textinput.Model
	status    string
	quitting  bool
}

type concealDoneMsg struct {
	output string
	err    error
}

func initialModel() model {
	cwd, _ := os.Getwd()

	ti := textinput.New()
	ti.Placeholder = "your secret message"
	ti.CharLimit = 0

	m := model{
		path:      cwd,
		textInput: ti,
		status:    "Navigate: ↑/↓ | Enter: open dir / pick image | q: quit",
	}
	m.loadFiles()
	return m
}

func (m *model) loadFiles() {
	entries, err := os.ReadDir(m.path)
	if err != nil {
		m.status = "Error reading directory"
		return
	}

	m.files = []fileItem{{name: "..", isDir: true, path: filepath.Dir(m.path)}}
	for _, e := range entries {
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		isRel := e.IsDir() || ext == ".png" || ext == ".jpg" || ext == ".jpeg" || ext == ".bmp"
		if isRel {
			m.files = append(m.files, fileItem{
				name:  name,
				isDir: e.IsDir(),
				path:  filepath.Join(m.path, name),
			})
		}
	}
	m.cursor = 0
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.phase {
		case phaseBrowse:
			return m.updateBrowse(msg)
		case phaseMessage:
			return m.updateMessage(msg)
		case phaseDone:
			if msg.String() == "q" || msg.String() == "ctrl+c" || msg.String() == "enter" {
				m.quitting = true
				return m, tea.Quit
			}
		}

	case concealDoneMsg:
		m.phase = phaseDone
		if msg.err != nil {
			m.status = fmt.Sprintf("Failed: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Success! Stego image written to %s", msg.output)
		}
	}
	return m, nil
}

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.files)-1 {
			m.cursor++
		}

	case "enter":
		selected := m.files[m.cursor]
		if selected.isDir {
			m.path = selected.path
			m.loadFiles()
			break
		}
		m.carrier = selected.path
		m.phase = phaseMessage
		m.textInput.Focus()
		m.status = "Type the message to hide, Enter to conceal, Esc to go back"
		return m, textinput.Blink
	}
	return m, nil
}

func (m model) updateMessage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		m.phase = phaseBrowse
		m.textInput.Blur()
		m.status = "Navigate: ↑/↓ | Enter: open dir / pick image | q: quit"
		return m, nil

	case "enter":
		m.status = "Concealing..."
		return m, m.concealSelected()
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m model) concealSelected() tea.Cmd {
	carrier := m.carrier
	message := m.textInput.Value()
	return func() tea.Msg {
		result, err := stego.Conceal(stego.ConcealArgs{
			ImagePath: carrier,
			Message:   message,
			Threshold: 100,
		})
		if err != nil {
			return concealDoneMsg{err: err}
		}
		return concealDoneMsg{output: result.Output}
	}
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	switch m.phase {
	case phaseBrowse:
		b.WriteString(focusedStyle.Render("Pick a carrier image") + "\n\n")
		for i, f := range m.files {
			cursor := "  "
			if i == m.cursor {
				cursor = focusedStyle.Render("> ")
			}
			name := f.name
			if f.isDir {
				name += "/"
			}
			b.WriteString(cursor + name + "\n")
		}

	case phaseMessage:
		b.WriteString(focusedStyle.Render("Carrier: ") + selectedStyle.Render(m.carrier) + "\n\n")
		b.WriteString(m.textInput.View() + "\n")

	case phaseDone:
		b.WriteString(selectedStyle.Render(m.status) + "\n\n")
		b.WriteString("Press Enter or q to exit\n")
		return docStyle.Render(b.String())
	}

	b.WriteString("\n" + m.status + "\n")
	return docStyle.Render(b.String())
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Conceal a message through a guided terminal UI",
	Run: func(cmd *cobra.Command, args []string) {
		p := tea.NewProgram(initialModel())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running interactive mode: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
