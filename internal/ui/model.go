package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

//nolint:gochecknoglobals
var (
	// titleStyle defines the style for the title bar.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	// borderStyle defines the style for the output panel's borders.
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4"))

	// promptStyle defines the style for the echoed command prompts.
	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	// helpStyle defines the style for the help line's text.
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

const scrollbackMax = 500

// TeaModel is the principal [tea.Model] for the jail shell.
type TeaModel struct {
	width  int
	height int

	cancel context.CancelFunc

	uiHandler   *Handler
	interpreter *Interpreter

	input          textinput.Model
	outputViewport viewport.Model
	lines          []string

	ready bool
}

// NewTeaModel returns an initial new [TeaModel].
//
//nolint:mnd
func NewTeaModel(uiHandler *Handler, interpreter *Interpreter, cancel context.CancelFunc) TeaModel {
	input := textinput.New()
	input.Prompt = interpreter.Prompt()
	input.Focus()

	outputViewport := viewport.New(80, 20)

	return TeaModel{
		uiHandler:      uiHandler,
		interpreter:    interpreter,
		input:          input,
		outputViewport: outputViewport,
		lines:          make([]string, 0, scrollbackMax),
		cancel:         cancel,
		ready:          false,
	}
}

// Init initializes the model within a [tea.Program].
func (m TeaModel) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		textinput.Blink,
	)
}

// Update is the principal message handling method of the model.
//
//nolint:ireturn
func (m TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()

			return m, tea.Quit

		case "enter":
			line := m.input.Value()
			m.input.SetValue("")

			m.appendLines(promptStyle.Render(m.interpreter.Prompt()) + line)

			output, quit := m.interpreter.Execute(line)
			if output != "" {
				m.appendLines(strings.Split(output, "\n")...)
			}
			if quit {
				m.cancel()

				return m, tea.Quit
			}

			// The prompt tracks the current directory across cd calls.
			m.input.Prompt = m.interpreter.Prompt()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.outputViewport.Width = m.width - 2
		m.outputViewport.Height = m.height - 5
		m.refreshViewport()

		if !m.ready {
			m.ready = true
			m.uiHandler.Ready.Store(true)
		}

	case logMsg:
		m.appendLines(strings.TrimSuffix(string(msg), "\n"))
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.outputViewport, cmd = m.outputViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *TeaModel) appendLines(lines ...string) {
	m.lines = append(m.lines, lines...)
	if len(m.lines) > scrollbackMax {
		m.lines = m.lines[len(m.lines)-scrollbackMax:]
	}

	m.refreshViewport()
}

func (m *TeaModel) refreshViewport() {
	content := lipgloss.NewStyle().
		Width(m.outputViewport.Width).
		Render(strings.Join(m.lines, "\n"))

	m.outputViewport.SetContent(content)
	m.outputViewport.GotoBottom()
}

// View is the principal rendering function of the model.
func (m TeaModel) View() string {
	if !m.ready {
		return "Loading the shell..."
	}

	title := titleStyle.
		Width(m.width - 2).
		Render("jailfs: confined to " + string(m.interpreter.jail.Root()))

	output := borderStyle.
		Width(m.width - 2).
		Render(m.outputViewport.View())

	help := helpStyle.
		Width(m.width - 2).
		Render("enter: run command • help: list commands • ctrl+c: quit")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		output,
		m.input.View(),
		help,
	)
}
