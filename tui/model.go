// Package tui is the terminal front end for the recipe search widget.
package tui

import (
	"context"
	"strings"

	"recipesearch/models"
	"recipesearch/widget"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rohanthewiz/serr"
)

const defaultWidth = 72

// searchDoneMsg is sent once a submitted search has settled
type searchDoneMsg struct{}

// Model drives one widget.Widget from the keyboard.
// tab and shift+tab cycle the example queries, enter searches, esc quits.
type Model struct {
	ctx      context.Context
	widget   *widget.Widget
	creds    models.Credentials
	examples []string

	input   textinput.Model
	spinner spinner.Model

	exampleIdx int // -1 until an example is chosen
	width      int
}

// New creates an idle model over its own widget
func New(ctx context.Context, searcher widget.Searcher, creds models.Credentials) Model {
	ti := textinput.New()
	ti.Placeholder = "Search by ingredient..."
	ti.CharLimit = 200
	ti.Width = 40
	ti.Focus()

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))),
	)

	return Model{
		ctx:        ctx,
		widget:     widget.New(searcher),
		creds:      creds,
		examples:   models.ExampleQueries,
		input:      ti,
		spinner:    sp,
		exampleIdx: -1,
		width:      defaultWidth,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-10, 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			return m.cycleExample(1), nil
		case tea.KeyShiftTab:
			return m.cycleExample(-1), nil
		case tea.KeyEnter:
			return m, m.submit()
		}

	case searchDoneMsg:
		return m, nil

	case spinner.TickMsg:
		if !m.widget.Snapshot().Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.widget.SetQuery(m.input.Value())
	return m, cmd
}

// cycleExample moves the example selection by step and copies it into the input
func (m Model) cycleExample(step int) Model {
	n := len(m.examples)
	if n == 0 {
		return m
	}

	switch {
	case m.exampleIdx < 0 && step < 0:
		m.exampleIdx = n - 1
	case m.exampleIdx < 0:
		m.exampleIdx = 0
	default:
		m.exampleIdx = (m.exampleIdx + step + n) % n
	}

	example := m.examples[m.exampleIdx]
	if err := m.widget.SelectExample(example); err != nil {
		return m
	}
	m.input.SetValue(example)
	m.input.CursorEnd()
	return m
}

// submit starts a search for the input text. The widget enters loading
// before this returns, so the next View shows the spinner.
func (m Model) submit() tea.Cmd {
	m.widget.SetQuery(m.input.Value())
	done := m.widget.SubmitAsync(m.ctx, m.creds)

	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			<-done
			return searchDoneMsg{}
		},
	)
}

// Snapshot exposes the current widget state
func (m Model) Snapshot() widget.View {
	return m.widget.Snapshot()
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Recipe Search") + "\n")
	sb.WriteString(subtitleStyle.Render("Find delicious recipes by ingredients you have at home.") + "\n\n")

	sb.WriteString(subtitleStyle.Render("Try searching for:") + " ")
	chips := make([]string, 0, len(m.examples))
	for i, example := range m.examples {
		style := chipStyle
		if i == m.exampleIdx {
			style = activeChipStyle
		}
		chips = append(chips, style.Render(example))
	}
	sb.WriteString(strings.Join(chips, " ") + "\n\n")

	sb.WriteString(m.input.View() + "\n\n")

	view := m.widget.Snapshot()
	switch view.State() {
	case widget.StateLoading:
		sb.WriteString(m.spinner.View() + " " + messageStyle.Render(widget.LoadingMessage) + "\n")
	case widget.StateEmpty:
		sb.WriteString(messageStyle.Render(widget.EmptyMessage) + "\n")
	case widget.StateResults:
		sb.WriteString(RenderCards(view.Recipes, m.width) + "\n")
	}

	sb.WriteString(footerStyle.Render("tab: next example  shift+tab: previous  enter: search  esc: quit"))
	return sb.String()
}

// Run starts the terminal UI and blocks until the user quits
func Run(ctx context.Context, searcher widget.Searcher, creds models.Credentials) error {
	p := tea.NewProgram(New(ctx, searcher, creds), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return serr.Wrap(err, "terminal UI failed")
	}
	return nil
}
