// Package tui provides the Bubble Tea flashcard interface.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/flashcards/internal/model"
	"github.com/verte-zerg/flashcards/internal/session"
)

const (
	cardWidthRatio = 0.40
	minCardWidth   = 20
)

// Model implements the Bubble Tea flashcard UI. It is the single owner of
// the session while the program runs.
type Model struct {
	session *session.Session
	input   textinput.Model

	width  int
	height int

	summary *model.Summary
}

var (
	questionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7FBF7F"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	cardStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(0, 1)
)

// NewModel constructs a flashcard TUI model around s.
func NewModel(s *session.Session) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 0
	if s.Question().Countries != nil {
		input.Placeholder = "most populous first"
	}
	input.Focus()
	return &Model{session: s, input: input}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.cardWidth() - lipgloss.Width(m.input.Prompt) - 1
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m.quit()
		case tea.KeyEnter:
			m.submit()
			return m, nil
		}
		if msg.String() == "alt+q" {
			return m.quit()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.summary != nil {
		return ""
	}
	card := cardStyle.Width(m.cardWidth()).Render(m.renderCard())
	if m.width == 0 || m.height == 0 {
		return card + "\n" + m.renderFooter()
	}
	footer := m.renderFooter()
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, card)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

// Summary returns the session summary once the user has quit.
func (m *Model) Summary() (model.Summary, bool) {
	if m.summary == nil {
		return model.Summary{}, false
	}
	return *m.summary, true
}

func (m *Model) submit() {
	if _, err := m.session.Submit(m.input.Value()); err != nil {
		return
	}
	m.input.Reset()
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	summary := m.session.Quit()
	m.summary = &summary
	return m, tea.Quit
}

func (m *Model) cardWidth() int {
	if m.width <= 0 {
		return 40
	}
	w := int(float64(m.width) * cardWidthRatio)
	if w < minCardWidth {
		w = minCardWidth
	}
	if w > m.width-2 && m.width > 2 {
		w = m.width - 2
	}
	return w
}

func (m *Model) renderCard() string {
	inner := m.cardWidth() - 2
	lines := []string{}
	for _, line := range wrapText(m.session.QuestionText(), inner) {
		lines = append(lines, questionStyle.Render(line))
	}
	lines = append(lines, "", m.input.View(), "")
	lines = append(lines, m.renderFeedback(inner)...)
	return lipgloss.NewStyle().Width(inner).Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderFeedback(width int) []string {
	text := m.session.FeedbackText()
	correct, ok := m.session.LastCorrect()
	if !ok {
		return []string{hintStyle.Render("enter: submit  alt+q/esc: quit")}
	}
	style := incorrectStyle
	if correct {
		style = correctStyle
	}
	lines := wrapText(text, width)
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return lines
}

func (m *Model) renderFooter() string {
	segments := []string{m.session.StatsText()}
	if trend := m.session.Trend(); trend != "" {
		segments = append(segments, "Trend ["+trend+"]")
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}
