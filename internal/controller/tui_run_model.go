package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	maxRecentErrors = 5
	errorPrefix     = "Error"
)

// runModel shows a progress bar and the latest status while a run is active.
type runModel struct {
	title       string
	width       int
	progressBar progress.Model
	status      string
	errors      []string
	done        int
	total       int
}

func newRunModel(mode StartMode) runModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return runModel{
		title:       mode.title(),
		progressBar: prog,
	}
}

func (m runModel) Init() tea.Cmd {
	return nil
}

func (m runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

		width := msg.Width - 4
		if width > 60 {
			width = 60
		}

		if width > 10 {
			m.progressBar.Width = width
		}

	case statusMsg:
		m = m.handleStatus(msg)

	case progressMsg:
		m.done = msg.done
		m.total = msg.total
	}

	return m, nil
}

func (m runModel) handleStatus(msg statusMsg) runModel {
	if strings.HasPrefix(msg.text, errorPrefix) {
		m.errors = append(m.errors, msg.text)
		if len(m.errors) > maxRecentErrors {
			m.errors = m.errors[len(m.errors)-maxRecentErrors:]
		}

		return m
	}

	m.status = msg.text

	return m
}

func (m runModel) percent() float64 {
	if m.total <= 0 {
		return 0
	}

	return float64(m.done) / float64(m.total)
}

func (m runModel) View() string {
	accentColor := lipgloss.Color("6") // Cyan

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	title := titleStyle.Render("codedoc: " + m.title)

	summary := summaryStyle.Render(fmt.Sprintf(
		"Progress: %s / %s  •  %s",
		accentStyle.Render(fmt.Sprintf("%d", m.done)),
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
		accentStyle.Render(fmt.Sprintf("%.0f%%", m.percent()*100)),
	))

	progressView := lipgloss.NewStyle().
		Padding(0, 2).
		Render(m.progressBar.ViewAs(m.percent()))

	sections := []string{title, summary, progressView}

	if m.status != "" {
		statusStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Padding(1, 0, 0, 2)

		sections = append(sections, statusStyle.Render(m.status))
	}

	if len(m.errors) > 0 {
		errorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Margin(1, 0, 0, 2).
			Padding(0, 1)

		sections = append(sections, errorStyle.Render(strings.Join(m.errors, "\n")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}
