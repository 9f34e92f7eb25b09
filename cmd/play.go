package cmd

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/solenne/whittle/internal/adapters/render/board"
	"github.com/solenne/whittle/internal/application"
	"github.com/solenne/whittle/internal/domain"
)

func newPlayCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start an interactive game session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := tea.NewProgram(
				newPlayModel(cmd.Context(), app.controller),
				tea.WithContext(cmd.Context()),
			)
			_, err := p.Run()
			return err
		},
	}
}

// actionDoneMsg carries the snapshot returned by a controller action. Action
// errors are not surfaced separately: the snapshot already holds the current
// failure, and a superseded response has nothing to show.
type actionDoneMsg struct {
	snapshot application.Snapshot
}

type playModel struct {
	ctx        context.Context
	controller *application.Controller
	spinner    spinner.Model
	snapshot   application.Snapshot
	cursor     int
}

func newPlayModel(ctx context.Context, controller *application.Controller) playModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return playModel{
		ctx:        ctx,
		controller: controller,
		spinner:    s,
		snapshot:   controller.Snapshot(),
	}
}

func (m playModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startSessionCmd())
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case actionDoneMsg:
		m.snapshot = msg.snapshot
		m.clampCursor()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m playModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.controller.Reset()
		return m, tea.Quit
	case "n":
		cmd := m.startSessionCmd()
		m.snapshot = m.controller.Snapshot()
		return m, cmd
	case "up", "k":
		m.cursor--
		m.clampCursor()
		return m, nil
	case "down", "j":
		m.cursor++
		m.clampCursor()
		return m, nil
	case "enter", " ":
		key, ok := m.cursorKey()
		if !ok {
			return m, nil
		}
		cmd := m.excludeCmd(key)
		m.snapshot = m.controller.Snapshot()
		return m, cmd
	default:
		return m, nil
	}
}

func (m playModel) View() string {
	return board.View(m.snapshot, board.Options{
		Cursor:  m.cursor,
		Spinner: m.spinner.View(),
	}) + "\n"
}

func (m *playModel) clampCursor() {
	limit := 0
	if m.snapshot.Session != nil {
		limit = len(m.snapshot.Session.Roster) - 1
	}
	if m.cursor > limit {
		m.cursor = limit
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m playModel) cursorKey() (domain.CandidateKey, bool) {
	if m.snapshot.Session == nil {
		return domain.CandidateKey{}, false
	}
	roster := m.snapshot.Session.Roster
	if m.cursor < 0 || m.cursor >= len(roster) {
		return domain.CandidateKey{}, false
	}
	return roster[m.cursor].Key(), true
}

func (m playModel) startSessionCmd() tea.Cmd {
	return func() tea.Msg {
		snapshot, _ := m.controller.StartSession(m.ctx)
		return actionDoneMsg{snapshot: snapshot}
	}
}

func (m playModel) excludeCmd(key domain.CandidateKey) tea.Cmd {
	return func() tea.Msg {
		snapshot, _ := m.controller.ExcludeCandidate(m.ctx, key)
		return actionDoneMsg{snapshot: snapshot}
	}
}
