// ABOUTME: Read-only ranking viewer with live file watching and scrolling
// ABOUTME: Monitors a result JSON file for changes and redisplays it with viewport navigation

// Package tui implements a read-only bubbletea viewer over a computed
// ranking.Result, reloading automatically when the underlying file changes.
// Unlike an editable playlist, a ranking is a derived artifact: there is no
// delete, undo, redo, or save here, only navigation and a live reload.
package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/stojg/rankcraft/internal/debuglog"
	"github.com/stojg/rankcraft/internal/ranking"
)

type viewModel struct {
	resultPath  string
	result      ranking.Result
	viewport    viewport.Model
	width       int
	height      int
	fileWatcher *fsnotify.Watcher
	lastReload  time.Time
	errorMsg    string
	ready       bool
	cursorPos   int
}

type viewKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Reload   key.Binding
	Quit     key.Binding
}

var viewKeys = viewKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "page down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "go to top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "go to bottom"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var (
	viewTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12"))

	viewHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("10"))

	viewStatusStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("15")).
		Padding(0, 1)

	viewHelpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	viewErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true)

	viewCursorStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("240")).
		Foreground(lipgloss.Color("15")).
		Bold(true)
)

type fileChangeMsg struct{}

type reloadCompleteMsg struct {
	result ranking.Result
	err    error
}

// Run starts the read-only viewer, watching resultPath for changes.
func Run(resultPath string) error {
	result, err := loadResult(resultPath)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(resultPath); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch result file: %w", err)
	}

	m := viewModel{
		resultPath:  resultPath,
		result:      result,
		fileWatcher: watcher,
		lastReload:  time.Now(),
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		watcher.Close()
		return fmt.Errorf("view mode error: %w", err)
	}

	watcher.Close()
	return nil
}

func loadResult(path string) (ranking.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ranking.Result{}, fmt.Errorf("failed to read result file: %w", err)
	}
	var result ranking.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return ranking.Result{}, fmt.Errorf("failed to parse result file: %w", err)
	}
	return result, nil
}

func (m viewModel) Init() tea.Cmd {
	return tea.Batch(
		waitForFileChange(m.fileWatcher),
		tea.EnterAltScreen,
	)
}

func waitForFileChange(watcher *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if event.Op&fsnotify.Write == fsnotify.Write {
					time.Sleep(100 * time.Millisecond) // let an atomic rewrite settle
					return fileChangeMsg{}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				debuglog.Debugf("[WATCHER] Error: %v", err)
			}
		}
	}
}

func reloadResultCmd(path string) tea.Cmd {
	return func() tea.Msg {
		result, err := loadResult(path)
		if err != nil {
			return reloadCompleteMsg{err: err}
		}
		return reloadCompleteMsg{result: result}
	}
}

func (m *viewModel) ensureCursorVisible() {
	viewportTop := m.viewport.YOffset
	viewportBottom := m.viewport.YOffset + m.viewport.Height - 1

	if m.cursorPos < viewportTop {
		m.viewport.SetYOffset(m.cursorPos)
	} else if m.cursorPos > viewportBottom {
		m.viewport.SetYOffset(m.cursorPos - m.viewport.Height + 1)
	}
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3
		footerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.renderRankingContent())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}

		return m, nil

	case fileChangeMsg:
		return m, tea.Batch(
			reloadResultCmd(m.resultPath),
			waitForFileChange(m.fileWatcher),
		)

	case reloadCompleteMsg:
		if msg.err != nil {
			m.errorMsg = fmt.Sprintf("Error reloading: %v", msg.err)
		} else {
			m.result = msg.result
			m.lastReload = time.Now()
			m.errorMsg = ""
			if m.cursorPos >= len(m.result.Ranking) {
				m.cursorPos = max(0, len(m.result.Ranking)-1)
			}
			m.viewport.SetContent(m.renderRankingContent())
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, viewKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, viewKeys.Up):
			if m.cursorPos > 0 {
				m.cursorPos--
				m.ensureCursorVisible()
				m.viewport.SetContent(m.renderRankingContent())
			}

		case key.Matches(msg, viewKeys.Down):
			if m.cursorPos < len(m.result.Ranking)-1 {
				m.cursorPos++
				m.ensureCursorVisible()
				m.viewport.SetContent(m.renderRankingContent())
			}

		case key.Matches(msg, viewKeys.PageUp):
			m.cursorPos -= m.viewport.Height
			if m.cursorPos < 0 {
				m.cursorPos = 0
			}
			m.ensureCursorVisible()
			m.viewport.SetContent(m.renderRankingContent())

		case key.Matches(msg, viewKeys.PageDown):
			m.cursorPos += m.viewport.Height
			if m.cursorPos >= len(m.result.Ranking) {
				m.cursorPos = len(m.result.Ranking) - 1
			}
			if m.cursorPos < 0 {
				m.cursorPos = 0
			}
			m.ensureCursorVisible()
			m.viewport.SetContent(m.renderRankingContent())

		case key.Matches(msg, viewKeys.Top):
			m.cursorPos = 0
			m.viewport.GotoTop()
			m.viewport.SetContent(m.renderRankingContent())

		case key.Matches(msg, viewKeys.Bottom):
			if len(m.result.Ranking) > 0 {
				m.cursorPos = len(m.result.Ranking) - 1
			}
			m.viewport.GotoBottom()
			m.viewport.SetContent(m.renderRankingContent())

		case key.Matches(msg, viewKeys.Reload):
			return m, reloadResultCmd(m.resultPath)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m viewModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := viewTitleStyle.Render(fmt.Sprintf("Ranking Viewer: %s", m.resultPath))
	header := viewHeaderStyle.Render(fmt.Sprintf("%-5s %-24s %-13s %-10s", "Rank", "Competitor", "Inconsistency", "SOS"))
	viewportContent := m.viewport.View()
	status := m.renderStatus()
	help := m.renderHelp()

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s", title, header, viewportContent, status, help)
}

func (m viewModel) renderRankingContent() string {
	var content string

	for i, e := range m.result.Ranking {
		line := fmt.Sprintf("%-5d %-24s %-13d %-+10.4f", e.Rank, truncate(e.Competitor, 24), e.InconsistencyScore, e.SOS)

		if i == m.cursorPos {
			line = viewCursorStyle.Render(line)
		}

		if i < len(m.result.Ranking)-1 {
			content += line + "\n"
		} else {
			content += line
		}
	}

	return content
}

func (m viewModel) renderStatus() string {
	reloadTime := m.lastReload.Format("15:04:05")

	var statusText string
	if m.errorMsg != "" {
		statusText = fmt.Sprintf("%d ranked | Cursor: %d | %s",
			len(m.result.Ranking), m.cursorPos+1, viewErrorStyle.Render(m.errorMsg))
	} else {
		statusText = fmt.Sprintf("%d ranked | Cursor: %d | Last reload: %s",
			len(m.result.Ranking), m.cursorPos+1, reloadTime)
	}

	return viewStatusStyle.Width(m.width).Render(statusText)
}

func (m viewModel) renderHelp() string {
	return viewHelpStyle.Render("↑/↓: move cursor | r: reload | q: quit")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
