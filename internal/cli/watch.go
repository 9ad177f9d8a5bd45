package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/daybreak/internal/cli/formatter"
	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/temporal"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg fires once a second to refresh the elapsed clock.
type tickMsg time.Time

// watchStoppedMsg reports the result of stopping the timer from the view.
type watchStoppedMsg struct {
	session *domain.TimerSession
	err     error
}

// watchModel renders the running timer live: a ticking clock and, when the
// task has planned minutes, a progress bar toward them.
type watchModel struct {
	app     *App
	task    *domain.Task
	bar     progress.Model
	stopped *domain.TimerSession
	err     error
	done    bool
}

func newWatchModel(app *App, task *domain.Task) *watchModel {
	bar := progress.New(
		progress.WithSolidFill(string(formatter.ColorGreen)),
		progress.WithWidth(30),
		progress.WithoutPercentage(),
	)
	return &watchModel{app: app, task: task, bar: bar}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *watchModel) Init() tea.Cmd {
	return tick()
}

func (m *watchModel) stopTimer() tea.Cmd {
	app, taskID := m.app, m.task.ID
	return func() tea.Msg {
		session, err := app.Timers.Stop(context.Background(), taskID, time.Now())
		return watchStoppedMsg{session: session, err: err}
	}
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.done {
			return m, nil
		}
		return m, tick()

	case watchStoppedMsg:
		m.done = true
		m.stopped = msg.session
		m.err = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			if !m.done {
				return m, m.stopTimer()
			}
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *watchModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.done && m.stopped != nil {
		return fmt.Sprintf("Stopped %s at %s\n",
			formatter.Bold(m.task.Title), formatter.FormatClock(m.stopped.DurationSec))
	}

	now := time.Now()
	elapsed := temporal.ElapsedSeconds(m.task, now)

	var b strings.Builder
	b.WriteString(formatter.StyleGreen.Render("● "+m.task.Title) + "\n\n")
	b.WriteString(formatter.Bold(formatter.FormatClock(elapsed)) + "\n")

	if m.task.PlannedMin > 0 {
		pct := float64(elapsed) / float64(m.task.PlannedMin*60)
		if pct > 1 {
			pct = 1
		}
		b.WriteString(m.bar.ViewAs(pct) + formatter.Dim(fmt.Sprintf("  of %s", formatter.FormatMinutes(m.task.PlannedMin))) + "\n")
		if finish, ok := temporal.EstimatedFinish(m.task, now); ok {
			b.WriteString(formatter.Dim("Estimated finish "+finish.Local().Format("15:04")) + "\n")
		}
	}

	b.WriteString("\n" + formatter.Dim("s stop  q quit") + "\n")
	return formatter.RenderBox("Timer", b.String())
}
