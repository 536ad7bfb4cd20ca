package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wayfarer-dev/wayfarer/internal/cli/formatter"
	"github.com/wayfarer-dev/wayfarer/internal/domain"
)

type stageMsg domain.PlanStage

type planDoneMsg struct {
	plan *domain.TripPlan
	err  error
}

// planProgressModel shows a spinner and the current pipeline stage while
// a trip is being planned.
type planProgressModel struct {
	spin  spinner.Model
	stage domain.PlanStage
	done  bool
}

func newPlanProgressModel() planProgressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(formatter.ColorPurple)
	return planProgressModel{spin: s, stage: domain.StageResearching}
}

func (m planProgressModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m planProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stageMsg:
		m.stage = domain.PlanStage(msg)
		return m, nil
	case planDoneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.done = true
			return m, tea.Quit
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
}

func (m planProgressModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("  %s %s\n", m.spin.View(), formatter.Dim(stageLabel(m.stage)+"..."))
}

// runPlanTUI drives the planning pipeline behind an animated progress
// display. Stage events from the orchestrator are forwarded into the
// bubbletea program.
func runPlanTUI(ctx context.Context, app *App, req domain.TripRequest) (*domain.TripPlan, error) {
	p := tea.NewProgram(newPlanProgressModel())

	orch := app.NewOrchestrator(func(stage domain.PlanStage) {
		p.Send(stageMsg(stage))
	})

	var (
		plan    *domain.TripPlan
		planErr error
	)
	go func() {
		plan, planErr = orch.PlanTrip(ctx, req)
		p.Send(planDoneMsg{plan: plan, err: planErr})
	}()

	if _, err := p.Run(); err != nil {
		return nil, fmt.Errorf("progress display: %w", err)
	}
	return plan, planErr
}
