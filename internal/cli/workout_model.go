package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fitloop/internal/cli/formatter"
	"github.com/alexanderramin/fitloop/internal/domain"
	"github.com/alexanderramin/fitloop/internal/service"
	"github.com/alexanderramin/fitloop/internal/timer"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ── messages ─────────────────────────────────────────────────────────────────

// tickMsg advances the engine by one second.
type tickMsg struct{}

// ctxDoneMsg reports that the command context ended, e.g. on SIGTERM.
type ctxDoneMsg struct{}

// runRecordedMsg carries the result of persisting a finished run.
type runRecordedMsg struct {
	result *service.RecordResult
	err    error
}

// ── key map ──────────────────────────────────────────────────────────────────

type workoutKeyMap struct {
	Pause   key.Binding
	Skip    key.Binding
	Steps   key.Binding
	Quit    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Abort   key.Binding
}

func newWorkoutKeyMap() workoutKeyMap {
	return workoutKeyMap{
		Pause:   key.NewBinding(key.WithKeys(" ", "space", "p"), key.WithHelp("space", "pause/resume")),
		Skip:    key.NewBinding(key.WithKeys("s", "n", "right"), key.WithHelp("s", "skip")),
		Steps:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "how-to")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		Confirm: key.NewBinding(key.WithKeys("y", "Y", "enter"), key.WithHelp("y", "end workout")),
		Cancel:  key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "keep going")),
		Abort:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k workoutKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Skip, k.Steps, k.Quit}
}

func (k workoutKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// confirmKeys is the help shown while the quit prompt is open.
type confirmKeys struct{ workoutKeyMap }

func (k confirmKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

// ── model ────────────────────────────────────────────────────────────────────

// workoutModel hosts a timer.Engine: it schedules one tick per second,
// maps keys to engine commands and records the run once it ends.
type workoutModel struct {
	ctx      context.Context
	engine   *timer.Engine
	workouts service.WorkoutService
	now      func() time.Time
	tick     func() tea.Cmd

	snap      timer.Snapshot
	startedAt time.Time
	keys      workoutKeyMap
	help      help.Model
	overall   progress.Model
	phase     progress.Model
	width     int

	showSteps   bool
	confirming  bool
	wasPaused   bool
	recording   bool
	result      *service.RecordResult
	err         error
	interrupted bool
}

type workoutOption func(*workoutModel)

// withManualTicks disables the real one-second clock so tests can feed
// tickMsg themselves.
func withManualTicks() workoutOption {
	return func(m *workoutModel) {
		m.tick = func() tea.Cmd { return nil }
	}
}

func withClock(now func() time.Time) workoutOption {
	return func(m *workoutModel) {
		m.now = now
	}
}

// newWorkoutModel starts engine on plan. The engine must be idle.
func newWorkoutModel(ctx context.Context, engine *timer.Engine, plan domain.WorkoutPlan, workouts service.WorkoutService, opts ...workoutOption) (*workoutModel, error) {
	m := &workoutModel{
		ctx:      ctx,
		engine:   engine,
		workouts: workouts,
		now:      time.Now,
		keys:     newWorkoutKeyMap(),
		help:     help.New(),
		overall:  progress.New(progress.WithSolidFill(string(formatter.ColorPurple)), progress.WithoutPercentage()),
		phase:    progress.New(progress.WithSolidFill(string(formatter.ColorGreen)), progress.WithoutPercentage()),
		width:    60,
	}
	m.tick = func() tea.Cmd {
		return tea.Tick(time.Second, func(time.Time) tea.Msg { return tickMsg{} })
	}
	for _, opt := range opts {
		opt(m)
	}

	snap, err := engine.Start(plan)
	if err != nil {
		return nil, err
	}
	m.snap = snap
	m.startedAt = m.now()
	m.resize(m.width)
	return m, nil
}

func (m *workoutModel) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.watchContext())
}

// watchContext turns cancellation of the command context into ctxDoneMsg.
// A context that can never end needs no watcher.
func (m *workoutModel) watchContext() tea.Cmd {
	done := m.ctx.Done()
	if done == nil {
		return nil
	}
	return func() tea.Msg {
		<-done
		return ctxDoneMsg{}
	}
}

func (m *workoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width)
		return m, nil

	case tickMsg:
		if m.snap.Terminal() {
			return m, nil
		}
		m.snap = m.engine.Tick()
		if m.snap.Terminal() {
			return m, m.finish()
		}
		return m, m.tick()

	case ctxDoneMsg:
		if m.recording || m.snap.Terminal() {
			return m, nil
		}
		m.interrupted = true
		m.snap = m.engine.Close()
		return m, m.finish()

	case runRecordedMsg:
		m.recording = false
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *workoutModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.recording || m.snap.Terminal() {
		return nil
	}
	if key.Matches(msg, m.keys.Abort) {
		m.interrupted = true
		m.snap = m.engine.Close()
		return m.finish()
	}

	if m.confirming {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.confirming = false
			m.snap = m.engine.Close()
			return m.finish()
		case key.Matches(msg, m.keys.Cancel):
			m.confirming = false
			if !m.wasPaused {
				m.snap = m.engine.Resume()
			}
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Pause):
		m.snap = m.engine.TogglePause()
	case key.Matches(msg, m.keys.Steps):
		m.showSteps = !m.showSteps
	case key.Matches(msg, m.keys.Skip):
		m.snap = m.engine.Skip()
		if m.snap.Terminal() {
			return m.finish()
		}
	case key.Matches(msg, m.keys.Quit):
		m.confirming = true
		m.wasPaused = m.snap.Paused
		m.snap = m.engine.Pause()
	}
	return nil
}

// finish records the terminal run in the background of the update loop. The
// save detaches from cancellation so a run ended by SIGTERM is still kept.
func (m *workoutModel) finish() tea.Cmd {
	if m.recording {
		return nil
	}
	m.recording = true
	run := service.RunRecord{
		Plan:          m.engine.Plan(),
		Completed:     m.engine.Outcome() == timer.OutcomeCompleted,
		StartedAt:     m.startedAt,
		EndedAt:       m.now(),
		ActiveSeconds: m.snap.Elapsed,
		ExercisesDone: m.snap.ExerciseIndex,
	}
	ctx, workouts := context.WithoutCancel(m.ctx), m.workouts
	return func() tea.Msg {
		res, err := workouts.RecordRun(ctx, run)
		return runRecordedMsg{result: res, err: err}
	}
}

func (m *workoutModel) resize(width int) {
	if width <= 0 {
		return
	}
	m.width = width
	barWidth := min(width-8, 60)
	m.overall.Width = max(barWidth, 10)
	m.phase.Width = max(barWidth, 10)
	m.help.Width = width
}

// ── view ─────────────────────────────────────────────────────────────────────

var (
	clockStyle = lipgloss.NewStyle().Bold(true).Padding(0, 2)
	nameStyle  = lipgloss.NewStyle().Bold(true).Foreground(formatter.ColorFg)
)

func (m *workoutModel) View() string {
	s := m.snap
	plan := m.engine.Plan()
	var b strings.Builder

	b.WriteString(formatter.StyleHeader.Render(strings.ToUpper(plan.DisplayName())))
	b.WriteString(formatter.Dim(fmt.Sprintf("  exercise %d of %d", min(s.ExerciseIndex+1, s.ExerciseCount), s.ExerciseCount)))
	b.WriteString("\n\n")

	color := formatter.PhaseColor(s.Phase)
	label := strings.ToUpper(s.PhaseLabel)
	if s.Paused {
		label += " · PAUSED"
		color = formatter.ColorDim
	}
	b.WriteString(lipgloss.NewStyle().Foreground(color).Bold(true).Render(label) + "\n")
	b.WriteString(nameStyle.Render(s.ExerciseName) + "\n")
	if s.Description != "" {
		b.WriteString(formatter.Dim(s.Description) + "\n")
	}
	if s.Phase != timer.PhaseComplete && s.ExerciseIndex < len(plan.Exercises) {
		b.WriteString(m.coaching(plan.Exercises[s.ExerciseIndex]))
	}
	b.WriteString("\n")

	if s.Phase != timer.PhaseComplete {
		b.WriteString(clockStyle.Foreground(color).Render(formatter.FormatClock(s.SecondsRemaining)) + "\n")
		b.WriteString(m.phase.ViewAs(s.PhaseFraction()) + "\n")
		if sets := setLine(s); sets != "" {
			b.WriteString(sets + "\n")
		}
		if s.NextUp != "" {
			b.WriteString(formatter.Dim(s.NextUp) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.overall.ViewAs(s.ProgressFraction) + "\n")
	b.WriteString(formatter.Dim("elapsed "+formatter.FormatClock(s.Elapsed)) + "\n\n")

	switch {
	case m.recording:
		b.WriteString(formatter.Dim("Saving workout..."))
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Could not save workout: " + m.err.Error()))
	case m.result != nil:
		b.WriteString(formatter.StyleGreen.Render("Workout saved."))
	case m.confirming:
		b.WriteString(formatter.StyleYellow.Render("End this workout? Progress so far will be saved.") + "\n")
		b.WriteString(m.help.View(confirmKeys{m.keys}))
	default:
		b.WriteString(m.help.View(m.keys))
	}
	return b.String() + "\n"
}

// coaching shows the exercise steps when toggled on, otherwise one tip that
// rotates with the set number.
func (m *workoutModel) coaching(ex domain.Exercise) string {
	if m.showSteps && len(ex.Steps) > 0 {
		var b strings.Builder
		for i, step := range ex.Steps {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
		}
		return b.String()
	}
	if len(ex.Tips) == 0 {
		return ""
	}
	tip := ex.Tips[max(m.snap.CurrentSet-1, 0)%len(ex.Tips)]
	return formatter.StyleYellow.Render("Tip: ") + tip + "\n"
}

// setLine renders "Set 2 of 3 · 12 reps" for sets/reps exercises.
func setLine(s timer.Snapshot) string {
	if s.Phase == timer.PhaseCountdown || s.Reps == 0 {
		return ""
	}
	return fmt.Sprintf("Set %d of %d · %s", s.CurrentSet, s.TotalSets, formatter.Reps(s.Reps))
}
