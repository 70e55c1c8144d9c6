package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/bifurc/internal/analysis"
)

const progressWidth = 40

type TickMsg time.Time

// ProgressMsg reports finished columns. Send it with tea.Program.Send from
// the sweep's Progress callback.
type ProgressMsg struct {
	Done, Total int
}

// DoneMsg ends the program with the sweep outcome.
type DoneMsg struct {
	Result *analysis.Result
	Err    error
}

// SweepModel shows the progress of a running sweep.
type SweepModel struct {
	title    string
	done     int
	total    int
	frame    int
	start    time.Time
	now      time.Time
	cancel   func()
	result   *analysis.Result
	err      error
	quitting bool
}

// NewSweepModel creates a progress view for total columns. cancel is called
// when the user quits before the sweep finishes; it may be nil.
func NewSweepModel(title string, total int, cancel func()) SweepModel {
	now := time.Now()
	return SweepModel{
		title:  title,
		total:  total,
		start:  now,
		now:    now,
		cancel: cancel,
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/15, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m SweepModel) Init() tea.Cmd {
	return tick()
}

func (m SweepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
	case TickMsg:
		m.frame++
		m.now = time.Time(msg)
		return m, tick()
	case ProgressMsg:
		if msg.Done > m.done {
			m.done = msg.Done
		}
		m.total = msg.Total
	case DoneMsg:
		m.result = msg.Result
		m.err = msg.Err
		if msg.Err == nil && msg.Result != nil {
			m.done = m.total
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m SweepModel) View() string {
	var b strings.Builder

	status := Spinner(m.frame)
	switch {
	case m.err != nil:
		status = ErrorStyle.Render("failed")
	case m.result != nil:
		status = ValueStyle.Render("done")
	case m.quitting:
		status = ErrorStyle.Render("cancelled")
	}
	b.WriteString(TitleStyle.Render(m.title) + " " + status + "\n\n")

	b.WriteString(ProgressBar(m.Fraction(), progressWidth))
	b.WriteString(fmt.Sprintf(" %5.1f%%\n", 100*m.Fraction()))
	b.WriteString(Field("columns", fmt.Sprintf("%d/%d", m.done, m.total)) + "\n")

	elapsed := m.now.Sub(m.start)
	if m.result != nil {
		elapsed = m.result.Elapsed
	}
	b.WriteString(Field("elapsed", elapsed.Round(time.Millisecond).String()) + "\n")

	if m.err != nil {
		b.WriteString("\n" + ErrorStyle.Render(m.err.Error()) + "\n")
	} else if m.result == nil && !m.quitting {
		b.WriteString("\n" + HintStyle.Render("q to cancel") + "\n")
	}
	return b.String()
}

// Fraction is the share of finished columns in [0, 1].
func (m SweepModel) Fraction() float64 {
	if m.total <= 0 {
		return 0
	}
	return float64(m.done) / float64(m.total)
}

// Result returns the finished sweep, or nil if it failed or was cancelled.
func (m SweepModel) Result() *analysis.Result { return m.result }

// Err returns the sweep error, if any.
func (m SweepModel) Err() error { return m.err }

// Cancelled reports whether the user quit before the sweep finished.
func (m SweepModel) Cancelled() bool { return m.quitting && m.result == nil }
