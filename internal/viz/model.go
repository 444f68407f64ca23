package viz

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/numero/internal/animator"
	"github.com/san-kum/numero/internal/digits"
)

// ErrAborted is returned when the user quits before the number settles.
var ErrAborted = errors.New("viz: animation aborted")

const title = "N U M E R O"

type frameMsg time.Time

// Model steps the animator on tea.Tick and renders the current row.
type Model struct {
	anim    *animator.Animator
	clock   animator.Clock
	theme   Theme
	sep     string
	start   time.Time
	plan    animator.Plan
	next    int
	pending animator.Frame
	shown   digits.Sequence
	settled map[int]bool
	typed   []rune
	done    bool
	aborted bool

	width, height int
}

func NewModel(a *animator.Animator, clock animator.Clock, theme Theme) Model {
	return Model{
		anim:    a,
		clock:   clock,
		theme:   theme,
		sep:     a.Settings().Separator,
		shown:   a.Current(),
		settled: make(map[int]bool),
		width:   80,
		height:  24,
	}
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return startMsg{} }
}

type startMsg struct{}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Update handles input events and advances the animation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case startMsg:
		m.anim.Transition(animator.PhaseScrambling)
		m.start = m.clock.Now()
		cmd := m.schedule()
		return m, cmd
	case frameMsg:
		m.show(m.pending)
		cmd := m.schedule()
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.aborted = !m.done
		return m, tea.Quit
	}
	if !m.done {
		if msg.String() == "t" {
			m.theme = NextTheme(m.theme)
		}
		return m, nil
	}
	switch msg.Type {
	case tea.KeyEnter:
		return m, tea.Quit
	case tea.KeyBackspace:
		if len(m.typed) > 0 {
			m.typed = m.typed[:len(m.typed)-1]
		}
	case tea.KeySpace:
		m.typed = append(m.typed, ' ')
	case tea.KeyRunes:
		m.typed = append(m.typed, msg.Runes...)
	}
	return m, nil
}

// schedule picks the next frame and returns the tick that will show it, or
// nil once the row has settled.
func (m *Model) schedule() tea.Cmd {
	s := m.anim.Settings()
	if m.anim.Phase() == animator.PhaseScrambling {
		if m.clock.Now().Sub(m.start) < s.Duration {
			seq := m.anim.ScrambleStep()
			m.pending = animator.Frame{Phase: animator.PhaseScrambling, Digits: seq, Delay: s.BaseDelay, Revealed: -1}
			return tick(s.BaseDelay)
		}
		plan, err := m.anim.Plan()
		if err != nil {
			m.aborted = true
			return tea.Quit
		}
		m.anim.Transition(animator.PhaseSettling)
		m.plan = plan
		m.next = 0
	}

	if m.anim.Phase() == animator.PhaseSettling {
		if m.next < len(m.plan.Frames) {
			m.pending = m.plan.Frames[m.next]
			m.next++
			return tick(m.pending.Delay)
		}
		m.anim.Transition(animator.PhaseDone)
		m.done = true
	}
	return nil
}

func (m *Model) show(f animator.Frame) {
	if f.Digits == nil {
		return
	}
	m.anim.Apply(f)
	m.shown = f.Digits.Clone()
	if f.Revealed >= 0 {
		m.settled[f.Revealed] = true
	}
}

func (m Model) Done() bool        { return m.done }
func (m Model) Aborted() bool     { return m.aborted }
func (m Model) Typed() string     { return string(m.typed) }
func (m Model) Shown() string     { return m.shown.String() }
func (m Model) ThemeName() string { return m.theme.Name }

// View renders the TUI interface.
func (m Model) View() string {
	var s strings.Builder
	s.WriteString(GradientText(title, m.theme.Primary, m.theme.TitleEnd) + "\n\n")
	s.WriteString(DigitRow(m.shown, m.settled, m.sep, m.theme) + "\n\n")

	n := len(m.shown)
	if n > 0 {
		s.WriteString(ProgressBar(float64(len(m.settled))/float64(n), 2*n+1, m.theme) + "\n")
	}

	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)
	status := fmt.Sprintf("%s · %s", m.anim.Phase(), m.theme.Name)
	s.WriteString(muted.Render(status) + "\n\n")

	if m.done {
		prompt := lipgloss.NewStyle().Foreground(m.theme.Text).Render("Please press enter when complete . . . ")
		s.WriteString(prompt + string(m.typed))
	} else {
		s.WriteString(keyHint.Foreground(m.theme.Muted).Render("t: theme  ctrl+c: quit"))
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s.String())
}

// Run plays the animation full screen and returns what the user typed at
// the closing prompt.
func Run(a *animator.Animator, clock animator.Clock, theme Theme) (string, error) {
	final, err := tea.NewProgram(NewModel(a, clock, theme), tea.WithAltScreen()).Run()
	if err != nil {
		return "", err
	}
	m := final.(Model)
	if m.Aborted() {
		return "", ErrAborted
	}
	return m.Typed(), nil
}
