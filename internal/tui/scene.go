package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okroshkin/unirush/pkg/game"
)

type sceneModel struct {
	engine *game.Engine
	s      *game.Session

	result  game.TransitionResult
	cursor  int
	outcome *game.FinalOutcome
	copied  bool
	width   int
	height  int
}

func newSceneModel(engine *game.Engine) sceneModel {
	return sceneModel{engine: engine}
}

// reset binds the model to a session and drops any in-flight day state.
func (m sceneModel) reset(s *game.Session) sceneModel {
	m.s = s
	m.result = game.TransitionResult{}
	m.cursor = 0
	m.outcome = nil
	m.copied = false
	return m
}

// enterResult installs a fresh render payload. Arrival at the terminal scene
// (not behind an interrupt) settles the day exactly once.
func (m sceneModel) enterResult(res game.TransitionResult) sceneModel {
	m.result = res
	m.cursor = 0
	m.copied = false
	if res.Event == nil && res.Scene == game.SceneFinal && m.outcome == nil {
		out := game.EvaluateFinalOutcome(m.s)
		m.outcome = &out
	}
	return m
}

func (m sceneModel) eventOpen() bool {
	return m.result.Event != nil
}

func (m sceneModel) final() bool {
	return m.outcome != nil
}

func (m sceneModel) Update(msg tea.Msg) (sceneModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.eventOpen() {
			switch msg.String() {
			case "enter", " ":
				res, err := m.engine.ResolveContinuation(m.s)
				if err != nil && !errors.Is(err, game.ErrNoPendingEvent) {
					return m, nil
				}
				// A no-pending recovery still yields a usable scene.
				return m.enterResult(res), nil
			}
			return m, nil
		}

		if m.final() {
			if msg.String() == "c" {
				if err := clipboard.WriteAll(m.shareText()); err == nil {
					m.copied = true
				}
			}
			return m, nil
		}

		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.result.Choices)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			if len(m.result.Choices) == 0 {
				return m, nil
			}
			choice := m.result.Choices[m.cursor]
			res, err := m.engine.ApplyChoice(m.s, choice.Choice)
			if err != nil {
				return m, nil
			}
			return m.enterResult(res), nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// shareText builds the clipboard summary for a finished day.
func (m sceneModel) shareText() string {
	out := m.outcome
	headline, _, _ := strings.Cut(out.Tier, "\n")
	runID := m.s.RunID.String()
	if len(runID) > 8 {
		runID = runID[:8]
	}
	return fmt.Sprintf("UNIRUSH day %d: %d pts, %d/5 goals. %s (run %s)",
		m.s.DaysCompleted, out.Score, out.SuccessCount, headline, runID)
}

func (m sceneModel) View() string {
	if m.eventOpen() {
		return m.eventView()
	}
	if m.final() {
		return m.finalView()
	}
	return m.choicesView()
}

func (m sceneModel) choicesView() string {
	var sb strings.Builder

	for i, line := range strings.Split(m.result.Narrative, "\n") {
		if i == 0 {
			sb.WriteString(" " + bannerStyle.Render(line) + "\n")
		} else {
			sb.WriteString(" " + narrativeStyle.Render(line) + "\n")
		}
	}
	sb.WriteString("\n")

	for i, ch := range m.result.Choices {
		prefix := "   "
		label := normalStyle.Render(ch.Label)
		if i == m.cursor {
			prefix = " " + accentStyle.Render(">") + " "
			label = selectedStyle.Render(ch.Label)
		}
		cost := dimStyle.Render(fmt.Sprintf("%3dm", ch.Minutes))
		row := prefix + label
		deltas := deltaLine(ch.Delta.Career, ch.Delta.Family, ch.Delta.Energy, ch.Delta.Skills)
		if deltas != "" {
			row += "  " + cost + "  " + deltas
		} else {
			row += "  " + cost
		}
		sb.WriteString(row + "\n")
	}
	return sb.String()
}

func (m sceneModel) eventView() string {
	ev := m.result.Event
	var sb strings.Builder

	sb.WriteString(" " + eventTitleStyle.Render(ev.Event.Title) + "\n\n")
	sb.WriteString(" " + narrativeStyle.Render(ev.Event.Text) + "\n\n")

	arrow := clockStyle.Render(ev.OldClock.String()) + dimStyle.Render(" to ") + clockStyle.Render(ev.NewClock.String())
	if ev.NewClock.Late() {
		arrow = clockStyle.Render(ev.OldClock.String()) + dimStyle.Render(" to ") + lateClockStyle.Render(ev.NewClock.String())
	}
	sb.WriteString(" " + arrow + "\n")

	d := ev.Event.Effect.Delta
	if deltas := deltaLine(d.Career, d.Family, d.Energy, d.Skills); deltas != "" {
		sb.WriteString(" " + deltas + "\n")
	}
	if ev.Unlocked != "" {
		sb.WriteString("\n " + achUnlockedStyle.Render("achievement unlocked: "+ev.Unlocked) + "\n")
	}
	sb.WriteString("\n " + dimStyle.Render("press enter to continue") + "\n")
	return sb.String()
}

func (m sceneModel) finalView() string {
	out := m.outcome
	var sb strings.Builder

	if out.OnTime {
		sb.WriteString(" " + okStyle.Render("MADE IT!") + " " + narrativeStyle.Render("You walk into the lecture hall at "+m.s.Clock.String()+".") + "\n\n")
	} else {
		sb.WriteString(" " + dangerStyle.Render("LATE...") + " " + narrativeStyle.Render("You slip in at "+m.s.Clock.String()+", after the lecture started.") + "\n\n")
	}

	check := func(ok bool, label string) string {
		if ok {
			return " " + okStyle.Render("✓") + " " + normalStyle.Render(label)
		}
		return " " + dangerStyle.Render("✗") + " " + dimStyle.Render(label)
	}
	sb.WriteString(check(out.OnTime, "on time (by 18:40)") + "\n")
	sb.WriteString(check(out.CareerOK, fmt.Sprintf("career %d (need 5+)", m.s.Resources.Career)) + "\n")
	sb.WriteString(check(out.FamilyOK, fmt.Sprintf("family %d (need 5+)", m.s.Resources.Family)) + "\n")
	sb.WriteString(check(out.EnergyOK, fmt.Sprintf("energy %d (need 4+)", m.s.Resources.Energy)) + "\n")
	sb.WriteString(check(out.SkillsOK, fmt.Sprintf("skills %d (need 3+)", m.s.Resources.Skills)) + "\n\n")

	headline, sub, _ := strings.Cut(out.Tier, "\n")
	sb.WriteString(" " + tierStyle.Render(headline) + "\n")
	if sub != "" {
		sb.WriteString(" " + dimStyle.Render(sub) + "\n")
	}
	sb.WriteString("\n " + accentStyle.Render(fmt.Sprintf("score %d", out.Score)) + dimStyle.Render(fmt.Sprintf("  ·  %d/5 goals  ·  day %d done", out.SuccessCount, m.s.DaysCompleted)) + "\n")

	if len(out.Unlocked) > 0 {
		sb.WriteString("\n")
		for _, name := range out.Unlocked {
			sb.WriteString(" " + achUnlockedStyle.Render("achievement unlocked: "+name) + "\n")
		}
	}
	if m.copied {
		sb.WriteString("\n " + okStyle.Render("result copied to clipboard") + "\n")
	}
	return sb.String()
}
