package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okroshkin/unirush/pkg/game"
)

type statsModel struct {
	view     game.StatsView
	statuses []game.AchievementStatus
	name     string
	width    int
	height   int
}

func newStatsModel() statsModel {
	return statsModel{}
}

// refresh snapshots the session for display.
func (m statsModel) refresh(engine *game.Engine, s *game.Session) statsModel {
	m.view = engine.Stats(s)
	m.statuses = game.Achievements(s)
	m.name = s.PlayerName
	return m
}

func (m statsModel) Update(msg tea.Msg) (statsModel, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// verdict maps a resource value to a one-word reading.
func verdict(v int) string {
	switch {
	case v >= 8:
		return "excellent"
	case v >= 5:
		return "solid"
	case v >= 3:
		return "shaky"
	default:
		return "critical"
	}
}

func (m statsModel) View() string {
	var sb strings.Builder

	sb.WriteString(" " + bannerStyle.Render(strings.ToUpper(m.name)+"'S LEDGER") + "\n\n")

	r := m.view.Resources
	rows := []struct {
		axis  string
		value int
	}{
		{"career", r.Career},
		{"family", r.Family},
		{"energy", r.Energy},
		{"skills", r.Skills},
	}
	for _, row := range rows {
		sb.WriteString(" " + resourceBar(row.axis, row.value) + "  " + dimStyle.Render(verdict(row.value)) + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(" " + accentStyle.Render(fmt.Sprintf("score %d", m.view.Score)))
	sb.WriteString(dimStyle.Render(fmt.Sprintf("  day %d  ·  %d done  ·  %d/%d achievements",
		m.view.Day, m.view.DaysCompleted, m.view.AchievementCount, len(game.Descriptors))) + "\n\n")

	sb.WriteString(" " + metaStyle.Render("ACHIEVEMENTS") + "\n")
	for _, st := range m.statuses {
		if st.Unlocked {
			sb.WriteString(" " + achUnlockedStyle.Render("★ "+st.Name) + "\n")
		} else {
			sb.WriteString(" " + metaStyle.Render("☆ ") + dimStyle.Render(st.Name) + metaStyle.Render("  ("+st.Condition+")") + "\n")
		}
	}
	return sb.String()
}
