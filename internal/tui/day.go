package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okroshkin/unirush/pkg/game"
)

type dayModel struct {
	intro  game.DayIntro
	width  int
	height int
}

func newDayModel() dayModel {
	return dayModel{}
}

func (m dayModel) Update(msg tea.Msg) (dayModel, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m dayModel) View() string {
	var sb strings.Builder

	sb.WriteString(" " + metaStyle.Render(fmt.Sprintf("DAY %d", m.intro.Day)) + "\n\n")

	headline, sub, _ := strings.Cut(m.intro.Banner, "\n")
	sb.WriteString(" " + bannerStyle.Render(headline) + "\n")
	if sub != "" {
		sb.WriteString(" " + dimStyle.Render(sub) + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(" " + clockStyle.Render(m.intro.Clock.String()) + dimStyle.Render("  lecture at 18:40") + "\n\n")

	r := m.intro.Resources
	sb.WriteString(" " + resourceBar("career", r.Career) + "\n")
	sb.WriteString(" " + resourceBar("family", r.Family) + "\n")
	sb.WriteString(" " + resourceBar("energy", r.Energy) + "\n")
	sb.WriteString(" " + resourceBar("skills", r.Skills) + "\n\n")

	sb.WriteString(" " + accentStyle.Render("press enter to head into the evening") + "\n")
	return sb.String()
}
