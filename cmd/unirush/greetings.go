package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/lipgloss"
)

var deanGreetings = [...]string{
	"The lecture starts at 18:40. The lecture does not wait.",
	"Career, family, energy, skills. Pick four.",
	"Your boss wants a report. Your kids want dinner. The dean wants you seated.",
	"Three hours. One evening. No refunds.",
	"The bus is slow, the car is dead, and the taxi driver knows a shortcut. Allegedly.",
	"Somebody's partner is calling. It's yours. It's always yours.",
	"A thorough report buys respect and costs daylight. Choose.",
	"Yesterday's hero arrived at 18:39. You could be today's.",
	"The traffic jam has never heard of your schedule.",
	"Legendary balance is a real grade here. Ask the last one who got it.",
	"Energy below four and you'll doze through the lecture anyway.",
	"The kids finished their homework once. Once.",
	"Every evening the clock starts at 15:00. Every evening you think that's plenty.",
	"Delegation is a skill. So is apologizing. Tonight you'll practice both.",
}

func printHelp(channel string) {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fbbf24")).
		Bold(true).
		Render("U N I R U S H")

	quote := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		Render(`"` + deanGreetings[rand.IntN(len(deanGreetings))] + `"`)

	attrib := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#D4A017")).
		Render("- The Dean")

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	commands := []struct{ cmd, desc string }{
		{"unirush", "Play the evening (interactive TUI)"},
		{"unirush channel", "Open the community channel"},
		{"unirush --version", "Show version"},
		{"unirush help", "You are here"},
	}

	fmt.Printf("\n  %s\n\n  %s\n  %s\n\n  Commands:\n", title, quote, attrib)
	for _, c := range commands {
		fmt.Printf("    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-20s", c.cmd)), descStyle.Render(c.desc))
	}

	envStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	envs := []struct{ name, desc string }{
		{"UNIRUSH_PLAYER", "Hero name (default: $USER, then Hero)"},
		{"UNIRUSH_BOT_TOKEN", "Telegram bot token for the subscription gate"},
		{"UNIRUSH_CHANNEL", "Channel to verify against (default: " + channel + ")"},
		{"UNIRUSH_USER_ID", "Telegram user id for the gate (default: 1)"},
		{"UNIRUSH_API_URL", "Override the Bot API endpoint"},
	}
	fmt.Printf("\n  Environment:\n")
	for _, e := range envs {
		fmt.Printf("    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-20s", e.name)), envStyle.Render(e.desc))
	}
	fmt.Println()
}
