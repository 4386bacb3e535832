package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okroshkin/unirush/pkg/game"
)

type screen int

const (
	screenGate screen = iota
	screenDay
	screenScene
	screenStats
)

// Verifier checks channel membership for the gate screen. A nil Verifier
// means offline play: the gate passes without a network call.
type Verifier interface {
	Subscribed(ctx context.Context, userID int64) (bool, error)
}

// App is the root Bubbletea model.
type App struct {
	store      *game.Store
	engine     *game.Engine
	userID     int64
	playerName string
	channel    string

	s           *game.Session
	screen      screen
	statsReturn screen

	gate  gateModel
	day   dayModel
	scene sceneModel
	stats statsModel

	width  int
	height int
	frame  int // logo shimmer animation frame
}

// NewApp creates the TUI application and its backing session.
func NewApp(store *game.Store, engine *game.Engine, verifier Verifier, channel string, userID int64, playerName string) App {
	s := store.CreateOrReset(userID, playerName)
	a := App{
		store:      store,
		engine:     engine,
		userID:     userID,
		playerName: playerName,
		channel:    channel,
		s:          s,
		gate:       newGateModel(verifier, channel, userID),
		day:        newDayModel(),
		scene:      newSceneModel(engine),
		stats:      newStatsModel(),
	}
	a.scene = a.scene.reset(s)
	return a
}

func (a App) Init() tea.Cmd {
	return tea.Batch(shimmerTickCmd(), a.gate.Init())
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + blank(1) + help(1) = 4 lines
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 4}
		a.gate, _ = a.gate.Update(bodyMsg)
		a.day, _ = a.day.Update(bodyMsg)
		a.scene, _ = a.scene.Update(bodyMsg)
		a.stats, _ = a.stats.Update(bodyMsg)
		return a, nil

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case verifiedMsg:
		var cmd tea.Cmd
		a.gate, cmd = a.gate.Update(msg)
		if a.gate.verified {
			a.s.SubscriptionVerified = true
		}
		return a, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		}

		switch a.screen {
		case screenGate:
			if msg.String() == "enter" && a.gate.verified {
				a.day.intro = a.engine.StartDay(a.s)
				a.screen = screenDay
				return a, nil
			}

		case screenDay:
			switch msg.String() {
			case "enter":
				a.scene = a.scene.enterResult(a.engine.BeginDay(a.s))
				a.screen = screenScene
				return a, nil
			case "t":
				return a.openStats(), nil
			}

		case screenScene:
			if a.scene.final() {
				switch msg.String() {
				case "n":
					a.day.intro = a.engine.AdvanceDay(a.s)
					a.scene = a.scene.reset(a.s)
					a.screen = screenDay
					return a, nil
				case "r":
					a.s = a.store.CreateOrReset(a.userID, a.playerName)
					a.s.SubscriptionVerified = a.gate.verified
					a.scene = a.scene.reset(a.s)
					a.day.intro = a.engine.StartDay(a.s)
					a.screen = screenDay
					return a, nil
				case "t":
					return a.openStats(), nil
				}
			} else if !a.scene.eventOpen() && msg.String() == "t" {
				return a.openStats(), nil
			}

		case screenStats:
			switch msg.String() {
			case "esc", "t":
				a.screen = a.statsReturn
				return a, nil
			}
		}
	}

	var cmd tea.Cmd
	switch a.screen {
	case screenGate:
		a.gate, cmd = a.gate.Update(msg)
	case screenDay:
		a.day, cmd = a.day.Update(msg)
	case screenScene:
		a.scene, cmd = a.scene.Update(msg)
	case screenStats:
		a.stats, cmd = a.stats.Update(msg)
	}
	return a, cmd
}

func (a App) openStats() App {
	a.stats = a.stats.refresh(a.engine, a.s)
	a.statsReturn = a.screen
	a.screen = screenStats
	return a
}

func (a App) View() string {
	// Header: centered shimmer logo plus a status line
	logo := renderShimmerLogo(a.frame)
	header := centerLine(logo, a.width, lipgloss.Width(logo))

	var status string
	if a.screen == screenGate {
		status = metaStyle.Render("the evening balance game")
	} else {
		clock := clockStyle.Render(a.s.Clock.String())
		if a.s.Clock.Late() {
			clock = lateClockStyle.Render(a.s.Clock.String())
		}
		status = metaStyle.Render(fmt.Sprintf("day %d", a.s.Day)) + dimStyle.Render("  ·  ") +
			clock + dimStyle.Render("  ·  ") +
			metaStyle.Render(fmt.Sprintf("%d pts", game.Score(a.s)))
	}
	header += "\n" + centerLine(status, a.width, lipgloss.Width(status))

	var body, help string
	switch a.screen {
	case screenGate:
		body = a.gate.View()
		if a.gate.verified {
			help = " " + helpEntry("enter", "start") + "  " + helpEntry("o", "channel") + "  " + helpEntry("q", "quit")
		} else {
			help = " " + helpEntry("o", "channel") + "  " + helpEntry("r", "re-check") + "  " + helpEntry("q", "quit")
		}
	case screenDay:
		body = a.day.View()
		help = " " + helpEntry("enter", "begin") + "  " + helpEntry("t", "stats") + "  " + helpEntry("q", "quit")
	case screenScene:
		body = a.scene.View()
		switch {
		case a.scene.eventOpen():
			help = " " + helpEntry("enter", "continue") + "  " + helpEntry("q", "quit")
		case a.scene.final():
			help = " " + helpEntry("n", "next day") + "  " + helpEntry("c", "copy") + "  " + helpEntry("r", "restart") + "  " + helpEntry("t", "stats") + "  " + helpEntry("q", "quit")
		default:
			help = " " + helpEntry("j/k", "choose") + "  " + helpEntry("enter", "pick") + "  " + helpEntry("t", "stats") + "  " + helpEntry("q", "quit")
		}
	case screenStats:
		body = a.stats.View()
		help = " " + helpEntry("esc", "back") + "  " + helpEntry("q", "quit")
	}

	// Chrome budget: header(2) + blank(1) + help(1) = 4 lines + body
	body = strings.TrimRight(truncateToHeight(body, a.height-4), "\n")

	return fmt.Sprintf("%s\n\n%s\n%s", header, body, help)
}
