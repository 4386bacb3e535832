package main

import (
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okroshkin/unirush/internal/browser"
	"github.com/okroshkin/unirush/internal/tui"
	"github.com/okroshkin/unirush/pkg/game"
	"github.com/okroshkin/unirush/pkg/verify"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

// defaultChannel is the community channel the gate checks against.
const defaultChannel = "@unirush_game"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// resolvePlayerName picks the hero's name: explicit env var, then the shell
// user, then the stock fallback.
func resolvePlayerName(getenv func(string) string) string {
	if name := getenv("UNIRUSH_PLAYER"); name != "" {
		return name
	}
	if name := getenv("USER"); name != "" {
		return name
	}
	return "Hero"
}

// resolveUserID parses UNIRUSH_USER_ID, defaulting to 1 for local play.
func resolveUserID(getenv func(string) string) int64 {
	raw := getenv("UNIRUSH_USER_ID")
	if raw == "" {
		return 1
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 1
	}
	return id
}

func run() error {
	channel := os.Getenv("UNIRUSH_CHANNEL")
	if channel == "" {
		channel = defaultChannel
	}

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version", "-v":
			fmt.Println("unirush " + version)
			return nil
		case "help", "--help", "-h":
			printHelp(channel)
			return nil
		case "channel":
			return openChannel(channel)
		}
	}

	var verifier tui.Verifier
	// Without a bot token the gate plays offline instead of blocking.
	if token := os.Getenv("UNIRUSH_BOT_TOKEN"); token != "" {
		verifier = verify.New(os.Getenv("UNIRUSH_API_URL"), token, channel)
	}

	store := game.NewStore()
	engine := game.NewEngine(nil)
	app := tui.NewApp(store, engine, verifier, channel, resolveUserID(os.Getenv), resolvePlayerName(os.Getenv))

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func openChannel(channel string) error {
	url := "https://t.me/" + channel
	if len(channel) > 0 && channel[0] == '@' {
		url = "https://t.me/" + channel[1:]
	}
	if err := browser.Open(url); err != nil {
		fmt.Println(url)
	}
	return nil
}
