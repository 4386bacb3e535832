package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okroshkin/unirush/internal/browser"
)

// verifyTimeout bounds a single membership check.
const verifyTimeout = 10 * time.Second

// verifiedMsg carries the result of a channel membership check.
type verifiedMsg struct {
	ok  bool
	err error
}

type gateModel struct {
	verifier Verifier
	channel  string
	userID   int64

	checking bool
	verified bool
	err      string
	width    int
	height   int
}

func newGateModel(v Verifier, channel string, userID int64) gateModel {
	return gateModel{verifier: v, channel: channel, userID: userID, checking: true}
}

func (m gateModel) Init() tea.Cmd {
	return m.check()
}

func (m gateModel) check() tea.Cmd {
	v := m.verifier
	userID := m.userID
	return func() tea.Msg {
		if v == nil {
			// No verifier configured, play offline.
			return verifiedMsg{ok: true}
		}
		ctx, cancel := context.WithTimeout(context.Background(), verifyTimeout)
		defer cancel()
		ok, err := v.Subscribed(ctx, userID)
		return verifiedMsg{ok: ok, err: err}
	}
}

func (m gateModel) Update(msg tea.Msg) (gateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case verifiedMsg:
		m.checking = false
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.err = ""
		m.verified = msg.ok
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "o":
			if m.channel != "" {
				browser.Open(channelURL(m.channel)) //nolint:errcheck // best-effort browser open
			}
		case "r":
			if !m.verified {
				m.checking = true
				m.err = ""
				return m, m.check()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// channelURL converts "@mychannel" into a t.me link.
func channelURL(channel string) string {
	return "https://t.me/" + strings.TrimPrefix(channel, "@")
}

func (m gateModel) View() string {
	var sb strings.Builder

	sb.WriteString(" " + bannerStyle.Render("RACE TO THE UNIVERSITY") + "\n\n")
	sb.WriteString(" " + narrativeStyle.Render("One evening. Three hours. Four lives to keep in balance.") + "\n")
	sb.WriteString(" " + narrativeStyle.Render("Finish work, hold the family together, stay on good terms") + "\n")
	sb.WriteString(" " + narrativeStyle.Render("with your partner, and still make the 18:40 lecture.") + "\n\n")

	goals := []string{
		"career 5+   family 5+   energy 4+   skills 3+",
		"arrive at the university by 18:40",
	}
	for _, g := range goals {
		sb.WriteString("   " + dimStyle.Render("· "+g) + "\n")
	}
	sb.WriteString("\n")

	switch {
	case m.checking:
		sb.WriteString(" " + dimStyle.Render("checking subscription...") + "\n")
	case m.err != "":
		sb.WriteString(" " + dangerStyle.Render("subscription check failed: "+truncStr(m.err, 60)) + "\n")
		sb.WriteString(" " + dimStyle.Render("press r to retry, or o to open the channel") + "\n")
	case m.verified:
		sb.WriteString(" " + okStyle.Render("✓ subscription confirmed") + "\n")
		sb.WriteString(" " + accentStyle.Render("press enter to start the day") + "\n")
	default:
		sb.WriteString(" " + dangerStyle.Render("subscribe to "+m.channel+" to play") + "\n")
		sb.WriteString(" " + dimStyle.Render("o opens the channel, r re-checks once you have joined") + "\n")
	}

	return sb.String()
}
