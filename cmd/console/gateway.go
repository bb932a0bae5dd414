package main

import (
	"chatbot/domain"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/gookit/color"
)

// consoleGateway prints replies instead of sending them.
type consoleGateway struct {
	mu      sync.Mutex
	out     io.Writer
	colours bool
	sent    int
}

func newConsoleGateway(out io.Writer, colours bool) *consoleGateway {
	return &consoleGateway{out: out, colours: colours}
}

func (g *consoleGateway) Capabilities() domain.Capabilities {
	return domain.NewCapabilities(domain.CapabilitySendMessage, domain.CapabilityContextualReply)
}

func (g *consoleGateway) SendMessage(_ context.Context, to, text string) (string, error) {
	return g.print(fmt.Sprintf("-> %s", to), text)
}

func (g *consoleGateway) SendReply(_ context.Context, to, messageID, text string) (string, error) {
	return g.print(fmt.Sprintf("-> %s (reply to %s)", to, messageID), text)
}

func (g *consoleGateway) print(header, text string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	if _, err := fmt.Fprintf(g.out, "%s\n%s\n", header, text); err != nil {
		return "", err
	}
	g.sent++
	return uuid.NewString(), nil
}

func (g *consoleGateway) Sent() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sent
}
