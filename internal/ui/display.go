package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/glamour"

	"uae-chat/internal/chat"
	"uae-chat/internal/responses"
	"uae-chat/internal/terminal"
)

// Color codes
const (
	colorReset   = "\033[0m"
	colorBold    = "\033[1m"
	colorDim     = "\033[2m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
	colorGray    = "\033[90m"
)

// Display renders the chat in a terminal. Bot replies are markdown and go
// through glamour when attached to a tty.
type Display struct {
	out         io.Writer
	interactive bool
	width       int
	renderer    *glamour.TermRenderer

	spinnerMu   sync.Mutex
	spinnerStop chan struct{}
	spinnerDone chan struct{}
}

// NewDisplay creates a display writing to out. interactive enables colours,
// markdown rendering and the spinner.
func NewDisplay(out io.Writer, interactive bool) *Display {
	d := &Display{out: out, interactive: interactive, width: 80}
	if interactive {
		d.width, _ = terminal.Size()
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(max(d.width-10, 40)),
		)
		if err == nil {
			d.renderer = renderer
		}
	}
	return d
}

// paint wraps s in colour codes when interactive
func (d *Display) paint(color, s string) string {
	if !d.interactive {
		return s
	}
	return color + s + colorReset
}

func (d *Display) printf(format string, args ...any) {
	fmt.Fprintf(d.out, format, args...)
}

// ClearScreen clears the terminal
func (d *Display) ClearScreen() {
	if d.interactive {
		d.printf("\033[2J\033[H")
	}
}

// PrintBanner shows the title and the command list
func (d *Display) PrintBanner() {
	d.printf("%s\n", d.paint(colorBold+colorCyan, "╔══════════════════════════════════════════╗"))
	d.printf("%s\n", d.paint(colorBold+colorCyan, "║     UAE Tourism Assistant · uae-chat     ║"))
	d.printf("%s\n", d.paint(colorBold+colorCyan, "╚══════════════════════════════════════════╝"))
	d.printf("%s /exit | /clear | /history | /lang <en|ar|pa> | /quick [n] | /suggest <text>\n\n",
		d.paint(colorGray, "Commands:"))
}

// PrintSeparator prints a visual separator
func (d *Display) PrintSeparator() {
	d.printf("%s\n", d.paint(colorDim, strings.Repeat("─", min(d.width, 80))))
}

// PrintPrompt displays user input prompt
func (d *Display) PrintPrompt() {
	d.printf("\n%s ", d.paint(colorBold+colorGreen, "❯"))
}

// PrintMessage displays one chat message
func (d *Display) PrintMessage(msg chat.Message) {
	if msg.IsUser {
		d.printf("\n%s\n", d.paint(colorGray, "┌─ You · "+msg.Timestamp.Format("15:04:05")))
		d.printf("%s %s\n", d.paint(colorGray, "│"), msg.Text)
		d.printf("%s\n", d.paint(colorGray, "└"))
		return
	}

	header := "┌─ Assistant · " + msg.Timestamp.Format("15:04:05")
	if msg.Category != "" {
		header += " · " + msg.Category
	}
	d.printf("\n%s\n", d.paint(colorGray, header))
	for _, line := range strings.Split(d.render(msg.Text), "\n") {
		d.printf("%s %s\n", d.paint(colorGray, "│"), line)
	}
	if msg.Source != "" {
		d.printf("%s\n", d.paint(colorGray, "│ via "+msg.Source))
	}
	d.printf("%s\n", d.paint(colorGray, "└"))
}

// PrintMessages displays a whole conversation
func (d *Display) PrintMessages(msgs []chat.Message) {
	for _, m := range msgs {
		d.PrintMessage(m)
	}
}

// render turns markdown into terminal output, falling back to the raw text
func (d *Display) render(text string) string {
	if d.renderer != nil {
		if rendered, err := d.renderer.Render(text); err == nil {
			return strings.Trim(rendered, "\n")
		}
	}
	return strings.TrimRight(text, "\n")
}

// PrintQuickReplies lists the preset prompts, numbered from 1
func (d *Display) PrintQuickReplies(replies []responses.QuickReply) {
	d.printf("%s\n", d.paint(colorBold, "Quick replies:"))
	for i, r := range replies {
		d.printf("  %s %s\n", d.paint(colorMagenta, fmt.Sprintf("%d.", i+1)), r.Text)
	}
}

// PrintSuggestions lists autocomplete candidates
func (d *Display) PrintSuggestions(questions []string) {
	if len(questions) == 0 {
		d.PrintInfo("No matching questions")
		return
	}
	d.printf("%s\n", d.paint(colorBold, "💡 Try asking:"))
	for _, q := range questions {
		d.printf("   %s\n", q)
	}
}

// PrintTranscripts summarises archived conversations
func (d *Display) PrintTranscripts(list []chat.Transcript) {
	if len(list) == 0 {
		d.PrintInfo("No saved conversations yet")
		return
	}
	for _, t := range list {
		first := ""
		for _, m := range t.Messages {
			if m.IsUser {
				first = m.Text
				break
			}
		}
		d.printf("%s %s  %s\n",
			d.paint(colorGray, t.EndedAt.Format("2006-01-02 15:04")),
			d.paint(colorCyan, fmt.Sprintf("%d msgs", len(t.Messages))),
			truncate(first, 60))
	}
}

// PrintInfo displays info message
func (d *Display) PrintInfo(msg string) {
	d.printf("%s\n", d.paint(colorCyan, "ℹ "+msg))
}

// PrintWarning displays warning message
func (d *Display) PrintWarning(msg string) {
	d.printf("%s\n", d.paint(colorYellow, "⚠ "+msg))
}

// PrintError displays error message
func (d *Display) PrintError(err error) {
	d.printf("%s\n", d.paint(colorRed, fmt.Sprintf("✗ Error: %v", err)))
}

// PrintSuccess displays success message
func (d *Display) PrintSuccess(msg string) {
	d.printf("%s\n", d.paint(colorGreen, "✓ "+msg))
}

// PrintGoodbye displays goodbye message
func (d *Display) PrintGoodbye() {
	d.printf("\n%s\n", d.paint(colorBold+colorCyan, "Thank you for visiting! 👋"))
}

// ShowSpinner displays a spinner with a message until StopSpinner
func (d *Display) ShowSpinner(msg string) {
	if !d.interactive {
		return
	}
	d.StopSpinner()

	d.spinnerMu.Lock()
	defer d.spinnerMu.Unlock()
	stop := make(chan struct{})
	done := make(chan struct{})
	d.spinnerStop, d.spinnerDone = stop, done

	go func() {
		defer close(done)
		spinnerChars := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()
		for i := 0; ; i = (i + 1) % len(spinnerChars) {
			d.printf("\r%s", d.paint(colorCyan, spinnerChars[i]+" "+msg))
			select {
			case <-stop:
				d.printf("\r\033[2K\r")
				return
			case <-ticker.C:
			}
		}
	}()
}

// StopSpinner stops the currently active spinner
func (d *Display) StopSpinner() {
	d.spinnerMu.Lock()
	defer d.spinnerMu.Unlock()
	if d.spinnerStop == nil {
		return
	}
	close(d.spinnerStop)
	<-d.spinnerDone
	d.spinnerStop, d.spinnerDone = nil, nil
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
