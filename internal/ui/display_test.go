package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"uae-chat/internal/chat"
	"uae-chat/internal/responses"
)

var ts = time.Date(2026, 4, 5, 14, 30, 0, 0, time.UTC)

func TestPlainDisplayHasNoEscapes(t *testing.T) {
	var buf bytes.Buffer
	d := NewDisplay(&buf, false)

	d.PrintBanner()
	d.PrintMessage(chat.Message{Text: "Where is Dubai Mall?", IsUser: true, Timestamp: ts})
	d.PrintMessage(chat.Message{Text: "**Downtown** Dubai.", Timestamp: ts, Category: "tourist", Source: "corpus"})
	d.PrintError(errors.New("boom"))
	d.ShowSpinner("Searching")
	d.StopSpinner()

	out := buf.String()
	if strings.Contains(out, "\033[") {
		t.Errorf("non-interactive output contains escape codes: %q", out)
	}
	for _, want := range []string{
		"┌─ You · 14:30:00",
		"│ Where is Dubai Mall?",
		"┌─ Assistant · 14:30:00 · tourist",
		"│ **Downtown** Dubai.",
		"│ via corpus",
		"✗ Error: boom",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMultilineReplyIsPrefixed(t *testing.T) {
	var buf bytes.Buffer
	NewDisplay(&buf, false).PrintMessage(chat.Message{Text: "line one\nline two\n", Timestamp: ts})

	if !strings.Contains(buf.String(), "│ line one\n│ line two\n└") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPrintQuickReplies(t *testing.T) {
	var buf bytes.Buffer
	replies := responses.QuickReplies()
	NewDisplay(&buf, false).PrintQuickReplies(replies)

	out := buf.String()
	if !strings.Contains(out, "1. "+replies[0].Text) {
		t.Errorf("first reply not numbered: %q", out)
	}
	if !strings.Contains(out, "6. "+replies[5].Text) {
		t.Errorf("last reply not numbered: %q", out)
	}
}

func TestPrintTranscripts(t *testing.T) {
	var buf bytes.Buffer
	d := NewDisplay(&buf, false)

	d.PrintTranscripts(nil)
	if !strings.Contains(buf.String(), "No saved conversations") {
		t.Errorf("empty list output = %q", buf.String())
	}

	buf.Reset()
	d.PrintTranscripts([]chat.Transcript{{
		EndedAt: ts,
		Messages: []chat.Message{
			{Text: "Welcome"},
			{Text: strings.Repeat("camel ", 20), IsUser: true},
		},
	}})
	out := buf.String()
	if !strings.Contains(out, "2026-04-05 14:30") || !strings.Contains(out, "2 msgs") || !strings.Contains(out, "...") {
		t.Errorf("transcript line = %q", out)
	}
}
