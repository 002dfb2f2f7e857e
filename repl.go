package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"uae-chat/internal/chat"
	"uae-chat/internal/config"
	"uae-chat/internal/history"
	"uae-chat/internal/responses"
	"uae-chat/internal/router"
	"uae-chat/internal/terminal"
	"uae-chat/internal/ui"
)

const (
	historyListLimit = 10
	suggestLimit     = 5
)

// repl is the interactive terminal front end over a single chat session
type repl struct {
	session *chat.Session
	router  *router.Router
	store   history.Store
	display *ui.Display
}

func runREPL(ctx context.Context, cfg *config.Config, rt *router.Router, store history.Store, archiver chat.Archiver, display *ui.Display, logger *log.Logger) {
	r := &repl{
		session: chat.NewSession(rt, archiver, cfg.Language, logger),
		router:  rt,
		store:   store,
		display: display,
	}

	lines := make(chan string)
	go func() {
		defer close(lines)
		input := terminal.NewInput(os.Stdin)
		for {
			line, err := input.ReadLine()
			if err != nil {
				return
			}
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
	}()

	display.ClearScreen()
	display.PrintBanner()
	display.PrintMessages(r.session.Messages())
	display.PrintQuickReplies(responses.QuickReplies())

loop:
	for {
		display.PrintPrompt()

		var line string
		select {
		case <-ctx.Done():
			display.PrintInfo("Shutting down gracefully...")
			break loop
		case l, ok := <-lines:
			if !ok {
				break loop
			}
			line = l
		}

		if line == "" {
			continue
		}
		if cmd, ok := terminal.ParseCommand(line); ok {
			if cmd.Name == terminal.CmdExit {
				break loop
			}
			r.handleCommand(ctx, cmd)
			continue
		}

		r.ask(func() (chat.Message, error) {
			return r.session.Send(ctx, line)
		})
	}

	if err := r.session.Archive(context.Background()); err != nil {
		display.PrintWarning(fmt.Sprintf("Failed to save conversation: %v", err))
	}
	display.PrintGoodbye()
}

// ask runs one exchange and prints the user line and the reply
func (r *repl) ask(send func() (chat.Message, error)) {
	r.display.ShowSpinner("Looking that up")
	_, err := send()
	r.display.StopSpinner()
	if err != nil {
		r.display.PrintError(err)
		return
	}

	msgs := r.session.Messages()
	r.display.PrintMessages(msgs[len(msgs)-2:])
}

func (r *repl) handleCommand(ctx context.Context, cmd terminal.Command) {
	switch cmd.Name {
	case terminal.CmdClear:
		if err := r.session.Clear(ctx); err != nil {
			r.display.PrintWarning(err.Error())
		}
		r.display.ClearScreen()
		r.display.PrintBanner()
		r.display.PrintMessages(r.session.Messages())

	case terminal.CmdHistory:
		if r.store == nil {
			r.display.PrintInfo("History is disabled")
			return
		}
		list, err := r.store.List(ctx, historyListLimit)
		if err != nil {
			r.display.PrintError(err)
			return
		}
		r.display.PrintTranscripts(list)

	case terminal.CmdLang:
		if cmd.Arg == "" {
			r.display.PrintInfo("Current language: " + responses.LanguageName(r.session.Language()))
			return
		}
		msg, err := r.session.SwitchLanguage(cmd.Arg)
		if err != nil {
			r.display.PrintError(err)
			return
		}
		r.display.PrintMessage(msg)

	case terminal.CmdQuick:
		replies := responses.QuickReplies()
		if cmd.Arg == "" {
			r.display.PrintQuickReplies(replies)
			return
		}
		n, err := strconv.Atoi(cmd.Arg)
		if err != nil || n < 1 || n > len(replies) {
			r.display.PrintError(errors.New("pick a quick reply between 1 and " + strconv.Itoa(len(replies))))
			return
		}
		r.ask(func() (chat.Message, error) {
			return r.session.QuickReply(ctx, replies[n-1])
		})

	case terminal.CmdSuggest:
		r.display.PrintSuggestions(r.router.Autocomplete(cmd.Arg, suggestLimit))

	case terminal.CmdHelp:
		r.display.PrintBanner()
	}
}
