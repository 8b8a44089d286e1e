package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
)

var welcomeMessage = "Welcome to graph. Type help for commands.\n"
var stdprompt = prtxt.FgGreen.Sprint("graph> ")

// Completer-tree for session commands
var replCompleter = readline.NewPrefixCompleter(
	readline.PcItem("help"),
	readline.PcItem("bye"),
	readline.PcItem(":also"),
	readline.PcItem(":at"),
	readline.PcItem(":var"),
	readline.PcItem(":x"),
	readline.PcItem(":y"),
	readline.PcItem(":size"),
	readline.PcItem(":pan"),
	readline.PcItem(":zoom",
		readline.PcItem("in"),
		readline.PcItem("out"),
	),
	readline.PcItem(":vertical"),
	readline.PcItem(":view"),
)

// runREPL reads session commands until bye or EOF.
func runREPL(out io.Writer) error {
	s, err := currentSettings()
	if err != nil {
		return err
	}
	sess, err := newSession(s)
	if err != nil {
		return err
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              stdprompt,
		HistoryFile:         fmt.Sprintf("%s/graph-repl-history.tmp", os.TempDir()),
		AutoComplete:        replCompleter,
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterReplInput,
		Stdout:              out,
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	io.WriteString(rl.Stderr(), welcomeMessage)
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		if sess.exec(strings.TrimSpace(line), rl.Stdout()) {
			break
		}
	}
	tracer().Infof("session ended")
	return nil
}

// Input filter for the REPL. Blocks ctrl-z.
func filterReplInput(r rune) (rune, bool) {
	switch r {
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}
