package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/reusee/tailogic/interp"
	"github.com/reusee/tailogic/logs"
)

func runREPL(ctx context.Context, env *interp.Env, logger logs.Logger, out printer) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".tailogic_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()
	logger.DebugContext(ctx, "repl started", "history", historyFile)

	for n := 1; ; n++ {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		if line == "" {
			continue
		}
		if err := run(ctx, env, fmt.Sprintf("<%d>", n), line, out); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}
