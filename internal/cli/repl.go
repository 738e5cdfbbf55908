package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"
)

// ReplCmd returns the repl command.
func ReplCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	dump := fs.Bool("dump", false, "Print the vector after every op")
	noHistory := fs.Bool("no-history", false, "Do not read or write the history file")

	return &Command{
		Flags: fs,
		Usage: "repl [flags]",
		Short: "Start an interactive session",
		Long: "Start an interactive session on an empty vector. Type 'help' for ops,\n" +
			"'exit' or Ctrl-D to leave. Tab completes op names.",
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			sessionCfg := *cfg
			if *dump {
				sessionCfg.Dump = true
			}

			if *noHistory {
				sessionCfg.History = ""
			}

			return execRepl(ctx, o, sessionCfg)
		},
	}
}

// repl is the interactive op loop.
type repl struct {
	cfg   Config
	io    *IO
	exec  executor
	liner *liner.State
}

func execRepl(ctx context.Context, o *IO, cfg Config) error {
	exec, err := newExecutor(cfg, o)
	if err != nil {
		return err
	}

	r := &repl{cfg: cfg, io: o, exec: exec}

	return r.run(ctx)
}

func (r *repl) run(ctx context.Context) error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)
	r.liner.SetCompleter(r.completer)

	r.loadHistory()

	r.io.Printf("vec - vector REPL (elem=%s, capacity=%d)\n", r.cfg.Elem, r.cfg.Capacity)
	r.io.Println("Type 'help' for available ops.")
	r.io.Println()

	for ctx.Err() == nil {
		line, err := r.liner.Prompt(r.cfg.Prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				r.io.Println()

				break
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.liner.AppendHistory(line)

		switch strings.ToLower(line) {
		case "exit", "quit", "q":
			r.saveHistory()

			return nil
		}

		err = r.exec.Exec(line)
		if err != nil {
			r.io.ErrPrintln("error:", err)
		}
	}

	r.saveHistory()

	return nil
}

func (r *repl) loadHistory() {
	if r.cfg.History == "" {
		return
	}

	if f, err := os.Open(r.cfg.History); err == nil {
		_, _ = r.liner.ReadHistory(f)
		_ = f.Close()
	}
}

// saveHistory persists command history to disk.
func (r *repl) saveHistory() {
	if r.cfg.History == "" {
		return
	}

	if f, err := os.Create(r.cfg.History); err == nil {
		_, _ = r.liner.WriteHistory(f)
		_ = f.Close()
	}
}

// completer provides tab completion for op names.
func (r *repl) completer(line string) []string {
	return completeOp(line)
}

func completeOp(line string) []string {
	var completions []string

	lower := strings.ToLower(line)
	for _, name := range append(opNames(), "exit", "quit") {
		if strings.HasPrefix(name, lower) {
			completions = append(completions, name)
		}
	}

	return completions
}
