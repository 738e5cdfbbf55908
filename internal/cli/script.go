package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"
)

// RunCmd returns the run command. stdin is read when the script is "-".
func RunCmd(cfg *Config, stdin io.Reader) *Command {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	dump := fs.Bool("dump", false, "Print the vector after every op")
	keepGoing := fs.BoolP("keep-going", "k", false, "Report failing ops as warnings and continue")

	return &Command{
		Flags: fs,
		Usage: "run [flags] <script|->",
		Short: "Execute ops from a script",
		Long: "Execute ops from a script file, one per line, against an empty vector.\n" +
			"Use - to read the script from stdin. Stops at the first failing op\n" +
			"unless --keep-going is set.",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			if len(args) < 1 {
				return errScriptRequired
			}

			sessionCfg := *cfg
			if *dump {
				sessionCfg.Dump = true
			}

			return execRun(ctx, o, sessionCfg, stdin, args[0], *keepGoing)
		},
	}
}

func execRun(ctx context.Context, o *IO, cfg Config, stdin io.Reader, script string, keepGoing bool) error {
	in := stdin

	if script != "-" {
		path := script
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.WorkDir, path)
		}

		f, err := os.Open(path) //nolint:gosec // path is intentionally user-controlled
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()

		in = f
	}

	if in == nil {
		return errScriptRequired
	}

	exec, err := newExecutor(cfg, o)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	lineNo := 0

	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		lineNo++

		err := exec.Exec(scanner.Text())
		if err == nil {
			continue
		}

		if !keepGoing {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		o.Warn(fmt.Sprintf("line %d", lineNo), err.Error())
	}

	err = scanner.Err()
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}

	return nil
}
