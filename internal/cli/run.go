package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Run is the main entry point. Returns exit code.
func Run(stdin io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string) int {
	o := NewIO(out, errOut)

	globals := flag.NewFlagSet("vec", flag.ContinueOnError)
	globals.SetInterspersed(false)
	globals.SetOutput(&strings.Builder{}) // discard pflag output

	workDir := globals.StringP("cwd", "C", "", "Run as if started in `dir`")
	configPath := globals.StringP("config", "c", "", "Use the config `file`")
	elem := globals.String("elem", "", "Element type: int or string")
	help := globals.BoolP("help", "h", false, "Show help")

	if len(args) > 0 {
		args = args[1:]
	}

	err := globals.Parse(args)
	if err != nil {
		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		o.ErrPrintln(usage(globals, nil))

		return 1
	}

	cfg, err := LoadConfig(LoadConfigInput{
		WorkDir:      *workDir,
		ConfigPath:   *configPath,
		ElemOverride: *elem,
		Env:          env,
	})
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	commands := []*Command{
		ReplCmd(&cfg),
		RunCmd(&cfg, stdin),
		PrintConfigCmd(&cfg),
	}

	if *help {
		o.Println(usage(globals, commands))

		return 0
	}

	ctx := context.Background()
	rest := globals.Args()

	if len(rest) == 0 {
		// Interactive when attached to a terminal, otherwise a script on stdin.
		if isTerminal(stdin) {
			return commands[0].Run(ctx, o, nil)
		}

		return commands[1].Run(ctx, o, []string{"-"})
	}

	name := rest[0]

	for _, cmd := range commands {
		if cmd.Name() == name {
			return cmd.Run(ctx, o, rest[1:])
		}
	}

	o.ErrPrintln("error:", fmt.Errorf("%w: %s", errUnknownCommand, name))
	o.ErrPrintln()
	o.ErrPrintln(usage(globals, commands))

	return 1
}

func usage(globals *flag.FlagSet, commands []*Command) string {
	var buf strings.Builder

	buf.WriteString("Usage: vec [flags] [command]\n\n")
	buf.WriteString("Drive a vector interactively (repl) or from a script (run).\n")
	buf.WriteString("Without a command, starts the REPL on a terminal and reads ops from stdin otherwise.\n")

	if len(commands) > 0 {
		buf.WriteString("\nCommands:\n")

		for _, cmd := range commands {
			buf.WriteString(cmd.HelpLine())
			buf.WriteString("\n")
		}
	}

	buf.WriteString("\nGlobal flags:\n")
	globals.SetOutput(&buf)
	globals.PrintDefaults()

	return strings.TrimRight(buf.String(), "\n")
}
