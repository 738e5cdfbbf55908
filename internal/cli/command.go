package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

// Command is one vec subcommand.
type Command struct {
	Flags *flag.FlagSet

	// Usage follows "vec " in help output. Its first word is the command name.
	Usage string
	Short string
	Long  string // optional; Short is used when empty

	Exec func(ctx context.Context, o *IO, args []string) error
}

// Name is the first word of Usage.
func (c *Command) Name() string {
	if fields := strings.Fields(c.Usage); len(fields) > 0 {
		return fields[0]
	}

	return ""
}

// HelpLine is the command's row in the top-level command list.
func (c *Command) HelpLine() string {
	return fmt.Sprintf("  %-24s %s", c.Usage, c.Short)
}

func (c *Command) help() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Usage: vec %s\n\n", c.Usage)

	if c.Long != "" {
		sb.WriteString(c.Long)
	} else {
		sb.WriteString(c.Short)
	}

	sb.WriteString("\n")

	if c.Flags != nil && c.Flags.HasFlags() {
		sb.WriteString("\nFlags:\n")
		c.Flags.SetOutput(&sb)
		c.Flags.PrintDefaults()
	}

	return strings.TrimRight(sb.String(), "\n")
}

// Run parses args against c.Flags, runs Exec and maps the outcome to an
// exit code. --help prints the command help and exits 0.
func (c *Command) Run(ctx context.Context, o *IO, args []string) int {
	c.Flags.SetOutput(&strings.Builder{})

	err := c.Flags.Parse(args)

	switch {
	case errors.Is(err, flag.ErrHelp):
		o.Println(c.help())

		return 0
	case err != nil:
		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		o.Println(c.help())

		return 1
	}

	err = c.Exec(ctx, o, c.Flags.Args())
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	return o.Finish()
}
