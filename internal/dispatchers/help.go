package dispatchers

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/gnote-tools/cli/internal/ui/style"
)

// WriteGeneralHelp lists every command, sorted, with names right-justified.
func (t *Table) WriteGeneralHelp(w io.Writer) {
	names := t.Names()
	slices.Sort(names)

	fmt.Fprintln(w, "Available commands:")
	tab := longest(names)
	for _, name := range names {
		writeHelpLine(w, name, tab, t.commands[name].Help)
	}
}

// WriteHelp lists the arguments and flags of one command.
func (c CommandSpec) WriteHelp(w io.Writer) {
	tab := longest(c.Names())

	fmt.Fprintf(w, "Options for: %s\n", c.Name)
	fmt.Fprintln(w, "Available arguments:")
	for _, a := range c.Arguments {
		help := a.Help
		if c.FirstArg == a.Name {
			help = "[default] " + help
		}
		writeHelpLine(w, a.Name, tab, help)
	}

	if len(c.Flags) > 0 {
		fmt.Fprintln(w, "Available flags:")
		for _, f := range c.Flags {
			writeHelpLine(w, f.Name, tab, f.Help)
		}
	}
}

func writeHelpLine(w io.Writer, name string, tab int, help string) {
	pad := strings.Repeat(" ", max(tab-len(name), 0))
	fmt.Fprintf(w, "%s%s : %s\n", pad, style.Info(name), help)
}

func longest(names []string) int {
	n := 0
	for _, name := range names {
		n = max(n, len(name))
	}
	return n
}
