package ui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// DefaultPager is used when neither the configuration nor $PAGER name one.
const DefaultPager = "less -FRSX"

// Pager displays content through a pager when the output is a terminal.
//
// Precedence: the configured pager, then $PAGER, then DefaultPager. "cat"
// bypasses the pager.
func (w *Writer) Pager(content string) {
	if w.pagerDisabled || !w.isTerminal(w.out) {
		fmt.Fprint(w.out, content)
		return
	}

	cmd := w.pager
	if cmd == "" && w.envGetter != nil {
		cmd = w.envGetter("PAGER")
	}
	if cmd == "" {
		cmd = DefaultPager
	}

	parts := strings.Fields(cmd)
	if len(parts) == 0 || parts[0] == "cat" {
		fmt.Fprint(w.out, content)
		return
	}
	w.runPager(parts[0], parts[1:], content)
}

// runPager falls back to direct output when the pager cannot run.
func (w *Writer) runPager(pager string, args []string, content string) {
	cmd := exec.Command(pager, args...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = w.out
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Fprint(w.out, content)
	}
}
