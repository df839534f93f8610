// Package completions generates shell completion scripts. The scripts ask
// the binary itself for candidates through its autocomplete mode.
package completions

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Shell is a supported shell.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// Shells lists the supported shells.
var Shells = []Shell{ShellBash, ShellZsh, ShellFish}

// ParseShell validates a shell name.
func ParseShell(name string) (Shell, error) {
	shell := Shell(strings.ToLower(strings.TrimSpace(name)))
	for _, s := range Shells {
		if s == shell {
			return s, nil
		}
	}
	return "", fmt.Errorf("unsupported shell: %s (use bash, zsh, or fish)", name)
}

// RunningShell guesses the user's shell from $SHELL. It returns "" when
// the shell is unknown or unsupported.
func RunningShell(getenv func(string) string) Shell {
	path := getenv("SHELL")
	if path == "" {
		return ""
	}
	shell, err := ParseShell(filepath.Base(path))
	if err != nil {
		return ""
	}
	return shell
}
