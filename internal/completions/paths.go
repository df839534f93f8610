package completions

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultBinary is used when the executable cannot be resolved.
const DefaultBinary = "gnote"

// Binary returns the path and name of the running executable, with
// symlinks resolved.
func Binary() (path, name string) {
	exe, err := os.Executable()
	if err != nil {
		if len(os.Args) > 0 && os.Args[0] != "" {
			return os.Args[0], filepath.Base(os.Args[0])
		}
		return DefaultBinary, DefaultBinary
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return exe, filepath.Base(exe)
}

// SourceInstructions returns the rc file line that loads the completions.
func SourceInstructions(shell Shell, bin string) string {
	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(%s completion %s --script)"`, bin, shell)
	case ShellFish:
		return fmt.Sprintf(`%s completion fish --script | source`, bin)
	default:
		return ""
	}
}

// RcFile returns the rc file of shell.
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}

// AutoInstallPath returns a file the shell loads completions from without
// rc changes, or "" when there is none. Bash needs bash-completion.
func AutoInstallPath(shell Shell, home, name string) string {
	if home == "" {
		return ""
	}
	switch shell {
	case ShellFish:
		return filepath.Join(home, ".config", "fish", "completions", name+".fish")
	case ShellBash:
		if BashCompletionInstalled() {
			return filepath.Join(home, ".local", "share", "bash-completion", "completions", name)
		}
		return ""
	default:
		return ""
	}
}

var bashCompletionScripts = []string{
	"/usr/share/bash-completion/bash_completion",
	"/etc/bash_completion",
	"/usr/local/etc/profile.d/bash_completion.sh",
	"/opt/homebrew/etc/profile.d/bash_completion.sh",
}

// BashCompletionInstalled reports whether the bash-completion package is
// present in a usual location.
func BashCompletionInstalled() bool {
	for _, path := range bashCompletionScripts {
		if _, err := os.Stat(path); err == nil {
			return true
		}
	}
	return false
}
