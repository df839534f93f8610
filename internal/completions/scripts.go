package completions

import (
	"fmt"
	"io"
	"strings"
)

const bashScript = `# bash completion for {{bin}}
_{{fn}}() {
    local cur="${COMP_WORDS[COMP_CWORD]}"
    local IFS=$' \t\n'
    COMPREPLY=($(compgen -W "$({{bin}} autocomplete "${COMP_WORDS[@]:1:COMP_CWORD}" 2>/dev/null)" -- "$cur"))
}
complete -o default -F _{{fn}} {{bin}}
`

const zshScript = `#compdef {{bin}}
# zsh completion for {{bin}}
_{{fn}}() {
    local -a candidates
    candidates=(${(s: :)"$({{bin}} autocomplete "${(@)words[2,CURRENT]}" 2>/dev/null)"})
    compadd -- $candidates
}
compdef _{{fn}} {{bin}}
`

const fishScript = `# fish completion for {{bin}}
function __{{fn}}_complete
    set -l tokens (commandline -opc)[2..-1] (commandline -ct)
    {{bin}} autocomplete $tokens 2>/dev/null | string split ' '
end
complete -c {{bin}} -f -a '(__{{fn}}_complete)'
`

// Script returns the completion script of shell for the binary bin.
func Script(shell Shell, bin string) (string, error) {
	var tmpl string
	switch shell {
	case ShellBash:
		tmpl = bashScript
	case ShellZsh:
		tmpl = zshScript
	case ShellFish:
		tmpl = fishScript
	default:
		return "", fmt.Errorf("unsupported shell: %s", shell)
	}

	fn := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, bin)
	return strings.NewReplacer("{{bin}}", bin, "{{fn}}", fn).Replace(tmpl), nil
}

// PrintScript writes the completion script of shell to w.
func PrintScript(w io.Writer, shell Shell, bin string) error {
	script, err := Script(shell, bin)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, script)
	return err
}
