// Package shell generates the shell wrapper that turns `spm pick` into a
// directory change.
//
// A subprocess cannot change its parent shell's working directory, so
// `spm pick` only prints the chosen path. The wrapper function installed by
// `spm init <shell>` captures that path and cds to it, or opens a new zellij
// tab there when zellij integration is enabled and the shell runs inside a
// zellij session. Every other subcommand is passed through unchanged.
package shell

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/raphi011/spm/internal/config"
)

// Options tunes the generated wrapper.
type Options struct {
	UseZellij bool
}

var hooks = map[config.Shell]*template.Template{
	config.ShellBash: template.Must(template.New("bash").Parse(posixHook)),
	config.ShellZsh:  template.Must(template.New("zsh").Parse(posixHook)),
	config.ShellFish: template.Must(template.New("fish").Parse(fishHook)),
}

// Generate returns the wrapper function for sh.
func Generate(sh config.Shell, opts Options) (string, error) {
	tmpl, ok := hooks[sh]
	if !ok {
		return "", fmt.Errorf("unsupported shell: %s (supported: %s)", sh, "zsh, bash, fish")
	}

	data := struct {
		Shell     string
		UseZellij bool
	}{string(sh), opts.UseZellij}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s hook: %w", sh, err)
	}
	return buf.String(), nil
}

const posixHook = `# spm shell wrapper
# Install: eval "$(spm init {{.Shell}})"

spm() {
    if [ "$1" = "pick" ]; then
        local dir
        dir="$(command spm "$@")" || return $?
        [ -n "$dir" ] || return 0
{{- if .UseZellij}}
        if [ -n "$ZELLIJ" ]; then
            zellij action new-tab --cwd "$dir" --name "$(basename "$dir")"
            return $?
        fi
{{- end}}
        cd "$dir"
    else
        command spm "$@"
    fi
}
`

const fishHook = `# spm shell wrapper
# Install: spm init fish | source
# Or add to config.fish: spm init fish | source

function spm --wraps=spm --description 'Side project manager'
    if test (count $argv) -gt 0; and test "$argv[1]" = "pick"
        set -l dir (command spm $argv)
        or return $status
        test -n "$dir"; or return 0
{{- if .UseZellij}}
        if set -q ZELLIJ
            zellij action new-tab --cwd "$dir" --name (basename "$dir")
            return $status
        end
{{- end}}
        cd $dir
    else
        command spm $argv
    end
end
`
