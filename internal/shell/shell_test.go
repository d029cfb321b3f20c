package shell

import (
	"strings"
	"testing"

	"github.com/raphi011/spm/internal/config"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shell   config.Shell
		install string
		cd      string
	}{
		{config.ShellBash, `eval "$(spm init bash)"`, `cd "$dir"`},
		{config.ShellZsh, `eval "$(spm init zsh)"`, `cd "$dir"`},
		{config.ShellFish, "spm init fish | source", "cd $dir"},
	}

	for _, tt := range tests {
		t.Run(string(tt.shell), func(t *testing.T) {
			t.Parallel()

			hook, err := Generate(tt.shell, Options{})
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			for _, want := range []string{tt.install, tt.cd, "command spm", `"pick"`} {
				if !strings.Contains(hook, want) {
					t.Errorf("hook missing %q:\n%s", want, hook)
				}
			}
			if strings.Contains(hook, "zellij") {
				t.Errorf("hook without zellij should not mention it:\n%s", hook)
			}
		})
	}
}

func TestGenerate_Zellij(t *testing.T) {
	t.Parallel()

	for _, sh := range []config.Shell{config.ShellBash, config.ShellZsh, config.ShellFish} {
		t.Run(string(sh), func(t *testing.T) {
			t.Parallel()

			hook, err := Generate(sh, Options{UseZellij: true})
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if !strings.Contains(hook, `zellij action new-tab --cwd "$dir" --name`) {
				t.Errorf("hook should open a zellij tab:\n%s", hook)
			}
			if !strings.Contains(hook, "ZELLIJ") {
				t.Errorf("hook should check for a zellij session:\n%s", hook)
			}
			// Outside zellij the wrapper still changes directory.
			if !strings.Contains(hook, "cd ") {
				t.Errorf("hook should fall back to cd:\n%s", hook)
			}
		})
	}
}

func TestGenerate_UnsupportedShell(t *testing.T) {
	t.Parallel()

	for _, sh := range []config.Shell{"", "pwsh", "Zsh"} {
		if _, err := Generate(sh, Options{}); err == nil {
			t.Errorf("Generate(%q) should fail", sh)
		}
	}
}

func TestGenerate_NoTemplateLeftovers(t *testing.T) {
	t.Parallel()

	for sh := range hooks {
		hook, err := Generate(sh, Options{UseZellij: true})
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(hook, "{{") || strings.Contains(hook, "<no value>") {
			t.Errorf("%s hook has unrendered template text:\n%s", sh, hook)
		}
	}
}
