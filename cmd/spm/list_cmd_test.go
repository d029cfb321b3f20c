package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestList(t *testing.T) {
	e := newEnv(t)

	if out := e.mustRun("list"); out != "No projects found\n" {
		t.Errorf("empty list = %q", out)
	}

	blog := projectDir(t, "blog")
	api := projectDir(t, "api")
	repo, _ := bareRepo(t, "tool.git", nil)
	e.mustRun("add", blog, "-t", "writing")
	e.mustRun("add", api, "-t", "work,go")
	e.mustRun("add", repo)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "all in insertion order",
			args: []string{"list"},
			want: []string{
				"blog - " + blog + " [writing]",
				"api - " + api + " [work, go]",
				"tool.git (bare) - " + repo,
			},
		},
		{
			name: "tag filter",
			args: []string{"list", "-t", "go"},
			want: []string{"api - " + api + " [work, go]"},
		},
		{
			name: "any tag matches",
			args: []string{"list", "-t", "writing,go"},
			want: []string{
				"blog - " + blog + " [writing]",
				"api - " + api + " [work, go]",
			},
		},
		{
			name: "ls alias",
			args: []string{"ls", "-t", "writing"},
			want: []string{"blog - " + blog + " [writing]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := e.mustRun(tt.args...)
			want := strings.Join(tt.want, "\n") + "\n"
			if out != want {
				t.Errorf("stdout =\n%s\nwant\n%s", out, want)
			}
		})
	}

	if out := e.mustRun("list", "-t", "missing"); out != "No projects found\n" {
		t.Errorf("unmatched filter = %q", out)
	}
}

func TestList_JSON(t *testing.T) {
	e := newEnv(t)

	if out := e.mustRun("list", "--json"); strings.TrimSpace(out) != "[]" {
		t.Errorf("empty JSON list = %q, want []", out)
	}

	dir := projectDir(t, "blog")
	e.mustRun("add", dir, "-t", "writing")

	var got []struct {
		Name       string   `json:"name"`
		Path       string   `json:"path"`
		Tags       []string `json:"tags"`
		IsBareRepo bool     `json:"is_bare_repo"`
		AddedAt    string   `json:"added_at"`
	}
	if err := json.Unmarshal([]byte(e.mustRun("list", "--json")), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != 1 || got[0].Name != "blog" || got[0].Path != dir || got[0].AddedAt == "" {
		t.Errorf("JSON = %+v", got)
	}
}

func TestList_Table(t *testing.T) {
	e := newEnv(t)
	dir := projectDir(t, "blog")
	e.mustRun("add", dir, "-t", "writing")

	out := e.mustRun("list", "--table")
	for _, want := range []string{"NAME", "PATH", "TAGS", "blog", "writing", "just now"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}

	if r := e.run("list", "--table", "--json"); r.code != exitError {
		t.Errorf("--table with --json exit code = %d, want %d", r.code, exitError)
	}
}
