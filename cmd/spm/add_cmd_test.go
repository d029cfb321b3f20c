package main

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestAdd(t *testing.T) {
	e := newEnv(t)
	dir := projectDir(t, "blog")

	out := e.mustRun("add", dir, "-t", "writing,hugo")

	want := "Project 'blog' added\n  Path: " + dir + "\n"
	if out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}

	p, ok := e.registry().FindByName("blog")
	if !ok {
		t.Fatal("project not registered")
	}
	if p.Path != dir || p.IsBareRepo {
		t.Errorf("registered %+v", p)
	}
	if !slices.Equal(p.Tags, []string{"writing", "hugo"}) {
		t.Errorf("tags = %v", p.Tags)
	}
	if p.AddedAt.IsZero() {
		t.Error("added_at not set")
	}
}

func TestAdd_CustomName(t *testing.T) {
	e := newEnv(t)
	dir := projectDir(t, "website")

	e.mustRun("add", dir, "-n", "site")

	if _, ok := e.registry().FindByName("site"); !ok {
		t.Error("project should be registered under the given name")
	}
}

func TestAdd_ResolvesSymlinks(t *testing.T) {
	e := newEnv(t)
	dir := projectDir(t, "real")
	link := filepath.Join(resolvePath(t, t.TempDir()), "alias")
	if err := os.Symlink(dir, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	e.mustRun("add", link)

	p, ok := e.registry().FindByName("alias")
	if !ok {
		t.Fatal("project not registered")
	}
	if p.Path != dir {
		t.Errorf("path = %q, want symlink target %q", p.Path, dir)
	}
}

func TestAdd_BareRepository(t *testing.T) {
	e := newEnv(t)
	repo, _ := bareRepo(t, "tool.git", nil)

	out := e.mustRun("add", repo)

	if !strings.Contains(out, "  (bare repository detected)\n") {
		t.Errorf("stdout should report the bare repo, got %q", out)
	}
	p, _ := e.registry().FindByName("tool.git")
	if p == nil || !p.IsBareRepo {
		t.Errorf("registered %+v, want bare", p)
	}
}

func TestAdd_Duplicates(t *testing.T) {
	e := newEnv(t)
	dir := projectDir(t, "api")
	other := projectDir(t, "api")
	e.mustRun("add", dir)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"same name", []string{"add", other}, "project name already exists: api"},
		{"same path", []string{"add", dir, "-n", "api2"}, "project path already registered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := e.run(tt.args...)
			if r.code != exitError {
				t.Fatalf("exit code = %d, want %d", r.code, exitError)
			}
			if !strings.Contains(r.stderr, tt.wantErr) {
				t.Errorf("stderr = %q, want containing %q", r.stderr, tt.wantErr)
			}
		})
	}

	if n := len(e.registry().List()); n != 1 {
		t.Errorf("registry has %d projects, want 1", n)
	}
}

func TestAdd_MissingPath(t *testing.T) {
	e := newEnv(t)

	r := e.run("add", filepath.Join(t.TempDir(), "nope"))
	if r.code != exitError {
		t.Errorf("exit code = %d, want %d", r.code, exitError)
	}
	if _, err := os.Stat(filepath.Join(e.configDir, "projects.json")); !os.IsNotExist(err) {
		t.Error("registry should not be written on failure")
	}
}

func TestDefaultName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"/home/me/code/blog", "blog"},
		{"/srv/repo.git", "repo.git"},
		{"/", "unknown"},
	}

	for _, tt := range tests {
		if got := defaultName(tt.path); got != tt.want {
			t.Errorf("defaultName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
