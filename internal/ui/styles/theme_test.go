package styles

import (
	"slices"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/spm/internal/config"
)

// withBackground fixes the detected terminal background for one test.
func withBackground(t *testing.T, dark bool) {
	t.Helper()
	orig := hasDarkBackground
	hasDarkBackground = func() bool { return dark }
	t.Cleanup(func() {
		hasDarkBackground = orig
		Init("")
	})
}

func TestInit_DefaultTheme(t *testing.T) {
	withBackground(t, true)
	Init("")

	theme := Current()
	if theme.Primary != lipgloss.Color("62") {
		t.Errorf("expected default primary color 62, got %v", theme.Primary)
	}
	if theme.Accent != lipgloss.Color("212") {
		t.Errorf("expected default accent color 212, got %v", theme.Accent)
	}
}

func TestInit_UnknownFallsBackToDefault(t *testing.T) {
	withBackground(t, true)
	Init("solarized")

	if Current() != DefaultTheme {
		t.Errorf("Current() = %v, want DefaultTheme", Current())
	}
}

func TestInit_Variants(t *testing.T) {
	tests := []struct {
		name  string
		theme string
		dark  bool
		want  Theme
	}{
		{"dark only ignores light background", "dracula", false, DraculaTheme},
		{"nord dark", "nord", true, NordTheme},
		{"nord light", "nord", false, NordLightTheme},
		{"catppuccin dark", "catppuccin", true, CatppuccinMochaTheme},
		{"catppuccin light", "catppuccin", false, CatppuccinLatteTheme},
		{"none on light", "none", false, NoneTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBackground(t, tt.dark)
			Init(tt.theme)

			if Current() != tt.want {
				t.Errorf("Init(%q) with dark=%v: got %v, want %v", tt.theme, tt.dark, Current(), tt.want)
			}
		})
	}
}

func TestInit_NoneSkipsBackgroundQuery(t *testing.T) {
	orig := hasDarkBackground
	hasDarkBackground = func() bool {
		t.Error("background should not be queried for a theme with one palette")
		return true
	}
	t.Cleanup(func() {
		hasDarkBackground = orig
		Init("")
	})

	Init("none")
	Init("dracula")
}

func TestApplyTheme_UpdatesGlobalStyles(t *testing.T) {
	withBackground(t, true)
	Init("dracula")

	if Primary != lipgloss.Color("#bd93f9") {
		t.Errorf("expected Primary to be updated to dracula color, got %v", Primary)
	}
	if AccentStyle.GetForeground() != lipgloss.Color("#ff79c6") {
		t.Errorf("expected AccentStyle foreground to be updated, got %v", AccentStyle.GetForeground())
	}
}

func TestPreset(t *testing.T) {
	if Preset("dracula") == nil {
		t.Error("expected dracula preset to exist")
	}
	if Preset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestThemeNamesMatchConfig(t *testing.T) {
	var names []string
	for name := range themeFamilies {
		names = append(names, name)
	}
	slices.Sort(names)

	want := slices.Clone(config.ValidThemes)
	slices.Sort(want)

	if !slices.Equal(names, want) {
		t.Errorf("theme presets %v do not match config.ValidThemes %v", names, want)
	}
}
