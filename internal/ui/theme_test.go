package ui

import (
	"testing"

	"github.com/osa/recipes/internal/config"
)

func TestThemeNames_AllBuiltin(t *testing.T) {
	for _, name := range ThemeNames() {
		if _, ok := BuiltinThemes[name]; !ok {
			t.Errorf("theme %q listed but not defined", name)
		}
	}
	if len(ThemeNames()) != len(BuiltinThemes) {
		t.Errorf("ThemeNames() has %d entries, BuiltinThemes has %d", len(ThemeNames()), len(BuiltinThemes))
	}
}

func TestThemeNames_MatchConfig(t *testing.T) {
	names := ThemeNames()
	if len(names) != len(config.ThemeNames) {
		t.Fatalf("ui has %d themes, config accepts %d", len(names), len(config.ThemeNames))
	}
	for i, name := range names {
		if string(name) != config.ThemeNames[i] {
			t.Errorf("theme %d: ui %q, config %q", i, name, config.ThemeNames[i])
		}
	}
	if string(DefaultTheme) != config.DefaultTheme {
		t.Errorf("default theme mismatch: ui %q, config %q", DefaultTheme, config.DefaultTheme)
	}
}

func TestGetTheme_Fallback(t *testing.T) {
	if GetTheme("does-not-exist").Name != BuiltinThemes[DefaultTheme].Name {
		t.Error("unknown theme should fall back to the default")
	}
}

func TestSetTheme(t *testing.T) {
	defer SetTheme(DefaultTheme)

	SetThemeByName("nord")
	if CurrentThemeName() != ThemeNord {
		t.Errorf("CurrentThemeName() = %q, want nord", CurrentThemeName())
	}
	if CurrentTheme().Name != "Nord" {
		t.Errorf("CurrentTheme().Name = %q, want Nord", CurrentTheme().Name)
	}

	SetThemeByName("bogus")
	if CurrentThemeName() != DefaultTheme {
		t.Errorf("unknown theme should select the default, got %q", CurrentThemeName())
	}
}

func TestTheme_Defaults(t *testing.T) {
	th := Theme{Primary: "#111111"}
	if th.GetBgSelected() != "#111111" {
		t.Error("BgSelected should default to Primary")
	}
	if th.GetBorderFocus() != "#111111" {
		t.Error("BorderFocus should default to Primary")
	}

	th.BgSelected = "#222222"
	th.BorderFocus = "#333333"
	if th.GetBgSelected() != "#222222" || th.GetBorderFocus() != "#333333" {
		t.Error("explicit colors should win")
	}
}
