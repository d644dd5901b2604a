package theme_test

import (
	"testing"

	"github.com/deskmux/deskmux/internal/theme"
)

func TestInitializeEmptyDisablesTheming(t *testing.T) {
	if err := theme.Initialize(""); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if theme.IsEnabled() {
		t.Error("Expected theming disabled for an empty name")
	}
	if theme.Current() != nil {
		t.Error("Expected no current tint while disabled")
	}
	// Accessors keep working on their fallback palette.
	if theme.BorderFocused() == nil {
		t.Error("Expected a fallback border color")
	}
}

func TestInitializeKnownTheme(t *testing.T) {
	defer theme.Initialize("")

	if err := theme.Initialize("dracula"); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if !theme.IsEnabled() {
		t.Error("Expected theming enabled")
	}
	if theme.Current() == nil {
		t.Fatal("Expected a current tint")
	}
	if theme.BorderFocused() == nil {
		t.Error("Expected a themed border color")
	}
}

func TestInitializeUnknownTheme(t *testing.T) {
	defer theme.Initialize("")

	if err := theme.Initialize("no-such-theme"); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if !theme.IsEnabled() {
		t.Error("Expected theming to stay enabled after the fallback")
	}
	if theme.NotificationError() == nil {
		t.Error("Expected a usable color after the fallback")
	}
}
