// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package platform

import (
	"reflect"
	"strings"
	"testing"
)

const firefoxEntry = `[Desktop Entry]
# comment
Type=Application
Name=Firefox
Name[de]=Firefox Webbrowser
Name[pt_BR]=Navegador Firefox
Exec=firefox %u
Icon=firefox
Categories=Network;WebBrowser;
Actions=new-window;private;

[Desktop Action new-window]
Name=New Window
Name[de]=Neues Fenster
Exec=firefox --new-window %u

[Desktop Action private]
Name=Private Window
Exec=firefox --private-window %u
`

func TestParseDesktopEntry(t *testing.T) {
	e, err := ParseDesktopEntry(strings.NewReader(firefoxEntry), "")
	if err != nil {
		t.Fatalf("ParseDesktopEntry: %v", err)
	}
	if e.Name != "Firefox" {
		t.Errorf("Name = %q", e.Name)
	}
	if e.Exec != "firefox %u" {
		t.Errorf("Exec = %q", e.Exec)
	}
	if !reflect.DeepEqual(e.Categories, []string{"Network", "WebBrowser"}) {
		t.Errorf("Categories = %v", e.Categories)
	}
	if len(e.Actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(e.Actions))
	}
	a, ok := e.Action("private")
	if !ok || a.Exec != "firefox --private-window %u" {
		t.Errorf("private action = %+v, %v", a, ok)
	}
	if !e.Launchable() {
		t.Errorf("expected entry to be launchable")
	}
}

func TestParseDesktopEntryLocale(t *testing.T) {
	cases := []struct {
		locale string
		name   string
		action string
	}{
		{"de_DE.UTF-8", "Firefox Webbrowser", "Neues Fenster"},
		{"pt_BR.UTF-8", "Navegador Firefox", "New Window"},
		{"fr_FR", "Firefox", "New Window"},
		{"C", "Firefox", "New Window"},
	}
	for _, tc := range cases {
		e, err := ParseDesktopEntry(strings.NewReader(firefoxEntry), tc.locale)
		if err != nil {
			t.Fatalf("%s: %v", tc.locale, err)
		}
		if e.Name != tc.name {
			t.Errorf("%s: Name = %q, want %q", tc.locale, e.Name, tc.name)
		}
		if e.Actions[0].Name != tc.action {
			t.Errorf("%s: action name = %q, want %q", tc.locale, e.Actions[0].Name, tc.action)
		}
	}
}

func TestLocaleCandidates(t *testing.T) {
	got := localeCandidates("sr_RS.UTF-8@latin")
	want := []string{"sr_RS@latin", "sr_RS", "sr@latin", "sr"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("localeCandidates = %v, want %v", got, want)
	}
}

func TestLaunchableFlags(t *testing.T) {
	cases := map[string]bool{
		"[Desktop Entry]\nType=Application\nName=A\nExec=a\n":                true,
		"[Desktop Entry]\nType=Application\nName=A\nExec=a\nNoDisplay=true\n": false,
		"[Desktop Entry]\nType=Application\nName=A\nExec=a\nHidden=true\n":    false,
		"[Desktop Entry]\nType=Link\nName=A\nURL=https://example.com\n":       false,
		"[Desktop Entry]\nType=Application\nName=A\n":                         false,
	}
	for src, want := range cases {
		e, err := ParseDesktopEntry(strings.NewReader(src), "")
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		if got := e.Launchable(); got != want {
			t.Errorf("Launchable(%q) = %v, want %v", src, got, want)
		}
	}
}

func TestParseDesktopEntryRequiresMainGroup(t *testing.T) {
	if _, err := ParseDesktopEntry(strings.NewReader("[Other]\nName=x\n"), ""); err == nil {
		t.Fatalf("expected error without [Desktop Entry]")
	}
}

func TestUnescapeValue(t *testing.T) {
	if got := unescapeValue(`a\sb\\c\td`); got != "a b\\c\td" {
		t.Fatalf("unescapeValue = %q", got)
	}
}
