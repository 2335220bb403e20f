//go:build linux

package platform

import (
	"path/filepath"
	"strings"
	"testing"
)

// TestUserConfigDirHonorsXDG verifies autostart entries land under the
// XDG config base.
func TestUserConfigDirHonorsXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	got, err := userConfigDir()
	if err != nil {
		t.Fatalf("userConfigDir: %v", err)
	}
	if got != base {
		t.Fatalf("userConfigDir = %q, want %q", got, base)
	}
}

// TestDesktopFileName verifies app names become safe lowercase file names.
func TestDesktopFileName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"PomoStudy", "pomostudy.desktop"},
		{"Pomo Study", "pomo-study.desktop"},
		{"  ", "pomostudy.desktop"},
	}
	for _, tc := range cases {
		if got := desktopFileName(tc.name); got != tc.want {
			t.Errorf("desktopFileName(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

// TestBuildDesktopEntry verifies the generated entry and exec quoting.
func TestBuildDesktopEntry(t *testing.T) {
	entry := buildDesktopEntry("PomoStudy", filepath.Join("/opt", "pomo study", "app"))
	if !strings.Contains(entry, "Name=PomoStudy\n") {
		t.Errorf("missing name line:\n%s", entry)
	}
	if !strings.Contains(entry, `Exec="/opt/pomo study/app"`) {
		t.Errorf("exec path with spaces not quoted:\n%s", entry)
	}

	plain := buildDesktopEntry("PomoStudy", "/usr/bin/pomostudy")
	if !strings.Contains(plain, "Exec=/usr/bin/pomostudy\n") {
		t.Errorf("plain exec path altered:\n%s", plain)
	}
}
