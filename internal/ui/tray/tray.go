package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnTogglePause func()
	OnReset       func()
	OnAutostart   func(enabled bool)
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app           desktop.App
	statusItem    *fyne.MenuItem
	pauseItem     *fyne.MenuItem
	autostartItem *fyne.MenuItem
	callbacks     Callbacks
	running       bool
	paused        bool
	autostart     bool
	statusLabel   string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "ready",
	}

	manager.statusItem = fyne.NewMenuItem("Status: ready", nil)
	manager.statusItem.Disabled = true

	manager.pauseItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnTogglePause != nil {
			manager.callbacks.OnTogglePause()
		}
	})

	manager.autostartItem = fyne.NewMenuItem("Enable start at login", func() {
		if manager.callbacks.OnAutostart != nil {
			manager.callbacks.OnAutostart(!manager.autostart)
		}
	})

	manager.refreshMenu()
	return manager
}

// SetStatus updates the status label, e.g. "study 24:51".
func (manager *Manager) SetStatus(status string) {
	if status == manager.statusLabel {
		return
	}
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

// SetTimerState updates the pause item label from the engine state.
func (manager *Manager) SetTimerState(running, paused bool) {
	if running == manager.running && paused == manager.paused {
		return
	}
	manager.running = running
	manager.paused = paused
	switch {
	case !running:
		manager.pauseItem.Label = "Start"
	case paused:
		manager.pauseItem.Label = "Resume"
	default:
		manager.pauseItem.Label = "Pause"
	}
	manager.refreshMenu()
}

// SetAutostart reflects whether the login entry is installed.
func (manager *Manager) SetAutostart(enabled bool) {
	manager.autostart = enabled
	if enabled {
		manager.autostartItem.Label = "Disable start at login"
	} else {
		manager.autostartItem.Label = "Enable start at login"
	}
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("PomoStudy",
		manager.statusItem,
		fyne.NewMenuItem("Show window", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		manager.pauseItem,
		fyne.NewMenuItem("Reset session", func() {
			if manager.callbacks.OnReset != nil {
				manager.callbacks.OnReset()
			}
		}),
		manager.autostartItem,
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
