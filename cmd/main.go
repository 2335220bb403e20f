package main

import (
	"image/color"
	"log"
	"os"
	"sync"
	"time"

	"pomostudy/internal/core/engine"
	"pomostudy/internal/platform"
	"pomostudy/internal/sound"
	"pomostudy/internal/storage"
	"pomostudy/internal/ui/flash"
	"pomostudy/internal/ui/mainwindow"
	"pomostudy/internal/ui/theme"
	"pomostudy/internal/ui/tray"
	"pomostudy/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	appName = "PomoStudy"

	// Host polling contract: tick the engine at 200ms for smooth display
	// updates, flush the study total every 30s and once more at shutdown.
	tickInterval = 200 * time.Millisecond
	saveInterval = 30 * time.Second
)

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.pomostudy.app")
	fyneApp.SetIcon(resources.MustIcon("app.png"))

	settings, err := storage.Load()
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	clock := engine.SystemClock()
	eng := engine.New(settings.Config(), floatSeconds(settings.TotalStudySeconds), clock)

	player := sound.NewPlayer()

	var themeMu sync.Mutex
	currentTheme := settings.Theme
	activeTheme := func() theme.Theme {
		themeMu.Lock()
		defer themeMu.Unlock()
		return currentTheme
	}

	var window *mainwindow.Window
	var trayManager *tray.Manager
	var setTimeDialog *mainwindow.SetTimeDialog
	var themeDialog *mainwindow.ThemeDialog
	var desktopApp desktop.App

	activeIcon := resources.MustIcon("app.png")
	pausedIcon := resources.MustIcon("app_paused.png")
	trayPaused := false

	// Runs on the Fyne thread only.
	refreshUI := func() {
		status := eng.Snapshot()
		window.Refresh(status)
		if trayManager != nil {
			trayManager.SetStatus(string(status.Mode) + " " + status.Clock)
			trayManager.SetTimerState(status.Running, status.Paused)
			if status.Paused != trayPaused {
				trayPaused = status.Paused
				if trayPaused {
					desktopApp.SetSystemTrayIcon(pausedIcon)
				} else {
					desktopApp.SetSystemTrayIcon(activeIcon)
				}
			}
		}
	}

	persist := func(mutate func(*storage.Settings)) {
		stored, err := storage.Load()
		if err != nil {
			log.Printf("load settings: %v", err)
		}
		mutate(&stored)
		if err := storage.Save(stored); err != nil {
			log.Printf("save settings: %v", err)
		}
	}

	flushTotal := func() {
		if err := storage.UpdateTotalStudySeconds(eng.Total().Seconds()); err != nil {
			log.Printf("save study total: %v", err)
		}
	}

	window = mainwindow.New(fyneApp, currentTheme, mainwindow.Callbacks{
		OnPauseToggle: func() {
			eng.PauseToggle()
			refreshUI()
		},
		OnReset: func() {
			eng.Reset()
			refreshUI()
		},
		OnSetTime: func() {
			setTimeDialog.UpdateConfig(eng.Config())
			setTimeDialog.Show()
		},
		OnTheme: func() {
			themeDialog.Show()
		},
		OnResetTotal: func() {
			mainwindow.ShowResetTotalConfirm(window.Window(), func() {
				eng.ResetTotal()
				if err := storage.ResetTotalStudySeconds(); err != nil {
					log.Printf("reset study total: %v", err)
				}
				refreshUI()
			})
		},
	})

	pulser := flash.New(func(fill color.NRGBA) {
		window.SetCardFill(fill)
	}, func() color.NRGBA {
		return activeTheme().CardColor()
	})

	setTimeDialog = mainwindow.NewSetTimeDialog(fyneApp, eng.Config(), func(studyMinutes, breakMinutes int) {
		eng.SetConfig(studyMinutes, breakMinutes)
		persist(func(stored *storage.Settings) {
			stored.StudyMinutes = studyMinutes
			stored.BreakMinutes = breakMinutes
		})
		refreshUI()
	})

	presets, err := theme.LoadPresets(resources.ThemePresets())
	if err != nil {
		log.Printf("theme presets: %v", err)
	}
	themeDialog = mainwindow.NewThemeDialog(fyneApp, presets, func(picked theme.Theme) {
		themeMu.Lock()
		currentTheme = picked
		themeMu.Unlock()
		window.ApplyTheme(picked)
		persist(func(stored *storage.Settings) {
			stored.Theme = picked
		})
	})

	stopCh := make(chan struct{})
	var stopOnce sync.Once
	stop := func() {
		stopOnce.Do(func() {
			close(stopCh)
		})
	}

	if deskApp, ok := fyneApp.(desktop.App); ok {
		desktopApp = deskApp
		desktopApp.SetSystemTrayIcon(activeIcon)
		autostart := platform.NewService()
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: func() {
				window.Show()
			},
			OnTogglePause: func() {
				eng.PauseToggle()
				refreshUI()
			},
			OnReset: func() {
				eng.Reset()
				refreshUI()
			},
			OnAutostart: func(enabled bool) {
				execPath, err := os.Executable()
				if err != nil {
					log.Printf("autostart: resolve executable: %v", err)
					return
				}
				if enabled {
					err = autostart.EnableAutostart(appName, execPath)
				} else {
					err = autostart.DisableAutostart(appName)
				}
				if err != nil {
					log.Printf("autostart: %v", err)
					return
				}
				trayManager.SetAutostart(enabled)
			},
			OnQuit: func() {
				stop()
				pulser.Stop()
				flushTotal()
				fyneApp.Quit()
			},
		})
		// Closing the window keeps the timer alive in the tray.
		window.Window().SetCloseIntercept(func() {
			window.Hide()
		})
	}

	go func() {
		ticker := time.NewTicker(tickInterval)
		defer ticker.Stop()
		saver := time.NewTicker(saveInterval)
		defer saver.Stop()

		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				if eng.Tick(clock.Now()) {
					player.ModeSwitch()
					active := activeTheme()
					pulser.Pulse(active.CardColor(), active.AccentColor())
				}
				fyne.Do(refreshUI)
			case <-saver.C:
				flushTotal()
			}
		}
	}()

	refreshUI()
	window.Show()
	fyneApp.Run()

	stop()
	pulser.Stop()
	flushTotal()
}

func floatSeconds(seconds float64) time.Duration {
	if seconds < 0 {
		seconds = 0
	}
	return time.Duration(seconds * float64(time.Second))
}
