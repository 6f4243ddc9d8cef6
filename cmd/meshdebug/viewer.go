package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/meshdebug/internal/app"
	"github.com/Faultbox/meshdebug/internal/config"
	"github.com/Faultbox/meshdebug/internal/engine/input"
	"github.com/Faultbox/meshdebug/internal/engine/window"
	"github.com/Faultbox/meshdebug/internal/inspector"
	"github.com/Faultbox/meshdebug/internal/logger"
)

// runViewer presents the overlay in an SDL window until it is closed.
// Frames keep the configured output size and are scaled to the window.
func runViewer(cfg *config.Config, session *app.Session) error {
	log := logger.Named("viewer")

	win, err := window.New(window.Config{
		Title:  cfg.Viewer.Title,
		Width:  cfg.Output.Width,
		Height: cfg.Output.Height,
		VSync:  cfg.Viewer.VSync,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	in := input.New()
	insp := session.Inspector()
	cam := session.Camera()

	saves := make(chan string, 1)

	frameCount := 0
	fpsTimer := time.Now()
	running := true

	log.Info("starting viewer loop")
	for running {
		if in.Update() {
			break
		}

		for _, ev := range in.Events() {
			var cmdErr error
			switch in.Map(ev) {
			case input.ActionQuit:
				running = false
			case input.ActionNext:
				_, cmdErr = insp.Next()
			case input.ActionPrevious:
				_, cmdErr = insp.Previous()
			case input.ActionFirst:
				_, cmdErr = insp.JumpTo(0)
			case input.ActionCycleSelection:
				cmdErr = session.CycleSelection()
			case input.ActionSave:
				go askSavePath(saves, log)
			case input.ActionPick:
				_, cmdErr = session.PickAt(toCanvas(win, session, ev.MouseX, ev.MouseY))
			case input.ActionOrbit:
				cam.HandleDrag(float32(ev.DeltaX), float32(ev.DeltaY))
				session.Invalidate()
			case input.ActionZoom:
				cam.HandleZoom(float32(ev.Wheel))
				session.Invalidate()
			case input.ActionResize:
				session.Invalidate()
			}
			if cmdErr != nil && !errors.Is(cmdErr, inspector.ErrNoBinding) && !errors.Is(cmdErr, app.ErrNothingPicked) {
				log.Debug("input command rejected", zap.Error(cmdErr))
			}
		}

		select {
		case path := <-saves:
			if _, err := session.Snapshot(path); err != nil {
				log.Error("snapshot failed", zap.Error(err))
			}
		default:
		}

		if session.Dirty() {
			if err := session.Render(); err != nil {
				log.Warn("frame rendered with errors", zap.Error(err))
			}
			win.SetTitle(fmt.Sprintf("%s - %s", cfg.Viewer.Title, insp.State()))
		}
		if err := win.Present(session.Canvas().Image()); err != nil {
			return fmt.Errorf("present error: %w", err)
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// toCanvas maps window coordinates onto the canvas the frame was drawn on.
func toCanvas(win *window.Window, session *app.Session, x, y int) (float32, float32) {
	ww, wh := win.GetSize()
	cv := session.Canvas()
	if ww <= 0 || wh <= 0 {
		return float32(x), float32(y)
	}
	return float32(x) * float32(cv.Width()) / float32(ww),
		float32(y) * float32(cv.Height()) / float32(wh)
}

// askSavePath shows a native save dialog and queues the chosen path; the
// snapshot itself is taken on the main thread.
func askSavePath(saves chan<- string, log *zap.Logger) {
	filename, err := dialog.File().
		Filter("PNG Images", "png").
		Filter("BMP Images", "bmp").
		Title("Save Snapshot").
		Save()
	if err != nil {
		if !errors.Is(err, dialog.ErrCancelled) {
			log.Warn("file dialog error", zap.Error(err))
		}
		return
	}

	select {
	case saves <- filename:
	default:
		log.Debug("snapshot already pending", zap.String("path", filename))
	}
}
