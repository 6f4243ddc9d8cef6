// Package window handles the SDL2 window the overlay frames are presented in.
package window

import (
	"fmt"
	"image"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"
)

func init() {
	// SDL video calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}

// Window wraps an SDL2 window and the renderer frames are uploaded through.
type Window struct {
	config   Config
	log      *zap.Logger
	window   *sdl.Window
	renderer *sdl.Renderer
	frame    *sdl.Texture
	frameW   int
	frameH   int
}

// New creates a new window.
func New(cfg Config, log *zap.Logger) (*Window, error) {
	if log == nil {
		log = zap.NewNop()
	}
	w := &Window{
		config: cfg,
		log:    log,
	}

	log.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	var err error
	w.window, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	flags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	w.renderer, err = sdl.CreateRenderer(w.window, -1, flags)
	if err != nil {
		w.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	log.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	w.log.Info("closing window")

	if w.frame != nil {
		w.frame.Destroy()
	}
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.window != nil {
		w.window.Destroy()
	}

	sdl.Quit()
}

// Present uploads img into the streaming frame texture and shows it,
// recreating the texture when the image size changes.
func (w *Window) Present(img *image.RGBA) error {
	width, height := img.Rect.Dx(), img.Rect.Dy()
	if err := w.ensureFrame(width, height); err != nil {
		return err
	}

	pixels, pitch, err := w.frame.Lock(nil)
	if err != nil {
		return fmt.Errorf("locking frame texture: %w", err)
	}
	copyRows(pixels, pitch, img)
	w.frame.Unlock()

	if err := w.renderer.Clear(); err != nil {
		return fmt.Errorf("clearing renderer: %w", err)
	}
	if err := w.renderer.Copy(w.frame, nil, nil); err != nil {
		return fmt.Errorf("copying frame: %w", err)
	}
	w.renderer.Present()
	return nil
}

func (w *Window) ensureFrame(width, height int) error {
	if w.frame != nil && w.frameW == width && w.frameH == height {
		return nil
	}
	if w.frame != nil {
		w.frame.Destroy()
		w.frame = nil
	}

	tex, err := w.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, int32(width), int32(height))
	if err != nil {
		return fmt.Errorf("SDL_CreateTexture failed: %w", err)
	}
	w.frame, w.frameW, w.frameH = tex, width, height
	w.log.Debug("frame texture created", zap.Int("width", width), zap.Int("height", height))
	return nil
}

// copyRows copies img into a locked texture buffer with the given row pitch.
// ABGR8888 on little-endian hosts matches image.RGBA byte order.
func copyRows(dst []byte, pitch int, img *image.RGBA) {
	rowBytes := img.Rect.Dx() * 4
	for y := 0; y < img.Rect.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+rowBytes]
		start := y * pitch
		if start+rowBytes > len(dst) {
			return
		}
		copy(dst[start:start+rowBytes], src)
	}
}

// GetSize returns the current window size.
func (w *Window) GetSize() (int, int) {
	width, height := w.window.GetSize()
	return int(width), int(height)
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.window.SetTitle(title)
}
