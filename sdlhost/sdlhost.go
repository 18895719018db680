// Package sdlhost implements the host collaborator interfaces against a
// real window: go-sdl2 for the window/surface and event pump, x/image/draw
// for scaling the emulator's 160x192 frame buffer up to the window size.
//
// Grounded on the teacher's own vcs/vcs_main.go, which couples rendering to
// go-sdl2 directly; here that coupling is pushed behind host.Renderer and
// host.InputSource so the core and tests never import SDL.
package sdlhost

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"

	xdraw "golang.org/x/image/draw"

	"github.com/retrovcs/emulator/host"
	"github.com/retrovcs/emulator/pia"
	"github.com/retrovcs/emulator/tia"
	"github.com/veandco/go-sdl2/sdl"
)

// Host implements host.Renderer, host.InputSource and host.Logger on top of
// an SDL window.
type Host struct {
	window  *sdl.Window
	surface *sdl.Surface
	scale   int
	logger  *slog.Logger

	frameRGBA *image.RGBA // scratch holding the unscaled 160x192 frame
}

// New opens an SDL window scaled by factor and returns a Host backed by it.
// Callers must call Close when done.
func New(title string, scale int, logger *slog.Logger) (*Host, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdlhost: init: %w", err)
	}
	w, h := tia.FrameWidth*scale, tia.FrameHeight*scale
	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, int32(w), int32(h), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlhost: create window: %w", err)
	}
	surface, err := window.GetSurface()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("sdlhost: get surface: %w", err)
	}
	return &Host{
		window:    window,
		surface:   surface,
		scale:     scale,
		logger:    logger,
		frameRGBA: image.NewRGBA(image.Rect(0, 0, tia.FrameWidth, tia.FrameHeight)),
	}, nil
}

// Close releases the window and shuts down SDL.
func (h *Host) Close() {
	h.window.Destroy()
	sdl.Quit()
}

// PresentFrame implements host.Renderer: unpack the RGBA pixels into an
// image.RGBA, scale it into the window surface with x/image/draw, and flip.
func (h *Host) PresentFrame(pixels []uint32) error {
	for i, px := range pixels {
		o := i * 4
		h.frameRGBA.Pix[o+0] = uint8(px >> 24)
		h.frameRGBA.Pix[o+1] = uint8(px >> 16)
		h.frameRGBA.Pix[o+2] = uint8(px >> 8)
		h.frameRGBA.Pix[o+3] = uint8(px)
	}
	dst := surfaceImage{surface: h.surface}
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), h.frameRGBA, h.frameRGBA.Bounds(), draw.Src, nil)
	return h.window.UpdateSurface()
}

// PollInput implements host.InputSource, mapping SDL scancodes to PIA keys
// the way the reference source's pia_process_input mapped them.
func (h *Host) PollInput() (pia.Key, bool) {
	for {
		ev := sdl.PollEvent()
		if ev == nil {
			return pia.KeyNone, false
		}
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			return pia.KeyNone, true
		case *sdl.KeyboardEvent:
			if e.State != sdl.PRESSED {
				continue
			}
			if key, ok := scancodeToKey[e.Keysym.Scancode]; ok {
				return key, false
			}
		}
	}
}

var scancodeToKey = map[sdl.Scancode]pia.Key{
	sdl.SCANCODE_W:      pia.Player0Up,
	sdl.SCANCODE_S:      pia.Player0Down,
	sdl.SCANCODE_A:      pia.Player0Left,
	sdl.SCANCODE_D:      pia.Player0Right,
	sdl.SCANCODE_UP:     pia.Player1Up,
	sdl.SCANCODE_DOWN:   pia.Player1Down,
	sdl.SCANCODE_LEFT:   pia.Player1Left,
	sdl.SCANCODE_RIGHT:  pia.Player1Right,
	sdl.SCANCODE_R:      pia.Reset,
	sdl.SCANCODE_SPACE:  pia.Select,
}

// Log implements host.Logger.
func (h *Host) Log(severity host.Severity, message string) {
	switch severity {
	case host.SeverityError:
		h.logger.Error(message)
	case host.SeverityWarn:
		h.logger.Warn(message)
	default:
		h.logger.Debug(message)
	}
}

// surfaceImage adapts an *sdl.Surface to draw.Image so x/image/draw can
// blit into it directly; each pixel is written through Set, which takes a
// color.Color and stores its bytes in R, G, B, A order.
type surfaceImage struct {
	surface *sdl.Surface
}

func (s surfaceImage) ColorModel() color.Model { return color.RGBAModel }

func (s surfaceImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(s.surface.W), int(s.surface.H))
}

func (s surfaceImage) At(x, y int) color.Color {
	i := int32(y)*s.surface.Pitch + int32(x)*int32(s.surface.Format.BytesPerPixel)
	px := s.surface.Pixels()
	return color.RGBA{px[i], px[i+1], px[i+2], px[i+3]}
}

func (s surfaceImage) Set(x, y int, c color.Color) {
	r, g, b, a := c.RGBA()
	i := int32(y)*s.surface.Pitch + int32(x)*int32(s.surface.Format.BytesPerPixel)
	px := s.surface.Pixels()
	px[i+0] = uint8(r >> 8)
	px[i+1] = uint8(g >> 8)
	px[i+2] = uint8(b >> 8)
	px[i+3] = uint8(a >> 8)
}
