package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"gmldraw/internal/canvas"
	"gmldraw/internal/config"
	"gmldraw/internal/interpreter"
	"gmldraw/internal/metrics"
)

// session ties one interpreter to the canvas selected by the output format.
type session struct {
	cfg     *config.Config
	log     *slog.Logger
	palette canvas.Palette
	metrics *metrics.Metrics

	raster *canvas.Raster
	image  *canvas.Image
	trace  *canvas.Recorder
	interp *interpreter.Interpreter
}

func newSession(cfg *config.Config, log *slog.Logger) (*session, error) {
	p, err := cfg.ColorPalette()
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, log: log, palette: p, metrics: metrics.New()}
	s.reset()
	return s, nil
}

// reset clears the drawing and returns the cursor to its start-up state.
func (s *session) reset() {
	w, h := s.cfg.Canvas.Width, s.cfg.Canvas.Height
	s.raster, s.image, s.trace = nil, nil, nil

	var c interpreter.Canvas
	switch s.cfg.Output.Format {
	case config.FormatPNG:
		s.image = canvas.NewImage(w, h, s.cfg.Output.Zoom, s.palette)
		c = s.image
	case config.FormatTrace:
		s.trace = &canvas.Recorder{}
		c = s.trace
	default:
		s.raster = canvas.NewRaster(w, h)
		c = s.raster
	}
	s.interp = interpreter.New(c, interpreter.NewDrawingContext(w, h),
		interpreter.WithLogger(s.log),
		interpreter.WithHooks(s.metrics.Hooks()),
	)
}

// flush writes the drawing. Terminal output is sized to the terminal when
// w is one.
func (s *session) flush(w io.Writer) error {
	switch {
	case s.image != nil:
		if err := s.image.SavePNG(s.cfg.Output.Path); err != nil {
			return fmt.Errorf("failed to write png: %w", err)
		}
		s.log.Info("wrote png", "path", s.cfg.Output.Path)
		return nil
	case s.trace != nil:
		return s.writeFileOr(w, func(out io.Writer) error {
			_, err := s.trace.WriteTo(out)
			return err
		})
	}

	cols := 0
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil {
			cols = width
		}
	}
	return s.writeFileOr(w, func(out io.Writer) error {
		return s.raster.Render(termenv.NewOutput(out), s.palette, cols)
	})
}

func (s *session) writeFileOr(w io.Writer, write func(io.Writer) error) error {
	if s.cfg.Output.Path == "" {
		return write(w)
	}
	f, err := os.Create(s.cfg.Output.Path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *session) writeMetrics(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.metrics.WriteText(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
