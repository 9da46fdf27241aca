// Command canvasdemo renders a TOML scene through the canvas to a PNG.
//
//	canvasdemo -scene scene.toml -output out.png [-watch] [-v] [-backend raster|recording]
//
// With -backend recording the scene is recorded first and the recording
// is played back onto a raster session.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/raster"
	"github.com/gogpu/canvas/recording"
)

func main() {
	var (
		scenePath = flag.String("scene", "scene.toml", "scene file")
		output    = flag.String("output", "scene.png", "output file")
		backend   = flag.String("backend", "raster", "session to draw with (raster or recording)")
		watchFlag = flag.Bool("watch", false, "re-render when the scene file changes")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	run := func() error {
		return renderFile(*scenePath, *output, *backend)
	}
	if err := run(); err != nil {
		if !*watchFlag {
			log.Fatalf("Failed to render: %v", err)
		}
		log.Printf("Failed to render: %v", err)
	}
	if !*watchFlag {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	log.Printf("Watching %s", *scenePath)
	err := watch(ctx, *scenePath, defaultDebounce,
		func() {
			if err := run(); err != nil {
				log.Printf("Failed to render: %v", err)
			}
		},
		func(err error) { log.Printf("Watch error: %v", err) },
	)
	if err != nil {
		log.Fatalf("Failed to watch: %v", err)
	}
}

func renderFile(scenePath, output, backend string) error {
	sc, err := LoadScene(scenePath)
	if err != nil {
		return err
	}
	dir := filepath.Dir(scenePath)

	out := raster.New(sc.Width, sc.Height)
	switch backend {
	case "raster":
		err = render(sc, out, dir)
	default:
		err = renderVia(sc, backend, out, dir)
	}
	if err != nil {
		return err
	}

	if err := out.SavePNG(output); err != nil {
		return err
	}
	log.Printf("Scene saved to %s (%dx%d)", output, sc.Width, sc.Height)
	return nil
}

// renderVia renders into a registered session and, when it is a
// recorder, plays the recording back onto out.
func renderVia(sc *Scene, name string, out *raster.Session, dir string) error {
	s, err := recording.NewSession(name, sc.Width, sc.Height)
	if err != nil {
		return err
	}
	if err := render(sc, s, dir); err != nil {
		return err
	}
	rec, ok := s.(*recording.Recorder)
	if !ok {
		return fmt.Errorf("session %q cannot be played back", name)
	}
	r := rec.FinishRecording()
	log.Printf("Recorded %d commands", len(r.Commands()))
	return r.Playback(out)
}
