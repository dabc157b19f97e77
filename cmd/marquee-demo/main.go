package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/marquee/audio"
	"github.com/lixenwraith/marquee/content"
	"github.com/lixenwraith/marquee/engine"
	"github.com/lixenwraith/marquee/event"
	"github.com/lixenwraith/marquee/page"
	"github.com/lixenwraith/marquee/render"
)

var (
	debugFlag   = flag.Bool("debug", false, "Write debug log to logs/marquee.log")
	fpsFlag     = flag.Int("fps", 30, "Frames per second")
	contentFlag = flag.String("content", "", "YAML content file, embedded demo when empty")
	soundFlag   = flag.Bool("sound", false, "Click when a marquee wraps")
	themeFlag   = flag.String("theme", "stone", "Color theme: stone, night")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "marquee-demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	doc, err := content.Load(*contentFlag)
	if err != nil {
		return err
	}
	pal, ok := render.PaletteByName(*themeFlag)
	if !ok {
		return fmt.Errorf("unknown theme %q", *themeFlag)
	}
	pg, err := page.New(doc, pal)
	if err != nil {
		return err
	}

	fps := *fpsFlag
	if fps < 1 || fps > 240 {
		log.Printf("fps %d out of range, using 30", fps)
		fps = 30
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	// Panic recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mMARQUEE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()
	screen.Clear()

	clock := engine.NewMonotonicTimeProvider()
	frames := engine.NewFrameScheduler(clock, time.Second/time.Duration(fps))
	input := event.NewDispatcher()

	w, h := screen.Size()
	pg.Layout(w, h, clock.Now())
	pg.Mount(frames, input)
	defer pg.Unmount()

	if *soundFlag {
		clacker, err := audio.NewClacker()
		if err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer clacker.Close()
			pg.OnWrap(func(int) { clacker.Clack(clock.Now()) })
		}
	}

	target := render.ScreenTarget{S: screen}
	frames.SetPresent(func(time.Time) {
		pg.Draw(render.NewRegion(target), input.Frozen())
		screen.Show()
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hst := &host{
		clock:  clock,
		page:   pg,
		input:  input,
		cancel: cancel,
		sync:   screen.Sync,
	}

	inbox := make(chan func(), 64)
	go pollEvents(ctx, screen, inbox, hst)

	log.Printf("marquee-demo: %d sections at %d fps", len(pg.Sections()), fps)
	err = frames.Run(ctx, inbox)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
