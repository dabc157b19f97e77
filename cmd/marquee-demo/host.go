package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/marquee/engine"
	"github.com/lixenwraith/marquee/event"
	"github.com/lixenwraith/marquee/page"
)

// host translates tcell events into page actions and dispatcher events
// Every method runs on the frame loop goroutine
type host struct {
	clock  engine.TimeProvider
	page   *page.Page
	input  *event.Dispatcher
	cancel context.CancelFunc

	sync func() // Full redraw after resize
}

// handle processes one tcell event, returns false once the demo should quit
func (h *host) handle(ev tcell.Event) bool {
	now := h.clock.Now()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)

	case *tcell.EventMouse:
		x, y := ev.Position()
		switch btn := ev.Buttons(); {
		case btn&tcell.WheelUp != 0:
			h.page.ScrollBy(-1, now)
		case btn&tcell.WheelDown != 0:
			h.page.ScrollBy(1, now)
		}
		h.input.Publish(event.Pointer(x, y, now))

	case *tcell.EventFocus:
		if !ev.Focused {
			h.input.Publish(event.PointerLeave(now))
		}
		h.input.Publish(event.Visibility(ev.Focused, now))

	case *tcell.EventResize:
		w, hgt := ev.Size()
		h.page.Layout(w, hgt, now)
		if h.sync != nil {
			h.sync()
		}
	}
	return true
}

func (h *host) handleKey(ev *tcell.EventKey) bool {
	now := h.clock.Now()

	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		h.quit()
		return false
	case tcell.KeyUp:
		h.page.ScrollBy(-1, now)
	case tcell.KeyDown:
		h.page.ScrollBy(1, now)
	case tcell.KeyPgUp:
		h.page.ScrollBy(-h.page.PageRows(), now)
	case tcell.KeyPgDn:
		h.page.ScrollBy(h.page.PageRows(), now)
	case tcell.KeyTab:
		h.page.FocusNext(1, now)
	case tcell.KeyBacktab:
		h.page.FocusNext(-1, now)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			h.quit()
			return false
		case ' ':
			h.input.Publish(event.Freeze(!h.input.Frozen(), now))
		case 'r':
			h.page.ToggleReverse(now)
		case 'j':
			h.page.ScrollBy(1, now)
		case 'k':
			h.page.ScrollBy(-1, now)
		}
	}
	return true
}

func (h *host) quit() {
	if h.cancel != nil {
		h.cancel()
	}
}

// pollEvents forwards screen events into the loop inbox until the screen is finalized or ctx ends
func pollEvents(ctx context.Context, screen tcell.Screen, inbox chan<- func(), h *host) {
	// Panic recovery for the polling goroutine, the terminal must be restored
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case inbox <- func() { h.handle(ev) }:
		case <-ctx.Done():
			return
		}
	}
}
