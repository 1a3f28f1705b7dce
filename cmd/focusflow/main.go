// Package main is an interactive terminal demo of the focus engine: a
// scrollable grid of boxes navigated by arrows/hjkl, mouse clicks,
// swipes and the scroll wheel. Esc quits once the focus history is
// exhausted.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/focusflow/internal/adapter/tcellterm"
	"github.com/dshills/focusflow/internal/engine"
	"github.com/dshills/focusflow/internal/event"
	"github.com/dshills/focusflow/internal/geom"
	"github.com/dshills/focusflow/internal/scroll"
)

var version = "dev"

const (
	gridCols   = 4
	gridRows   = 8
	cellWidth  = 16
	cellHeight = 5
	cellGap    = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		bindingsPath string
		showVersion  bool
	)
	flag.StringVar(&bindingsPath, "bindings", "", "Path to a bindings TOML file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("focusflow %s\n", version)
		return 0
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize screen: %v\n", err)
		return 1
	}
	defer screen.Fini()
	screen.EnableMouse()

	quit := make(chan struct{})
	var quitOnce sync.Once
	stop := func() { quitOnce.Do(func() { close(quit) }) }

	eng := engine.New(
		engine.WithBindingsPath(bindingsPath),
		engine.WithScrollConfig(scroll.Config{Margin: 1, Instant: true}),
		engine.WithRootBackHandler(stop),
	)
	if err := eng.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to start engine: %v\n", err)
		return 1
	}
	defer eng.Stop()

	view := newGridView(screen)
	eng.AttachContainer("grid", view)

	for i := 0; i < gridCols*gridRows; i++ {
		col, row := i%gridCols, i/gridCols
		id := fmt.Sprintf("cell-%d", i)
		if _, err := eng.RegisterFocusable(engine.Node{
			ID:    id,
			Group: "grid",
			Bounds: geom.Rect{
				X: float64(col * (cellWidth + cellGap)),
				Y: float64(row * (cellHeight + cellGap)),
				W: cellWidth,
				H: cellHeight,
			},
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: register %s: %v\n", id, err)
			return 1
		}
	}

	eng.Subscribe(event.KindFocusChanged, func(ev engine.Event) {
		view.setFocused(ev.To)
		view.draw()
	})
	eng.Subscribe(event.KindActivate, func(ev engine.Event) {
		view.flash(ev.Node)
		view.draw()
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := tcellterm.New(screen, eng.Keyboard(), eng.Gestures(), eng.Bindings(), eng.Post,
		tcellterm.WithResizeHandler(func(int, int) { view.draw() }))
	go func() {
		source.Run(ctx)
		stop()
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		stop()
	}()

	if id, ok := eng.Current(); ok {
		view.setFocused(id)
	}
	view.draw()

	<-quit
	return 0
}

// gridView renders the cell grid and doubles as the scroll container:
// the engine moves its offset to keep the focused cell on screen.
type gridView struct {
	screen tcell.Screen

	mu      sync.Mutex
	offset  geom.Point
	focused string
	flashed string
}

func newGridView(screen tcell.Screen) *gridView {
	return &gridView{screen: screen}
}

func (v *gridView) ID() string { return "grid" }

func (v *gridView) Viewport() geom.Rect {
	w, h := v.screen.Size()
	v.mu.Lock()
	defer v.mu.Unlock()
	return geom.Rect{X: v.offset.X, Y: v.offset.Y, W: float64(w), H: float64(h)}
}

func (v *gridView) SetOffset(p geom.Point) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.offset = p
}

func (v *gridView) setFocused(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.focused = id
	v.flashed = ""
}

func (v *gridView) flash(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.flashed = id
}

// draw repaints every cell. Cell hues walk the color wheel; the
// focused cell is lifted toward white and an activation flash lifts
// it further.
func (v *gridView) draw() {
	v.mu.Lock()
	offset, focused, flashed := v.offset, v.focused, v.flashed
	v.mu.Unlock()

	v.screen.Clear()

	for i := 0; i < gridCols*gridRows; i++ {
		col, row := i%gridCols, i/gridCols
		id := fmt.Sprintf("cell-%d", i)

		hue := float64(i) / float64(gridCols*gridRows) * 360
		base := colorful.Hsv(hue, 0.6, 0.45)
		switch id {
		case flashed:
			base = colorful.Hsv(hue, 0.2, 1.0)
		case focused:
			base = colorful.Hsv(hue, 0.45, 0.85)
		}

		x := col*(cellWidth+cellGap) - int(offset.X)
		y := row*(cellHeight+cellGap) - int(offset.Y)
		v.drawCell(x, y, id, base, id == focused)
	}

	v.screen.Show()
}

func (v *gridView) drawCell(x, y int, label string, c colorful.Color, focused bool) {
	r, g, b := c.RGB255()
	style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	if focused {
		style = style.Foreground(tcell.ColorBlack).Bold(true)
	} else {
		style = style.Foreground(tcell.ColorWhite)
	}

	for dy := 0; dy < cellHeight; dy++ {
		for dx := 0; dx < cellWidth; dx++ {
			v.screen.SetContent(x+dx, y+dy, ' ', nil, style)
		}
	}
	for i, ch := range label {
		if i >= cellWidth-2 {
			break
		}
		v.screen.SetContent(x+1+i, y+cellHeight/2, ch, nil, style)
	}
}
