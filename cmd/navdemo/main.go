// Command navdemo runs keyboard navigation in a terminal. Each focusable
// item is a labelled cell range; the focused one is drawn reversed.
//
//	go run ./cmd/navdemo [config.toml]
//
// Arrows move, Tab/Shift+Tab cycle, F6 switches windows, F10 toggles the
// menu bar, Space activates, Esc cancels, Ctrl+C quits.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/nav"
	"github.com/go-theft-auto/nav/backend/tcellinput"
)

type item struct {
	id    nav.ID
	label string
	x, y  int // offset from the window content origin
	layer nav.NavLayer
}

type demo struct {
	screen  tcell.Screen
	input   *tcellinput.Adapter
	windows *nav.WindowStack
	ctx     *nav.Context
	content map[nav.WindowHandle][]item
	// log is a long list submitted through a clipper.
	log     nav.WindowHandle
	logRows []nav.ID
	status  string
}

// terminalConfig measures everything in cells.
func terminalConfig() nav.Config {
	cfg := nav.DefaultConfig()
	cfg.FontSize = 1
	cfg.CharWidth = 1
	cfg.ItemSpacing = nav.Vec2{X: 1, Y: 0}
	cfg.WindowingPad = nav.Vec2{X: 1, Y: 1}
	cfg.WindowingMoveSpeed = 20
	return cfg
}

func newDemo(cfg nav.Config) (*demo, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	d := &demo{
		screen:  screen,
		input:   tcellinput.New(),
		windows: nav.NewWindowStack(),
		content: make(map[nav.WindowHandle][]item),
	}
	// stderr belongs to the terminal screen.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d.ctx = nav.New(nav.WithConfig(cfg), nav.WithWindowManager(d.windows), nav.WithLogger(logger))

	files := d.windows.CreateWindow("Files", nav.WindowSpec{
		Pos:     nav.Vec2{X: 2, Y: 1},
		Size:    nav.Vec2{X: 40, Y: 12},
		Padding: nav.Vec2{X: 1, Y: 1},
	})
	filesID := d.windows.Window(files).ID
	for i, name := range []string{"main.go", "nav.go", "scroll.go", "popup.go", "window.go", "config.go"} {
		d.content[files] = append(d.content[files], item{
			id:    nav.HashID(name, filesID),
			label: name,
			x:     (i % 3) * 13,
			y:     1 + (i/3)*2,
		})
	}
	for i, name := range []string{"File", "Edit", "View"} {
		d.content[files] = append(d.content[files], item{
			id:    nav.HashID("menu/"+name, filesID),
			label: name,
			x:     i * 6,
			y:     -1,
			layer: nav.LayerMenu,
		})
	}

	props := d.windows.CreateWindow("Properties", nav.WindowSpec{
		Pos:     nav.Vec2{X: 46, Y: 3},
		Size:    nav.Vec2{X: 28, Y: 14},
		Padding: nav.Vec2{X: 1, Y: 1},
	})
	propsID := d.windows.Window(props).ID
	for i, name := range []string{"Name", "Size", "Mode", "Owner", "Modified"} {
		d.content[props] = append(d.content[props], item{
			id:    nav.HashInt(i, propsID),
			label: name,
			y:     i * 2,
		})
	}

	d.log = d.windows.CreateWindow("Log", nav.WindowSpec{
		Pos:     nav.Vec2{X: 2, Y: 15},
		Size:    nav.Vec2{X: 40, Y: 8},
		Padding: nav.Vec2{X: 1, Y: 1},
	})
	logID := d.windows.Window(d.log).ID
	d.logRows = make([]nav.ID, 500)
	for i := range d.logRows {
		d.logRows[i] = nav.HashInt(i, logID)
	}
	d.windows.Window(d.log).ContentSizeExplicit = nav.Vec2{X: 30, Y: float32(len(d.logRows))}

	d.ctx.FocusWindow(files)
	return d, nil
}

func (d *demo) frame(dt float32) {
	in := d.input.EndFrame(dt)
	if d.input.MouseUsed() {
		d.ctx.NotifyMouseUsed()
	}
	d.windows.NewFrame()
	w, h := d.screen.Size()
	d.ctx.SetDisplaySize(nav.Vec2{X: float32(w), Y: float32(h)})

	d.screen.Clear()
	d.ctx.Update(in, dt)
	for _, handle := range d.windows.FocusOrder() {
		win := d.windows.Window(handle)
		d.ctx.BeginWindow(handle)
		d.drawFrame(win, handle == d.ctx.NavWindow())
		origin := win.ContentOrigin()
		for _, it := range d.content[handle] {
			x := int(origin.X) + it.x
			y := int(origin.Y) + it.y
			d.ctx.ProcessItem(nav.ItemCandidate{
				ID:    it.id,
				Rect:  nav.RectXYWH(float32(x), float32(y), float32(len(it.label)), 1),
				Layer: it.layer,
			})
			if d.ctx.IsActivated(it.id) {
				d.status = fmt.Sprintf("activated %s/%s", win.Name, it.label)
			}
			style := tcell.StyleDefault
			if it.id == d.ctx.NavID() && d.ctx.IsHighlightVisible() {
				style = style.Reverse(true)
			}
			d.print(x, y, it.label, style)
		}
		if handle == d.log {
			d.submitLog(win)
		}
		d.ctx.TryWrap(handle, nav.MoveWrapX|nav.MoveWrapY)
		d.ctx.EndWindow(handle)
	}
	d.ctx.EndFrame()

	d.drawWindowingList()
	d.print(0, h-1, d.status, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	d.screen.Show()
}

func (d *demo) submitLog(win *nav.Window) {
	clip := d.ctx.ClipList(d.log, len(d.logRows), 1, 0)
	origin := win.ContentOrigin()
	for _, r := range clip.Ranges {
		for i := r.Start; i < r.End; i++ {
			rect := nav.RectXYWH(origin.X, origin.Y+clip.ItemY(i, 0), 30, 1)
			d.ctx.ProcessItem(nav.ItemCandidate{ID: d.logRows[i], Rect: rect})
			if !win.ClipRect.Contains(rect.Min) {
				continue
			}
			style := tcell.StyleDefault
			if d.logRows[i] == d.ctx.NavID() && d.ctx.IsHighlightVisible() {
				style = style.Reverse(true)
			}
			d.print(int(rect.Min.X), int(rect.Min.Y), fmt.Sprintf("event %03d", i), style)
		}
	}
}

func (d *demo) drawFrame(w *nav.Window, focused bool) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	if focused {
		style = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	}
	r := w.Rect()
	x0, y0, x1, y1 := int(r.Min.X), int(r.Min.Y), int(r.Max.X)-1, int(r.Max.Y)-1
	for x := x0; x <= x1; x++ {
		d.screen.SetContent(x, y0, '─', nil, style)
		d.screen.SetContent(x, y1, '─', nil, style)
	}
	for y := y0; y <= y1; y++ {
		d.screen.SetContent(x0, y, '│', nil, style)
		d.screen.SetContent(x1, y, '│', nil, style)
	}
	d.screen.SetContent(x0, y0, '┌', nil, style)
	d.screen.SetContent(x1, y0, '┐', nil, style)
	d.screen.SetContent(x0, y1, '└', nil, style)
	d.screen.SetContent(x1, y1, '┘', nil, style)
	d.print(x0+2, y0, " "+nav.DisplayName(w)+" ", style)
}

func (d *demo) drawWindowingList() {
	list := d.ctx.WindowingList()
	if !list.Visible {
		return
	}
	bg := tcell.StyleDefault.Background(tcell.ColorNavy)
	r := list.Rect
	for y := int(r.Min.Y); y < int(r.Max.Y); y++ {
		for x := int(r.Min.X); x < int(r.Max.X); x++ {
			d.screen.SetContent(x, y, ' ', nil, bg)
		}
	}
	for i, row := range list.Rows(d.ctx.Config()) {
		style := bg
		if list.Entries[i].Selected {
			style = bg.Reverse(true)
		}
		d.print(int(row.Min.X), int(row.Min.Y), list.Entries[i].Label, style)
	}
}

func (d *demo) print(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		d.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (d *demo) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- d.screen.PollEvent()
		}
	}()

	last := time.Now()
	d.input.NewFrame()
	for {
		select {
		case ev := <-eventChan:
			if key, ok := ev.(*tcell.EventKey); ok && key.Key() == tcell.KeyCtrlC {
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				d.screen.Sync()
			}
			d.input.HandleEvent(ev)

		case now := <-ticker.C:
			d.frame(float32(now.Sub(last).Seconds()))
			last = now
			d.input.NewFrame()
		}
	}
}

// loadConfig reads the optional config file over the cell metrics of
// terminalConfig.
func loadConfig(args []string) (nav.Config, error) {
	if len(args) == 0 {
		return terminalConfig(), nil
	}
	return nav.LoadConfigOnto(terminalConfig(), args[0])
}

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	d, err := newDemo(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer d.screen.Fini()

	d.run()
}
