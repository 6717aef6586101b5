// Example demonstrates keyboard and gamepad navigation over two windows of
// plain boxes, drawn with the OpenGL overlay renderer.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Arrows/D-pad move focus, Tab cycles, Ctrl+Tab (or hold gamepad X) switches
// windows, Alt toggles the menu bar of the Tools window, Space activates.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/nav"
	"github.com/go-theft-auto/nav/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "nav example"
)

var (
	windowBg  = opengl.RGBA(40, 40, 46, 255)
	itemColor = opengl.RGBA(70, 70, 80, 255)
	menuColor = opengl.RGBA(90, 60, 60, 255)
	hitColor  = opengl.RGBA(200, 160, 60, 255)
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	verbose := flag.Bool("v", false, "log move requests and scoring")
	flag.Parse()
	nav.SetVerbose(*verbose)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// box is a focusable item laid out at a fixed offset from its window.
type box struct {
	id     nav.ID
	offset nav.Rect
	layer  nav.NavLayer
}

func grid(owner nav.ID, cols, rows int, w, h, gap float32) []box {
	boxes := make([]box, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			boxes = append(boxes, box{
				id:     nav.HashInt(row*cols+col, owner),
				offset: nav.RectXYWH(float32(col)*(w+gap), float32(row)*(h+gap)+24, w, h),
			})
		}
	}
	return boxes
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("nav renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	cfg := nav.DefaultConfig()
	if len(os.Args) > 1 {
		if cfg, err = nav.LoadConfig(os.Args[1]); err != nil {
			return err
		}
	}
	windows := nav.NewWindowStack()
	ctx := nav.New(nav.WithConfig(cfg), nav.WithWindowManager(windows))

	mainWin := windows.CreateWindow("Main", nav.WindowSpec{
		Pos:     nav.Vec2{X: 40, Y: 40},
		Size:    nav.Vec2{X: 420, Y: 300},
		Padding: nav.Vec2{X: 8, Y: 8},
	})
	toolsWin := windows.CreateWindow("Tools", nav.WindowSpec{
		Pos:     nav.Vec2{X: 500, Y: 80},
		Size:    nav.Vec2{X: 240, Y: 360},
		Padding: nav.Vec2{X: 8, Y: 8},
	})
	content := map[nav.WindowHandle][]box{
		mainWin:  grid(windows.Window(mainWin).ID, 4, 5, 90, 40, 10),
		toolsWin: grid(windows.Window(toolsWin).ID, 1, 8, 200, 32, 6),
	}
	toolsID := windows.Window(toolsWin).ID
	for i := 0; i < 3; i++ {
		content[toolsWin] = append(content[toolsWin], box{
			id:     nav.HashID(fmt.Sprintf("menu%d", i), toolsID),
			offset: nav.RectXYWH(float32(i)*60, -8, 56, 20),
			layer:  nav.LayerMenu,
		})
	}
	ctx.FocusWindow(mainWin)

	hits := make(map[nav.ID]time.Time)
	last := time.Now()

	for !window.ShouldClose() {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		inputAdapter.NewFrame()
		glfw.PollEvents()
		in := inputAdapter.Update(dt)
		if inputAdapter.MouseUsed() {
			ctx.NotifyMouseUsed()
		}
		windows.NewFrame()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		renderer.Resize(w, h)
		ctx.SetDisplaySize(nav.Vec2{X: float32(w), Y: float32(h)})

		ctx.Update(in, dt)
		for _, handle := range windows.FocusOrder() {
			win := windows.Window(handle)
			ctx.BeginWindow(handle)
			renderer.FillRect(win.Rect(), windowBg)
			origin := win.ContentOrigin()
			for _, b := range content[handle] {
				r := b.offset.Translate(origin)
				ctx.ProcessItem(nav.ItemCandidate{ID: b.id, Rect: r, Layer: b.layer})
				if ctx.IsActivated(b.id) {
					hits[b.id] = now
				}
				col := itemColor
				if b.layer == nav.LayerMenu {
					col = menuColor
				}
				if t, ok := hits[b.id]; ok && now.Sub(t) < 300*time.Millisecond {
					col = hitColor
				}
				renderer.FillRect(r, col)
			}
			// Both windows wrap: Right past the last column continues on
			// the next row.
			ctx.TryWrap(handle, nav.MoveWrapX|nav.MoveWrapY)
			ctx.EndWindow(handle)
		}
		ctx.EndFrame()

		if ctx.WantSetMousePos() {
			inputAdapter.WarpMouse(ctx.MousePos())
		}
		renderer.DrawNav(ctx)
		renderer.Render()

		window.SwapBuffers()
	}

	return nil
}
