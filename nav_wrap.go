package nav

// TryWrap lets window code (typically a popup or menu on end) ask for the
// live request to wrap or loop at its edges if nothing matches. flags must
// only hold MoveWrapX, MoveWrapY, MoveLoopX or MoveLoopY. It replaces the
// request's wrap bits, so repeated calls are idempotent.
func (ctx *Context) TryWrap(h WindowHandle, flags MoveFlags) {
	if !ctx.check(flags&MoveWrapMask != 0 && flags&^MoveWrapMask == 0, "TryWrap", "flags must be wrap/loop flags only") {
		return
	}
	if ctx.navWindow == h && ctx.move.scoring && ctx.navLayer == LayerMain {
		ctx.move.flags = ctx.move.flags&^MoveWrapMask | flags
	}
}

// updateCreateWrappingRequest runs at end of frame when the live request
// found nothing and may wrap. It moves the remembered focus rect to the
// opposite edge of the content and forwards the request to next frame,
// once the whole container has been laid out.
//
// Loop re-enters the same row (column). Wrap also steps one row (column)
// and, past the last row, continues from the first.
func (ctx *Context) updateCreateWrappingRequest() {
	w := ctx.window(ctx.navWindow)
	if w == nil {
		return
	}
	rel := w.Nav.RectRel[ctx.navLayer]
	if rel.IsInverted() {
		rel = Rect{}
	}
	clipDir := ctx.move.dir
	flags := ctx.move.flags
	content := w.ContentSize
	forward := false

	switch ctx.move.dir {
	case DirLeft:
		if flags&(MoveWrapX|MoveLoopX) == 0 {
			break
		}
		rel.Min.X, rel.Max.X = content.X+w.Padding.X, content.X+w.Padding.X
		if flags&MoveWrapX != 0 {
			rel = rel.TranslateY(-rel.H())
			if rel.Max.Y <= 0 {
				rel = rel.TranslateY(content.Y - rel.Max.Y)
			}
			clipDir = DirUp
		}
		forward = true
	case DirRight:
		if flags&(MoveWrapX|MoveLoopX) == 0 {
			break
		}
		rel.Min.X, rel.Max.X = -w.Padding.X, -w.Padding.X
		if flags&MoveWrapX != 0 {
			rel = rel.TranslateY(rel.H())
			if rel.Min.Y >= content.Y {
				rel = rel.TranslateY(-rel.Min.Y)
			}
			clipDir = DirDown
		}
		forward = true
	case DirUp:
		if flags&(MoveWrapY|MoveLoopY) == 0 {
			break
		}
		rel.Min.Y, rel.Max.Y = content.Y+w.Padding.Y, content.Y+w.Padding.Y
		if flags&MoveWrapY != 0 {
			rel = rel.TranslateX(-rel.W())
			if rel.Max.X <= 0 {
				rel = rel.TranslateX(content.X - rel.Max.X)
			}
			clipDir = DirLeft
		}
		forward = true
	case DirDown:
		if flags&(MoveWrapY|MoveLoopY) == 0 {
			break
		}
		rel.Min.Y, rel.Max.Y = -w.Padding.Y, -w.Padding.Y
		if flags&MoveWrapY != 0 {
			rel = rel.TranslateX(rel.W())
			if rel.Min.X >= content.X {
				rel = rel.TranslateX(-rel.Min.X)
			}
			clipDir = DirRight
		}
		forward = true
	}
	if !forward {
		return
	}
	w.Nav.RectRel[ctx.navLayer] = rel
	ctx.log.Debug("wrap request", "dir", ctx.move.dir, "clip", clipDir, "rect", rel)
	ctx.forwardMove(ctx.move.dir, clipDir, flags, ctx.move.scrollFlags)
}
