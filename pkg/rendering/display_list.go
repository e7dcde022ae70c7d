package rendering

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []DisplayOp
	size Size
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// Ops returns the recorded operations in order.
func (d *DisplayList) Ops() []DisplayOp {
	return d.ops
}

// Rects returns every recorded DrawRect operation in order.
func (d *DisplayList) Rects() []OpRect {
	var out []OpRect
	for _, op := range d.ops {
		if r, ok := op.(OpRect); ok {
			out = append(out, r)
		}
	}
	return out
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []DisplayOp
	recording bool
	size      Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r, size: size}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]DisplayOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{
		ops:  ops,
		size: r.size,
	}
}

// Snapshot returns the operations recorded so far without ending the session.
func (r *PictureRecorder) Snapshot() *DisplayList {
	ops := make([]DisplayOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{ops: ops, size: r.size}
}

// Reset drops recorded operations but keeps the session open.
func (r *PictureRecorder) Reset() {
	r.ops = r.ops[:0]
}

func (r *PictureRecorder) append(op DisplayOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

// DisplayOp is one recorded drawing operation.
type DisplayOp interface {
	execute(canvas Canvas)
}

type recordingCanvas struct {
	recorder *PictureRecorder
	size     Size
}

func (c *recordingCanvas) Save() {
	c.recorder.append(OpSave{})
}

func (c *recordingCanvas) Restore() {
	c.recorder.append(OpRestore{})
}

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.append(OpTranslate{DX: dx, DY: dy})
}

func (c *recordingCanvas) Clear(color Color) {
	c.recorder.append(OpClear{Color: color})
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.recorder.append(OpRect{Rect: rect, Paint: paint})
}

func (c *recordingCanvas) DrawText(text string, position Offset, color Color) {
	c.recorder.append(OpText{Text: text, Position: position, Color: color})
}

func (c *recordingCanvas) Size() Size {
	return c.size
}

// OpSave records Canvas.Save.
type OpSave struct{}

func (OpSave) execute(canvas Canvas) {
	canvas.Save()
}

// OpRestore records Canvas.Restore.
type OpRestore struct{}

func (OpRestore) execute(canvas Canvas) {
	canvas.Restore()
}

// OpTranslate records Canvas.Translate.
type OpTranslate struct {
	DX, DY float64
}

func (op OpTranslate) execute(canvas Canvas) {
	canvas.Translate(op.DX, op.DY)
}

// OpClear records Canvas.Clear.
type OpClear struct {
	Color Color
}

func (op OpClear) execute(canvas Canvas) {
	canvas.Clear(op.Color)
}

// OpRect records Canvas.DrawRect.
type OpRect struct {
	Rect  Rect
	Paint Paint
}

func (op OpRect) execute(canvas Canvas) {
	canvas.DrawRect(op.Rect, op.Paint)
}

// OpText records Canvas.DrawText.
type OpText struct {
	Text     string
	Position Offset
	Color    Color
}

func (op OpText) execute(canvas Canvas) {
	canvas.DrawText(op.Text, op.Position, op.Color)
}
