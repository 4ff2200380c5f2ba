package hgl

import "github.com/chewxy/math32"

// Framebuffer owns a width×height color array and a parallel depth array.
//
// Allocate it once at startup sized to the window; Clear resets it each
// frame. Depth values are NDC z: lower is nearer, FarDepth means empty.
type Framebuffer struct {
	width      int
	height     int
	background Color

	color []Color
	depth []float32
}

// FarDepth is the cleared-depth sentinel; any finite write wins against it.
var FarDepth = math32.Inf(1)

func NewFramebuffer(w, h int, background Color) *Framebuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	fb := &Framebuffer{
		width:      w,
		height:     h,
		background: background,
		color:      make([]Color, w*h),
		depth:      make([]float32, w*h),
	}
	fb.Clear()
	return fb
}

func (fb *Framebuffer) Width() int  { return fb.width }
func (fb *Framebuffer) Height() int { return fb.height }

func (fb *Framebuffer) SetBackground(c Color) { fb.background = c }

// Clear resets every pixel to the background color and every depth cell to
// FarDepth, in a single synchronous pass.
func (fb *Framebuffer) Clear() {
	for i := range fb.color {
		fb.color[i] = fb.background
	}
	for i := range fb.depth {
		fb.depth[i] = FarDepth
	}
}

// SetPixel writes c at (x, y) if depth is strictly nearer than the stored
// depth there. Out-of-range coordinates and losing depth comparisons are
// silent no-ops; both are normal outcomes, not errors. Equal depth loses.
func (fb *Framebuffer) SetPixel(x, y int, depth float32, c Color) {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return
	}
	idx := y*fb.width + x
	if depth >= fb.depth[idx] {
		return
	}
	fb.depth[idx] = depth
	fb.color[idx] = c
}

// At returns the stored color at (x, y), or the background color when out of
// range.
func (fb *Framebuffer) At(x, y int) Color {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return fb.background
	}
	return fb.color[y*fb.width+x]
}

// DepthAt returns the stored depth at (x, y), or FarDepth when out of range.
func (fb *Framebuffer) DepthAt(x, y int) float32 {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return FarDepth
	}
	return fb.depth[y*fb.width+x]
}

// SnapshotRGBA copies the color buffer into dst as RGBA8888, row-major.
// dst must hold at least Width*Height*4 bytes.
func (fb *Framebuffer) SnapshotRGBA(dst []byte) {
	n := fb.width * fb.height
	if len(dst) < n*4 {
		n = len(dst) / 4
	}
	for i := 0; i < n; i++ {
		c := fb.color[i]
		j := i * 4
		dst[j+0] = c.R
		dst[j+1] = c.G
		dst[j+2] = c.B
		dst[j+3] = c.A
	}
}
