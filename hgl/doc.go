// Package hgl is a minimal, predictable software 3D pipeline.
//
// It reimplements on the CPU what a GPU normally provides: model/view/
// projection transforms with clip rejection, perspective divide and viewport
// mapping, barycentric triangle rasterization with a depth buffer, and a
// closed set of programmable vertex and fragment shader variants backed by a
// deterministic value-noise library.
//
// Pipeline (fixed):
//
//	Vertex shader → Transform → Clip → Rasterization → Fragment shader → Framebuffer.
//
// The pipeline draws into an owned Framebuffer and avoids allocations in the
// render hot path; fragments are delivered through callbacks rather than
// materialized slices. Everything is single-threaded and frame-synchronous:
// one logical writer per frame, so the depth compare-and-write needs no
// synchronization.
package hgl
