// Package ui provides the per-frame state core of an immediate-mode GUI.
//
// # Overview
//
// ui owns the transition from raw platform input to an ordered, layered
// stream of paint primitives, and resolves pointer interaction (hover,
// click, drag, double-click) across overlapping regions with stable
// semantics from frame to frame. It is designed to sit between a platform
// shell (which captures input and presents frames) and a tessellating
// renderer such as the gogpu backends.
//
// # Quick Start
//
//	import "github.com/gogpu/ui"
//
//	ctx := ui.NewContext()
//	for running {
//		region := ctx.BeginFrame(raw) // raw input captured by the shell
//
//		// Widget code: hit-test, claim interactions, push paint commands.
//		info := ctx.Interact(region.Layer, region.ClipRect, rect, &id, ui.SenseClick)
//		ctx.AddPaintCmd(region.Layer, cmd)
//
//		output, cmds := ctx.EndFrame()
//		// Hand cmds to the tessellator, apply output (cursor, clipboard).
//	}
//
// # Architecture
//
// One Context exists per session. Each frame is a generation: BeginFrame
// freezes an input snapshot derived from the previous one plus new raw
// input, and every mutable subsystem (style, memory, paint buffer, output,
// id registry) sits behind its own non-reentrant guard. Re-acquiring a
// guard that is already held is a programming error and panics instead of
// deadlocking.
//
// Out of scope, reached through narrow interfaces: font shaping and layout
// (see the text subpackage), tessellation (Tessellator), windowing and
// platform input capture.
//
// # Coordinate System
//
// Screen-space points with origin at the top-left; X grows right, Y grows
// down. Sizes are in points; multiply by PixelsPerPoint for pixels.
package ui

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
