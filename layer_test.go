package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func rectAt(x float64) PaintCmd {
	return RectCmd{Rect: RectFromMinSize(Pt(x, 0), V2(1, 1))}
}

func TestGraphicLayersDrainOrder(t *testing.T) {
	background := BackgroundLayer()
	window := Layer{Order: OrderMiddle, ID: NewID("window")}

	g := NewGraphicLayers()
	clip := RectEverything()
	g.Push(window, clip, rectAt(10))
	g.Push(background, clip, rectAt(0))
	g.Push(window, clip, rectAt(11))

	got := g.Drain([]Layer{background, window})
	want := []ClippedCmd{
		{Clip: clip, Cmd: rectAt(0)},
		{Clip: clip, Cmd: rectAt(10)},
		{Clip: clip, Cmd: rectAt(11)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("drained stream mismatch (-want +got):\n%s", diff)
	}

	if g.Len() != 0 {
		t.Errorf("Len after drain = %d, want 0", g.Len())
	}
}

func TestGraphicLayersDrainEmpty(t *testing.T) {
	g := NewGraphicLayers()
	if got := g.Drain([]Layer{BackgroundLayer()}); len(got) != 0 {
		t.Errorf("draining empty buffer yielded %d commands", len(got))
	}
}

func TestGraphicLayersDebugLast(t *testing.T) {
	background := BackgroundLayer()
	debug := DebugLayer()

	g := NewGraphicLayers()
	clip := RectEverything()
	g.Push(debug, clip, rectAt(99))
	g.Push(background, clip, rectAt(0))

	// The debug layer drains last even when listed first in the order.
	got := g.Drain([]Layer{debug, background})
	if len(got) != 2 {
		t.Fatalf("drained %d commands, want 2", len(got))
	}
	if !cmp.Equal(got[1].Cmd, rectAt(99)) {
		t.Errorf("last drained command = %v, want the debug command", got[1].Cmd)
	}

	// And drains even when absent from the order entirely.
	g.Push(debug, clip, rectAt(98))
	got = g.Drain(nil)
	if len(got) != 1 || !cmp.Equal(got[0].Cmd, rectAt(98)) {
		t.Errorf("debug layer missing from order was not drained: %v", got)
	}
}

func TestGraphicLayersSkipsUnlistedLayers(t *testing.T) {
	window := Layer{Order: OrderMiddle, ID: NewID("window")}
	g := NewGraphicLayers()
	g.Push(window, RectEverything(), rectAt(1))

	if got := g.Drain([]Layer{BackgroundLayer()}); len(got) != 0 {
		t.Errorf("unlisted layer drained %d commands", len(got))
	}
	// The commands stay buffered for an order that does include the layer.
	if got := g.Drain([]Layer{window}); len(got) != 1 {
		t.Errorf("listed layer drained %d commands, want 1", len(got))
	}
}

func TestGraphicLayersReset(t *testing.T) {
	g := NewGraphicLayers()
	g.Push(BackgroundLayer(), RectEverything(), rectAt(0))
	g.Reset()
	if g.Len() != 0 {
		t.Errorf("Len after Reset = %d, want 0", g.Len())
	}
}
