package ui

import (
	"strings"
	"testing"
)

func testRaw(time float64) RawInput {
	return RawInput{
		ScreenSize:     V2(800, 600),
		PixelsPerPoint: 1,
		Time:           time,
	}
}

func TestFrameRoundTrip(t *testing.T) {
	ctx := NewContext()
	region := ctx.BeginFrame(testRaw(0.1))

	if region.Layer != BackgroundLayer() {
		t.Errorf("background region layer = %v", region.Layer)
	}
	if region.Rect != RectFromMinSize(Pt(0, 0), V2(800, 600)) {
		t.Errorf("background region rect = %v", region.Rect)
	}

	out, cmds := ctx.EndFrame()
	if len(cmds) != 0 {
		t.Errorf("empty frame drained %d primitives", len(cmds))
	}
	if out != (Output{}) {
		t.Errorf("empty frame output = %+v, want zero", out)
	}
}

func TestFontsBeforeFirstFrame(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Fonts before the first BeginFrame must panic")
		}
	}()
	NewContext().Fonts()
}

func TestOutputTakenPerFrame(t *testing.T) {
	ctx := NewContext()
	ctx.BeginFrame(testRaw(0.1))
	ctx.SetCursorIcon(CursorPointingHand)
	ctx.CopyText("hello")

	out, _ := ctx.EndFrame()
	if out.CursorIcon != CursorPointingHand || out.CopiedText != "hello" {
		t.Errorf("output = %+v", out)
	}

	ctx.BeginFrame(testRaw(0.2))
	out, _ = ctx.EndFrame()
	if out != (Output{}) {
		t.Errorf("output leaked into the next frame: %+v", out)
	}
}

// debugOverlayCount counts rect primitives in the drained stream; error
// overlays paint exactly one backdrop rect each.
func debugOverlayCount(cmds []ClippedCmd) int {
	n := 0
	for _, c := range cmds {
		if _, ok := c.Cmd.(RectCmd); ok {
			n++
		}
	}
	return n
}

func TestIdClashDiagnostics(t *testing.T) {
	ctx := NewContext()

	for frame := 0; frame < 2; frame++ {
		ctx.BeginFrame(testRaw(0.1 * float64(frame+1)))
		id := ctx.MakeUniqueID("row", Pt(0, 0))
		ctx.RegisterUniqueID(id, "row", Pt(100, 0))

		_, cmds := ctx.EndFrame()
		// One overlay per clash position, reported anew every frame.
		if got := debugOverlayCount(cmds); got != 2 {
			t.Errorf("frame %d: %d overlays, want 2", frame, got)
		}
	}
}

func TestIdReRegistrationIsSilent(t *testing.T) {
	ctx := NewContext()
	ctx.BeginFrame(testRaw(0.1))

	id := ctx.MakeUniqueID("row", Pt(50, 50))
	// Same widget re-registering a hair away: not a clash.
	ctx.RegisterUniqueID(id, "row", Pt(52, 51))

	_, cmds := ctx.EndFrame()
	if got := debugOverlayCount(cmds); got != 0 {
		t.Errorf("%d overlays for a re-registration, want 0", got)
	}
}

func TestShowErrorPaintsLast(t *testing.T) {
	ctx := NewContext()
	region := ctx.BeginFrame(testRaw(0.1))

	ctx.AddPaintCmd(region.Layer, rectAt(0))
	ctx.ShowError(Pt(10, 10), "boom")

	_, cmds := ctx.EndFrame()
	if len(cmds) < 3 {
		t.Fatalf("drained %d primitives", len(cmds))
	}
	// The overlay's text command must come after everything else.
	text, ok := cmds[len(cmds)-1].Cmd.(TextCmd)
	if !ok {
		t.Fatalf("last primitive is %T, want TextCmd", cmds[len(cmds)-1].Cmd)
	}
	if !strings.Contains(text.Galley.Text, "boom") {
		t.Errorf("overlay text = %q", text.Galley.Text)
	}
	if text.Color != Red {
		t.Errorf("overlay color = %v, want red", text.Color)
	}
}

func TestMemoryGuardNonReentrant(t *testing.T) {
	ctx := NewContext()
	ctx.BeginFrame(testRaw(0.1))

	defer func() {
		if recover() == nil {
			t.Error("re-entrant memory access must panic")
		}
	}()
	ctx.Memory(func(*Memory) {
		ctx.Memory(func(*Memory) {})
	})
}

func TestRoundToPixel(t *testing.T) {
	ctx := NewContext()
	ctx.BeginFrame(RawInput{
		ScreenSize:     V2(800, 600),
		PixelsPerPoint: 2,
		Time:           0.1,
	})

	if got := ctx.RoundToPixel(1.3); got != 1.5 {
		t.Errorf("RoundToPixel(1.3) at 2x = %v, want 1.5", got)
	}
	if got := ctx.RoundToPixel(1.2); got != 1.0 {
		t.Errorf("RoundToPixel(1.2) at 2x = %v, want 1.0", got)
	}
}

func TestPaintStats(t *testing.T) {
	ctx := NewContext()
	region := ctx.BeginFrame(testRaw(0.1))
	ctx.AddPaintCmd(region.Layer, rectAt(0))
	ctx.AddPaintCmd(region.Layer, rectAt(1))
	ctx.EndFrame()

	if got := ctx.PaintStats().Primitives; got != 2 {
		t.Errorf("Primitives = %d, want 2", got)
	}
}
