package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/rogue-shot/internal/config"
	"github.com/vovakirdan/rogue-shot/internal/core"
	"github.com/vovakirdan/rogue-shot/internal/game"
	"github.com/vovakirdan/rogue-shot/internal/storage"
)

// A 100x31 screen over the default 1000x600 world gives 10x20 unit cells.
func testViewport() Viewport {
	return NewViewport(100, 31, core.Vec2{X: 1000, Y: 600})
}

func TestViewportMapping(t *testing.T) {
	v := testViewport()

	x, y := v.ToCell(core.Vec2{X: 505, Y: 510})
	if x != 50 || y != 26 {
		t.Errorf("ToCell() = (%d, %d), expected (50, 26)", x, y)
	}

	p := v.ToWorld(50, 26)
	if p.X != 505 || p.Y != 510 {
		t.Errorf("ToWorld() = %v, expected (505, 510)", p)
	}

	cx, cy, w, h := v.RectCells(core.NewRect(500, 500, 50, 50))
	if cx != 50 || cy != 26 || w != 5 || h != 3 {
		t.Errorf("RectCells() = (%d, %d, %d, %d), expected (50, 26, 5, 3)", cx, cy, w, h)
	}

	_, _, w, h = v.RectCells(core.NewRect(0, 0, 2, 2))
	if w != 1 || h != 1 {
		t.Errorf("tiny rect covers %dx%d cells, expected 1x1", w, h)
	}
}

func TestRenderSnapshot(t *testing.T) {
	g := game.New(config.Default(), 12345)
	screen := core.NewScreen(100, 31)
	v := testViewport()

	RenderSnapshot(g.Snapshot(), screen)

	x, y := v.ToCell(g.Player().Rect.Center())
	if cell := screen.GetCell(x, y); cell.Rune != '█' || cell.Color != core.ColorBrightWhite {
		t.Errorf("player cell = %q/%v, expected white block", cell.Rune, cell.Color)
	}

	x, y = v.ToCell(g.Enemy().Rect.Center())
	if cell := screen.GetCell(x, y); cell.Color != g.Enemy().State().Color() {
		t.Errorf("enemy cell color = %v, expected %v", cell.Color, g.Enemy().State().Color())
	}

	hud := screen.Row(0)
	for _, want := range []string{"HP", "FOE", "SCORE"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if !strings.Contains(screen.Row(30), "▓") {
		t.Error("ground row not drawn")
	}
}

func TestRenderPausedAndDebug(t *testing.T) {
	g := game.New(config.Default(), 1, game.WithDebug(true))
	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)

	screen := core.NewScreen(100, 31)
	RenderSnapshot(g.Snapshot(), screen)
	out := screen.String()

	if !strings.Contains(out, "PAUSED") {
		t.Error("paused banner missing")
	}
	if !strings.Contains(screen.Row(30), "patrol") {
		t.Errorf("debug line %q missing enemy state", screen.Row(30))
	}
}

func TestHealthBar(t *testing.T) {
	tests := []struct {
		health, max int
		expected    string
	}{
		{100, 100, "██████████"},
		{50, 100, "█████·····"},
		{0, 100, "··········"},
		{-5, 100, "··········"},
		{10, 0, "··········"},
	}
	for _, tc := range tests {
		if got := healthBar(tc.health, tc.max, 10); got != tc.expected {
			t.Errorf("healthBar(%d, %d) = %q, expected %q", tc.health, tc.max, got, tc.expected)
		}
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(0, 1, "cd", core.ColorDefault)

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("RenderScreen() = %q, expected both rows", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() should join 2 rows with one newline: %q", out)
	}
}

func TestRunRows(t *testing.T) {
	created := time.Date(2026, time.March, 4, 15, 30, 0, 0, time.UTC)
	rows := RunRows([]storage.Run{
		{Score: 320, Kills: 3, Deaths: 1, ShotsFired: 20, ShotsHit: 10, Ticks: 3660, Difficulty: "hard", Seed: 7, CreatedAt: created},
		{Score: 0},
	})

	if len(rows) != 2 {
		t.Fatalf("RunRows() = %d rows, expected 2", len(rows))
	}
	want := []string{"1", "320", "3/1", "50%", "1:01", "hard", "7", "Mar 04 15:30"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("column %d = %q, expected %q", i, rows[0][i], cell)
		}
	}
	if rows[1][3] != "-" {
		t.Errorf("accuracy without shots = %q, expected -", rows[1][3])
	}
}
