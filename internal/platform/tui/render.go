package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rogue-shot/internal/core"
	"github.com/vovakirdan/rogue-shot/internal/enemy"
	"github.com/vovakirdan/rogue-shot/internal/game"
	"github.com/vovakirdan/rogue-shot/internal/projectile"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrown:         lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// Viewport maps world units onto the cells below the HUD.
type Viewport struct {
	Cols, Rows int
	Top        int
	World      core.Vec2
}

// NewViewport fits the world into a screen of the given size.
func NewViewport(screenW, screenH int, world core.Vec2) Viewport {
	return Viewport{
		Cols:  max(1, screenW),
		Rows:  max(1, screenH-hudRows),
		Top:   hudRows,
		World: world,
	}
}

func (v Viewport) cellW() float64 { return v.World.X / float64(v.Cols) }
func (v Viewport) cellH() float64 { return v.World.Y / float64(v.Rows) }

// ToCell returns the cell holding world point p.
func (v Viewport) ToCell(p core.Vec2) (int, int) {
	x := int(math.Floor(p.X / v.cellW()))
	y := int(math.Floor(p.Y / v.cellH()))
	return x, y + v.Top
}

// ToWorld returns the world point at the centre of cell (x, y).
func (v Viewport) ToWorld(x, y int) core.Vec2 {
	return core.Vec2{
		X: (float64(x) + 0.5) * v.cellW(),
		Y: (float64(y-v.Top) + 0.5) * v.cellH(),
	}
}

// RectCells returns the cell span covered by r; it is never empty.
func (v Viewport) RectCells(r core.Rect) (x, y, w, h int) {
	x0 := int(math.Floor(r.X / v.cellW()))
	y0 := int(math.Floor(r.Y / v.cellH()))
	x1 := int(math.Ceil(r.Right() / v.cellW()))
	y1 := int(math.Ceil(r.Bottom() / v.cellH()))
	return x0, y0 + v.Top, max(1, x1-x0), max(1, y1-y0)
}

func (v Viewport) fill(s *core.Screen, r core.Rect, ch rune, c core.Color) {
	x, y, w, h := v.RectCells(r)
	s.DrawRect(x, y, w, h, ch, c)
}

// RenderSnapshot draws one frame of the simulation into s.
func RenderSnapshot(snap game.Snapshot, s *core.Screen) {
	s.Clear()
	v := NewViewport(s.Width(), s.Height(), snap.World)

	for _, o := range snap.Obstacles {
		switch {
		case o.Ground:
			v.fill(s, o.Rect, '▓', core.ColorBrown)
		case o.Moving:
			v.fill(s, o.Rect, '▒', core.ColorBlue)
		default:
			v.fill(s, o.Rect, '█', core.ColorGray)
		}
	}

	for _, it := range snap.Items {
		if it.Active {
			v.fill(s, it.Rect, '+', core.ColorBrightGreen)
		}
		for _, p := range it.Particles {
			x, y := v.ToCell(p.Pos)
			s.Set(x, y, '·', core.ColorGreen)
		}
	}

	if !snap.Player.Hidden {
		v.fill(s, snap.Player.Rect, '█', core.ColorBrightWhite)
	}
	v.fill(s, snap.Enemy.Rect, '█', snap.Enemy.State.Color())

	for _, b := range snap.Bullets {
		c := core.ColorBrightYellow
		if b.Owner == projectile.OwnerEnemy {
			c = core.ColorBrightRed
		}
		x, y := v.ToCell(b.Rect.Center())
		s.Set(x, y, '•', c)
	}

	for _, e := range snap.Effects {
		drawEffect(s, v, e)
	}

	if snap.Debug {
		drawDebug(s, v, snap)
	}
	drawHUD(s, snap)

	if snap.Paused {
		msg := "PAUSED"
		s.DrawText((s.Width()-len(msg))/2, s.Height()/2, msg, core.ColorBrightYellow)
	}
}

func drawEffect(s *core.Screen, v Viewport, e projectile.Effect) {
	x, y := v.ToCell(e.Pos)
	s.Set(x, y, '*', e.Color)
	r := e.Radius()
	if r >= v.cellW() {
		s.Set(x-1, y, '-', e.Color)
		s.Set(x+1, y, '-', e.Color)
	}
	if r >= v.cellH() {
		s.Set(x, y-1, '|', e.Color)
		s.Set(x, y+1, '|', e.Color)
	}
}

func drawHUD(s *core.Screen, snap game.Snapshot) {
	s.DrawHLine(0, 0, s.Width(), ' ', core.ColorDefault)
	x := 0
	put := func(text string, c core.Color) {
		s.DrawText(x, 0, text, c)
		x += len([]rune(text))
	}

	p, e := snap.Player, snap.Enemy
	put("HP ", core.ColorWhite)
	put(healthBar(p.Health, p.MaxHealth, 10), core.HealthColor(p.Health, p.MaxHealth))
	put(fmt.Sprintf(" %3d  ", p.Health), core.ColorWhite)
	put("FOE ", core.ColorWhite)
	put(healthBar(e.Health, e.MaxHealth, 10), core.HealthColor(e.Health, e.MaxHealth))
	put(fmt.Sprintf(" %3d  ", e.Health), core.ColorWhite)
	put(fmt.Sprintf("SCORE %d  K%d D%d", snap.Stats.Score(), snap.Stats.Kills, snap.Stats.Deaths), core.ColorBrightYellow)
}

func healthBar(health, maxHealth, width int) string {
	if maxHealth <= 0 {
		return strings.Repeat("·", width)
	}
	filled := core.Clamp(health*width/maxHealth, 0, width)
	return strings.Repeat("█", filled) + strings.Repeat("·", width-filled)
}

func drawDebug(s *core.Screen, v Viewport, snap game.Snapshot) {
	e := snap.Enemy
	ex, ey := v.ToCell(e.Rect.Center())

	if e.State == enemy.StateSeekHealth && e.HasTarget {
		tx, ty := v.ToCell(e.Target)
		s.DrawLine(ex, ey, tx, ty, '.', core.ColorGreen)
		s.Set(tx, ty, 'x', core.ColorBrightGreen)
	}

	x, y, _, _ := v.RectCells(e.Rect)
	s.DrawText(x, y-1, e.State.String(), e.State.Color())

	info := fmt.Sprintf("t%d %s st%d cd%d sh%d item%d %d/%d b%d acc%.0f%%",
		snap.Tick, e.State, e.StateTimer, e.Cooldown, e.ShotCooldown, snap.ItemTimer,
		snap.ActiveItems, snap.ItemCap, len(snap.Bullets), snap.Stats.Accuracy()*100)
	s.DrawText(0, s.Height()-1, info, core.ColorGray)
}
