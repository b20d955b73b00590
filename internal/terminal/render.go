package terminal

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Skeleton-Glade/internal/game"
)

const (
	buttonWidth    = 24
	inventoryWidth = 30
	hotbarCell     = 8
	feedLines      = 4
)

var (
	styleGround  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(50, 80, 45))
	styleBorder  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 120, 90))
	styleTree    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(40, 140, 60))
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 140, 240)).Bold(true)
	styleBone    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(225, 220, 195))
	styleCorpse  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(110, 104, 92))
	styleFlash   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleSmoke   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(160, 160, 160))
	styleSparkle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHealth  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleMana    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleButton  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleFocus   = styleButton.Reverse(true)
)

// view maps the ground plane to cells, one cell per world unit, with the
// camera's forward pointing up the screen.
type view struct {
	cx, cy int
	focus  game.Vec3
	phi    float64
}

func (v view) cell(p game.Vec3) (int, int) {
	dx, dz := p[0]-v.focus[0], p[2]-v.focus[2]
	sin, cos := math.Sincos(v.phi)
	right := dx*cos - dz*sin
	up := -dx*sin - dz*cos
	return v.cx + int(math.Round(right)), v.cy - int(math.Round(up))
}

// facingRune is the arrow for a yaw as seen on screen.
func (v view) facingRune(yaw float64) rune {
	f := game.YawForward(yaw)
	sin, cos := math.Sincos(v.phi)
	right := f[0]*cos - f[2]*sin
	up := -f[0]*sin - f[2]*cos
	if math.Abs(right) > math.Abs(up) {
		if right > 0 {
			return '>'
		}
		return '<'
	}
	if up > 0 {
		return '^'
	}
	return 'v'
}

func (u *UI) view() view {
	v := view{cx: u.width / 2, cy: u.height / 2}
	if u.game.State() == game.StateMenu {
		v.phi = u.game.Clock() * 0.05
		return v
	}
	v.focus = u.game.Player().Pos
	v.phi = u.game.Camera().Phi
	return v
}

// Draw renders one frame and shows it.
func (u *UI) Draw() {
	u.screen.Clear()
	v := u.view()
	u.drawWorld(v)
	u.drawEffects(v)
	if u.hud.GameUI {
		u.drawHUD()
	}
	if u.hud.InventoryOpen {
		u.drawInventory()
	}
	if u.hud.Panel() != game.PanelNone {
		u.drawPanel()
	}
	u.screen.Show()
}

func (u *UI) set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= u.width || y >= u.height {
		return
	}
	u.screen.SetContent(x, y, r, nil, style)
}

func (u *UI) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		u.set(x, y, r, style)
		x++
	}
}

func (u *UI) drawWorld(v view) {
	env := u.game.Env()
	he := env.HalfExtent()
	for t := -he; t <= he; t++ {
		for _, p := range []game.Vec3{{t, 0, -he}, {t, 0, he}, {-he, 0, t}, {he, 0, t}} {
			x, y := v.cell(p)
			u.set(x, y, '#', styleBorder)
		}
	}
	for _, g := range env.Grass() {
		x, y := v.cell(g.Pos)
		u.set(x, y, ',', styleGround)
	}
	for _, t := range env.Trees() {
		x, y := v.cell(t.Pos)
		u.set(x, y, '♣', styleTree)
	}
	for _, e := range u.game.Enemies() {
		if !e.Visible || e.Removed() {
			continue
		}
		x, y := v.cell(e.Pos)
		switch {
		case !e.Alive():
			u.set(x, y, 'x', styleCorpse)
		case e.Flashing():
			u.set(x, y, 'S', styleFlash)
		case e.Attacking():
			u.set(x, y, 'S', styleBone.Reverse(true))
		default:
			u.set(x, y, 'S', styleBone)
		}
	}
	if p := u.game.Player(); p.Visible {
		x, y := v.cell(p.Pos)
		switch {
		case !p.Alive():
			u.set(x, y, '%', styleCorpse)
		case p.Defending():
			u.set(x, y, '@', stylePlayer.Reverse(true))
		default:
			u.set(x, y, '@', stylePlayer)
		}
		if p.Alive() {
			ax, ay := v.cell(p.Pos.Add(game.YawForward(p.Yaw)))
			if p.Attacking() {
				u.set(ax, ay, '/', styleText)
			} else {
				u.set(ax, ay, v.facingRune(p.Yaw), styleDim)
			}
		}
	}
}

func (u *UI) drawEffects(v view) {
	for _, fx := range u.game.Effects() {
		var r rune
		var style tcell.Style
		switch fx.Kind() {
		case game.EffectSmoke:
			r, style = '░', styleSmoke
		case game.EffectSparkle:
			r, style = '*', styleSparkle
		case game.EffectMenuDrift:
			if u.game.State() != game.StateMenu {
				continue
			}
			r, style = '.', styleDim
		default:
			continue
		}
		for _, p := range fx.Particles() {
			if p.Opacity <= 0.2 {
				continue
			}
			x, y := v.cell(p.Pos)
			u.set(x, y, r, style)
		}
	}
}

func (u *UI) drawHUD() {
	h := u.hud
	u.bar(1, 0, "HP", h.HealthPercent(), fmt.Sprintf("%.0f/%.0f", h.Health, h.MaxHealth), styleHealth)
	u.bar(1, 1, "MP", h.ManaPercent(), fmt.Sprintf("%.0f/%.0f", h.Mana, h.MaxMana), styleMana)
	if h.Objective != "" {
		u.text(u.width/2-len(h.Objective)/2, 0, h.Objective, styleText)
	}
	for i, e := range u.game.Feed().Last(feedLines) {
		s := e.String()
		u.text(u.width-len(s)-1, 2+i, s, styleDim)
	}
	for i := 0; i < game.HotbarSlots; i++ {
		label := fmt.Sprintf("[%d    ]", i+1)
		if i < len(h.Hotbar) && h.Hotbar[i] != nil {
			it := h.Hotbar[i]
			label = fmt.Sprintf("[%d %-2.2s%2d]", i+1, it.Name, it.Quantity)
		}
		u.text(i*hotbarCell, u.height-2, label, styleText)
	}
	u.text(0, u.height-1, h.Controls, styleDim)
}

func (u *UI) bar(x, y int, label string, pct float64, value string, style tcell.Style) {
	const width = 20
	filled := int(math.Round(pct / 100 * width))
	u.text(x, y, label, styleText)
	for i := 0; i < width; i++ {
		r := '·'
		if i < filled {
			r = '█'
		}
		u.set(x+3+i, y, r, style)
	}
	u.text(x+4+width, y, value, styleText)
}

func (u *UI) drawInventory() {
	rows := inventoryRows(len(u.hud.Inventory), u.height)
	if len(rows) == 0 {
		return
	}
	x := u.width/2 - inventoryWidth/2
	u.text(x, rows[0]-1, "Inventory", styleText)
	for i, it := range u.hud.Inventory {
		label := fmt.Sprintf("%2d  -", i+1)
		if it != nil {
			label = fmt.Sprintf("%2d  %s x%d", i+1, it.Name, it.Quantity)
		}
		u.text(x, rows[i], fmt.Sprintf("%-*s", inventoryWidth, label), styleButton)
	}
}

var panelTitles = map[game.Panel]string{
	game.PanelMainMenu: "SKELETON GLADE",
	game.PanelPause:    "Paused",
	game.PanelSettings: "Settings",
	game.PanelGameOver: "GAME OVER",
}

func (u *UI) drawPanel() {
	buttons := u.hud.PanelButtons(u.game.Settings())
	rows := buttonRows(len(buttons), u.height)
	if u.cursor >= len(buttons) {
		u.cursor = 0
	}
	title := panelTitles[u.hud.Panel()]
	u.text(u.width/2-len(title)/2, rows[0]-2, title, styleText.Bold(true))
	x := u.width/2 - buttonWidth/2
	for i, b := range buttons {
		style := styleButton
		if i == u.cursor {
			style = styleFocus
		}
		pad := (buttonWidth - len(b.Label)) / 2
		u.text(x, rows[i], fmt.Sprintf("%*s%-*s", pad, "", buttonWidth-pad, b.Label), style)
	}
}

// buttonRows are the screen rows of n stacked menu buttons.
func buttonRows(n, h int) []int {
	out := make([]int, n)
	y := h/2 - n/2 + 1
	for i := range out {
		out[i] = y + i
	}
	return out
}

func inventoryRows(n, h int) []int {
	out := make([]int, n)
	y := h/2 - n/2
	for i := range out {
		out[i] = y + i
	}
	return out
}

// hitRow returns the index of the row at y when x falls inside the centred
// column of the given width, or -1.
func hitRow(rows []int, width, screenW, x, y int) int {
	left := screenW/2 - width/2
	if x < left || x >= left+width {
		return -1
	}
	for i, r := range rows {
		if r == y {
			return i
		}
	}
	return -1
}
