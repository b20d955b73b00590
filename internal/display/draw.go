package display

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Skeleton-Glade/internal/game"
)

const (
	pixelsPerUnit = 14.0
	inventoryCols = 6
	feedLines     = 6
)

var (
	colBackground = color.RGBA{R: 12, G: 14, B: 12, A: 255}
	colGround     = color.RGBA{R: 34, G: 52, B: 30, A: 255}
	colBorder     = color.RGBA{R: 65, G: 90, B: 65, A: 255}
	colGrass      = color.RGBA{R: 58, G: 96, B: 44, A: 255}
	colCanopy     = color.RGBA{R: 22, G: 70, B: 30, A: 255}
	colTrunk      = color.RGBA{R: 80, G: 56, B: 34, A: 255}
	colPlayer     = color.RGBA{R: 70, G: 120, B: 220, A: 255}
	colBone       = color.RGBA{R: 220, G: 214, B: 190, A: 255}
	colCorpse     = color.RGBA{R: 110, G: 104, B: 92, A: 255}
	colFlash      = color.RGBA{R: 255, G: 40, B: 40, A: 255}
	colHealth     = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	colMana       = color.RGBA{R: 50, G: 90, B: 220, A: 255}
	colPanel      = color.RGBA{R: 6, G: 10, B: 6, A: 210}
	colPanelEdge  = color.RGBA{R: 60, G: 100, B: 60, A: 180}
	colText       = color.RGBA{R: 225, G: 230, B: 220, A: 255}
	colDim        = color.RGBA{R: 150, G: 160, B: 150, A: 255}
)

func (a *App) view() view {
	v := view{
		center: Vec2{float64(a.width) / 2, float64(a.height) / 2},
		scale:  pixelsPerUnit,
	}
	if a.game.State() == game.StateMenu {
		// slow turn around the glade centre
		v.phi = a.game.Clock() * 0.05
		v.scale = pixelsPerUnit * 0.6
		return v
	}
	v.focus = a.game.Player().Pos
	v.phi = a.game.Camera().Phi
	return v
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colGround)
	v := a.view()
	a.drawWorld(screen, v)
	a.drawEffects(screen, v)

	if a.hud.GameUI {
		a.drawHUD(screen)
	}
	if a.hud.InventoryOpen {
		a.drawInventory(screen)
	}
	if a.hud.Panel() != game.PanelNone {
		a.drawPanel(screen)
	}
}

func (a *App) drawWorld(screen *ebiten.Image, v view) {
	env := a.game.Env()
	he := env.HalfExtent()
	corners := [4]Vec2{
		v.project(game.Vec3{-he, 0, -he}),
		v.project(game.Vec3{he, 0, -he}),
		v.project(game.Vec3{he, 0, he}),
		v.project(game.Vec3{-he, 0, he}),
	}
	for i, c := range corners {
		n := corners[(i+1)%4]
		vector.StrokeLine(screen, float32(c.X), float32(c.Y), float32(n.X), float32(n.Y), 2, colBorder, false)
	}

	for _, g := range env.Grass() {
		p := v.project(g.Pos)
		vector.FillRect(screen, float32(p.X), float32(p.Y), 1.5, 1.5, colGrass, false)
	}

	if p := a.game.Player(); p.Visible {
		a.drawPlayer(screen, v, p)
	}
	for _, e := range a.game.Enemies() {
		if e.Visible && !e.Removed() {
			a.drawEnemy(screen, v, e)
		}
	}

	// canopies last so they cover anything walking underneath
	for _, t := range env.Trees() {
		p := v.project(t.Pos)
		r := float32(t.Radius * v.scale)
		vector.FillCircle(screen, float32(p.X), float32(p.Y), r*0.5, colTrunk, true)
		vector.FillCircle(screen, float32(p.X), float32(p.Y), r*1.6*float32(t.Scale), withAlpha(colCanopy, 200), true)
	}
}

func (a *App) drawPlayer(screen *ebiten.Image, v view, p *game.Player) {
	at := v.project(p.Pos)
	r := float32(p.Radius() * v.scale)
	// airborne bodies draw larger
	r *= float32(1 + p.Pos[1]*0.08)
	x, y := float32(at.X), float32(at.Y)

	col := colPlayer
	if !p.Alive() {
		col = colCorpse
	}
	vector.FillCircle(screen, x, y, r, col, true)
	if p.Defending() {
		vector.StrokeCircle(screen, x, y, r+4, 2, colBone, true)
	}

	facing := v.screenYaw(p.Yaw)
	reach := float32(a.game.Tuning().Player.AttackRange * v.scale)
	half := a.game.Tuning().Player.AttackAngleDeg * math.Pi / 360
	if p.Attacking() {
		for _, off := range []float64{-half, half} {
			ex := x + reach*float32(math.Cos(facing+off))
			ey := y + reach*float32(math.Sin(facing+off))
			vector.StrokeLine(screen, x, y, ex, ey, 1, withAlpha(colText, 160), true)
		}
	}
	vector.StrokeLine(screen, x, y, x+r*1.6*float32(math.Cos(facing)), y+r*1.6*float32(math.Sin(facing)), 2, colText, true)
}

func (a *App) drawEnemy(screen *ebiten.Image, v view, e *game.Enemy) {
	at := v.project(e.Pos)
	x, y := float32(at.X), float32(at.Y)
	r := float32(e.Radius() * v.scale)

	col := colBone
	switch {
	case !e.Alive():
		col = colCorpse
	case e.Flashing():
		col = colFlash
	}
	vector.FillCircle(screen, x, y, r, col, true)
	if e.Attacking() {
		vector.StrokeCircle(screen, x, y, r+3, 1.5, colFlash, true)
	}
	if !e.Alive() {
		return
	}
	facing := v.screenYaw(e.Yaw)
	vector.StrokeLine(screen, x, y, x+r*1.5*float32(math.Cos(facing)), y+r*1.5*float32(math.Sin(facing)), 2, colBackground, true)

	if e.Health() < e.MaxHealth() {
		w := r * 2
		frac := float32(e.Health() / e.MaxHealth())
		vector.FillRect(screen, x-w/2, y-r-7, w, 3, withAlpha(colBackground, 200), false)
		vector.FillRect(screen, x-w/2, y-r-7, w*frac, 3, colHealth, false)
	}
}

func (a *App) drawEffects(screen *ebiten.Image, v view) {
	for _, fx := range a.game.Effects() {
		var base color.RGBA
		size := 0.5
		switch fx.Kind() {
		case game.EffectSmoke:
			base = color.RGBA{R: 170, G: 170, B: 170, A: 255}
			size = 1.0
		case game.EffectSparkle:
			base = color.RGBA{R: 255, G: 215, B: 80, A: 255}
			size = 0.15
		case game.EffectMenuDrift:
			if a.game.State() != game.StateMenu {
				continue
			}
			base = color.RGBA{R: 230, G: 230, B: 210, A: 255}
			size = 0.12
		}
		for _, p := range fx.Particles() {
			if p.Opacity <= 0 {
				continue
			}
			at := v.project(p.Pos)
			r := float32(math.Max(1, p.Scale*size*v.scale))
			vector.FillCircle(screen, float32(at.X), float32(at.Y), r, withAlpha(base, uint8(p.Opacity*255)), true)
		}
	}
}

func (a *App) drawHUD(screen *ebiten.Image) {
	h := a.hud
	a.drawBar(screen, 16, 16, 220, 18, h.HealthPercent(), colHealth, fmt.Sprintf("HP %.0f/%.0f", h.Health, h.MaxHealth))
	a.drawBar(screen, 16, 40, 220, 18, h.ManaPercent(), colMana, fmt.Sprintf("MP %.0f/%.0f", h.Mana, h.MaxMana))

	if h.Objective != "" {
		w := text.Advance(h.Objective, a.face)
		drawText(screen, h.Objective, a.face, float64(a.width)/2-w/2, 16, colText)
	}

	for i, r := range hotbarLayout(a.width, a.height) {
		var it *game.Item
		if i < len(h.Hotbar) {
			it = h.Hotbar[i]
		}
		a.drawSlot(screen, r, it, fmt.Sprint(i+1))
	}
	drawText(screen, h.Controls, a.small, 16, float64(a.height)-24, colDim)

	for i, e := range a.game.Feed().Last(feedLines) {
		drawText(screen, e.String(), a.small, float64(a.width)-300, 16+float64(i)*16, colDim)
	}
}

func (a *App) drawBar(screen *ebiten.Image, x, y, w, h float32, pct float64, fill color.RGBA, label string) {
	vector.FillRect(screen, x, y, w, h, colPanel, false)
	vector.FillRect(screen, x, y, w*float32(pct/100), h, fill, false)
	vector.StrokeRect(screen, x, y, w, h, 1, colPanelEdge, false)
	drawText(screen, label, a.small, float64(x)+6, float64(y)+2, colText)
}

func (a *App) drawSlot(screen *ebiten.Image, r image.Rectangle, it *game.Item, key string) {
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())
	vector.FillRect(screen, x, y, w, h, colPanel, false)
	vector.StrokeRect(screen, x, y, w, h, 1, colPanelEdge, false)
	if key != "" {
		drawText(screen, key, a.small, float64(x)+3, float64(y)+2, colDim)
	}
	if it == nil {
		return
	}
	vector.FillCircle(screen, x+w/2, y+h/2, w/4, colHealth, true)
	if it.Quantity > 1 {
		q := fmt.Sprint(it.Quantity)
		drawText(screen, q, a.small, float64(x+w)-text.Advance(q, a.small)-4, float64(y+h)-16, colText)
	}
}

func (a *App) drawInventory(screen *ebiten.Image) {
	rects := inventoryLayout(len(a.hud.Inventory), inventoryCols, a.width, a.height)
	if len(rects) == 0 {
		return
	}
	frame := rects[0].Union(rects[len(rects)-1]).Inset(-14)
	vector.FillRect(screen, float32(frame.Min.X), float32(frame.Min.Y-20), float32(frame.Dx()), float32(frame.Dy()+20), colPanel, false)
	vector.StrokeRect(screen, float32(frame.Min.X), float32(frame.Min.Y-20), float32(frame.Dx()), float32(frame.Dy()+20), 1, colPanelEdge, false)
	drawText(screen, "Inventory", a.face, float64(frame.Min.X)+8, float64(frame.Min.Y)-16, colText)
	for i, r := range rects {
		a.drawSlot(screen, r, a.hud.Inventory[i], "")
	}
}

var panelTitles = map[game.Panel]string{
	game.PanelMainMenu: "Skeleton Glade",
	game.PanelPause:    "Paused",
	game.PanelSettings: "Settings",
	game.PanelGameOver: "Game Over",
}

func (a *App) drawPanel(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(a.width), float32(a.height), color.RGBA{A: 120}, false)

	buttons := a.hud.PanelButtons(a.game.Settings())
	rects := buttonLayout(len(buttons), a.width, a.height)
	title := panelTitles[a.hud.Panel()]
	tw := text.Advance(title, a.title)
	drawText(screen, title, a.title, float64(a.width)/2-tw/2, float64(rects[0].Min.Y)-70, colText)

	mx, my := ebiten.CursorPosition()
	for i, r := range rects {
		bg := colPanel
		if image.Pt(mx, my).In(r) {
			bg = color.RGBA{R: 30, G: 60, B: 30, A: 230}
		}
		x, y := float32(r.Min.X), float32(r.Min.Y)
		vector.FillRect(screen, x, y, float32(r.Dx()), float32(r.Dy()), bg, false)
		vector.StrokeRect(screen, x, y, float32(r.Dx()), float32(r.Dy()), 1, colPanelEdge, false)
		label := buttons[i].Label
		lw := text.Advance(label, a.face)
		drawText(screen, label, a.face, float64(r.Min.X)+float64(r.Dx())/2-lw/2, float64(r.Min.Y)+10, colText)
	}
}

func drawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	// premultiplied
	f := float64(a) / 255
	return color.RGBA{R: uint8(float64(c.R) * f), G: uint8(float64(c.G) * f), B: uint8(float64(c.B) * f), A: a}
}
