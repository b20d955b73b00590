// Package display is the ebiten desktop frontend: a top-down view of the
// glade with the HUD and menus drawn over it.
package display

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Garsondee/Skeleton-Glade/internal/game"
)

const maxFrameDT = 0.1

// keyNames maps the polled ebiten keys to the game's key names.
var keyNames = map[ebiten.Key]string{
	ebiten.KeyW:          "w",
	ebiten.KeyA:          "a",
	ebiten.KeyS:          "s",
	ebiten.KeyD:          "d",
	ebiten.KeyArrowUp:    "arrowup",
	ebiten.KeyArrowDown:  "arrowdown",
	ebiten.KeyArrowLeft:  "arrowleft",
	ebiten.KeyArrowRight: "arrowright",
	ebiten.KeySpace:      "space",
	ebiten.KeyEscape:     "escape",
	ebiten.KeyI:          "i",
	ebiten.Key1:          "1",
	ebiten.Key2:          "2",
	ebiten.Key3:          "3",
	ebiten.Key4:          "4",
	ebiten.Key5:          "5",
	ebiten.Key6:          "6",
}

var mouseButtons = map[ebiten.MouseButton]int{
	ebiten.MouseButtonLeft:  game.MousePrimary,
	ebiten.MouseButtonRight: game.MouseSecondary,
}

// App runs a game.Game inside ebiten. It is also the game's pointer
// controller.
type App struct {
	game *game.Game
	hud  *game.HUD
	log  *slog.Logger

	width, height int
	face          *text.GoTextFace
	small         *text.GoTextFace
	title         *text.GoTextFace

	prevKeys    map[ebiten.Key]bool
	prevButtons map[ebiten.MouseButton]bool
	cursorX     int
	cursorY     int
	captured    bool
	last        time.Time
}

// NewApp builds the game with the App as its pointer controller. The game
// must use the built-in HUD presenter.
func NewApp(log *slog.Logger, opts ...game.Option) (*App, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load HUD font: %w", err)
	}
	a := &App{
		log:         log,
		width:       1280,
		height:      800,
		face:        &text.GoTextFace{Source: src, Size: 16},
		small:       &text.GoTextFace{Source: src, Size: 12},
		title:       &text.GoTextFace{Source: src, Size: 36},
		prevKeys:    make(map[ebiten.Key]bool),
		prevButtons: make(map[ebiten.MouseButton]bool),
	}
	opts = append(opts, game.WithLogger(log), game.WithPointer(a))
	a.game = game.New(opts...)
	a.hud = a.game.HUD()
	if a.hud == nil {
		a.game.Close()
		return nil, errors.New("display needs the built-in HUD presenter")
	}
	return a, nil
}

func (a *App) Game() *game.Game { return a.game }

func (a *App) LockPointer() {
	a.captured = true
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
}

func (a *App) UnlockPointer() {
	a.captured = false
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

func (a *App) Update() error {
	now := time.Now()
	dt := 1.0 / 60
	if !a.last.IsZero() {
		dt = min(now.Sub(a.last).Seconds(), maxFrameDT)
	}
	a.last = now

	a.handleKeys()
	a.handleMouse()
	a.game.Update(dt)

	if a.game.Quit() {
		a.log.Info("exit requested")
		a.game.Close()
		return ebiten.Termination
	}
	return nil
}

func (a *App) handleKeys() {
	in := a.game.Input()
	currentKeys := make(map[ebiten.Key]bool, len(keyNames))
	for k, name := range keyNames {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		switch {
		case currentKeys[k] && !a.prevKeys[k]:
			in.KeyDown(name)
		case !currentKeys[k] && a.prevKeys[k]:
			in.KeyUp(name)
		}
	}
	a.prevKeys = currentKeys
}

func (a *App) handleMouse() {
	in := a.game.Input()
	x, y := ebiten.CursorPosition()
	in.MouseMove(float64(x-a.cursorX), float64(y-a.cursorY))
	a.cursorX, a.cursorY = x, y

	for b, id := range mouseButtons {
		down := ebiten.IsMouseButtonPressed(b)
		was := a.prevButtons[b]
		a.prevButtons[b] = down
		switch {
		case down && !was:
			if id == game.MousePrimary && a.click(x, y) {
				continue
			}
			in.MouseDown(id)
		case !down && was:
			in.MouseUp(id)
		}
	}
}

// click routes a primary press to menus and the inventory grid. It reports
// whether the press was consumed.
func (a *App) click(x, y int) bool {
	if a.hud.Panel() != game.PanelNone {
		buttons := a.hud.PanelButtons(a.game.Settings())
		if i := hit(buttonLayout(len(buttons), a.width, a.height), x, y); i >= 0 {
			a.game.HandleUIAction(buttons[i].Action)
		}
		return true
	}
	if a.hud.InventoryOpen {
		if i := hit(inventoryLayout(len(a.hud.Inventory), inventoryCols, a.width, a.height), x, y); i >= 0 {
			a.game.UseItem(i)
			return true
		}
	}
	if a.hud.GameUI && !a.captured {
		if i := hit(hotbarLayout(a.width, a.height), x, y); i >= 0 {
			a.game.UseItem(i)
			return true
		}
	}
	return false
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.width, a.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Close releases the game's asset goroutines.
func (a *App) Close() { a.game.Close() }

var _ ebiten.Game = (*App)(nil)
var _ game.PointerController = (*App)(nil)
