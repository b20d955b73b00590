// Package terminal is a tcell frontend for the glade: the same simulation
// and HUD model, drawn one cell per world unit.
package terminal

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Skeleton-Glade/internal/game"
)

const (
	frameInterval = 16 * time.Millisecond
	maxFrameDT    = 0.1

	// Terminals report presses, never releases. A first press is held long
	// enough to cover the keyboard's repeat delay; repeats extend it.
	firstHold  = 500 * time.Millisecond
	repeatHold = 150 * time.Millisecond

	// lookStep is the pointer motion one q/e press feeds the camera.
	lookStep = 40.0
	// lookPerCell scales right-drag motion measured in cells.
	lookPerCell = 8.0
)

var runeKeys = map[rune]string{
	'w': "w", 'a': "a", 's': "s", 'd': "d",
	' ': "space", 'i': "i",
	'1': "1", '2': "2", '3': "3", '4': "4", '5': "5", '6': "6",
}

var arrowKeys = map[tcell.Key]string{
	tcell.KeyUp:    "arrowup",
	tcell.KeyDown:  "arrowdown",
	tcell.KeyLeft:  "arrowleft",
	tcell.KeyRight: "arrowright",
}

// UI drives a game.Game from tcell events. It is also the game's pointer
// controller; a captured pointer only changes how clicks are routed.
type UI struct {
	screen tcell.Screen
	game   *game.Game
	hud    *game.HUD
	log    *slog.Logger

	held     map[string]time.Time
	buttons  map[int]time.Time
	mouse    tcell.ButtonMask
	mouseX   int
	mouseY   int
	cursor   int
	captured bool
	last     time.Time
	now      func() time.Time

	width, height int
}

// New wraps an initialised screen. The game must use the built-in HUD.
func New(screen tcell.Screen, log *slog.Logger, opts ...game.Option) (*UI, error) {
	u := &UI{
		screen:  screen,
		log:     log,
		held:    make(map[string]time.Time),
		buttons: make(map[int]time.Time),
		now:     time.Now,
	}
	opts = append(opts, game.WithLogger(log), game.WithPointer(u))
	u.game = game.New(opts...)
	u.hud = u.game.HUD()
	if u.hud == nil {
		u.game.Close()
		return nil, errors.New("terminal needs the built-in HUD presenter")
	}
	u.width, u.height = screen.Size()
	screen.EnableMouse()
	screen.HideCursor()
	return u, nil
}

func (u *UI) Game() *game.Game { return u.game }

func (u *UI) LockPointer()   { u.captured = true }
func (u *UI) UnlockPointer() { u.captured = false }

// HandleEvent applies one tcell event. It returns false once the player
// asked to leave.
func (u *UI) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		u.handleKey(ev)
	case *tcell.EventMouse:
		u.handleMouse(ev)
	case *tcell.EventResize:
		u.width, u.height = u.screen.Size()
		u.screen.Sync()
	}
	return !u.game.Quit()
}

func (u *UI) handleKey(ev *tcell.EventKey) {
	if u.hud.Panel() != game.PanelNone {
		u.menuKey(ev)
		return
	}
	switch ev.Key() {
	case tcell.KeyEscape:
		u.press("escape")
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
		u.press(arrowKeys[ev.Key()])
	case tcell.KeyRune:
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		switch r {
		case 'q':
			u.game.Input().MouseMove(-lookStep, 0)
		case 'e':
			u.game.Input().MouseMove(lookStep, 0)
		case 'j':
			u.hold(game.MousePrimary)
		case 'k':
			u.hold(game.MouseSecondary)
		default:
			if name, ok := runeKeys[r]; ok {
				u.press(name)
			}
		}
	}
}

// menuKey moves the highlighted button and activates it on enter.
func (u *UI) menuKey(ev *tcell.EventKey) {
	buttons := u.hud.PanelButtons(u.game.Settings())
	switch ev.Key() {
	case tcell.KeyUp:
		u.cursor = (u.cursor + len(buttons) - 1) % len(buttons)
	case tcell.KeyDown, tcell.KeyTab:
		u.cursor = (u.cursor + 1) % len(buttons)
	case tcell.KeyEnter:
		u.activate(buttons, u.cursor)
	case tcell.KeyEscape:
		u.press("escape")
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			u.activate(buttons, u.cursor)
		}
	}
}

func (u *UI) activate(buttons []game.MenuButton, i int) {
	if i < 0 || i >= len(buttons) {
		return
	}
	before := u.hud.Panel()
	u.game.HandleUIAction(buttons[i].Action)
	if u.hud.Panel() != before {
		u.cursor = 0
	}
}

// press marks name held until the hold window lapses.
func (u *UI) press(name string) {
	now := u.now()
	if _, ok := u.held[name]; ok {
		u.held[name] = now.Add(repeatHold)
		return
	}
	u.held[name] = now.Add(firstHold)
	u.game.Input().KeyDown(name)
}

func (u *UI) hold(button int) {
	now := u.now()
	if _, ok := u.buttons[button]; ok {
		u.buttons[button] = now.Add(repeatHold)
		return
	}
	u.buttons[button] = now.Add(firstHold)
	u.game.Input().MouseDown(button)
}

func (u *UI) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	in := u.game.Input()
	pressed := ev.Buttons()
	prev := u.mouse
	u.mouse = pressed

	if prev&tcell.Button2 != 0 && pressed&tcell.Button2 != 0 {
		in.MouseMove(float64(x-u.mouseX)*lookPerCell, float64(y-u.mouseY)*lookPerCell)
	}
	u.mouseX, u.mouseY = x, y

	for _, b := range []struct {
		mask tcell.ButtonMask
		id   int
	}{{tcell.Button1, game.MousePrimary}, {tcell.Button2, game.MouseSecondary}} {
		down, was := pressed&b.mask != 0, prev&b.mask != 0
		switch {
		case down && !was:
			if b.id == game.MousePrimary && u.click(x, y) {
				continue
			}
			in.MouseDown(b.id)
		case !down && was:
			in.MouseUp(b.id)
		}
	}
}

// click routes a primary press to menus and the item lists. It reports
// whether the press was consumed.
func (u *UI) click(x, y int) bool {
	if u.hud.Panel() != game.PanelNone {
		buttons := u.hud.PanelButtons(u.game.Settings())
		if i := hitRow(buttonRows(len(buttons), u.height), buttonWidth, u.width, x, y); i >= 0 {
			u.cursor = i
			u.activate(buttons, i)
		}
		return true
	}
	if u.hud.InventoryOpen {
		if i := hitRow(inventoryRows(len(u.hud.Inventory), u.height), inventoryWidth, u.width, x, y); i >= 0 {
			u.game.UseItem(i)
			return true
		}
	}
	if u.hud.GameUI && !u.captured && y == u.height-2 {
		if i := x / hotbarCell; i < game.HotbarSlots {
			u.game.UseItem(i)
			return true
		}
	}
	return false
}

// Tick releases lapsed keys, advances the game by dt seconds and redraws.
func (u *UI) Tick(dt float64) {
	now := u.now()
	in := u.game.Input()
	for name, until := range u.held {
		if !now.Before(until) {
			delete(u.held, name)
			in.KeyUp(name)
		}
	}
	for b, until := range u.buttons {
		if !now.Before(until) {
			delete(u.buttons, b)
			in.MouseUp(b)
		}
	}
	u.game.Update(dt)
	u.Draw()
}

// Run polls events and ticks at frame rate until ctx ends or the player
// quits.
func (u *UI) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	u.last = u.now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !u.HandleEvent(ev) {
				u.log.Info("exit requested")
				return nil
			}
		case <-ticker.C:
			now := u.now()
			dt := min(now.Sub(u.last).Seconds(), maxFrameDT)
			u.last = now
			u.Tick(dt)
			if u.game.Quit() {
				u.log.Info("exit requested")
				return nil
			}
		}
	}
}

// Close stops the game's asset work. The caller owns the screen.
func (u *UI) Close() { u.game.Close() }

var _ game.PointerController = (*UI)(nil)
