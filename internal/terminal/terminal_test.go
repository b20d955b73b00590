package terminal

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Skeleton-Glade/internal/game"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time           { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestUI(t *testing.T) (*UI, tcell.SimulationScreen, *fakeClock) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	u, err := New(screen, slog.New(slog.NewTextHandler(io.Discard, nil)), game.WithSeed(3))
	require.NoError(t, err)
	t.Cleanup(u.Close)

	clock := &fakeClock{t: time.Unix(1000, 0)}
	u.now = clock.now
	return u, screen, clock
}

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }
func char(r rune) *tcell.EventKey     { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestUI_Enter_Starts_Game(t *testing.T) {
	u, _, _ := newTestUI(t)
	require.Equal(t, game.StateMenu, u.game.State())

	assert.True(t, u.HandleEvent(key(tcell.KeyEnter)))
	assert.Equal(t, game.StatePlaying, u.game.State())
	assert.True(t, u.captured, "start captures the pointer")
}

func TestUI_CtrlC_Quits(t *testing.T) {
	u, _, _ := newTestUI(t)
	assert.False(t, u.HandleEvent(key(tcell.KeyCtrlC)))
}

func TestUI_Menu_Exit_Quits(t *testing.T) {
	u, _, _ := newTestUI(t)
	u.HandleEvent(key(tcell.KeyUp)) // wraps to Exit
	assert.False(t, u.HandleEvent(key(tcell.KeyEnter)))
	assert.True(t, u.game.Quit())
}

func TestUI_Held_Key_Expires(t *testing.T) {
	u, _, clock := newTestUI(t)
	u.HandleEvent(key(tcell.KeyEnter))

	u.HandleEvent(char('W'))
	assert.True(t, u.game.Input().Snapshot().Key("w"))

	clock.advance(firstHold - time.Millisecond)
	u.Tick(1.0 / 60)
	assert.True(t, u.game.Input().Snapshot().Key("w"))

	// a repeat extends the hold
	u.HandleEvent(char('w'))
	clock.advance(repeatHold - time.Millisecond)
	u.Tick(1.0 / 60)
	assert.True(t, u.game.Input().Snapshot().Key("w"))

	clock.advance(2 * time.Millisecond)
	u.Tick(1.0 / 60)
	assert.False(t, u.game.Input().Snapshot().Key("w"))
}

func TestUI_Attack_Key_Holds_Primary(t *testing.T) {
	u, _, clock := newTestUI(t)
	u.HandleEvent(key(tcell.KeyEnter))

	u.HandleEvent(char('j'))
	assert.Equal(t, game.MousePrimary, u.game.Input().Snapshot().MouseButton)
	clock.advance(firstHold)
	u.Tick(1.0 / 60)
	assert.Equal(t, game.MouseNone, u.game.Input().Snapshot().MouseButton)
}

func TestUI_Escape_Pauses_And_Resumes(t *testing.T) {
	u, _, clock := newTestUI(t)
	u.HandleEvent(key(tcell.KeyEnter))

	u.HandleEvent(key(tcell.KeyEscape))
	u.Tick(1.0 / 60)
	require.Equal(t, game.StatePaused, u.game.State())
	assert.Equal(t, game.PanelPause, u.hud.Panel())

	clock.advance(firstHold)
	u.Tick(1.0 / 60)
	u.HandleEvent(key(tcell.KeyEscape))
	u.Tick(1.0 / 60)
	assert.Equal(t, game.StatePlaying, u.game.State())
}

func TestUI_Settings_Adjusters(t *testing.T) {
	u, _, _ := newTestUI(t)
	u.HandleEvent(key(tcell.KeyDown))
	u.HandleEvent(key(tcell.KeyEnter))
	require.Equal(t, game.PanelSettings, u.hud.Panel())
	assert.Zero(t, u.cursor, "cursor resets on a new panel")

	before := u.game.Settings().Volume
	u.HandleEvent(key(tcell.KeyEnter)) // Volume -
	assert.InDelta(t, before-0.1, u.game.Settings().Volume, 1e-9)
	assert.Equal(t, game.PanelSettings, u.hud.Panel())
}

func TestUI_Mouse_Click_Activates_Button(t *testing.T) {
	u, _, _ := newTestUI(t)
	rows := buttonRows(3, u.height)

	u.HandleEvent(tcell.NewEventMouse(u.width/2, rows[0], tcell.Button1, tcell.ModNone))
	u.HandleEvent(tcell.NewEventMouse(u.width/2, rows[0], tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, game.StatePlaying, u.game.State())
	assert.Equal(t, game.MouseNone, u.game.Input().Snapshot().MouseButton, "menu clicks never reach the game")
}

func TestUI_Draw_Centres_Player(t *testing.T) {
	u, screen, _ := newTestUI(t)
	u.HandleEvent(key(tcell.KeyEnter))
	u.Tick(1.0 / 60)

	r, _, _, _ := screen.GetContent(u.width/2, u.height/2)
	assert.Equal(t, '@', r)

	r, _, _, _ = screen.GetContent(1, 0)
	assert.Equal(t, 'H', r, "health bar label")
}

func TestUI_Draw_Menu_Highlights_Cursor(t *testing.T) {
	u, screen, _ := newTestUI(t)
	u.HandleEvent(key(tcell.KeyDown))
	u.Draw()

	rows := buttonRows(3, u.height)
	_, _, focused, _ := screen.GetContent(u.width/2, rows[1])
	_, _, plain, _ := screen.GetContent(u.width/2, rows[0])
	assert.Equal(t, styleFocus, focused)
	assert.Equal(t, styleButton, plain)
}

func TestView_Cell_Forward_Is_Up(t *testing.T) {
	v := view{cx: 40, cy: 12}
	x, y := v.cell(game.Vec3{0, 0, -3})
	assert.Equal(t, 40, x)
	assert.Equal(t, 9, y)
	x, _ = v.cell(game.Vec3{2, 0, 0})
	assert.Equal(t, 42, x)
	assert.Equal(t, '^', v.facingRune(3.14159))
}

func TestHitRow(t *testing.T) {
	rows := buttonRows(4, 24)
	assert.Equal(t, 2, hitRow(rows, buttonWidth, 80, 40, rows[2]))
	assert.Equal(t, -1, hitRow(rows, buttonWidth, 80, 2, rows[2]))
	assert.Equal(t, -1, hitRow(rows, buttonWidth, 80, 40, 0))
}
