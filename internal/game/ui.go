package game

//go:generate mockgen -destination=mock/mock_presenter.go -package=gamemock github.com/Garsondee/Skeleton-Glade/internal/game Presenter

// ControlsHint is the key legend shown under the hotbar.
const ControlsHint = "WASD: Move, Space: Jump, LMB: Attack, RMB: Block, I: Inventory, 1-6: Use, ESC: Pause / Mouse"

// Presenter is the menu and HUD surface the game drives.
type Presenter interface {
	ShowMainMenu()
	HideMainMenu()
	ShowGameUI()
	HideGameUI()
	ShowPauseMenu()
	HidePauseMenu()
	ShowSettingsPanel()
	HideSettingsPanel()
	ShowGameOverScreen()
	HideGameOverScreen()
	UpdateHealth(current, max float64)
	UpdateMana(current, max float64)
	UpdateObjective(text string)
	UpdateInventoryDisplay(items []*Item)
	UpdateHotbar(items []*Item)
	// ToggleInventoryPanel flips the panel and returns whether it is now open.
	ToggleInventoryPanel() bool
	SetControlsHint(text string)
}

// UIActionKind names a button or control in the menus.
type UIActionKind int

const (
	ActionStart UIActionKind = iota
	ActionSettings
	ActionExit
	ActionResume
	ActionPauseSettings
	ActionExitToMenu
	ActionRestart
	ActionSettingsBack
	ActionSetVolume
	ActionSetSensitivity
	ActionSetShadowQuality
)

var actionNames = map[UIActionKind]string{
	ActionStart:            "start",
	ActionSettings:         "settings",
	ActionExit:             "exit",
	ActionResume:           "resume",
	ActionPauseSettings:    "pause-settings",
	ActionExitToMenu:       "exit-to-menu",
	ActionRestart:          "restart",
	ActionSettingsBack:     "settings-back",
	ActionSetVolume:        "volume",
	ActionSetSensitivity:   "sensitivity",
	ActionSetShadowQuality: "shadows",
}

func (k UIActionKind) String() string {
	if n, ok := actionNames[k]; ok {
		return n
	}
	return "unknown"
}

// UIAction is one user interaction with the menus.
type UIAction struct {
	Kind    UIActionKind
	Value   float64
	Shadows ShadowQuality
}

func Click(k UIActionKind) UIAction { return UIAction{Kind: k} }

func SetVolume(v float64) UIAction      { return UIAction{Kind: ActionSetVolume, Value: v} }
func SetSensitivity(v float64) UIAction { return UIAction{Kind: ActionSetSensitivity, Value: v} }
func SetShadowQuality(q ShadowQuality) UIAction {
	return UIAction{Kind: ActionSetShadowQuality, Shadows: q}
}

// MenuButton is a labelled action a frontend can render.
type MenuButton struct {
	Label  string
	Action UIAction
}

// Panel identifies the topmost visible menu.
type Panel int

const (
	PanelNone Panel = iota
	PanelMainMenu
	PanelPause
	PanelSettings
	PanelGameOver
)

// HUD is the in-memory Presenter every frontend renders from.
type HUD struct {
	MainMenu      bool
	GameUI        bool
	PauseMenu     bool
	Settings      bool
	GameOver      bool
	InventoryOpen bool

	Health, MaxHealth float64
	Mana, MaxMana     float64
	Objective         string
	Inventory         []*Item
	Hotbar            []*Item
	Controls          string
}

var _ Presenter = (*HUD)(nil)

func NewHUD() *HUD { return &HUD{} }

func (h *HUD) ShowMainMenu()       { h.MainMenu = true }
func (h *HUD) HideMainMenu()       { h.MainMenu = false }
func (h *HUD) ShowGameUI()         { h.GameUI = true }
func (h *HUD) ShowPauseMenu()      { h.PauseMenu = true }
func (h *HUD) HidePauseMenu()      { h.PauseMenu = false }
func (h *HUD) ShowSettingsPanel()  { h.Settings = true }
func (h *HUD) HideSettingsPanel()  { h.Settings = false }
func (h *HUD) ShowGameOverScreen() { h.GameOver = true }
func (h *HUD) HideGameOverScreen() { h.GameOver = false }

// HideGameUI also closes the inventory panel that lives inside it.
func (h *HUD) HideGameUI() {
	h.GameUI = false
	h.InventoryOpen = false
}

func (h *HUD) UpdateHealth(current, max float64)    { h.Health, h.MaxHealth = current, max }
func (h *HUD) UpdateMana(current, max float64)      { h.Mana, h.MaxMana = current, max }
func (h *HUD) UpdateObjective(text string)          { h.Objective = text }
func (h *HUD) UpdateInventoryDisplay(items []*Item) { h.Inventory = items }
func (h *HUD) UpdateHotbar(items []*Item)           { h.Hotbar = items }
func (h *HUD) SetControlsHint(text string)          { h.Controls = text }

func (h *HUD) ToggleInventoryPanel() bool {
	h.InventoryOpen = !h.InventoryOpen
	return h.InventoryOpen
}

// HealthPercent is the health bar fill in [0,100].
func (h *HUD) HealthPercent() float64 { return percent(h.Health, h.MaxHealth) }

// ManaPercent is the mana bar fill in [0,100].
func (h *HUD) ManaPercent() float64 { return percent(h.Mana, h.MaxMana) }

func percent(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return clampf(v/max*100, 0, 100)
}

// Panel is the menu a frontend should draw on top, settings first.
func (h *HUD) Panel() Panel {
	switch {
	case h.Settings:
		return PanelSettings
	case h.GameOver:
		return PanelGameOver
	case h.PauseMenu:
		return PanelPause
	case h.MainMenu:
		return PanelMainMenu
	default:
		return PanelNone
	}
}

// Buttons lists the clickable actions of the topmost panel in display order.
func (h *HUD) Buttons() []MenuButton {
	switch h.Panel() {
	case PanelMainMenu:
		return []MenuButton{
			{"Start Game", Click(ActionStart)},
			{"Settings", Click(ActionSettings)},
			{"Exit", Click(ActionExit)},
		}
	case PanelPause:
		return []MenuButton{
			{"Resume", Click(ActionResume)},
			{"Settings", Click(ActionPauseSettings)},
			{"Exit to Menu", Click(ActionExitToMenu)},
		}
	case PanelGameOver:
		return []MenuButton{
			{"Restart", Click(ActionRestart)},
			{"Exit to Menu", Click(ActionExitToMenu)},
		}
	case PanelSettings:
		return []MenuButton{
			{"Back", Click(ActionSettingsBack)},
		}
	default:
		return nil
	}
}

// PanelButtons is Buttons with the settings adjusters ahead of Back.
func (h *HUD) PanelButtons(s Settings) []MenuButton {
	b := h.Buttons()
	if h.Panel() == PanelSettings {
		return append(SettingsControls(s), b...)
	}
	return b
}
