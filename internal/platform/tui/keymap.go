package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// quitKeys end the program from any screen.
var quitKeys = []string{"ctrl+c", "q"}

// gameBindings lists the keys for each in-game action. Order matters only
// for help text: the first key is the one shown.
var gameBindings = []struct {
	action core.Action
	keys   []string
}{
	{core.ActionMoveLeft, []string{"a", "left"}},
	{core.ActionMoveRight, []string{"d", "right"}},
	{core.ActionJump, []string{"space", " ", "w", "up", "k"}},
	{core.ActionFallThrough, []string{"s", "down"}},
	{core.ActionShoot, []string{"f", "j", "x"}},
	{core.ActionConfirm, []string{"enter"}},
	{core.ActionBack, []string{"esc", "b"}},
	{core.ActionPause, []string{"p"}},
	{core.ActionRestart, []string{"r"}},
}

var menuBindings = []struct {
	action MenuAction
	keys   []string
}{
	{MenuActionUp, []string{"up", "w", "k"}},
	{MenuActionDown, []string{"down", "s", "j"}},
	{MenuActionLeft, []string{"left", "a", "h"}},
	{MenuActionRight, []string{"right", "d", "l"}},
	{MenuActionSelect, []string{"enter", " "}},
	{MenuActionBack, []string{"esc", "b"}},
	{MenuActionScoreboard, []string{"tab"}},
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct {
	game map[string]core.Action
	menu map[string]MenuAction
	quit map[string]bool
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	km := &KeyMapper{
		game: make(map[string]core.Action),
		menu: make(map[string]MenuAction),
		quit: make(map[string]bool, len(quitKeys)),
	}
	for _, b := range gameBindings {
		for _, k := range b.keys {
			km.game[k] = b.action
		}
	}
	for _, b := range menuBindings {
		for _, k := range b.keys {
			km.menu[k] = b.action
		}
	}
	for _, k := range quitKeys {
		km.quit[k] = true
	}
	return km
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := msg.String()
	if km.quit[k] {
		return core.ActionQuit, true
	}
	if a, ok := km.game[k]; ok {
		return a, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame sets the key's action on frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// IsMove reports whether an action is horizontal movement.
func IsMove(a core.Action) bool {
	return a == core.ActionMoveLeft || a == core.ActionMoveRight
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	k := msg.String()
	if km.quit[k] {
		return MenuActionQuit
	}
	return km.menu[k]
}
