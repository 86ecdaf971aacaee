package menu

import (
	"darkgrid/pkg/game/locale"
)

// MainMenuAction represents the action type for main menu items.
type MainMenuAction int

const (
	MainMenuActionPlay MainMenuAction = iota
	MainMenuActionSettings
	MainMenuActionHistory
	MainMenuActionExit
)

// MainMenuItem represents a menu item in the main menu.
type MainMenuItem struct {
	Label  string
	Action MainMenuAction
}

// GetLabel returns the display label for this menu item.
func (m *MainMenuItem) GetLabel() string {
	return m.Label
}

// GetMainMenuItems returns the main menu items in display order.
func GetMainMenuItems() []MenuItem {
	return []MenuItem{
		&MainMenuItem{Label: locale.Get("MENU_PLAY"), Action: MainMenuActionPlay},
		&MainMenuItem{Label: locale.Get("MENU_SETTINGS"), Action: MainMenuActionSettings},
		&MainMenuItem{Label: locale.Get("MENU_HISTORY"), Action: MainMenuActionHistory},
		&MainMenuItem{Label: locale.Get("MENU_EXIT"), Action: MainMenuActionExit},
	}
}

// RunMainMenu shows the main menu and returns the chosen action.
func RunMainMenu(c *Console) (MainMenuAction, error) {
	items := GetMainMenuItems()
	index, err := RunMenu(c, locale.Get("TITLE"), items)
	if err != nil {
		return MainMenuActionExit, err
	}
	return items[index].(*MainMenuItem).Action, nil
}
