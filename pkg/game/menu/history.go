package menu

import (
	"fmt"
	"strings"

	"darkgrid/pkg/engine/terminal"
	"darkgrid/pkg/game/gamelog"
	"darkgrid/pkg/game/locale"
)

// RunHistory lists every recorded game, oldest first, then waits for enter.
func RunHistory(c *Console, store gamelog.Store) error {
	games, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading game log: %w", err)
	}

	c.Renderer.Clear()
	c.Renderer.ShowMessage(terminal.Center(locale.Get("HISTORY_TITLE"), terminal.GetWidth()))

	keys := games.Keys()
	if len(keys) == 0 {
		c.Renderer.ShowMessage(locale.Get("HISTORY_EMPTY"))
	}
	for _, key := range keys {
		rec := games[key]
		c.Renderer.ShowMessage(fmt.Sprintf(locale.Get("HISTORY_ROW"), key, rec.Score, strings.Join(rec.Moves, ",")))
	}

	return WaitForEnter(c)
}
