package menu

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/rs/zerolog/log"

	engineinput "darkgrid/pkg/engine/input"
	"darkgrid/pkg/engine/terminal"
	"darkgrid/pkg/engine/world"
	"darkgrid/pkg/game/devtools"
	"darkgrid/pkg/game/entities"
	"darkgrid/pkg/game/gameplay"
	"darkgrid/pkg/game/locale"
	"darkgrid/pkg/game/renderer"
)

// TerminalDriver plays a session from the keyboard.
type TerminalDriver struct {
	c *Console
}

// NewTerminalDriver creates a driver reading moves from c.
func NewTerminalDriver(c *Console) *TerminalDriver {
	return &TerminalDriver{c: c}
}

// Show renders the session after the last move.
func (d *TerminalDriver) Show(s *gameplay.Session, found entities.Kind) {
	d.c.Renderer.RenderFrame(s.Map(), s.Player(), found)
}

// ChooseMove reads keys until one maps to a legal move.
func (d *TerminalDriver) ChooseMove(s *gameplay.Session) (world.Direction, error) {
	prompt := locale.Get("MOVE_PROMPT")
	for {
		key, err := d.c.In.PromptKey(prompt)
		if err != nil {
			return world.Left, err
		}
		if dir, ok := engineinput.MapToDirection(key); ok && gameplay.CanMove(s.Map(), dir) {
			return dir, nil
		}
		log.Debug().Str("key", key).Msg("rejected move")
		prompt = terminal.ClearLine + locale.Get("MOVE_RETRY")
	}
}

// EndingFor maps a finished session's phase to the banner to show.
func EndingFor(phase gameplay.Phase) renderer.Ending {
	if phase == gameplay.OverStuck {
		return renderer.EndingStuck
	}
	return renderer.EndingDied
}

// PlayGame asks for the player's name, plays one session on a fresh map
// and records it with rec. A failed save is reported to the player and
// does not abort the game.
func PlayGame(c *Console, rng *rand.Rand, rec gameplay.Recorder) error {
	c.Renderer.Clear()
	c.Renderer.ShowMessage(locale.Get("NAME_HINT"))
	name, err := c.In.Prompt(locale.Get("NAME_PROMPT"))
	if err != nil {
		return err
	}

	session, err := gameplay.BuildGame(rng, strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("building game: %w", err)
	}
	if c.DumpDir != "" {
		path, err := devtools.DumpMapToFile(c.DumpDir, session.Map(), session.Player())
		if err != nil {
			log.Warn().Err(err).Str("dir", c.DumpDir).Msg("could not dump map")
		} else {
			log.Debug().Str("path", path).Msg("map dumped")
		}
	}

	phase, err := session.Run(NewTerminalDriver(c), rec)
	if err != nil {
		if !session.Over() {
			return err
		}
		log.Error().Err(err).Msg("could not save game")
		c.Renderer.ShowMessage(c.Renderer.StyleText(fmt.Sprintf(locale.Get("SAVE_FAILED"), err), renderer.RoleEvent))
	}

	c.Renderer.RenderGameOver(EndingFor(phase))
	return WaitForEnter(c)
}
