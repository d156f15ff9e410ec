package term

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"hop/internal/config"
	"hop/internal/jump"
)

// errQuit ends the loop on a quit key.
var errQuit = errors.New("quit")

type action int

const (
	actNone action = iota
	actCharge
	actStart
	actQuit
)

// keyAction maps a key to a command. Terminals report no key-up, so space
// toggles: the first press starts a charge, the next one jumps.
func keyAction(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit
	case tcell.KeyEnter:
		return actStart
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return actCharge
		case 'r', 'R':
			return actStart
		case 'q', 'Q':
			return actQuit
		}
	}
	return actNone
}

// apply runs one command against the game at now.
func apply(g *jump.Game, a action, now time.Time) error {
	switch a {
	case actQuit:
		return errQuit
	case actStart:
		g.Start()
	case actCharge:
		if g.State() != jump.StatePlaying {
			return nil
		}
		if _, charging := g.Charge(now); charging {
			g.Release(now)
		} else {
			g.Press(now)
		}
	}
	return nil
}

// chargeRatio is the fill of the charge bar, saturating at maxPress.
func chargeRatio(hold, maxPress float64) float64 {
	if maxPress <= 0 || hold <= 0 {
		return 0
	}
	return math.Min(hold/maxPress, 1)
}

// Run plays in the terminal until quit or ctx ends.
func Run(ctx context.Context, s config.Settings) error {
	log := s.Log.With().Str("frontend", "term").Logger()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	bus := jump.NewEventBus()
	g, err := jump.NewGame(s.Tuning, s.Seed, jump.WithLogger(s.Log), jump.WithEventBus(bus))
	if err != nil {
		screen.Fini()
		return fmt.Errorf("game: %w", err)
	}

	sounds := &Sounds{}
	if err := sounds.Init(s.Volume); err != nil {
		log.Warn().Err(err).Msg("audio init failed, continuing without sound")
	}
	defer sounds.Close()

	best := subscribe(bus, sounds, log)

	eg, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 64)

	// PollEvent returns nil once the screen is finalised.
	eg.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	eg.Go(func() error {
		defer screen.Fini()
		ticker := time.NewTicker(time.Duration(float64(time.Second) * s.Tuning.TickDT()))
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if err := apply(g, keyAction(ev), time.Now()); err != nil {
						return err
					}
				case *tcell.EventResize:
					screen.Sync()
				}
			case <-ticker.C:
				now := time.Now()
				if err := g.Tick(now); err != nil {
					return err
				}
				var ratio float64
				if hold, ok := g.Charge(now); ok {
					ratio = chargeRatio(hold, s.Tuning.MaxPressTime)
				}
				draw(screen, g.Snapshot(), *best, ratio)
			}
		}
	})

	err = eg.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// subscribe wires sounds and the session best to game events.
func subscribe(bus *jump.EventBus, sounds *Sounds, log zerolog.Logger) *int {
	best := new(int)
	bus.Subscribe(jump.EventRoundStarted, func(jump.Event) { sounds.Start() })
	bus.Subscribe(jump.EventJumped, func(jump.Event) { sounds.Jump() })
	bus.Subscribe(jump.EventLanded, func(e jump.Event) { sounds.Land(e.Precise, e.Reward) })
	bus.Subscribe(jump.EventGameOver, func(e jump.Event) {
		if e.Score > *best {
			*best = e.Score
		}
		sounds.GameOver()
		log.Info().Int("score", e.Score).Int("best", *best).Msg("round over")
	})
	return best
}
