package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/gaia-snake/core"
	"github.com/lixenwraith/gaia-snake/engine"
	"github.com/lixenwraith/gaia-snake/input"
	"github.com/lixenwraith/gaia-snake/render"
	"github.com/lixenwraith/gaia-snake/status"
)

// muter is the part of *audio.Player the host toggles
type muter interface {
	Muted() bool
	SetMuted(bool)
}

// app owns the terminal side of a session: input, frames and host toggles
type app struct {
	screen   tcell.Screen
	game     *engine.Game
	renderer *render.Renderer
	machine  *input.Machine
	sound    muter // nil without audio
	reg      *status.Registry
	log      *logrus.Entry

	debug bool
}

func newApp(screen tcell.Screen, game *engine.Game, machine *input.Machine, sound muter, reg *status.Registry, log *logrus.Entry) *app {
	return &app{
		screen:   screen,
		game:     game,
		renderer: render.NewRenderer(screen),
		machine:  machine,
		sound:    sound,
		reg:      reg,
		log:      log,
	}
}

// handle processes one terminal event, returning false to quit
func (a *app) handle(ev tcell.Event) bool {
	in := a.machine.Process(ev)
	switch in.Type {
	case input.IntentNone:
		return true
	case input.IntentQuit:
		return false
	case input.IntentResize:
		a.screen.Sync()
		return true
	case input.IntentToggleDebug:
		a.debug = !a.debug
		return true
	case input.IntentToggleMute:
		if a.sound != nil {
			a.sound.SetMuted(!a.sound.Muted())
		}
		return true
	}

	res := input.Dispatch(a.game, in)
	if in.Type == input.IntentClaim {
		if res.Applied {
			a.log.WithFields(logrus.Fields{"tokens": res.Award.Tokens, "xp": res.Award.XP}).Debug("claim accepted")
		} else {
			a.log.Debug("claim rejected")
		}
	}
	return true
}

// view assembles the frame for the current session
func (a *app) view() render.View {
	snap := a.game.Snapshot()
	v := render.View{
		Snapshot:      snap,
		ClaimEligible: snap.ClaimEligible(a.game.Rules()),
		IdleInterval:  a.game.IdleInterval(),
	}
	if a.sound != nil {
		v.Muted = a.sound.Muted()
	}
	if a.debug && a.reg != nil {
		v.Debug = a.reg.Line()
	}
	return v
}

func (a *app) frame() {
	a.renderer.Draw(a.view())
}

// run polls input and redraws at frameInterval until quit or the screen closes
func (a *app) run(frameInterval time.Duration) {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)

	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	a.frame()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handle(ev) {
				return
			}
			a.frame()
		case <-ticker.C:
			a.frame()
		}
	}
}
