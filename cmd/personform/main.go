package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"

	"github.com/lixenwraith/personform/audio"
	"github.com/lixenwraith/personform/config"
	"github.com/lixenwraith/personform/core"
	"github.com/lixenwraith/personform/engine"
	"github.com/lixenwraith/personform/event"
	"github.com/lixenwraith/personform/field"
	"github.com/lixenwraith/personform/form"
	"github.com/lixenwraith/personform/gui"
	"github.com/lixenwraith/personform/parameter"
	"github.com/lixenwraith/personform/person"
	"github.com/lixenwraith/personform/status"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML config file")
	debugFlag  = flag.Bool("debug", false, "Write logs to "+parameter.LogDir+"/"+parameter.LogFileName)
	fpsFlag    = flag.Int("fps", 0, "Frames per second, 0 keeps the configured interval")
	soundFlag  = flag.Bool("sound", true, "Play feedback tones")
)

func main() {
	flag.Parse()

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "personform needs an interactive terminal")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	core.SetCrashCleanup(screen.Fini)

	// Panic Recovery: terminal is restored before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()

	var player audio.Player = audio.Silent{}
	if cfg.Sound {
		if bp, err := audio.NewBeepPlayer(); err == nil {
			defer bp.Close()
			player = bp
		} else {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		}
	}

	app := newApp(cfg.Person.NewPerson(), player, nil)
	log.Printf("declared: %s", event.RegistryOf(app.World))

	term := gui.NewTerminal(screen, gui.DefaultPalette())
	engine.MustGetResource[*gui.Resource](app.World.Resources).Ctx = term

	run(app, term, screen, cfg.FrameInterval)
	log.Printf("session: %s", engine.MustGetResource[*status.Counters](app.World.Resources))
}

// newApp wires the plugins around a person record
func newApp(p *person.Person, player audio.Player, roll field.Roll) *engine.App {
	app := engine.NewApp()
	engine.InsertResource(app, p)
	engine.InsertResource(app, &gui.Resource{})
	engine.InsertResource(app, status.NewCounters())
	app.AddPlugins(
		audio.Plugin{Player: player},
		field.Plugin{Roll: roll},
		form.Plugin{},
	)
	return app
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	// Flags override the file when given explicitly
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "sound":
			cfg.Sound = *soundFlag
		case "fps":
			if *fpsFlag > 0 {
				cfg.FrameInterval = time.Second / time.Duration(*fpsFlag)
			}
		}
	})
	return cfg, cfg.Validate()
}

// run drives frames until a quit key arrives or the screen closes
func run(app *engine.App, term *gui.Terminal, screen tcell.Screen, interval time.Duration) {
	eventChan := make(chan tcell.Event, parameter.InputChannelSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(interval)
	defer frameTicker.Stop()

	var (
		pending   []gui.Input
		mouseDown bool
	)
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			// Only the press edge of the primary button counts as a click
			if m, isMouse := ev.(*tcell.EventMouse); isMouse {
				down := m.Buttons()&tcell.Button1 != 0
				wasDown := mouseDown
				mouseDown = down
				if !down || wasDown {
					continue
				}
			}
			in, ok := gui.Translate(ev)
			if !ok {
				continue
			}
			if in.Key == gui.KeyQuit {
				return
			}
			pending = append(pending, in)

		case <-frameTicker.C:
			term.BeginFrame(pending)
			pending = pending[:0]
			app.Frame()
			term.EndFrame()
		}
	}
}
