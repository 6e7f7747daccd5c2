package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"

	"github.com/golangdaddy/junkyard/pkg/assets"
	"github.com/golangdaddy/junkyard/pkg/audio"
	"github.com/golangdaddy/junkyard/pkg/background"
	"github.com/golangdaddy/junkyard/pkg/config"
	"github.com/golangdaddy/junkyard/pkg/game"
	"github.com/golangdaddy/junkyard/pkg/logging"
	"github.com/golangdaddy/junkyard/pkg/models/part"
	"github.com/golangdaddy/junkyard/pkg/render"
	"github.com/golangdaddy/junkyard/pkg/rng"
	"github.com/golangdaddy/junkyard/pkg/synth"
	"github.com/golangdaddy/junkyard/pkg/telemetry"
)

func main() {
	configDir := "."
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	boot := logging.New(logging.Config{Pretty: true})
	if err := config.Load(configDir); err != nil {
		boot.Fatal().Err(err).Str("dir", configDir).Msg("failed to load config")
	}
	log := logging.New(logging.Config{
		Level:  config.GetString("log.level"),
		Pretty: config.GetBool("log.pretty"),
	})

	tuning, err := config.LoadTuning()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid tuning")
	}

	metrics, err := telemetry.Global(config.GetBool("telemetry.enabled"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create metrics")
	}

	seed := config.GetInt64("seed")
	src := rng.New(seed)

	sampleRate := config.GetInt("audio.sampleRate")
	actx := ebitenaudio.NewContext(sampleRate)
	backend := audio.NewEbitenBackend(actx, logging.Component(log, "audio"))

	library := assets.NewLibrary()
	loader := assets.NewLoader(config.GetString("assets.dir"), sampleRate, library, logging.Component(log, "assets"))
	sounds := audio.NewSamplePlayer(backend, library, logging.Component(log, "audio"))

	machine := game.NewMachine(game.Deps{
		Tuning:  tuning,
		Catalog: part.DefaultCatalog(),
		Rand:    src,
		Sounds:  sounds,
		Engine:  engineSound(backend, sounds, log),
		Loader:  loader,
		PerTick: config.GetInt("assets.perTick"),
		Metrics: metrics,
		Log:     logging.Component(log, "game"),
	})

	surface := render.NewEbitenSurface(library, background.NewCache(seed))
	g := game.NewGame(machine, surface, nil, metrics)

	scale := config.GetInt("window.scale")
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(tuning.ScreenWidth*scale, tuning.ScreenHeight*scale)
	ebiten.SetWindowTitle(config.GetString("window.title"))

	log.Info().
		Str("assets", loader.Dir).
		Int("sampleRate", sampleRate).
		Int64("seed", seed).
		Msg("starting")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("game loop failed")
	}
}

// engineSound picks the synthesized engine, or the looped hot rod sample
// when synthesis is switched off.
func engineSound(backend *audio.EbitenBackend, sounds audio.Player, log zerolog.Logger) game.EngineSound {
	if !config.GetBool("audio.synth") {
		return audio.LoopEngine{Player: sounds, Sound: "hotrod"}
	}
	return synth.NewEngine(backend.SampleRate(), backend, logging.Component(log, "synth"))
}
