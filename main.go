package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/beka-birhanu/maze-garden/collectible"
	"github.com/beka-birhanu/maze-garden/config"
	"github.com/beka-birhanu/maze-garden/game"
	"github.com/beka-birhanu/maze-garden/maze"
	"github.com/gdamore/tcell/v2"
)

// Global variables for dependencies
var (
	logOutput  io.Writer = io.Discard
	appLogger  *log.Logger
	rng        maze.Rand
	placer     *collectible.Placer
	session    *game.Session
	screen     tcell.Screen
	soundboard *sounds
)

func newLogger(name, color string, w io.Writer) *log.Logger {
	return log.New(w, fmt.Sprintf("%s[%s]%s ", color, name, config.ColorReset), log.LstdFlags)
}

func initLogging() {
	if config.Envs.LogFile != "" {
		f, err := os.OpenFile(config.Envs.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Opening log file: %v\n", err)
			os.Exit(1)
		}
		logOutput = f
	}
	appLogger = newLogger("APP", config.ColorGreen, logOutput)
}

func initPlacer() {
	rng = maze.NewRand(config.Envs.Seed)

	var err error
	placer, err = collectible.NewPlacer(config.Envs.Rules(), rng)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Creating collectible placer: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Collectible placer initialized", config.LogInfoColor, config.LogColorReset)
}

func initSession() {
	var err error
	session, err = game.NewSession(game.Config{
		Sizing: game.SizePolicy{
			Base: config.Envs.MazeBaseSize,
			Step: config.Envs.MazeSizeStep,
			Max:  config.Envs.MazeMaxSize,
		},
		MazeFactory: game.NewMazeFactory(rng),
		Placer:      placer,
		Scheme:      game.ParseControlScheme(config.Envs.ControlScheme),
		Logger:      newLogger("SESSION", config.ColorCyan, logOutput),
	})
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Creating game session: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Game session initialized", config.LogInfoColor, config.LogColorReset)
}

func initScreen() {
	var err error
	screen, err = tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Terminal initialized", config.LogInfoColor, config.LogColorReset)
}

func initSound() {
	soundboard = &sounds{}
	if !config.Envs.Sound {
		return
	}
	// Non-fatal, the game runs fine without sound.
	if err := soundboard.init(); err != nil {
		appLogger.Printf("%s[ERROR]%s Audio initialization failed: %v", config.LogErrorColor, config.LogColorReset, err)
		return
	}
	appLogger.Printf("%s[INFO]%s Audio initialized", config.LogInfoColor, config.LogColorReset)
}

func main() {
	initLogging()
	initPlacer()
	initSession()
	initSound()
	defer soundboard.close()
	initScreen()

	ui := newClient(screen, session, soundboard)
	ui.run()
	screen.Fini()

	st := session.Snapshot()
	fmt.Printf("Reached level %d with %d points (%d stars, %d coins, %d hearts)\n",
		st.Level, st.Score.Total, st.Score.Stars, st.Score.Coins, st.Score.Hearts)
}
