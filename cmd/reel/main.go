// cmd/reel/main.go
package main

import (
	"fmt"
	stlog "log" // standard log for fatal errors before the logger is ready
	"os"

	"github.com/bethropolis/reel/internal/config"
	"github.com/bethropolis/reel/internal/core"
	"github.com/bethropolis/reel/internal/event"
	"github.com/bethropolis/reel/internal/logger"
	"github.com/bethropolis/reel/internal/script"
	"github.com/bethropolis/reel/internal/types"
)

func main() {
	// --- Argument & Flag Parsing ---
	flags := &config.Flags{}
	args := flags.ParseFlags()
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <script.yaml>\n", config.AppName)
		os.Exit(2)
	}
	scriptPath := args[0]

	cfg, err := config.LoadConfig(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Logger Initialization ---
	logOut := os.Stderr
	if path := cfg.Logger.LogFilePath; path != "" && path != "-" {
		logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			stlog.Fatalf("Failed to open log file '%s': %v", path, err)
		}
		defer logFile.Close()
		logOut = logFile
	}
	logger.Init(cfg.Logger.Level(), logOut)
	logger.Infof("Starting %s replay", config.AppName)
	logger.Debugf("Script path: %s", scriptPath)

	// --- Script & Engine ---
	scr, err := script.Load(scriptPath)
	if err != nil {
		logger.Errorf("Error loading script: %v", err)
		os.Exit(1)
	}

	engine := core.NewEngine(scr.Initial, nil, *flags.Verbose)
	engine.SetDisplayBase(cfg.Engine.DisplayBase)
	engine.SetTabWidth(cfg.Engine.TabWidth)
	engine.SetSystemClipboard(cfg.Engine.SystemClipboard)

	events := event.NewManager()
	if *flags.Verbose {
		events.Subscribe(event.TypeActionApplied, func(e event.Event) bool {
			data := e.Data.(event.ActionAppliedData)
			logger.Debugf("Applied [%d] %s %q", data.Index, data.Action.Kind, data.Action.Value)
			return false
		})
	}
	engine.SetEventManager(events)

	engine.ApplyActions(scr.Records())

	// --- Frame Dump ---
	for _, frame := range engine.Frames() {
		fmt.Printf("step=%d action=%s caret=%d:%d", frame.Index, frame.Action.Kind, frame.Caret.Row, frame.Caret.Col)
		if frame.Anchor != types.NoPosition {
			fmt.Printf(" anchor=%d:%d highlighted=%q", frame.Anchor.Row, frame.Anchor.Col, frame.Highlighted)
		}
		if frame.Caption.Speech != "" {
			fmt.Printf(" caption[%s]=%q", frame.Caption.Speech, frame.Caption.Text)
		}
		fmt.Printf("\n%s\n", frame.Text)
	}

	logger.Infof("Replay finished: %d steps", len(engine.Actions()))
}
