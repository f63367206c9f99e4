package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term-racer/internal/capture"
	"github.com/vovakirdan/term-racer/internal/storage"
)

var (
	flagFrames int
	flagStep   int
	flagSize   string
)

var captureCmd = &cobra.Command{
	Use:   "capture <scenario>",
	Short: "Record rendered frames into the capture archive",
	Long: `Render frames of a scenario without a terminal and store them, with a
SHA-256 digest of every frame, in the capture database.

Frames are rendered at ticks 0, step, 2*step, ... The default size is the
current terminal size, or 80x24 when there is no terminal.

Examples:
  racer capture highway
  racer capture city --frames 120 --step 5
  racer capture split --size 160x48`,
	Args: cobra.ExactArgs(1),
	RunE: runCapture,
}

func init() {
	captureCmd.Flags().IntVar(&flagFrames, "frames", 60, "Number of frames to record")
	captureCmd.Flags().IntVar(&flagStep, "step", 1, "Ticks between recorded frames")
	captureCmd.Flags().StringVar(&flagSize, "size", "", "Frame size as WxH (default: terminal size)")
}

func runCapture(_ *cobra.Command, args []string) error {
	sc, err := findScenario(args[0])
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if flagSize != "" {
		if width, height, err = capture.ParseSize(flagSize); err != nil {
			return err
		}
	} else if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	frames, err := capture.Record(&sc, capture.Options{
		Frames: flagFrames,
		Step:   flagStep,
		Width:  width,
		Height: height,
	})
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	runID := capture.NewRunID()
	if err := store.SaveRun(runID, frames); err != nil {
		return err
	}

	logger.Info("run recorded", "run", runID, "scenario", sc.ID, "frames", len(frames), "size", fmt.Sprintf("%dx%d", width, height))
	fmt.Println(runID)
	return nil
}

// openStore opens the configured capture database.
func openStore() (*storage.Store, error) {
	return storage.Open(cfg.Storage.DBPath)
}
