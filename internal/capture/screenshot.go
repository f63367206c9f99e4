package capture

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/term-racer/internal/core"
)

// ErrScreenshotsDisabled is returned by WriteScreenshot without a directory.
var ErrScreenshotsDisabled = errors.New("capture: screenshots disabled")

// WriteScreenshot saves s as plain text in dir and returns the file path.
// Files are named <scenario>_<timestamp>_<tick>.txt.
func WriteScreenshot(dir, scenarioID string, tick int, s *core.Screen) (string, error) {
	if dir == "" {
		return "", ErrScreenshotsDisabled
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("capture: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s_%05d.txt", scenarioID, timestamp, tick))
	if err := os.WriteFile(path, []byte(s.String()), 0o600); err != nil {
		return "", fmt.Errorf("capture: cannot write screenshot: %w", err)
	}
	return path, nil
}
