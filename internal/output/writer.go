package output

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
)

// FormatScore renders a similarity score with exactly two fractional digits,
// rounding half up so output is reproducible across platforms.
func FormatScore(score float64) string {
	rounded := math.Floor(score*100+0.5) / 100
	return strconv.FormatFloat(rounded, 'f', 2, 64)
}

// Write writes content as the entire file at path, creating missing parent
// directories and overwriting any existing content.
func Write(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
