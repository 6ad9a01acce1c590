package fftplan

import (
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/algo-fftplan/internal/planlock"
)

// Wisdom is the engine's record of which strategies measured fastest. It
// lets later processes plan with RigorMeasure or above without measuring
// again. The text format belongs to the engine.

// ImportWisdom merges wisdom from a file written by ExportWisdom.
func ImportWisdom(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open wisdom file: %w", err)
	}

	defer f.Close()

	err = planlock.Run(func() error { return currentEngine().ImportWisdom(f) })
	if err != nil {
		return fmt.Errorf("failed to import wisdom: %w", err)
	}

	return nil
}

// ImportWisdomFromString merges wisdom from s.
func ImportWisdomFromString(s string) error {
	err := planlock.Run(func() error { return currentEngine().ImportWisdom(strings.NewReader(s)) })
	if err != nil {
		return fmt.Errorf("failed to import wisdom: %w", err)
	}

	return nil
}

// ExportWisdom writes the accumulated wisdom to a file.
func ExportWisdom(filename string) error {
	s, err := ExportWisdomToString()
	if err != nil {
		return err
	}

	if err := os.WriteFile(filename, []byte(s), 0o644); err != nil {
		return fmt.Errorf("failed to write wisdom file: %w", err)
	}

	return nil
}

// ExportWisdomToString returns the accumulated wisdom.
func ExportWisdomToString() (string, error) {
	var b strings.Builder

	err := planlock.Run(func() error { return currentEngine().ExportWisdom(&b) })
	if err != nil {
		return "", fmt.Errorf("failed to export wisdom: %w", err)
	}

	return b.String(), nil
}

// ForgetWisdom discards all accumulated wisdom.
func ForgetWisdom() {
	planlock.Do(currentEngine().ForgetWisdom)
}
