package constants

import (
	"fmt"
	"testing"
)

// TestGridBounds verifies the default board lies inside the configurable range
func TestGridBounds(t *testing.T) {
	if DefaultGridSize < MinGridSize || DefaultGridSize > MaxGridSize {
		t.Errorf("Expected DefaultGridSize in [%d, %d], got %d", MinGridSize, MaxGridSize, DefaultGridSize)
	}
	if DefaultCellWidth < MinCellWidth || DefaultCellWidth > MaxCellWidth {
		t.Errorf("Expected DefaultCellWidth in [%d, %d], got %d", MinCellWidth, MaxCellWidth, DefaultCellWidth)
	}
	if GameUpdateInterval < MinGameUpdateInterval || GameUpdateInterval > MaxGameUpdateInterval {
		t.Errorf("Expected GameUpdateInterval in [%v, %v], got %v", MinGameUpdateInterval, MaxGameUpdateInterval, GameUpdateInterval)
	}
}

// TestOverlayTextFitsMinimumBoard verifies overlay lines fit inside the smallest board
func TestOverlayTextFitsMinimumBoard(t *testing.T) {
	// At the widest cell setting overlays stay within the frame of the smallest board
	maxWidth := MinGridSize*MaxCellWidth + 2*BorderSize
	lines := []string{
		TextGameOver,
		fmt.Sprintf(TextFinalScore, 999),
		TextPaused,
	}
	for _, line := range lines {
		if len([]rune(line)) > maxWidth {
			t.Errorf("Expected %q to fit in %d columns", line, maxWidth)
		}
	}
}
