package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDrag(t *testing.T) {
	tests := []struct {
		name             string
		offset           float64
		expectedDecision Decision
		expectedOK       bool
	}{
		{
			name:             "far right is like",
			offset:           150,
			expectedDecision: DecisionLike,
			expectedOK:       true,
		},
		{
			name:             "far left is dislike",
			offset:           -150,
			expectedDecision: DecisionDislike,
			expectedOK:       true,
		},
		{
			name:       "small right offset is dead zone",
			offset:     50,
			expectedOK: false,
		},
		{
			name:       "small left offset is dead zone",
			offset:     -50,
			expectedOK: false,
		},
		{
			name:       "rest position is dead zone",
			offset:     0,
			expectedOK: false,
		},
		{
			name:       "exactly at positive threshold is dead zone",
			offset:     DragThreshold,
			expectedOK: false,
		},
		{
			name:       "exactly at negative threshold is dead zone",
			offset:     -DragThreshold,
			expectedOK: false,
		},
		{
			name:             "just past positive threshold is like",
			offset:           DragThreshold + 1,
			expectedDecision: DecisionLike,
			expectedOK:       true,
		},
		{
			name:             "just past negative threshold is dislike",
			offset:           -DragThreshold - 1,
			expectedDecision: DecisionDislike,
			expectedOK:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, ok := ClassifyDrag(tt.offset)

			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expectedDecision, decision)
			}
		})
	}
}

func TestDragRotation(t *testing.T) {
	tests := []struct {
		name     string
		offset   float64
		expected float64
	}{
		{name: "rest", offset: 0, expected: 0},
		{name: "moderate right", offset: 50, expected: 5},
		{name: "moderate left", offset: -50, expected: -5},
		{name: "clamped right", offset: 500, expected: 15},
		{name: "clamped left", offset: -500, expected: -15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, DragRotation(tt.offset), 0.001)
		})
	}
}

func TestDragOpacity(t *testing.T) {
	tests := []struct {
		name     string
		offset   float64
		expected float64
	}{
		{name: "fully opaque at rest", offset: 0, expected: 1},
		{name: "fades while dragging", offset: 150, expected: 0.5},
		{name: "fades symmetrically", offset: -150, expected: 0.5},
		{name: "never below half", offset: 1000, expected: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, DragOpacity(tt.offset), 0.001)
		})
	}
}

func TestDragTint(t *testing.T) {
	tests := []struct {
		name     string
		offset   float64
		expected string
	}{
		{name: "white at rest", offset: 0, expected: "#ffffff"},
		{name: "accept color saturates right", offset: 150, expected: "#22c55e"},
		{name: "reject color saturates left", offset: -150, expected: "#ef4444"},
		{name: "clamped past full right", offset: 400, expected: "#22c55e"},
		{name: "clamped past full left", offset: -400, expected: "#ef4444"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DragTint(tt.offset))
		})
	}
}

func TestDragTint_Interpolates(t *testing.T) {
	// Halfway toward accept should be strictly between white and green
	halfway := DragTint(75)
	assert.NotEqual(t, "#ffffff", halfway)
	assert.NotEqual(t, "#22c55e", halfway)
}
