package domain

import "fmt"

// DragThreshold is the horizontal offset beyond which a released card
// counts as a decision. Releases inside (-DragThreshold, +DragThreshold)
// are the dead zone: the card returns to rest and nothing is recorded.
const DragThreshold = 100.0

// dragFull is the offset at which the visual feedback saturates
const dragFull = 150.0

// ClassifyDrag maps a release offset to a decision. The boolean is
// false for dead-zone releases. "maybe" is never reachable by drag,
// only by its explicit button.
func ClassifyDrag(offset float64) (Decision, bool) {
	switch {
	case offset > DragThreshold:
		return DecisionLike, true
	case offset < -DragThreshold:
		return DecisionDislike, true
	}
	return "", false
}

// DragRotation returns the card rotation in degrees for an offset,
// clamped to ±15.
func DragRotation(offset float64) float64 {
	deg := offset / 10
	if deg > 15 {
		return 15
	}
	if deg < -15 {
		return -15
	}
	return deg
}

// DragOpacity fades the card from 1.0 at rest down to 0.5 at full drag
func DragOpacity(offset float64) float64 {
	frac := abs(offset) / (2 * dragFull)
	if frac > 0.5 {
		frac = 0.5
	}
	return 1 - frac
}

// Reject and accept tint endpoints, with white at rest
var (
	tintReject = [3]int{239, 68, 68}
	tintAccept = [3]int{34, 197, 94}
	tintRest   = [3]int{255, 255, 255}
)

// DragTint interpolates the card background between the reject color at
// large negative offset, white at rest and the accept color at large
// positive offset. Returns a hex color like "#ff8080".
func DragTint(offset float64) string {
	target := tintAccept
	if offset < 0 {
		target = tintReject
	}

	t := abs(offset) / dragFull
	if t > 1 {
		t = 1
	}

	var c [3]int
	for i := range c {
		c[i] = tintRest[i] + int(t*float64(target[i]-tintRest[i]))
	}
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
