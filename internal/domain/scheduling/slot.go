package scheduling

import (
	"time"

	"github.com/rushdesk/rush-scheduler/internal/httperr"
)

// SlotDuration is the fixed length of a bookable interview slot.
const SlotDuration = 30 * time.Minute

// Window is an interview date's bookable span, half-open [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SlotGrid enumerates the bookable slots of a window: fixed 30-minute steps
// from Start, last slot ending at or before End. Pure function of the window.
func SlotGrid(w Window) ([]Slot, error) {
	if !w.End.After(w.Start) {
		return nil, httperr.ErrConfiguration("invalid_interview_window")
	}

	var slots []Slot
	for cur := w.Start; !cur.Add(SlotDuration).After(w.End); cur = cur.Add(SlotDuration) {
		slots = append(slots, Slot{Start: cur, End: cur.Add(SlotDuration)})
	}
	return slots, nil
}

// SlotAt validates that start names a slot on the window's grid and returns
// it. Rejects starts outside the window and starts off the 30-minute raster.
func SlotAt(w Window, start time.Time) (Slot, error) {
	if !w.End.After(w.Start) {
		return Slot{}, httperr.ErrConfiguration("invalid_interview_window")
	}

	end := start.Add(SlotDuration)
	if start.Before(w.Start) || end.After(w.End) {
		return Slot{}, httperr.ErrValidation("slot_outside_window")
	}
	if start.Sub(w.Start)%SlotDuration != 0 {
		return Slot{}, httperr.ErrValidation("slot_not_aligned")
	}

	return Slot{Start: start, End: end}, nil
}
