package scheduling

import (
	"sort"
	"strings"
	"time"
)

// OwnedInterval is one availability span together with its owner, detached
// from the persistence model so matching stays a pure computation.
type OwnedInterval struct {
	AvailabilityID string
	OwnerID        string
	OwnerName      string
	Start          time.Time
	End            time.Time
}

// CoversSlot is the candidate rule: the interval must contain the whole slot.
// A rushee has to be free for the entire interview, not just part of it.
func CoversSlot(iv OwnedInterval, s Slot) bool {
	return !iv.Start.After(s.Start) && !iv.End.Before(s.End)
}

// OverlapsSlot is the interviewer rule: any overlap counts. Deliberately
// looser than CoversSlot so the admin sees the widest possible pool.
func OverlapsSlot(iv OwnedInterval, s Slot) bool {
	return iv.Start.Before(s.End) && iv.End.After(s.Start)
}

// Match is the per-slot result of reconciling availabilities.
type Match struct {
	Rushees      []OwnedInterval
	Interviewers []OwnedInterval
}

// MatchSlot filters the given availabilities down to those usable for the
// slot, candidate spans by containment, interviewer spans by overlap. Both
// lists come back ordered by owner name (case-insensitive), ties by owner id.
func MatchSlot(s Slot, rusheeIntervals, interviewerIntervals []OwnedInterval) Match {
	var m Match

	for _, iv := range rusheeIntervals {
		if CoversSlot(iv, s) {
			m.Rushees = append(m.Rushees, iv)
		}
	}
	for _, iv := range interviewerIntervals {
		if OverlapsSlot(iv, s) {
			m.Interviewers = append(m.Interviewers, iv)
		}
	}

	sortByOwner(m.Rushees)
	sortByOwner(m.Interviewers)
	return m
}

func sortByOwner(ivs []OwnedInterval) {
	sort.SliceStable(ivs, func(i, j int) bool {
		a := strings.ToLower(ivs[i].OwnerName)
		b := strings.ToLower(ivs[j].OwnerName)
		if a != b {
			return a < b
		}
		return ivs[i].OwnerID < ivs[j].OwnerID
	})
}
