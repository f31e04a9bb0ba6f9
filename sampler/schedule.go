package sampler

import "github.com/katalvlaran/tsbngen/dbn"

// Schedule maps step indices of one series to phases:
//
//	step 0                       → Initial
//	1 ≤ step < Switch            → Recurring
//	Switch ≤ step < Length       → SecondaryRecurring (if configured)
//
// Without a secondary phase, Recurring governs every step after 0. The
// schedule is identical for all series of a run.
type Schedule struct {
	Length    int  // steps per series
	Switch    int  // first SecondaryRecurring step
	Secondary bool // whether SecondaryRecurring is configured
}

// NewSchedule builds the schedule for series of the given length. The
// switch point is switchTime when non-zero, else maxLag, and never below 1.
func NewSchedule(length, switchTime, maxLag int, secondary bool) Schedule {
	return Schedule{
		Length:    length,
		Switch:    switchPoint(switchTime, maxLag),
		Secondary: secondary,
	}
}

// PhaseAt returns the phase governing step.
func (s Schedule) PhaseAt(step int) dbn.Phase {
	switch {
	case step <= 0:
		return dbn.Initial
	case s.Secondary && step >= s.Switch:
		return dbn.SecondaryRecurring
	default:
		return dbn.Recurring
	}
}

// Steps returns how many steps each phase governs, indexed by phase.
func (s Schedule) Steps() map[dbn.Phase]int {
	out := make(map[dbn.Phase]int, len(dbn.Phases))
	for step := 0; step < s.Length; step++ {
		out[s.PhaseAt(step)]++
	}

	return out
}

func switchPoint(switchTime, maxLag int) int {
	sw := maxLag
	if switchTime != 0 {
		sw = switchTime
	}
	if sw < 1 {
		sw = 1
	}

	return sw
}
