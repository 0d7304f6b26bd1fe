package nutrition

import (
	"math"
	"time"
)

// Goal-progress status strings surfaced to the progress page. These are
// sentinels, not errors: insufficient data degrades to a neutral status.
const (
	StatusInProgress  = "in progress"
	StatusGoalMet     = "goal met"
	StatusMaintaining = "maintaining"
	StatusOffTrack    = "off track"
	StatusNoEntries   = "no weight entries"
	StatusNoGoal      = "set a goal"
)

// maintainToleranceKG is how far current weight may drift from the period's
// starting weight before a maintain goal is reported off track.
const maintainToleranceKG = 1.0

// WeightPoint is one weight log entry in a progress period.
type WeightPoint struct {
	Date     time.Time
	WeightKG float64
}

// GoalProgress is the evaluator's result: a clamped percentage and a status
// string for the progress card.
type GoalProgress struct {
	Percent int    `json:"percent"`
	Status  string `json:"status"`
}

// EvaluateGoalProgress compares the earliest and latest weights in the period
// against the target for the stated goal type.
//
// For lose and gain goals the percentage is clamped to [0, 100]; a target on
// the wrong side of the starting weight reports goal met at 100% instead of a
// misleading negative or overshooting figure. A maintain goal ignores targetKG
// entirely: it evaluates stability against the period's starting weight and is
// "maintaining" while current weight stays within 1 kg of it.
func EvaluateGoalProgress(series []WeightPoint, goalType GoalType, targetKG float64) GoalProgress {
	if goalType == "" {
		return GoalProgress{Percent: 0, Status: StatusNoGoal}
	}
	if goalType != GoalMaintainWeight && targetKG <= 0 {
		return GoalProgress{Percent: 0, Status: StatusNoGoal}
	}
	if len(series) == 0 {
		return GoalProgress{Percent: 0, Status: StatusNoEntries}
	}

	earliest, latest := series[0], series[0]
	for _, p := range series[1:] {
		if p.Date.Before(earliest.Date) {
			earliest = p
		}
		if !p.Date.Before(latest.Date) {
			latest = p
		}
	}
	initial, current := earliest.WeightKG, latest.WeightKG

	switch goalType {
	case GoalLoseWeight:
		if initial <= targetKG {
			return GoalProgress{Percent: 100, Status: StatusGoalMet}
		}
		return clampProgress((initial - current) / (initial - targetKG))

	case GoalGainWeight:
		if initial >= targetKG {
			return GoalProgress{Percent: 100, Status: StatusGoalMet}
		}
		return clampProgress((current - initial) / (targetKG - initial))

	case GoalMaintainWeight:
		drift := math.Abs(current - initial)
		if drift <= maintainToleranceKG {
			return GoalProgress{Percent: 100, Status: StatusMaintaining}
		}
		pct := roundPct(100 - drift/initial*100)
		if pct < 0 {
			pct = 0
		}
		return GoalProgress{Percent: pct, Status: StatusOffTrack}
	}

	return GoalProgress{Percent: 0, Status: StatusNoGoal}
}

// clampProgress clamps a raw completion ratio to [0, 100] percent and picks
// the status. Hitting 100 means the goal is met.
func clampProgress(ratio float64) GoalProgress {
	pct := roundPct(ratio * 100)
	if pct < 0 {
		pct = 0
	}
	if pct >= 100 {
		return GoalProgress{Percent: 100, Status: StatusGoalMet}
	}
	return GoalProgress{Percent: pct, Status: StatusInProgress}
}
