package nutrition

import "time"

// Macro kcal-per-gram weights.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// MacroEntry is a single logged food record as the aggregator sees it. The
// date is calendar-day granularity; the time component is ignored.
type MacroEntry struct {
	Date     time.Time
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
	Sugar    float64
	Sodium   float64
}

// Totals is the sum of all macro fields over a set of entries.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

// MacroPercents is each macro's share of total macro calories, rounded.
type MacroPercents struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// sameDay reports whether two times fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SumDay sums the entries logged on the given calendar day.
func SumDay(entries []MacroEntry, day time.Time) Totals {
	var t Totals
	for _, e := range entries {
		if !sameDay(e.Date, day) {
			continue
		}
		t.add(e)
	}
	return t
}

// SumRange sums the entries whose date falls within [from, to], inclusive on
// both ends, compared at calendar-day granularity.
func SumRange(entries []MacroEntry, from, to time.Time) Totals {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	lo := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	hi := time.Date(ty, tm, td, 23, 59, 59, 0, time.UTC)

	var t Totals
	for _, e := range entries {
		ey, em, ed := e.Date.Date()
		d := time.Date(ey, em, ed, 12, 0, 0, 0, time.UTC)
		if d.Before(lo) || d.After(hi) {
			continue
		}
		t.add(e)
	}
	return t
}

func (t *Totals) add(e MacroEntry) {
	t.Calories += e.Calories
	t.Protein += e.Protein
	t.Carbs += e.Carbs
	t.Fat += e.Fat
	t.Fiber += e.Fiber
	t.Sugar += e.Sugar
	t.Sodium += e.Sodium
}

// Percents computes each macro's percentage of total macro calories using the
// 4/4/9 kcal-per-gram weights. All three are 0 when no macros were logged,
// guarding the zero denominator.
func (t Totals) Percents() MacroPercents {
	macroCal := t.Protein*kcalPerGramProtein + t.Carbs*kcalPerGramCarbs + t.Fat*kcalPerGramFat
	if macroCal == 0 {
		return MacroPercents{}
	}
	return MacroPercents{
		Protein: roundPct(t.Protein * kcalPerGramProtein / macroCal * 100),
		Carbs:   roundPct(t.Carbs * kcalPerGramCarbs / macroCal * 100),
		Fat:     roundPct(t.Fat * kcalPerGramFat / macroCal * 100),
	}
}

// ProgressPercent is the fill level of any goal-relative bar: consumed over
// goal, rounded, clamped at 100. A zero or negative goal yields 0 rather than
// a division by zero.
func ProgressPercent(consumed, goal float64) int {
	if goal <= 0 {
		return 0
	}
	pct := roundPct(consumed / goal * 100)
	if pct > 100 {
		return 100
	}
	return pct
}
