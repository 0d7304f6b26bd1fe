package nutrition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSumDayFiltersByCalendarDay(t *testing.T) {
	target := day(2024, time.March, 10)
	entries := []MacroEntry{
		{Date: target, Calories: 400, Protein: 30, Carbs: 40, Fat: 10},
		{Date: target.Add(18 * time.Hour), Calories: 600, Protein: 20, Carbs: 60, Fat: 20},
		{Date: day(2024, time.March, 11), Calories: 999, Protein: 99, Carbs: 99, Fat: 99},
	}

	totals := SumDay(entries, target)
	assert.Equal(t, 1000.0, totals.Calories)
	assert.Equal(t, 50.0, totals.Protein)
	assert.Equal(t, 100.0, totals.Carbs)
	assert.Equal(t, 30.0, totals.Fat)
}

func TestSumRangeInclusiveBounds(t *testing.T) {
	entries := []MacroEntry{
		{Date: day(2024, time.March, 1), Calories: 100},
		{Date: day(2024, time.March, 5), Calories: 200},
		{Date: day(2024, time.March, 7), Calories: 400},
		{Date: day(2024, time.March, 8), Calories: 800},
	}

	totals := SumRange(entries, day(2024, time.March, 1), day(2024, time.March, 7))
	assert.Equal(t, 700.0, totals.Calories)
}

// Known-value scenario: protein=50g, carbs=50g, fat=20g.
// macroCal = 50*4 + 50*4 + 20*9 = 580; protein% = round(200/580*100) = 34,
// carbs% = 34, fat% = round(180/580*100) = 31. Sum is 99, within the +/-1
// rounding tolerance.
func TestMacroPercentsKnownValue(t *testing.T) {
	totals := Totals{Protein: 50, Carbs: 50, Fat: 20}
	p := totals.Percents()
	assert.Equal(t, MacroPercents{Protein: 34, Carbs: 34, Fat: 31}, p)
	assert.InDelta(t, 100, p.Protein+p.Carbs+p.Fat, 1)
}

func TestMacroPercentsSumNear100(t *testing.T) {
	cases := []Totals{
		{Protein: 120, Carbs: 250, Fat: 70},
		{Protein: 1, Carbs: 1, Fat: 1},
		{Protein: 0, Carbs: 300, Fat: 0},
		{Protein: 80.5, Carbs: 10.2, Fat: 33.3},
	}
	for _, totals := range cases {
		p := totals.Percents()
		assert.InDelta(t, 100, p.Protein+p.Carbs+p.Fat, 1)
	}
}

func TestMacroPercentsZeroGuard(t *testing.T) {
	p := Totals{Calories: 50}.Percents() // calories logged but no macros
	assert.Equal(t, MacroPercents{}, p)
}

// Known-value scenario: 1000ml against a 2000ml goal is 50%, displayed as
// round(1000*0.033814) = 34 oz.
func TestWaterProgressKnownValue(t *testing.T) {
	assert.Equal(t, 50, ProgressPercent(1000, 2000))
	assert.Equal(t, 34, MLToOz(1000))
}

func TestProgressPercentClampAndGuard(t *testing.T) {
	assert.Equal(t, 100, ProgressPercent(2500, 2000))
	assert.Equal(t, 0, ProgressPercent(500, 0))
	assert.Equal(t, 0, ProgressPercent(0, 2000))
	assert.Equal(t, 83, ProgressPercent(1666, 2000))
}

func TestUnitRoundTrip(t *testing.T) {
	assert.InDelta(t, 70.0, LbsToKg(KgToLbs(70)), 1e-9)
	assert.InDelta(t, 81.65, LbsToKg(180), 0.01)
}
