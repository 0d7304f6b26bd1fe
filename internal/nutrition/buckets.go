package nutrition

import "time"

// WaterEntry is a single hydration log record. CreatedAt is the logging
// timestamp used for bucketing, stored in UTC.
type WaterEntry struct {
	AmountML  float64
	CreatedAt time.Time
}

// BucketFill is one hour-range bucket of the hydration chart.
type BucketFill struct {
	Label     string  `json:"label"`
	StartHour int     `json:"start_hour"`
	EndHour   int     `json:"end_hour"`
	TotalML   float64 `json:"total_ml"`
	Percent   int     `json:"percent"`
}

// waterBuckets are the six fixed three-hour windows of the hydration chart,
// spanning 06:00 to midnight. Entries before 06:00 are not shown.
var waterBuckets = []BucketFill{
	{Label: "6am - 9am", StartHour: 6, EndHour: 9},
	{Label: "9am - 12pm", StartHour: 9, EndHour: 12},
	{Label: "12pm - 3pm", StartHour: 12, EndHour: 15},
	{Label: "3pm - 6pm", StartHour: 15, EndHour: 18},
	{Label: "6pm - 9pm", StartHour: 18, EndHour: 21},
	{Label: "9pm - 12am", StartHour: 21, EndHour: 24},
}

// BucketWaterByTime assigns each entry to the bucket where
// start <= hour < end, sums millilitres per bucket, and computes each
// bucket's fill against the daily goal (clamped at 100, zero goal yields 0).
//
// The hour is extracted in loc; timestamps are stored in UTC, so callers pass
// the timezone the user logs in. A nil loc means UTC.
func BucketWaterByTime(entries []WaterEntry, goalML float64, loc *time.Location) []BucketFill {
	if loc == nil {
		loc = time.UTC
	}

	out := make([]BucketFill, len(waterBuckets))
	copy(out, waterBuckets)

	for _, e := range entries {
		hour := e.CreatedAt.In(loc).Hour()
		for i := range out {
			if hour >= out[i].StartHour && hour < out[i].EndHour {
				out[i].TotalML += e.AmountML
				break
			}
		}
	}

	for i := range out {
		out[i].Percent = ProgressPercent(out[i].TotalML, goalML)
	}
	return out
}
