// Package days builds the weekday letter strip shown under the graph.
package days

import "time"

// Week is the number of day labels in the strip.
const Week = 7

// Letter returns the single-letter abbreviation of the weekday.
func Letter(d time.Weekday) string {
	return d.String()[:1]
}

// Dates returns today and the n-1 preceding calendar days, oldest first.
func Dates(today time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	y, m, d := today.Date()
	out := make([]time.Time, n)
	for i := 0; i < n; i++ {
		// Calendar arithmetic, not 24h steps, so DST changes cannot skip a day.
		out[n-1-i] = time.Date(y, m, d-i, 0, 0, 0, 0, today.Location())
	}
	return out
}

// Labels returns the weekday letters for Dates(today, n).
func Labels(today time.Time, n int) []string {
	dates := Dates(today, n)
	if len(dates) == 0 {
		return nil
	}
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = Letter(d.Weekday())
	}
	return out
}
