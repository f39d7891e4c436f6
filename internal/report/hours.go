package report

import (
	"math"
	"time"

	"attendance/dashboard/internal/entity"
)

const clockLayout = "15:04"

// WorkHours is the time worked between timeIn and timeOut minus the break,
// in hours rounded to one decimal. A timeOut earlier than timeIn is taken to
// be on the next day. Missing or unreadable times yield 0.
func WorkHours(timeIn, timeOut, breakTime string) float64 {
	if timeIn == "" || timeOut == "" {
		return 0
	}

	in, err := time.Parse(clockLayout, timeIn)
	if err != nil {
		return 0
	}
	out, err := time.Parse(clockLayout, timeOut)
	if err != nil {
		return 0
	}
	if out.Before(in) {
		out = out.Add(24 * time.Hour)
	}

	worked := out.Sub(in) - clockDuration(breakTime)

	return math.Max(0, round1(worked.Hours()))
}

// AverageWorkHours is the mean of timeOut minus timeIn over the records that
// have both times, without break or overnight adjustment.
func AverageWorkHours(list []entity.Attendance) float64 {
	var (
		total float64
		n     int
	)
	for _, a := range list {
		if a.TimeIn == "" || a.TimeOut == "" {
			continue
		}
		in, err := time.Parse(clockLayout, a.TimeIn)
		if err != nil {
			continue
		}
		out, err := time.Parse(clockLayout, a.TimeOut)
		if err != nil {
			continue
		}
		total += out.Sub(in).Hours()
		n++
	}

	if n == 0 {
		return 0
	}
	return round1(total / float64(n))
}

// clockDuration reads an HH:MM duration such as a break length.
func clockDuration(s string) time.Duration {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
