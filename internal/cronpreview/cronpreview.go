// Package cronpreview validates Windmill schedules locally and lists their
// upcoming ticks without a round trip to the server.
package cronpreview

import (
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Windmill schedules carry a leading seconds field.
var parser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ErrNoTicks is returned when the expression never fires after from.
var ErrNoTicks = errors.New("schedule never fires")

// Validate parses expr and tz without computing ticks.
func Validate(expr, tz string) error {
	_, _, err := parse(expr, tz)
	return err
}

// Next returns the next n ticks of expr strictly after from, in tz. An
// empty tz means UTC.
func Next(expr, tz string, from time.Time, n int) ([]time.Time, error) {
	if n <= 0 {
		return nil, nil
	}
	sched, loc, err := parse(expr, tz)
	if err != nil {
		return nil, err
	}
	out := make([]time.Time, 0, n)
	t := from.In(loc)
	for i := 0; i < n; i++ {
		t = sched.Next(t)
		if t.IsZero() {
			if len(out) == 0 {
				return nil, ErrNoTicks
			}
			break
		}
		out = append(out, t)
	}
	return out, nil
}

func parse(expr, tz string) (cron.Schedule, *time.Location, error) {
	loc := time.UTC
	if tz != "" {
		var err error
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return nil, nil, fmt.Errorf("loading timezone %q: %w", tz, err)
		}
	}
	sched, err := parser.Parse(expr)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing schedule %q: %w", expr, err)
	}
	return sched, loc, nil
}
