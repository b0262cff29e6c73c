// Package window derives the publication interval a digest covers.
package window

import (
	"errors"
	"time"

	"github.com/mats16/daily-aws-news/internal/domain"
)

// day is the arithmetic unit; every boundary sits on a UTC midnight.
const day = 24 * time.Hour

// Window is the half-open publication interval (Oldest, Latest] together
// with its locale display text.
type Window struct {
	Oldest  time.Time
	Latest  time.Time
	Display string
}

// Compute derives the publication window for an execution instant.
//
// Latest starts as the UTC midnight at or after execTime, Oldest one day
// earlier. The weekday of Latest then widens the window so announcements
// made over the weekend land in the first run that follows them: a Saturday
// boundary stretches forward through Monday, a Sunday boundary widens one
// day on both sides, and a Monday boundary reaches back to Friday. The
// Sunday and Monday adjustments are intentionally asymmetric; mirroring
// them would cover Saturday twice on consecutive runs.
func Compute(execTime time.Time, lang domain.Language) Window {
	t := execTime.UTC()
	latest := t.Truncate(day)
	if latest.Before(t) {
		latest = latest.Add(day)
	}
	oldest := latest.Add(-day)

	switch latest.Weekday() {
	case time.Saturday:
		latest = latest.Add(2 * day)
	case time.Sunday:
		latest = latest.Add(day)
		oldest = oldest.Add(-day)
	case time.Monday:
		oldest = oldest.Add(-2 * day)
	}

	return Window{
		Oldest:  oldest,
		Latest:  latest,
		Display: display(oldest, latest, lang),
	}
}

// Contains reports whether t falls inside the interval. The lower bound is
// exclusive, the upper bound inclusive.
func (w Window) Contains(t time.Time) bool {
	return t.After(w.Oldest) && !t.After(w.Latest)
}

// Validate guards the ordering invariant every downstream filter relies on.
func (w Window) Validate() error {
	if !w.Oldest.Before(w.Latest) {
		return errors.New("window: oldest boundary is not before latest")
	}
	return nil
}

func display(oldest, latest time.Time, lang domain.Language) string {
	loc := lang.Location()
	layout := lang.DateLayout()
	return oldest.In(loc).Format(layout) + " ~ " + latest.In(loc).Format(layout) + " (" + lang.ZoneLabel() + ")"
}
