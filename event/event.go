package event

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

var (
	ErrStartAfterEnd  = errors.New("event start time is after end time")
	ErrUnsetTime      = errors.New("unset event start or end time")
	ErrNoEventName    = errors.New("no event name")
	ErrUnknownHoliday = errors.New("unknown holiday")
)

// Event is a span of time [Start, End) attributed to a named occurrence of a holiday.
type Event struct {
	Name  string
	Start time.Time
	End   time.Time
}

func NewEvent(name string, start, end time.Time) Event {
	return Event{
		Name:  name,
		Start: start,
		End:   end,
	}
}

func (e *Event) Valid() error {
	if e.Start.IsZero() || e.End.IsZero() {
		return ErrUnsetTime
	}
	if e.Start.After(e.End) {
		return ErrStartAfterEnd
	}
	if e.Name == "" {
		return ErrNoEventName
	}
	return nil
}

// Contains reports whether t falls in the event span.
func (e *Event) Contains(t time.Time) bool {
	return !t.Before(e.Start) && t.Before(e.End)
}

var holidays = map[string]*cal.Holiday{
	"new_year":     us.NewYear,
	"mlk":          us.MlkDay,
	"presidents":   us.PresidentsDay,
	"memorial":     us.MemorialDay,
	"independence": us.IndependenceDay,
	"labor":        us.LaborDay,
	"columbus":     us.ColumbusDay,
	"veterans":     us.VeteransDay,
	"thanksgiving": us.ThanksgivingDay,
	"christmas":    us.ChristmasDay,
}

// Lookup returns a well known US holiday by its short name, e.g. "christmas".
func Lookup(name string) (*cal.Holiday, error) {
	hol, exists := holidays[strings.ToLower(strings.TrimSpace(name))]
	if !exists {
		return nil, fmt.Errorf("%q, %w", name, ErrUnknownHoliday)
	}
	return hol, nil
}

// Names lists the short names accepted by Lookup.
func Names() []string {
	names := make([]string, 0, len(holidays))
	for name := range holidays {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Holiday returns one event per observed day of the holiday falling in [start, end].
// The observed day is taken in the location of start and widened by durBefore and
// durAfter. Neighbouring years are checked since an observed day can move across
// the new year, e.g. New Year's Day 2022 observed on 2021-12-31.
func Holiday(hol *cal.Holiday, start, end time.Time, durBefore, durAfter time.Duration) []Event {
	startLoc := start.Location()

	events := []Event{}
	for i := start.Year() - 1; i <= end.Year()+1; i++ {
		_, observed := hol.Calc(i)
		day := time.Date(observed.Year(), observed.Month(), observed.Day(), 0, 0, 0, 0, startLoc)

		if day.Before(start) || day.After(end) {
			continue
		}
		events = append(events, Event{
			Name:  strings.ReplaceAll(fmt.Sprintf("%s_%d", hol.Name, i), " ", "_"),
			Start: day.Add(-durBefore),
			End:   day.AddDate(0, 0, 1).Add(durAfter),
		})
	}
	return events
}

// Indicator marks with 1 every time point falling in any of the events.
func Indicator(events []Event, t []time.Time) []float64 {
	vals := make([]float64, len(t))
	for i, tPnt := range t {
		for _, e := range events {
			if e.Contains(tPnt) {
				vals[i] = 1.0
				break
			}
		}
	}
	return vals
}
