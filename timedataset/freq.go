package timedataset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrUnknownFreq = errors.New("unknown frequency alias")

// Freq is the fixed step between consecutive time points of a regular series. Calendar
// based steps (month, quarter, year starts) are tracked in months since their length
// in time varies, everything else is an exact duration.
type Freq struct {
	Months int
	Step   time.Duration
}

var (
	Hourly    = Freq{Step: time.Hour}
	Daily     = Freq{Step: 24 * time.Hour}
	Weekly    = Freq{Step: 7 * 24 * time.Hour}
	Monthly   = Freq{Months: 1}
	Quarterly = Freq{Months: 3}
	Yearly    = Freq{Months: 12}
)

var freqUnits = map[string]Freq{
	"s":   {Step: time.Second},
	"S":   {Step: time.Second},
	"T":   {Step: time.Minute},
	"min": {Step: time.Minute},
	"h":   Hourly,
	"H":   Hourly,
	"D":   Daily,
	"W":   Weekly,
	"MS":  Monthly,
	"QS":  Quarterly,
	"AS":  Yearly,
	"YS":  Yearly,
}

// ParseFreq parses a pandas style offset alias such as "1H", "15min", "1D" or "MS".
func ParseFreq(alias string) (Freq, error) {
	alias = strings.TrimSpace(alias)
	i := 0
	for i < len(alias) && alias[i] >= '0' && alias[i] <= '9' {
		i++
	}
	mult := 1
	if i > 0 {
		var err error
		mult, err = strconv.Atoi(alias[:i])
		if err != nil || mult < 1 {
			return Freq{}, fmt.Errorf("%q, %w", alias, ErrUnknownFreq)
		}
	}
	unit, exists := freqUnits[alias[i:]]
	if !exists {
		return Freq{}, fmt.Errorf("%q, %w", alias, ErrUnknownFreq)
	}
	return Freq{
		Months: unit.Months * mult,
		Step:   unit.Step * time.Duration(mult),
	}, nil
}

// IsZero reports whether the frequency is unset.
func (f Freq) IsZero() bool {
	return f.Months == 0 && f.Step == 0
}

// Add moves t forward by n steps of the frequency.
func (f Freq) Add(t time.Time, n int) time.Time {
	if f.Months != 0 {
		return t.AddDate(0, f.Months*n, 0)
	}
	return t.Add(f.Step * time.Duration(n))
}

// Truncate returns the start of the step that contains t. Month steps are aligned to the
// first day of the month and steps dividing a day to the start of the day in t's
// location. Any other step is aligned to the Unix epoch on t's wall clock so bins keep
// the same phase across midnight.
func (f Freq) Truncate(t time.Time) time.Time {
	if f.Months != 0 {
		month := int(t.Month()) - 1
		month -= month % f.Months
		return time.Date(t.Year(), time.Month(month+1), 1, 0, 0, 0, 0, t.Location())
	}
	if f.Step <= 0 {
		return t
	}
	dayStart := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	if f.Step == 24*time.Hour {
		return dayStart
	}
	if (24*time.Hour)%f.Step == 0 {
		since := t.Sub(dayStart)
		return dayStart.Add(since - since%f.Step)
	}

	_, offset := t.Zone()
	if f.Step%time.Second == 0 {
		step := int64(f.Step / time.Second)
		wall := t.Unix() + int64(offset)
		rem := (wall%step + step) % step
		return t.Add(-time.Duration(rem)*time.Second - time.Duration(t.Nanosecond()))
	}
	step := int64(f.Step)
	wall := t.UnixNano() + int64(offset)*int64(time.Second)
	rem := (wall%step + step) % step
	return t.Add(-time.Duration(rem))
}

func (f Freq) String() string {
	switch {
	case f.Months == 1:
		return "MS"
	case f.Months == 3:
		return "QS"
	case f.Months == 12:
		return "YS"
	case f.Months > 0:
		return strconv.Itoa(f.Months) + "MS"
	case f.Step == 0:
		return ""
	case f.Step%(24*time.Hour) == 0:
		return strconv.Itoa(int(f.Step/(24*time.Hour))) + "D"
	case f.Step%time.Hour == 0:
		return strconv.Itoa(int(f.Step/time.Hour)) + "H"
	case f.Step%time.Minute == 0:
		return strconv.Itoa(int(f.Step/time.Minute)) + "min"
	case f.Step%time.Second == 0:
		return strconv.Itoa(int(f.Step/time.Second)) + "S"
	}
	return f.Step.String()
}

func (f Freq) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Freq) UnmarshalText(text []byte) error {
	parsed, err := ParseFreq(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// InferFreq finds the single step that separates every pair of consecutive time points.
// Whole month steps landing on the same day and time of day are tried first, then
// exact durations.
func InferFreq(t TimeSlice) (Freq, error) {
	if len(t) < 2 {
		return Freq{}, ErrCannotInferFreq
	}

	if months := monthsBetween(t[0], t[1]); months > 0 {
		f := Freq{Months: months}
		if f.fits(t) {
			return f, nil
		}
	}

	f := Freq{Step: t[1].Sub(t[0])}
	if f.Step > 0 && f.fits(t) {
		return f, nil
	}
	return Freq{}, ErrCannotInferFreq
}

// fits reports whether every time point is exactly one step after the previous one.
func (f Freq) fits(t TimeSlice) bool {
	for i := 1; i < len(t); i++ {
		if !f.Add(t[i-1], 1).Equal(t[i]) {
			return false
		}
	}
	return true
}

func monthsBetween(a, b time.Time) int {
	return (b.Year()*12 + int(b.Month())) - (a.Year()*12 + int(a.Month()))
}
