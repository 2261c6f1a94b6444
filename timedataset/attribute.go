package timedataset

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrUnknownAttribute = errors.New("unknown datetime attribute")

// Attribute names a datetime component that can be extracted from a time point. The
// names and value ranges follow the pandas datetime accessors, e.g. dayofweek counts
// from Monday=0 and quarter runs from 1 to 4.
type Attribute string

const (
	AttrYear       Attribute = "year"
	AttrQuarter    Attribute = "quarter"
	AttrMonth      Attribute = "month"
	AttrDay        Attribute = "day"
	AttrDayOfWeek  Attribute = "dayofweek"
	AttrDayOfYear  Attribute = "dayofyear"
	AttrWeekOfYear Attribute = "weekofyear"
	AttrHour       Attribute = "hour"
	AttrMinute     Attribute = "minute"
	AttrSecond     Attribute = "second"
)

var attributeAliases = map[string]Attribute{
	"weekday":     AttrDayOfWeek,
	"day_of_week": AttrDayOfWeek,
	"day_of_year": AttrDayOfYear,
	"week":        AttrWeekOfYear,
}

// ParseAttribute validates an attribute name, case insensitive.
func ParseAttribute(name string) (Attribute, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if alias, exists := attributeAliases[lower]; exists {
		return alias, nil
	}
	attr := Attribute(lower)
	if !attr.Valid() {
		return "", fmt.Errorf("%q, %w", name, ErrUnknownAttribute)
	}
	return attr, nil
}

func (a Attribute) Valid() bool {
	switch a {
	case AttrYear, AttrQuarter, AttrMonth, AttrDay, AttrDayOfWeek, AttrDayOfYear,
		AttrWeekOfYear, AttrHour, AttrMinute, AttrSecond:
		return true
	}
	return false
}

// Extract returns the attribute value of a time point. Unknown attributes return -1.
func (a Attribute) Extract(t time.Time) int {
	switch a {
	case AttrYear:
		return t.Year()
	case AttrQuarter:
		return (int(t.Month())-1)/3 + 1
	case AttrMonth:
		return int(t.Month())
	case AttrDay:
		return t.Day()
	case AttrDayOfWeek:
		return (int(t.Weekday()) + 6) % 7
	case AttrDayOfYear:
		return t.YearDay()
	case AttrWeekOfYear:
		_, week := t.ISOWeek()
		return week
	case AttrHour:
		return t.Hour()
	case AttrMinute:
		return t.Minute()
	case AttrSecond:
		return t.Second()
	}
	return -1
}

// ExtractAll returns the attribute value of each time point.
func (a Attribute) ExtractAll(t []time.Time) []int {
	vals := make([]int, len(t))
	for i, tPnt := range t {
		vals[i] = a.Extract(tPnt)
	}
	return vals
}
