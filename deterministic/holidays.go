package deterministic

import (
	"fmt"
	"strings"
	"time"

	"github.com/aouyang1/go-datadives/event"
	"github.com/aouyang1/go-datadives/feature"
	"github.com/aouyang1/go-datadives/timedataset"
	"github.com/rickar/cal/v2"
)

// Holidays marks the observed days of well known US holidays with one indicator column
// per holiday, named holiday_{name}.
type Holidays struct {
	names []string
	hols  []*cal.Holiday
}

// NewHolidays looks up every holiday by short name, e.g. "christmas" or "thanksgiving".
func NewHolidays(names ...string) (*Holidays, error) {
	h := &Holidays{}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, exists := seen[name]; exists {
			continue
		}
		seen[name] = struct{}{}

		hol, err := event.Lookup(name)
		if err != nil {
			return nil, err
		}
		h.names = append(h.names, name)
		h.hols = append(h.hols, hol)
	}
	return h, nil
}

func (h *Holidays) String() string {
	return fmt.Sprintf("Holidays(names=[%s])", strings.Join(h.names, ", "))
}

func (h *Holidays) Equal(other Term) bool {
	o, ok := other.(*Holidays)
	if !ok || o == nil || len(h.names) != len(o.names) {
		return false
	}
	for i := range h.names {
		if h.names[i] != o.names[i] {
			return false
		}
	}
	return true
}

func (h *Holidays) InSample(index *timedataset.Index) (*Table, error) {
	if index == nil {
		return nil, ErrNilIndex
	}
	return h.table(index.Times())
}

func (h *Holidays) OutOfSample(steps int, index, forecastIndex *timedataset.Index) (*Table, error) {
	fIdx, err := forecastIndexFor(steps, index, forecastIndex)
	if err != nil {
		return nil, err
	}
	return h.table(fIdx.Times())
}

func (h *Holidays) table(t []time.Time) (*Table, error) {
	tbl := newTable(t)
	if len(t) == 0 {
		return tbl, nil
	}

	first := t[0]
	start := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, first.Location())
	end := t[len(t)-1]
	for i, hol := range h.hols {
		events := event.Holiday(hol, start, end, 0, 0)
		if err := tbl.add(feature.NewEvent(h.names[i]), event.Indicator(events, t)); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}
