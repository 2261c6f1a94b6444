package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/aouyang1/go-datadives/timedataset"
	"github.com/goccy/go-json"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeFrames writes frames sharing the same columns one after the other. csv output has
// a single header and missing values as empty fields.
func (a *app) writeFrames(w io.Writer, frames ...*timedataset.Frame) error {
	switch strings.ToLower(a.flags.format) {
	case "csv":
		return writeFramesCSV(w, frames...)
	case "json", "":
		out := make([]jsonFrame, len(frames))
		for i, f := range frames {
			out[i] = newJSONFrame(f)
		}
		if len(out) == 1 {
			return writeJSON(w, out[0])
		}
		return writeJSON(w, out)
	}
	return fmt.Errorf("unknown output format %q", a.flags.format)
}

// jsonFrame is a frame with missing values encoded as null.
type jsonFrame struct {
	T       []time.Time  `json:"time"`
	Columns []string     `json:"columns"`
	Data    [][]*float64 `json:"data"`
}

func newJSONFrame(f *timedataset.Frame) jsonFrame {
	data := make([][]*float64, len(f.Data))
	for j, col := range f.Data {
		data[j] = nullable(col)
	}
	return jsonFrame{T: f.T, Columns: f.Columns, Data: data}
}

func nullable(vals []float64) []*float64 {
	res := make([]*float64, len(vals))
	for i := range vals {
		if math.IsNaN(vals[i]) || math.IsInf(vals[i], 0) {
			continue
		}
		v := vals[i]
		res[i] = &v
	}
	return res
}

func writeFramesCSV(w io.Writer, frames ...*timedataset.Frame) error {
	if len(frames) == 0 {
		return nil
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"time"}, frames[0].Columns...)); err != nil {
		return err
	}

	for _, f := range frames {
		if f.Width() != frames[0].Width() {
			return fmt.Errorf("frame has %d columns, expected %d", f.Width(), frames[0].Width())
		}
		row := make([]string, f.Width()+1)
		for i, tPnt := range f.T {
			row[0] = tPnt.Format(time.RFC3339)
			for j, col := range f.Data {
				row[j+1] = formatFloat(col[i])
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// splitList splits a comma separated flag value, dropping blanks.
func splitList(value string) []string {
	var res []string
	for _, v := range strings.Split(value, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}
