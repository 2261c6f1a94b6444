package datasets

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/aouyang1/go-datadives/timedataset"
)

var ErrUnknownWindDirection = errors.New("unknown wind direction")

// WindDirections are the combined wind directions of the Beijing PM2.5 dataset. The
// prepared wind_dir column holds the position of the direction in this list.
var WindDirections = []string{"NE", "NW", "SE", "cv"}

// WindDirection decodes a prepared wind_dir value, returning "" for missing values.
func WindDirection(code float64) string {
	if math.IsNaN(code) || code < 0 || int(code) >= len(WindDirections) {
		return ""
	}
	return WindDirections[int(code)]
}

func windDirectionCode(dir string) (float64, error) {
	if isMissing(dir) {
		return math.NaN(), nil
	}
	for i, d := range WindDirections {
		if d == dir {
			return float64(i), nil
		}
	}
	return 0, fmt.Errorf("%q, %w", dir, ErrUnknownWindDirection)
}

// rawFrame orders unsorted rows by time. Raw rows are not validated since resampling
// tolerates repeated time points.
func rawFrame(t []time.Time, columns []string, data [][]float64) *timedataset.Frame {
	timedataset.SortByTime(t, data)
	return &timedataset.Frame{T: t, Columns: columns, Data: data}
}

func floatColumns(tbl *Table, names ...string) ([][]float64, error) {
	data := make([][]float64, 0, len(names))
	for _, name := range names {
		vals, err := tbl.Floats(name)
		if err != nil {
			return nil, err
		}
		data = append(data, vals)
	}
	return data, nil
}

func dateColumns(tbl *Table, year, month, day, hour string) ([]time.Time, error) {
	names := []string{year, month, day}
	if hour != "" {
		names = append(names, hour)
	}
	parts := make([][]int, 0, len(names))
	for _, name := range names {
		vals, err := tbl.Ints(name)
		if err != nil {
			return nil, err
		}
		parts = append(parts, vals)
	}

	t := make([]time.Time, tbl.Len())
	for i := range t {
		h := 0
		if hour != "" {
			h = parts[3][i]
		}
		t[i] = time.Date(parts[0][i], time.Month(parts[1][i]), parts[2][i], h, 0, 0, 0, time.UTC)
	}
	return t, nil
}

var beijingMeanColumns = []struct {
	raw, name string
}{
	{"pm2.5", "pm2.5"},
	{"DEWP", "dew_point"},
	{"TEMP", "temp"},
	{"PRES", "pressure"},
	{"Is", "hrs_snow"},
	{"Ir", "hrs_rain"},
}

// prepareBeijingPM25 builds hourly time points, averages the measurements into the
// target frequency, keeps the modal wind direction with the highest cumulated wind
// speed observed in that direction, fills gaps and drops the rows still missing pm2.5.
func prepareBeijingPM25(tbl *Table, opt *PrepareOptions) (*timedataset.Frame, error) {
	t, err := dateColumns(tbl, "year", "month", "day", "hour")
	if err != nil {
		return nil, err
	}

	rawNames := make([]string, 0, len(beijingMeanColumns))
	names := make([]string, 0, len(beijingMeanColumns)+2)
	for _, c := range beijingMeanColumns {
		rawNames = append(rawNames, c.raw)
		names = append(names, c.name)
	}
	data, err := floatColumns(tbl, append(rawNames, "Iws")...)
	if err != nil {
		return nil, err
	}

	dirs, err := tbl.Column("cbwd")
	if err != nil {
		return nil, err
	}
	codes := make([]float64, len(dirs))
	for i, dir := range dirs {
		if codes[i], err = windDirectionCode(dir); err != nil {
			return nil, fmt.Errorf("row %d, %w", i, err)
		}
	}
	data = append(data, codes)

	raw := rawFrame(t, append(names, "cum_wind_speed", "wind_dir"), data)
	means := &timedataset.Frame{T: raw.T, Columns: names, Data: raw.Data[:len(names)]}
	res, err := means.Resample(opt.Freq, timedataset.Mean, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to resample to %s, %w", opt.Freq, err)
	}

	windDir, windSpeed, err := aggregateWind(raw, opt.Freq)
	if err != nil {
		return nil, err
	}
	if res, err = res.WithColumn("wind_dir", windDir); err != nil {
		return nil, err
	}
	if res, err = res.WithColumn("cum_wind_speed", windSpeed); err != nil {
		return nil, err
	}

	// wind_dir is categorical, so it is only ever carried forward
	numeric := make([]string, 0, res.Width())
	for _, col := range res.Columns {
		if col != "wind_dir" {
			numeric = append(numeric, col)
		}
	}
	if res, err = res.Fill(opt.Fill, numeric...); err != nil {
		return nil, err
	}
	if res, err = res.Fill(timedataset.FillForward, "wind_dir"); err != nil {
		return nil, err
	}
	return res.DropNaRows("pm2.5")
}

func aggregateWind(raw *timedataset.Frame, freq timedataset.Freq) ([]float64, []float64, error) {
	_, groups, err := raw.Groups(freq)
	if err != nil {
		return nil, nil, err
	}
	dirs := raw.Data[raw.ColumnIndex("wind_dir")]
	speeds := raw.Data[raw.ColumnIndex("cum_wind_speed")]

	windDir := make([]float64, len(groups))
	windSpeed := make([]float64, len(groups))
	var buf []float64
	for b, rows := range groups {
		buf = buf[:0]
		for _, i := range rows {
			if !math.IsNaN(dirs[i]) {
				buf = append(buf, dirs[i])
			}
		}
		if len(buf) == 0 {
			windDir[b], windSpeed[b] = math.NaN(), math.NaN()
			continue
		}
		mode := timedataset.Mode(buf)

		buf = buf[:0]
		for _, i := range rows {
			if dirs[i] == mode && !math.IsNaN(speeds[i]) {
				buf = append(buf, speeds[i])
			}
		}
		windDir[b] = mode
		windSpeed[b] = math.NaN()
		if len(buf) > 0 {
			windSpeed[b] = timedataset.Max(buf)
		}
	}
	return windDir, windSpeed, nil
}

var monthAbbrevs = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// prepareGISTEMP stacks the Year by month table into a single LOTI series at month
// starts. The annual and seasonal means are dropped. Missing months stay NaN.
func prepareGISTEMP(tbl *Table, opt *PrepareOptions) (*timedataset.Frame, error) {
	years, err := tbl.Ints("Year")
	if err != nil {
		return nil, err
	}

	var t []time.Time
	var loti []float64
	for m, abbrev := range monthAbbrevs {
		vals, err := tbl.Floats(abbrev)
		if err != nil {
			return nil, err
		}
		for i, v := range vals {
			if math.IsNaN(v) {
				continue
			}
			t = append(t, time.Date(years[i], time.Month(m+1), 1, 0, 0, 0, 0, time.UTC))
			loti = append(loti, v)
		}
	}
	if len(t) == 0 {
		return nil, timedataset.ErrNoTrainingData
	}

	raw := rawFrame(t, []string{"LOTI"}, [][]float64{loti})
	res, err := raw.Resample(opt.Freq, timedataset.Mean, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to resample to %s, %w", opt.Freq, err)
	}
	return res, nil
}

var mloDropColumns = map[string]struct{}{
	"Yr": {}, "Mn": {}, "Dy": {}, "NB": {}, "scale": {},
}

// prepareMLOCO2 builds daily time points, averages every numeric measurement into the
// target frequency, fills gaps and drops the rows still missing CO2.
func prepareMLOCO2(tbl *Table, opt *PrepareOptions) (*timedataset.Frame, error) {
	header := make([]string, len(tbl.Header))
	for i, h := range tbl.Header {
		header[i] = strings.Trim(h, "% ")
	}
	tbl = &Table{Header: header, Records: tbl.Records}

	t, err := dateColumns(tbl, "Yr", "Mn", "Dy", "")
	if err != nil {
		return nil, err
	}
	if _, err := tbl.Floats("CO2"); err != nil {
		return nil, err
	}

	var names []string
	for _, h := range tbl.Header {
		if _, drop := mloDropColumns[h]; drop || h == "" {
			continue
		}
		if tbl.IsNumeric(h) {
			names = append(names, h)
		}
	}
	data, err := floatColumns(tbl, names...)
	if err != nil {
		return nil, err
	}

	raw := rawFrame(t, names, data)
	res, err := raw.Resample(opt.Freq, timedataset.Mean, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to resample to %s, %w", opt.Freq, err)
	}
	if res, err = res.Fill(opt.Fill); err != nil {
		return nil, err
	}
	return res.DropNaRows("CO2")
}
