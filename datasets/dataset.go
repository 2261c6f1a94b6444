// Package datasets downloads, caches and prepares the environmental datasets studied in
// this module.
package datasets

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/aouyang1/go-datadives/timedataset"
)

var ErrUnknownDataset = errors.New("unknown dataset")

// Meta describes where a dataset comes from and how to cite it.
type Meta struct {
	SiteURL     string `json:"site_url"`
	Description string `json:"description"`
	Citation    string `json:"citation"`
}

// PrepareOptions sets the target frequency and missing value fill of a prepared dataset.
type PrepareOptions struct {
	Freq timedataset.Freq       `json:"freq"`
	Fill timedataset.FillMethod `json:"fill"`
}

type prepareFunc func(tbl *Table, opt *PrepareOptions) (*timedataset.Frame, error)

// Dataset is a published csv dataset along with how to turn it into a regular frame.
type Dataset struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Meta        Meta   `json:"meta"`
	DownloadURL string `json:"download_url"`
	// SkipRows is the number of preamble lines before the csv header.
	SkipRows int `json:"skip_rows"`

	defaults PrepareOptions
	prepare  prepareFunc
}

func (d *Dataset) String() string {
	return fmt.Sprintf("Dataset(%q)", d.Name)
}

// Info is the name, metadata and download url of the dataset.
type Info struct {
	Name string `json:"name"`
	Meta
	DownloadURL string `json:"download_url"`
}

func (d *Dataset) Info() Info {
	return Info{
		Name:        d.Name,
		Meta:        d.Meta,
		DownloadURL: d.DownloadURL,
	}
}

// FileName is the last element of the download url path, used as the cache key.
func (d *Dataset) FileName() string {
	u, err := url.Parse(d.DownloadURL)
	if err != nil || u.Path == "" {
		return d.Key + ".csv"
	}
	return path.Base(u.Path)
}

// DefaultPrepareOptions returns the frequency and fill the dataset is prepared with by
// default.
func (d *Dataset) DefaultPrepareOptions() *PrepareOptions {
	opt := d.defaults
	return &opt
}

// Prepare cleans a raw table into a regular frame. A nil options uses the dataset
// defaults and unset fields fall back to them individually.
func (d *Dataset) Prepare(tbl *Table, opt *PrepareOptions) (*timedataset.Frame, error) {
	res := d.DefaultPrepareOptions()
	if opt != nil {
		if !opt.Freq.IsZero() {
			res.Freq = opt.Freq
		}
		if opt.Fill != "" {
			res.Fill = opt.Fill
		}
	}
	return d.prepare(tbl, res)
}

var (
	BeijingPM25 = &Dataset{
		Key:  "beijing_pm25",
		Name: "Beijing PM2.5",
		Meta: Meta{
			SiteURL: "https://archive.ics.uci.edu/ml/datasets/Beijing+PM2.5+Data",
			Description: "Particulate matter of size 2.5µm or less (PM2.5) measurements made by the US " +
				"Embassy in Beijing, as well as meteorological data from Beijing Capital International " +
				"Airport. Hourly resolution, from 2010-01-01 to 2014-12-31.",
			Citation: "Liang, X., Zou, T., Guo, B., Li, S., Zhang, H., Zhang, S., Huang, H. and Chen, S. X. " +
				"(2015). Assessing Beijing's PM2.5 pollution: severity, weather impact, APEC and winter " +
				"heating. Proceedings of the Royal Society A, 471, 20150257.",
		},
		DownloadURL: "https://archive.ics.uci.edu/ml/machine-learning-databases/00381/PRSA_data_2010.1.1-2014.12.31.csv",
		defaults:    PrepareOptions{Freq: timedataset.Hourly, Fill: timedataset.FillInterpolate},
		prepare:     prepareBeijingPM25,
	}

	GISTEMP = &Dataset{
		Key:  "gistemp",
		Name: "GISTEMP",
		Meta: Meta{
			SiteURL: "https://data.giss.nasa.gov/gistemp",
			Description: "Estimates of global surface temperature change based on combined land-surface " +
				"air and sea-surface water temperature anomalies, expressed as a Land-Ocean Temperature " +
				"Index (LOTI) measured relative to average temps over 1951-1980 for the given place and " +
				"time of year. Global mean with monthly resolution, 1880 to present.",
			Citation: "Lenssen, N., G. Schmidt, J. Hansen, M. Menne, A. Persin, R. Ruedy, and D. Zyss, " +
				"2019: Improvements in the GISTEMP uncertainty model. J. Geophys. Res. Atmos., 124, no. 12, " +
				"6307-6326, doi:10.1029/2018JD029522.",
		},
		DownloadURL: "https://data.giss.nasa.gov/gistemp/tabledata_v4/GLB.Ts+dSST.csv",
		SkipRows:    1,
		defaults:    PrepareOptions{Freq: timedataset.Monthly, Fill: timedataset.FillInterpolate},
		prepare:     prepareGISTEMP,
	}

	MLOCO2 = &Dataset{
		Key:  "mlo_co2",
		Name: "MLO CO2",
		Meta: Meta{
			SiteURL: "https://scrippsco2.ucsd.edu/data/atmospheric_co2/mlo.html",
			Description: "In-situ CO2 measurements taken at Mauna Loa Observatory, Hawaii " +
				"(Latitude 19.5°N, Longitude 155.6°W, Elevation 3397m). Daily resolution, from 1958 to present.",
			Citation: "C. D. Keeling, S. C. Piper, R. B. Bacastow, M. Wahlen, T. P. Whorf, M. Heimann, and " +
				"H. A. Meijer, Exchanges of atmospheric CO2 and 13CO2 with the terrestrial biosphere and " +
				"oceans from 1978 to 2000. I. Global aspects, SIO Reference Series, No. 01-06, Scripps " +
				"Institution of Oceanography, San Diego, 88 pages, 2001.",
		},
		DownloadURL: "https://scrippsco2.ucsd.edu/assets/data/atmospheric/stations/in_situ_co2/daily/daily_in_situ_co2_mlo.csv",
		SkipRows:    33,
		defaults:    PrepareOptions{Freq: timedataset.Daily, Fill: timedataset.FillInterpolate},
		prepare:     prepareMLOCO2,
	}
)

var registry = map[string]*Dataset{
	BeijingPM25.Key: BeijingPM25,
	GISTEMP.Key:     GISTEMP,
	MLOCO2.Key:      MLOCO2,
}

// Lookup finds a dataset by key or display name, ignoring case.
func Lookup(name string) (*Dataset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if ds, exists := registry[name]; exists {
		return ds, nil
	}
	for _, ds := range registry {
		if strings.ToLower(ds.Name) == name {
			return ds, nil
		}
	}
	return nil, fmt.Errorf("%q, %w", name, ErrUnknownDataset)
}

// All returns every dataset ordered by key.
func All() []*Dataset {
	res := make([]*Dataset, 0, len(registry))
	for _, ds := range registry {
		res = append(res, ds)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Key < res[j].Key
	})
	return res
}
