package datasets

import (
	"testing"

	"github.com/aouyang1/go-datadives/timedataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	testData := map[string]struct {
		name     string
		expected *Dataset
		err      error
	}{
		"key":            {name: "gistemp", expected: GISTEMP},
		"display name":   {name: "Beijing PM2.5", expected: BeijingPM25},
		"case and space": {name: " MLO_CO2 ", expected: MLOCO2},
		"unknown":        {name: "hadcrut", err: ErrUnknownDataset},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			ds, err := Lookup(td.name)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.Same(t, td.expected, ds)
		})
	}
}

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 3)
	assert.Equal(t, "beijing_pm25", all[0].Key)
	assert.Equal(t, "gistemp", all[1].Key)
	assert.Equal(t, "mlo_co2", all[2].Key)
}

func TestDatasetInfo(t *testing.T) {
	assert.Equal(t, `Dataset("MLO CO2")`, MLOCO2.String())
	assert.Equal(t, "daily_in_situ_co2_mlo.csv", MLOCO2.FileName())
	assert.Equal(t, "GLB.Ts+dSST.csv", GISTEMP.FileName())
	assert.Equal(t, "PRSA_data_2010.1.1-2014.12.31.csv", BeijingPM25.FileName())

	info := GISTEMP.Info()
	assert.Equal(t, "GISTEMP", info.Name)
	assert.Equal(t, "https://data.giss.nasa.gov/gistemp", info.SiteURL)
	assert.Equal(t, GISTEMP.DownloadURL, info.DownloadURL)

	opt := BeijingPM25.DefaultPrepareOptions()
	assert.Equal(t, timedataset.Hourly, opt.Freq)
	assert.Equal(t, timedataset.FillInterpolate, opt.Fill)
	opt.Freq = timedataset.Daily
	assert.Equal(t, timedataset.Hourly, BeijingPM25.DefaultPrepareOptions().Freq)
}
