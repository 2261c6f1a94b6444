package datasets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

var ErrDownload = errors.New("unable to download dataset")

type LoadOptions struct {
	// Cache is consulted before downloading and filled afterwards. Nil disables caching.
	Cache Cache
	// Force downloads even if the dataset is cached.
	Force  bool
	Client *http.Client
}

func NewDefaultLoadOptions() *LoadOptions {
	return &LoadOptions{
		Client: &http.Client{Timeout: 5 * time.Minute},
	}
}

// Load returns the raw table of the dataset, read from the cache when present or
// downloaded from its url and written back to the cache otherwise.
func Load(ctx context.Context, ds *Dataset, opt *LoadOptions) (*Table, error) {
	raw, err := LoadRaw(ctx, ds, opt)
	if err != nil {
		return nil, err
	}
	tbl, err := ParseCSV(bytes.NewReader(raw), ds.SkipRows)
	if err != nil {
		return nil, fmt.Errorf("unable to parse %s, %w", ds.Name, err)
	}
	return tbl, nil
}

// LoadRaw is Load without parsing the csv.
func LoadRaw(ctx context.Context, ds *Dataset, opt *LoadOptions) ([]byte, error) {
	if opt == nil {
		opt = NewDefaultLoadOptions()
	}
	key := ds.FileName()

	if opt.Cache != nil && !opt.Force {
		data, exists, err := opt.Cache.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("unable to read %s from cache, %w", key, err)
		}
		if exists {
			return data, nil
		}
	}

	data, err := download(ctx, opt.Client, ds.DownloadURL)
	if err != nil {
		return nil, err
	}

	if opt.Cache != nil {
		if err := opt.Cache.Put(ctx, key, data); err != nil {
			slog.Warn("unable to cache dataset", "dataset", ds.Name, "key", key, "error", err.Error())
		}
	}
	return data, nil
}

func download(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s, %w", err.Error(), ErrDownload)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w, %w", ErrDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d, %w", url, resp.StatusCode, ErrDownload)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w, %w", ErrDownload, err)
	}
	return data, nil
}
