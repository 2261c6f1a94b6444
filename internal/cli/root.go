// Package cli implements the datadives CLI commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aouyang1/go-datadives/bootstrap"
	"github.com/aouyang1/go-datadives/config"
	"github.com/aouyang1/go-datadives/datasets"
	"github.com/aouyang1/go-datadives/store"
	"github.com/aouyang1/go-datadives/timedataset"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

var ErrUnknownProfile = errors.New("unknown profile mode")

type rootFlags struct {
	dataDir   string
	cache     string
	cacheDB   string
	seed      uint64
	logLevel  string
	blockSize int
	format    string
	profile   string
}

// app carries the resolved configuration of one invocation.
type app struct {
	flags    rootFlags
	cfg      *config.Config
	profiler interface{ Stop() }
}

// NewRootCmd builds the top-level command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:               "datadives",
		Short:             "Time series dives into environmental datasets",
		Long:              "Download, clean, resample, bootstrap and featurize the Beijing PM2.5, GISTEMP and Mauna Loa CO2 datasets.",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "Data directory (default: $DATADIVES_DATA_DIR or ./data)")
	pf.StringVar(&a.flags.cache, "cache", "", "Download cache: dir, sqlite or none (default: $DATADIVES_CACHE or dir)")
	pf.StringVar(&a.flags.cacheDB, "cache-db", "", "SQLite cache path (default: $DATADIVES_CACHE_DB or <data-dir>/.cache.db)")
	pf.Uint64Var(&a.flags.seed, "seed", 0, "Random seed (default: $DATADIVES_SEED or clock seeded)")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.IntVar(&a.flags.blockSize, "block-size", 0, "Bootstrap block size (default: $DATADIVES_BLOCK_SIZE or 24)")
	pf.StringVarP(&a.flags.format, "format", "f", "json", "Output format: json or csv")
	pf.StringVar(&a.flags.profile, "profile", "", "Write a cpu or mem profile to the data directory")

	root.AddCommand(
		a.datasetsCmd(),
		a.loadCmd(),
		a.prepareCmd(),
		a.bootstrapCmd(),
		a.featuresCmd(),
		a.stationarityCmd(),
		a.naiveCmd(),
		a.plotCmd(),
		a.cacheCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.cfg = config.LoadFromEnv()

	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		a.cfg.DataDir = a.flags.dataDir
		if !flags.Changed("cache-db") && !a.cfg.CacheDBSet {
			a.cfg.CacheDB = defaultCacheDB(a.cfg.DataDir)
		}
	}
	if flags.Changed("cache") {
		kind, err := config.ParseCacheKind(a.flags.cache)
		if err != nil {
			return err
		}
		a.cfg.Cache = kind
	}
	if flags.Changed("cache-db") {
		a.cfg.CacheDB, a.cfg.CacheDBSet = a.flags.cacheDB, true
	}
	if flags.Changed("seed") {
		a.cfg.Seed, a.cfg.HasSeed = a.flags.seed, true
	}
	if flags.Changed("log-level") {
		if err := a.cfg.LogLevel.UnmarshalText([]byte(a.flags.logLevel)); err != nil {
			return fmt.Errorf("invalid log level, %w", err)
		}
	}
	if flags.Changed("block-size") {
		a.cfg.BlockSize = a.flags.blockSize
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: a.cfg.LogLevel,
	})))

	switch strings.ToLower(a.flags.profile) {
	case "":
	case "cpu":
		a.profiler = profile.Start(profile.CPUProfile, profile.ProfilePath(a.cfg.DataDir), profile.NoShutdownHook)
	case "mem":
		a.profiler = profile.Start(profile.MemProfile, profile.ProfilePath(a.cfg.DataDir), profile.NoShutdownHook)
	default:
		return fmt.Errorf("%q, %w", a.flags.profile, ErrUnknownProfile)
	}
	return nil
}

func (a *app) teardown(cmd *cobra.Command, args []string) {
	if a.profiler != nil {
		a.profiler.Stop()
		a.profiler = nil
	}
}

func defaultCacheDB(dataDir string) string {
	return filepath.Join(dataDir, ".cache.db")
}

// openCache returns the configured download cache and its closer. A nil cache disables
// caching.
func (a *app) openCache() (datasets.Cache, func() error, error) {
	noop := func() error { return nil }
	switch a.cfg.Cache {
	case config.CacheNone:
		return nil, noop, nil
	case config.CacheSQLite:
		s, err := store.NewSQLiteStore(a.cfg.CacheDB)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		c, err := datasets.NewDirCache(a.cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return c, noop, nil
	}
}

func addPrepareFlags(cmd *cobra.Command) {
	cmd.Flags().String("freq", "", "Resample frequency, e.g. 1H, 1D, MS (default: per dataset)")
	cmd.Flags().String("fill", "", "Missing value fill: forward or interpolate (default: per dataset)")
	cmd.Flags().Bool("force", false, "Download even if the dataset is cached")
}

func addColumnFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("column", "c", "", "Column to analyze (default: first column)")
}

func (a *app) loadTable(ctx context.Context, cmd *cobra.Command, name string) (*datasets.Dataset, *datasets.Table, error) {
	ds, err := datasets.Lookup(name)
	if err != nil {
		return nil, nil, err
	}

	cache, closeCache, err := a.openCache()
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open cache, %w", err)
	}
	defer closeCache()

	opt := datasets.NewDefaultLoadOptions()
	opt.Cache = cache
	if cmd.Flags().Lookup("force") != nil {
		opt.Force, _ = cmd.Flags().GetBool("force")
	}

	tbl, err := datasets.Load(ctx, ds, opt)
	if err != nil {
		return nil, nil, err
	}
	return ds, tbl, nil
}

// loadFrame loads and prepares a dataset using the prepare flags of cmd.
func (a *app) loadFrame(ctx context.Context, cmd *cobra.Command, name string) (*timedataset.Frame, error) {
	ds, tbl, err := a.loadTable(ctx, cmd, name)
	if err != nil {
		return nil, err
	}

	opt := &datasets.PrepareOptions{}
	freqFlag, _ := cmd.Flags().GetString("freq")
	if freqFlag != "" {
		opt.Freq, err = timedataset.ParseFreq(freqFlag)
		if err != nil {
			return nil, err
		}
	}
	fillFlag, _ := cmd.Flags().GetString("fill")
	if fillFlag != "" {
		opt.Fill, err = timedataset.ParseFillMethod(fillFlag)
		if err != nil {
			return nil, err
		}
	}

	f, err := ds.Prepare(tbl, opt)
	if err != nil {
		return nil, fmt.Errorf("unable to prepare %s, %w", ds.Name, err)
	}
	slog.Debug("prepared dataset", "dataset", ds.Key, "rows", f.Len(), "columns", f.Columns)
	return f, nil
}

// loadSeries loads a dataset and picks the --column series out of it.
func (a *app) loadSeries(ctx context.Context, cmd *cobra.Command, name string) (*timedataset.TimeDataset, error) {
	f, err := a.loadFrame(ctx, cmd, name)
	if err != nil {
		return nil, err
	}
	column, _ := cmd.Flags().GetString("column")
	if column == "" {
		if f.Width() == 0 {
			return nil, fmt.Errorf("%s has no columns, %w", name, timedataset.ErrUnknownColumn)
		}
		column = f.Columns[0]
	}
	return f.Series(column)
}

func (a *app) newSampler(strategy string) (*bootstrap.Sampler, error) {
	s, err := bootstrap.ParseStrategy(strategy)
	if err != nil {
		return nil, err
	}
	opt := &bootstrap.Options{
		Strategy:  s,
		BlockSize: a.cfg.BlockSize,
	}

	var src bootstrap.Source
	if a.cfg.HasSeed {
		src = bootstrap.NewSource(a.cfg.Seed)
	}
	return bootstrap.New(opt, src), nil
}
