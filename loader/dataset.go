package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/etnz/analytics"
)

// Default file names of a data folder.
const (
	PortfolioFile   = "portfolio_history.csv"
	PortfolioColumn = "portfolio_value"
	AllocationFile  = "asset_allocation.csv"
	PricesFile      = "asset_prices.csv"
	BenchmarksDir   = "benchmarks"
	FundamentalsDir = "fundamentals"
	TechnicalsDir   = "technicals"
	MarketsDir      = "markets"
)

// PortfolioName is the name of the portfolio value series.
const PortfolioName = "Portfolio"

// Dataset holds the content of a data folder.
type Dataset struct {
	Dir         string
	Portfolio   *analytics.Series
	Allocations *analytics.Table
	Prices      *analytics.Table
	Benchmarks  analytics.Benchmarks
	// Skipped reports the benchmark files that could not be read.
	Skipped error
}

// Load reads the portfolio, allocation, price and benchmark files of dir.
// The portfolio file is required, the others are optional. Unreadable
// benchmark files are skipped and reported in Skipped. JSON benchmark files
// are read with paths.
func Load(dir string, paths JSONPaths) (*Dataset, error) {
	ds := &Dataset{Dir: dir, Benchmarks: analytics.Benchmarks{}}
	var err error
	if ds.Portfolio, err = LoadSeries(filepath.Join(dir, PortfolioFile), PortfolioName, PortfolioColumn); err != nil {
		return nil, err
	}
	if ds.Allocations, err = optional(LoadTable(filepath.Join(dir, AllocationFile))); err != nil {
		return nil, err
	}
	if ds.Prices, err = optional(LoadTable(filepath.Join(dir, PricesFile))); err != nil {
		return nil, err
	}
	bs, err := LoadBenchmarks(filepath.Join(dir, BenchmarksDir), paths)
	switch {
	case errors.Is(err, fs.ErrNotExist) && bs == nil:
		// no benchmark folder
	case err != nil:
		ds.Skipped = err
		fallthrough
	default:
		if bs != nil {
			ds.Benchmarks = bs
		}
	}
	return ds, nil
}

// optional turns a missing file into a nil table.
func optional(t *analytics.Table, err error) (*analytics.Table, error) {
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return t, err
}

// LoadSeries reads a column of a file as a series.
func LoadSeries(path, name, column string) (*analytics.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := ReadSeries(f, name, column)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return s, nil
}

// LoadTable reads a wide file as a table.
func LoadTable(path string) (*analytics.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return t, nil
}

// LoadIndicator reads a market indicator file named after its base name.
// Plain files, INSEE downloads and JSON files (read with paths) are supported.
func LoadIndicator(path string, paths JSONPaths) (*analytics.Series, error) {
	if isJSON(path) {
		return LoadJSONSeries(path, paths)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := baseName(path)
	br := bufio.NewReader(f)
	head, _ := br.Peek(64)
	var s *analytics.Series
	if isINSEE(head) {
		s, err = ReadINSEE(br, name)
	} else {
		s, err = ReadSeries(br, name, "")
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return s, nil
}

// LoadBenchmarks reads every .csv or .json file of dir as a benchmark named
// after the file. Files that cannot be read are reported together.
func LoadBenchmarks(dir string, jp JSONPaths) (analytics.Benchmarks, error) {
	paths, err := dataFiles(dir, ".csv", ".json")
	if err != nil {
		return nil, err
	}
	bs := analytics.Benchmarks{}
	var errs error
	for _, path := range paths {
		name := baseName(path)
		if isJSON(path) {
			s, err := LoadJSONSeries(path, jp)
			if err != nil {
				errs = errors.Join(errs, fmt.Errorf("could not read benchmark %q: %w", path, err))
				continue
			}
			bs[name] = &analytics.Benchmark{Name: name, Values: s}
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		b, err := ReadBenchmark(f, name)
		f.Close()
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("could not read benchmark %q: %w", path, err))
			continue
		}
		bs[name] = b
	}
	return bs, errs
}

// LoadIndicators reads every .csv or .json file of dir as an indicator.
func LoadIndicators(dir string, jp JSONPaths) ([]*analytics.Series, error) {
	paths, err := dataFiles(dir, ".csv", ".json")
	if err != nil {
		return nil, err
	}
	var res []*analytics.Series
	var errs error
	for _, path := range paths {
		s, err := LoadIndicator(path, jp)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		res = append(res, s)
	}
	return res, errs
}

// Tickers lists the assets having a file in dir. Asset files are named
// "<TICKER>_<anything>.csv" or "<TICKER>.csv".
func Tickers(dir string) ([]string, error) {
	paths, err := csvFiles(dir)
	if err != nil {
		return nil, err
	}
	var tickers []string
	for _, path := range paths {
		tickers = append(tickers, ticker(path))
	}
	return tickers, nil
}

// LoadAssetTable reads the file of an asset in dir, for instance its
// fundamentals or technicals.
func LoadAssetTable(dir, asset string) (*analytics.Table, error) {
	paths, err := csvFiles(dir)
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		if strings.EqualFold(ticker(path), asset) {
			return LoadTable(path)
		}
	}
	return nil, fmt.Errorf("no file for %q in %q: %w", asset, dir, analytics.ErrMissingKey)
}

// csvFiles returns the sorted .csv files of dir.
func csvFiles(dir string) ([]string, error) { return dataFiles(dir, ".csv") }

// dataFiles returns the sorted files of dir having one of the extensions.
func dataFiles(dir string, exts ...string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !slices.ContainsFunc(exts, func(ext string) bool { return strings.EqualFold(filepath.Ext(e.Name()), ext) }) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

func isJSON(path string) bool { return strings.EqualFold(filepath.Ext(path), ".json") }

func baseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func ticker(path string) string {
	t, _, _ := strings.Cut(baseName(path), "_")
	return t
}
