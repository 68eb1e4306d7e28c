// Package report computes and renders the analytics views of a data folder.
//
// It ties the loader, the analytics engine and the renderer together, so that
// the command line and the assistant share the same views.
package report

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/etnz/analytics"
	"github.com/etnz/analytics/date"
	"github.com/etnz/analytics/loader"
	"github.com/etnz/analytics/renderer"
	log "github.com/sirupsen/logrus"
)

// Settings of the analytics.
type Settings struct {
	RiskFreeRate float64          // annual
	Reference    string           // benchmark used for alpha and beta
	VaRAlpha     float64          // VaR tail probability
	Tolerance    float64          // smallest weight change that is a trade
	Currency     string           // of the portfolio value
	AsOf         date.Date        // default reporting date, zero for the last portfolio date
	JSON         loader.JSONPaths // of JSON benchmark and market files
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		RiskFreeRate: 0.02,
		Reference:    "SP500",
		VaRAlpha:     analytics.DefaultVaRAlpha,
		Tolerance:    analytics.DefaultTolerance,
		Currency:     "USD",
		JSON:         loader.DefaultJSONPaths,
	}
}

// Report renders the views of a loaded data folder.
type Report struct {
	Settings Settings
	Data     *loader.Dataset
}

// Open loads the data folder dir.
func Open(dir string, s Settings) (*Report, error) {
	ds, err := loader.Load(dir, s.JSON)
	if err != nil {
		return nil, err
	}
	if ds.Skipped != nil {
		log.WithError(ds.Skipped).Warn("some benchmarks were skipped")
	}
	log.WithFields(log.Fields{
		"dir":        dir,
		"portfolio":  ds.Portfolio.Len(),
		"benchmarks": len(ds.Benchmarks),
	}).Debug("data folder loaded")
	return &Report{Settings: s, Data: ds}, nil
}

func (r *Report) params() analytics.Params {
	return analytics.Params{RiskFreeRate: r.Settings.RiskFreeRate, PeriodsPerYear: 252}
}

// AsOf parses a reporting date. An empty string is the configured date, or
// the last portfolio date.
func (r *Report) AsOf(s string) (date.Date, error) {
	if s != "" {
		return loader.ParseDate(s)
	}
	if !r.Settings.AsOf.IsZero() {
		return r.Settings.AsOf, nil
	}
	if r.Data.Portfolio.Len() == 0 {
		return date.Date{}, fmt.Errorf("no portfolio value: %w", analytics.ErrEmptyInput)
	}
	last, _ := r.Data.Portfolio.Latest()
	return last, nil
}

// reference returns the benchmark used for alpha and beta, nil if there is none.
func (r *Report) reference() *analytics.Benchmark {
	return r.Data.Benchmarks.Find(r.Settings.Reference)
}

// Summary renders the key metrics of the portfolio, next to those of
// benchmark when it is not empty.
func (r *Report) Summary(asOf date.Date, benchmark string) (string, error) {
	in := analytics.SummaryInput{
		Values:      r.Data.Portfolio,
		Allocations: r.Data.Allocations,
		AsOf:        asOf,
		Params:      r.params(),
		Portfolio:   true,
	}
	ref := r.reference()
	var refName string
	if ref != nil {
		in.Reference, refName = ref.Values, ref.Name
	}
	p, err := analytics.Summarize(in)
	if err != nil {
		return "", err
	}

	var bench *analytics.Summary
	if benchmark != "" {
		b, ok := r.Data.Benchmarks[benchmark]
		if !ok {
			return "", fmt.Errorf("benchmark %q (known %v): %w", benchmark, r.Data.Benchmarks.Names(), analytics.ErrMissingKey)
		}
		in.Values, in.Portfolio = b.Values, false
		s, err := analytics.Summarize(in)
		if err != nil {
			return "", err
		}
		bench = &s
	}
	return renderer.SummaryMarkdown(p, bench, refName), nil
}

// Overview renders the general view over window.
func (r *Report) Overview(asOf date.Date, window analytics.Window) (string, error) {
	o, err := renderer.NewOverview(renderer.OverviewInput{
		Portfolio:   r.Data.Portfolio,
		Benchmarks:  r.Data.Benchmarks,
		Allocations: r.Data.Allocations,
		Prices:      r.Data.Prices,
		AsOf:        asOf,
		Window:      window,
		Alpha:       r.Settings.VaRAlpha,
		Currency:    r.Settings.Currency,
	})
	if err != nil {
		return "", err
	}
	return renderer.OverviewMarkdown(o), nil
}

// allocations returns the allocation table, or an error when there is none.
func (r *Report) allocations() (*analytics.Table, error) {
	if r.Data.Allocations == nil {
		return nil, fmt.Errorf("%s: %w", loader.AllocationFile, fs.ErrNotExist)
	}
	return r.Data.Allocations, nil
}

// Transactions renders the trades inferred from the allocations up to asOf.
func (r *Report) Transactions(asOf date.Date) (string, error) {
	alloc, err := r.allocations()
	if err != nil {
		return "", err
	}
	prices := r.Data.Prices
	if prices == nil {
		prices = analytics.MustTable()
	}
	txs := analytics.ReconstructTransactions(alloc.Until(asOf), prices, r.Settings.Tolerance)
	log.WithField("count", len(txs)).Debug("transactions reconstructed")
	return renderer.TransactionsMarkdown(txs, r.Settings.Currency), nil
}

// Cash renders the CASH weight up to asOf.
func (r *Report) Cash(asOf date.Date) (string, error) {
	alloc, err := r.allocations()
	if err != nil {
		return "", err
	}
	return renderer.CashMarkdown(analytics.CashSeries(alloc.Until(asOf))), nil
}

// Recommendation renders the next planned allocation against the one in force on asOf.
func (r *Report) Recommendation(asOf date.Date) (string, error) {
	alloc, err := r.allocations()
	if err != nil {
		return "", err
	}
	rec, err := analytics.Recommend(alloc, asOf)
	if err != nil {
		return "", err
	}
	return renderer.RecommendationMarkdown(rec), nil
}

// Tickers lists the assets having fundamentals.
func (r *Report) Tickers() ([]string, error) {
	return loader.Tickers(filepath.Join(r.Data.Dir, loader.FundamentalsDir))
}

// assetTable loads an optional asset file.
func (r *Report) assetTable(dir, asset string) (*analytics.Table, error) {
	t, err := loader.LoadAssetTable(filepath.Join(r.Data.Dir, dir), asset)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, analytics.ErrMissingKey) {
		log.WithFields(log.Fields{"asset": asset, "dir": dir}).Debug("no asset file")
		return nil, nil
	}
	return t, err
}

// Asset renders the summary of an asset over rng.
func (r *Report) Asset(asset string, rng date.Range) (string, error) {
	fund, err := r.assetTable(loader.FundamentalsDir, asset)
	if err != nil {
		return "", err
	}
	tech, err := r.assetTable(loader.TechnicalsDir, asset)
	if err != nil {
		return "", err
	}
	if fund == nil && tech == nil && (r.Data.Prices == nil || !r.Data.Prices.Has(asset)) {
		return "", fmt.Errorf("asset %q: %w", asset, analytics.ErrMissingKey)
	}
	alloc := r.Data.Allocations
	if alloc != nil {
		alloc = alloc.Until(rng.To)
	}
	v := renderer.NewAssetView(renderer.AssetInput{
		Asset:        asset,
		Fundamentals: fund,
		Technicals:   tech,
		Allocations:  alloc,
		Prices:       r.Data.Prices,
		Range:        rng,
	})
	return renderer.AssetMarkdown(v), nil
}

// Market renders the market indicators restricted to the last years, all of
// them when years is not positive.
func (r *Report) Market(years int) (string, error) {
	series, err := loader.LoadIndicators(filepath.Join(r.Data.Dir, loader.MarketsDir), r.Settings.JSON)
	if errors.Is(err, fs.ErrNotExist) && series == nil {
		return renderer.MarketMarkdown(nil), nil
	}
	if err != nil {
		log.WithError(err).Warn("some indicators were skipped")
	}
	var indicators []analytics.Indicator
	for _, s := range series {
		ind, err := analytics.LatestIndicator(analytics.Lookback(s, years))
		if err != nil {
			log.WithError(err).WithField("indicator", s.Name()).Debug("indicator skipped")
			continue
		}
		indicators = append(indicators, ind)
	}
	return renderer.MarketMarkdown(indicators), nil
}
