package analytics

import (
	"fmt"
	"math"

	"github.com/etnz/analytics/date"
)

// AssetReturn is the total return of one asset.
type AssetReturn struct {
	Asset  string
	Return float64
}

// BestAndWorst returns the assets with the highest and lowest total return in
// the price table. Assets whose return is undefined are ignored.
func BestAndWorst(prices *Table) (best, worst AssetReturn, err error) {
	found := false
	for _, asset := range prices.columns {
		s, _ := prices.Column(asset)
		s = dropMissing(s)
		r, e := TotalReturn(s)
		if e != nil || !Defined(r) {
			continue
		}
		a := AssetReturn{Asset: asset, Return: r}
		if !found || r > best.Return {
			best = a
		}
		if !found || r < worst.Return {
			worst = a
		}
		found = true
	}
	if !found {
		return best, worst, fmt.Errorf("best and worst asset: %w", ErrEmptyInput)
	}
	return best, worst, nil
}

// AssetPerformance returns the total return and the max drawdown of an asset
// over the range. At least two prices are required in the range.
func AssetPerformance(prices *Table, asset string, rng date.Range) (ret, drawdown float64, err error) {
	s, err := prices.Column(asset)
	if err != nil {
		return math.NaN(), math.NaN(), fmt.Errorf("performance of %q: %w", asset, err)
	}
	s = dropMissing(s.Between(rng))
	if s.Len() < 2 {
		return math.NaN(), math.NaN(), fmt.Errorf("performance of %q over %v: %d prices: %w", asset, rng, s.Len(), ErrEmptyInput)
	}
	ret, _ = TotalReturn(s)
	drawdown, _ = MaxDrawdown(s)
	return ret, drawdown, nil
}
