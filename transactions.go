package analytics

import (
	"fmt"
	"math"

	"github.com/etnz/analytics/date"
)

// DefaultTolerance is the smallest absolute weight change considered a real rebalance.
const DefaultTolerance = 1e-5

// Action is the direction of a reconstructed trade.
type Action int

const (
	Buy Action = iota
	Sell
)

func (a Action) String() string {
	switch a {
	case Buy:
		return "Buy"
	case Sell:
		return "Sell"
	default:
		panic(fmt.Sprintf("unknown action %d", a))
	}
}

// Transaction is a trade inferred from two consecutive allocation rows.
//
// Prices are looked up on the previous (entry) and current (exit) allocation
// dates. Missing prices and undefined returns are NaN.
type Transaction struct {
	Day          date.Date
	Asset        string
	Action       Action
	WeightChange float64
	EntryPrice   float64
	ExitPrice    float64
	TradeReturn  float64
}

// HasPrices reports whether both entry and exit prices were found.
func (tx Transaction) HasPrices() bool {
	return !math.IsNaN(tx.EntryPrice) && !math.IsNaN(tx.ExitPrice)
}

// HasReturn reports whether the trade return is defined.
func (tx Transaction) HasReturn() bool { return Defined(tx.TradeReturn) }

// ReconstructTransactions infers trades from day over day weight changes.
//
// The CASH column is not tradable. A change is a trade when its absolute
// value is strictly greater than tolerance. Transactions are ordered by date,
// then by the allocation column order.
func ReconstructTransactions(alloc, prices *Table, tolerance float64) []Transaction {
	var txs []Transaction
	for i := 1; i < alloc.Len(); i++ {
		prev, curr := alloc.Day(i-1), alloc.Day(i)
		for j, asset := range alloc.columns {
			if asset == Cash {
				continue
			}
			change := alloc.rows[i][j] - alloc.rows[i-1][j]
			if !(math.Abs(change) > tolerance) {
				continue
			}
			tx := Transaction{
				Day:          curr,
				Asset:        asset,
				Action:       Buy,
				WeightChange: change,
			}
			if change < 0 {
				tx.Action = Sell
			}
			tx.EntryPrice, _ = prices.Lookup(prev, asset)
			tx.ExitPrice, _ = prices.Lookup(curr, asset)
			tx.TradeReturn = ratio(tx.ExitPrice-tx.EntryPrice, tx.EntryPrice)
			txs = append(txs, tx)
		}
	}
	return txs
}

// Rotation returns the sum of absolute weight changes over the transactions.
func Rotation(txs []Transaction) float64 {
	var sum float64
	for _, tx := range txs {
		sum += math.Abs(tx.WeightChange)
	}
	return sum
}

// CashSeries returns the CASH weight of the allocation table over time.
//
// The series is empty when the table has no CASH column.
func CashSeries(alloc *Table) *Series {
	s, err := alloc.Column(Cash)
	if err != nil {
		return EmptySeries(Cash)
	}
	return s
}
