package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/analytics"
	md "github.com/nao1215/markdown"
)

// TransactionsMarkdown renders the trades reconstructed from the allocation
// changes, and the total rotation. Prices are formatted in currency.
func TransactionsMarkdown(txs []analytics.Transaction, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("No transaction detected in the allocations.")
	} else {
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Date", "Asset", "Action", "Weight Change", "Entry Price", "Exit Price", "Return"},
		}
		for _, tx := range txs {
			table.Rows = append(table.Rows, []string{
				tx.Day.String(),
				tx.Asset,
				tx.Action.String(),
				signed(tx.WeightChange),
				analytics.M(tx.EntryPrice, currency).String(),
				analytics.M(tx.ExitPrice, currency).String(),
				signed(tx.TradeReturn),
			})
		}
		doc.Table(table)
	}

	doc.H2("Rotation")
	doc.PlainText(fmt.Sprintf("Total rotation: %s", md.Bold(pct(analytics.Rotation(txs)))))
	return doc.String()
}

// CashMarkdown renders the CASH weight over time.
func CashMarkdown(cash *analytics.Series) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Cash Balance")
	if cash.Len() == 0 {
		doc.PlainText(fmt.Sprintf("There is no %s column in the allocations.", analytics.Cash))
		return doc.String()
	}

	on, last := cash.Latest()
	doc.PlainText(fmt.Sprintf("Cash weight on %s: %s", on, md.Bold(pct(last))))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Date", "Weight", "Change"},
	}
	prev := analytics.Undefined()
	for on, w := range cash.Points() {
		table.Rows = append(table.Rows, []string{on.String(), pct(w), signed(w - prev)})
		prev = w
	}
	doc.Table(table)
	return doc.String()
}
