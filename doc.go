// Package analytics computes the performance of a portfolio against its
// benchmarks, from the portfolio value series, its allocation weights and
// the asset prices.
//
// The engine is stateless: every function takes its inputs explicitly,
// including the reporting date, and returns freshly allocated results.
//
// The core functionalities include:
//   - Time-Series Primitives: last value, total return, daily and cumulative
//     returns, historical Value at Risk.
//   - Risk/Return Metrics: annualized return, Sharpe and Sortino ratios,
//     maximum drawdown, alpha and beta against a benchmark, turnover and
//     effective number of holdings.
//   - Transaction Reconstruction: trades inferred from consecutive
//     allocation rows, with their entry and exit prices.
//   - Views: summaries, windows, recommendations and indicators used by the
//     renderer and the pad command line.
//
// Undefined metrics, such as a ratio over a zero deviation, are reported as
// NaN and never as an error. See Defined.
package analytics
