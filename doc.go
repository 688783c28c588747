// Package folio values a stock portfolio against a catalog of fixed prices.
//
// The core types are:
//   - Catalog: the tickers that can be held and their unit price.
//   - Portfolio: tickers and quantities, in the order they were entered.
//   - Valuation: the value of each holding and the total, see Value.
//
// User input is handled in two steps. Classify turns a line of text into an
// Entry without side effects, and a Collector applies entries to a portfolio
// until the user is done. Prompter drives both over a line oriented terminal.
//
// This package serves as the foundational logic for the `folio` command-line
// tool.
package folio
