// dump-fixtures: encodes every row of a table in every row mode and prints
// a summary table, for eyeballing fixture inputs before a test run.
//
// Run from the module root:
//
//	go run ./scripts/dump-fixtures [path/to/input.csv]
package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Mohsinsiddi/fixgen/internal/config"
	"github.com/Mohsinsiddi/fixgen/internal/fixture"
	"github.com/Mohsinsiddi/fixgen/internal/table"
)

// ── types ─────────────────────────────────────────────────────────────────────

type result struct {
	row     int
	mode    string
	amount  string // encoded amount word, decimal
	flag    string
	encoded string // short form
	err     string
}

// ── main ──────────────────────────────────────────────────────────────────────

func main() {
	path := config.DefaultInput
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	tbl, err := table.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var results []result
	for i := 0; i < tbl.Len(); i++ {
		for _, m := range fixture.Modes() {
			if m.IsLength() {
				continue
			}
			results = append(results, encodeOne(tbl, i, m))
		}
	}

	length, err := fixture.EncodeLength(tbl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	printTable(results)
	fmt.Printf("\n%d rows, length fixture %s\n", tbl.Len(), shortHex(length))
}

func encodeOne(tbl *table.Table, row int, m fixture.Mode) result {
	r := result{row: row, mode: m.Name, amount: "-", flag: "-", encoded: "-"}

	enc, err := fixture.EncodeRow(tbl, row, m)
	if err != nil {
		r.err = shortErr(err)
		return r
	}
	vals, err := fixture.Decode(m, enc)
	if err != nil {
		r.err = shortErr(err)
		return r
	}
	for _, v := range vals {
		switch v.Column.Kind {
		case fixture.KindAmount:
			r.amount = v.String()
		case fixture.KindFlag:
			r.flag = v.String()
		}
	}
	r.encoded = shortHex(enc)
	return r
}

// ── output ────────────────────────────────────────────────────────────────────

func printTable(results []result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ROW\tMODE\tAMOUNT\tTXTYPE\tENCODED\tNOTE")
	fmt.Fprintln(w, strings.Repeat("-", 4)+"\t"+
		strings.Repeat("-", 8)+"\t"+
		strings.Repeat("-", 24)+"\t"+
		strings.Repeat("-", 7)+"\t"+
		strings.Repeat("-", 20)+"\t"+
		strings.Repeat("-", 12))

	lastRow := -1
	for _, r := range results {
		if r.row != lastRow {
			if lastRow != -1 {
				fmt.Fprintln(w, "\t\t\t\t\t") // blank separator between rows
			}
			lastRow = r.row
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			r.row, r.mode, r.amount, r.flag, r.encoded, r.err)
	}
	w.Flush()
}

// ── helpers ───────────────────────────────────────────────────────────────────

func shortHex(s string) string {
	if len(s) < 20 {
		return s
	}
	return s[:10] + "…" + s[len(s)-8:]
}

func shortErr(err error) string {
	s := err.Error()
	if len(s) > 40 {
		return s[:40] + "…"
	}
	return s
}
