// Command figure renders the dashboard map for one year and prints the
// Plotly figure JSON. It runs the same render path as the web page, without
// a server, which makes it handy for snapshotting figures or checking a new
// data file before deploying it.
//
// Usage:
//
//	go run ./cmd/figure -data uninsured.csv -year 2014 -variant percent
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/couchcryptid/uninsured-dashboard/internal/dashboard"
	"github.com/couchcryptid/uninsured-dashboard/internal/domain"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out, errOut io.Writer) error {
	fs := flag.NewFlagSet("figure", flag.ContinueOnError)
	fs.SetOutput(errOut)
	dataPath := fs.String("data", "uninsured.csv", "path to the uninsured rate CSV")
	year := fs.Int("year", dashboard.DefaultYear, "year to render")
	variantName := fs.String("variant", "fraction", "display variant: fraction or percent")
	raw := fs.Bool("spec", false, "print the choropleth spec instead of the Plotly figure")
	if err := fs.Parse(args); err != nil {
		return err
	}

	variant, err := dashboard.LookupVariant(*variantName)
	if err != nil {
		return err
	}

	records, err := domain.Load(*dataPath)
	if err != nil {
		return err
	}

	_, spec := dashboard.NewRenderer(records, variant).Render(*year)
	if spec.Empty() {
		fmt.Fprintf(errOut, "warning: no rows for year %d (years present: %v)\n", *year, records.Years())
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if *raw {
		return enc.Encode(spec)
	}
	return enc.Encode(spec.Plotly())
}
