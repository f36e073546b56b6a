package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mskmysht/covid-treatment-sickbed/internal/app"
)

func main() {
	cfgFileName := flag.String("c", "", "Path to config file (optional)")
	saveTo := flag.String("d", "", "Directory to save report files to")
	n := flag.Int("n", 0, "Number of newest editions to fetch, 0 means all known")
	flag.Parse()

	if *saveTo == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -d save_dir [-c config.yml] [-n count]\n", os.Args[0])
		os.Exit(2)
	}

	app.New(*cfgFileName).Scrape(*saveTo, *n)
}
