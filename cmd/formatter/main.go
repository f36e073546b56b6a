package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mskmysht/covid-treatment-sickbed/internal/app"
)

func main() {
	cfgFileName := flag.String("c", "", "Path to config file (optional)")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-c config.yml] report_file save_dir\n", os.Args[0])
		os.Exit(2)
	}

	app.New(*cfgFileName).Format(flag.Arg(0), flag.Arg(1))
}
