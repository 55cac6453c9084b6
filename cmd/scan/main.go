package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"tamperscan/internal/catalog"
	"tamperscan/internal/engine"
	"tamperscan/internal/host"
	"tamperscan/internal/output"
)

func main() {
	var (
		jsonPath = flag.String("json", "", "Write the full scan report to this path as JSON")
		ci       = flag.Bool("ci", false, "CI mode (single-line machine-readable verdict on stdout)")
		quiet    = flag.Bool("quiet", false, "Suppress the human-readable summary")
	)
	flag.Parse()

	log := logrus.New()

	start := time.Now().UTC()
	eng := engine.New(host.OS{}, catalog.Default())
	outcomes := eng.Evaluate()
	report := output.NewReport(start, outcomes)

	if *jsonPath != "" {
		if err := output.WriteJSON(*jsonPath, report); err != nil {
			log.WithError(err).Fatal("write json report")
		}
		if !*quiet && !*ci {
			fmt.Println("JSON:", *jsonPath)
		}
	}

	if *ci {
		raw, _ := json.Marshal(report.Verdict)
		fmt.Println(string(raw))
	} else if !*quiet {
		output.WriteText(os.Stdout, report)
	}

	if report.Verdict.Compromised {
		os.Exit(2)
	}
}
