// Command finledger-export writes the persisted ledger as CSV to stdout or
// to a file. It reads the same configuration as the server, so pointing it
// at a SQLite database exports whatever the server last saved.
package main

import (
	"context"
	"flag"
	"os"

	"finledger/internal/cli"
	"finledger/internal/ledger"
	"finledger/internal/report"
	"finledger/internal/services"
)

func main() {
	output := flag.String("o", "", "write CSV to this file instead of stdout")
	flag.Parse()

	logger := cli.SetupLogger()
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig(logger)

	store := cli.OpenStore(logger, cfg)

	service := services.NewLedgerService(ledger.New(), store, nil)
	defer service.Close()

	service.Hydrate(context.Background())

	csv := report.ToCSV(service.Entries())

	if *output == "" {
		os.Stdout.WriteString(csv + "\n")
		return
	}

	if err := os.WriteFile(*output, []byte(csv+"\n"), 0644); err != nil {
		logger.Error("Failed to write export file", "error", err, "path", *output)
		os.Exit(1)
	}
	logger.Info("Ledger exported", "path", *output, "entries", len(service.Entries()))
}
