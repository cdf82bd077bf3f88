package main

import (
	"os"

	"api-log-analytics/internal/cli"
)

func main() {
	if err := cli.NewAnalyzeCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
