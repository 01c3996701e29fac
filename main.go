package main

import (
	"log"
	"os"

	"personal-ledger/cmd"
	"personal-ledger/config"
)

func main() {
	log.SetOutput(os.Stdout)
	// Ldate | Ltime for date and time, Lshortfile for file:line
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logOutput, err := cfg.LogWriter()
	if err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}
	log.SetOutput(logOutput)

	cmd.Execute(cfg)
}
