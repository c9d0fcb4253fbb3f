package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"fitgenius/internal/cli"
)

const usage = `Usage: fitgenius-admin [flags] <command> <email>

Commands:
  reset-password  Issue a temporary password; the user must change it at next login.
  set-password    Prompt for a new password and set it directly.

Flags:
  -db path        SQLite database path (default $DB_PATH or data/fitgenius.db)
`

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env: %v", err)
	}

	defaultDBPath := os.Getenv("DB_PATH")
	if defaultDBPath == "" {
		defaultDBPath = filepath.Join("data", "fitgenius.db")
	}

	dbPath := flag.String("db", defaultDBPath, "SQLite database path")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	command := flag.Arg(0)
	email := flag.Arg(1)

	var err error
	switch command {
	case "reset-password":
		err = cli.RunResetPasswordCommand(*dbPath, email)
	case "set-password":
		err = cli.RunSetPasswordCommand(*dbPath, email)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", command)
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s failed: %v", command, err)
	}
}
