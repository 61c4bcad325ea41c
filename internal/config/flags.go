package config

import (
	"flag"
	"os"
)

// parses CLI flags for the products subcommand
func ParseProductFlags() IngestFlags {
	args := os.Args[2:]

	fs := flag.NewFlagSet("products", flag.ExitOnError)
	path := fs.String("path", "./resources/products.json", "path to product export (JSON or CSV)")
	clearFlag := fs.Bool("clear", false, "clear existing products before ingesting")
	fs.Parse(args) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return IngestFlags{Path: *path, Clear: *clearFlag}
}

// returns default flags for product ingestion
func DefaultProductFlags() IngestFlags {
	return IngestFlags{Path: "./resources/products.json", Clear: false}
}
