// Command gen writes the default navigation config to doc/nav.toml so the
// documented defaults never drift from DefaultConfig.
//
// Usage:
//
//	go run ./doc/gen/ [output path]
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-theft-auto/nav"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	out := filepath.Join("doc", "nav.toml")
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	cfg := nav.DefaultConfig()
	data, err := cfg.Encode()
	if err != nil {
		return err
	}
	// Round-trip so a default that fails validation is caught here.
	if _, err := nav.ParseConfig(data); err != nil {
		return fmt.Errorf("default config does not parse: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	header := []byte("# Default navigation settings. Generated by doc/gen; do not edit.\n\n")
	if err := os.WriteFile(out, append(header, data...), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}
