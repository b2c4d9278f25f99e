// Package main provides the confetti command line tool.
//
// Usage:
//
//	confetti generate [--config file] [--preset name] [--seed n]
//	confetti presets  [--config file]
//	confetti serve    [--config file] [--preset name] [--addr :8080] [--max-instances 16]
//
// Environment:
//
//	CONFETTI_LOG_LEVEL  log level (default warn)
//	CONFETTI_JSON_LOG   set to 1 for JSON logs
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
