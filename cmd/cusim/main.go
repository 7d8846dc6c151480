// Package main provides the entry point for cusim.
// cusim simulates a processor control unit with a memoizing operation cache.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
