// Package main is the entry point for the tagfilter CLI.
package main

import (
	"os"

	"tagfilter/cmd/tagfilter/app"
	"tagfilter/internal/common"
)

func main() {
	defer common.Sync()
	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
