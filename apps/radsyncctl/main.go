// Package main はradsyncctlのエントリーポイント。
package main

import (
	"errors"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/oyaguma3/radsync/apps/radsyncctl/internal/command"
)

func main() {
	parser := command.NewParser(os.Stdout)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
