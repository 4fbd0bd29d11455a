package main

import (
	"fmt"
	"io"

	"github.com/signadot/gproject"

	"github.com/scott-cotton/cli"
)

func getDocFile(cfg *MainConfig, cc *cli.Context, path string) (*gproject.Document, error) {
	if path != "-" {
		return gproject.ParseFile(path, cfg.docOpts()...)
	}
	d, err := io.ReadAll(cc.In)
	if err != nil {
		return nil, fmt.Errorf("error reading stdin: %w", err)
	}
	return gproject.Parse(d, cfg.docOpts()...)
}
