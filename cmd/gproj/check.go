package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires at least one file", cli.ErrUsage)
	}
	failed := 0
	for _, file := range args {
		if err := checkFile(cfg, cc, file); err != nil {
			failed++
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: %v\n", file, err)
			}
			continue
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: ok\n", file)
		}
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkFile(cfg *CheckConfig, cc *cli.Context, file string) error {
	doc, err := getDocFile(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	if _, err := doc.DocFormatRev(); err != nil {
		return err
	}
	return doc.Validate()
}
