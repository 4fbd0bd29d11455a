package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func aov(cfg *AOVConfig, cc *cli.Context, args []string) error {
	args, err := cfg.AOV.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 4 {
		return fmt.Errorf("%w: aov requires a render pass, a layer, a label and a file", cli.ErrUsage)
	}
	doc, err := getDocFile(cfg.MainConfig, cc, args[3])
	if err != nil {
		return err
	}
	n, err := doc.AOV(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	p, err := n.Path()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, p)
	return err
}
