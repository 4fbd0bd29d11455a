package main

import (
	"fmt"

	"github.com/signadot/gproject/encode"
	"github.com/signadot/gproject/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: view requires a file and optionally a node path", cli.ErrUsage)
	}
	doc, err := getDocFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	node := doc.Root()
	if len(args) == 2 {
		node, err = doc.PathToNode(args[1])
		if err != nil {
			return err
		}
	}
	if node == nil {
		return fmt.Errorf("%w: empty graph", ir.ErrPath)
	}
	opts := append(cfg.encOpts(cc.Out), encode.EncodePlugs(cfg.Plugs), encode.EncodeDepth(cfg.Depth))
	if err := encode.Encode(node, cc.Out, opts...); err != nil {
		return fmt.Errorf("error encoding %s: %w", node, err)
	}
	return nil
}
