package main

import (
	"fmt"

	"github.com/signadot/gproject/query"

	"github.com/scott-cotton/cli"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: find requires an expression and a file", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	doc, err := getDocFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	nodes, err := q.Filter(doc.Nodes())
	if err != nil {
		return err
	}
	for _, n := range nodes {
		p, err := n.Path()
		if cfg.IDPaths {
			p, err = doc.NodeToIDPath(n)
		}
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(cc.Out, p); err != nil {
			return err
		}
	}
	return nil
}
