package main

import (
	"fmt"

	"github.com/signadot/gproject"
	"github.com/signadot/gproject/codec"
	"github.com/signadot/gproject/encode"
	"github.com/signadot/gproject/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: get requires a node or plug path and a file", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	doc, err := getDocFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	if _, attr, ok := ir.SplitAttr(path); ok && attr != "" {
		p, err := doc.PathToPlug(path)
		if err != nil {
			return err
		}
		lit, err := plugLiteral(doc, p)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cc.Out, lit)
		return err
	}
	n, err := doc.PathToNode(path)
	if err != nil {
		return err
	}
	opts := append(cfg.encOpts(cc.Out), encode.EncodePlugs(true), encode.EncodeDepth(1))
	return encode.Encode(n, cc.Out, opts...)
}

func plugLiteral(doc *gproject.Document, p *ir.Plug) (string, error) {
	if p.Span.Valid() {
		return doc.Literal(p), nil
	}
	return codec.Encode(p.Value)
}
