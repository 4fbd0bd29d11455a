package main

import (
	"fmt"
	"os"

	"github.com/signadot/gproject"
	"github.com/signadot/gproject/edits"
	"github.com/signadot/gproject/libdiff"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: set requires a file", cli.ErrUsage)
	}
	file := args[0]
	if cfg.InPlace && file == "-" {
		return fmt.Errorf("%w: cannot write stdin in place", cli.ErrUsage)
	}
	doc, err := getDocFile(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	es, err := cfg.edits(doc, args[1:])
	if err != nil {
		return err
	}
	if err := doc.SetPlugValues(es...); err != nil {
		return err
	}
	switch {
	case cfg.DryRun:
		return libdiff.Pretty(cc.Out, string(doc.OriginalContent()), string(doc.ModifiedContent()), cfg.diffColors(cc.Out))
	case cfg.InPlace:
		if !doc.HasChanged() {
			return nil
		}
		return doc.Write(file)
	default:
		_, err := doc.WriteTo(cc.Out)
		return err
	}
}

func (cfg *SetConfig) edits(doc *gproject.Document, assigns []string) ([]gproject.Edit, error) {
	var entries []edits.Entry
	if cfg.Edits != "" {
		d, err := os.ReadFile(cfg.Edits)
		if err != nil {
			return nil, err
		}
		es, err := edits.LoadYAML(d)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", cfg.Edits, err)
		}
		entries = append(entries, es...)
	}
	for _, a := range assigns {
		e, err := edits.ParseAssign(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		entries = append(entries, e)
	}
	res, err := edits.Resolve(doc, entries)
	if err != nil {
		return nil, err
	}
	for _, pf := range []struct {
		file  string
		apply func(*gproject.Document, []byte) ([]gproject.Edit, error)
	}{
		{cfg.Merge, edits.MergePatch},
		{cfg.Patch, edits.JSONPatch},
	} {
		if pf.file == "" {
			continue
		}
		d, err := os.ReadFile(pf.file)
		if err != nil {
			return nil, err
		}
		es, err := pf.apply(doc, d)
		if err != nil {
			return nil, fmt.Errorf("error applying %s: %w", pf.file, err)
		}
		res = append(res, es...)
	}
	return res, nil
}
