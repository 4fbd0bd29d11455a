package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/gproject"
	"github.com/signadot/gproject/debug"
	"github.com/signadot/gproject/encode"
	"github.com/signadot/gproject/format"
	"github.com/signadot/gproject/libdiff"
	"github.com/signadot/gproject/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='output with color'"`
	Strict bool `cli:"name=strict desc='fail on unknown commands and unrecognized lines'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) docOpts() []gproject.Option {
	return []gproject.Option{
		gproject.WithLogger(debug.Logger()),
		gproject.WithParseOptions(parse.ParseStrict(cfg.Strict)),
	}
}

// useColor reports whether output to w is colored: -color when given,
// otherwise whether w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var f format.Format
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
	}
	if f.IsText() && cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) diffColors(w io.Writer) *libdiff.Colors {
	if !cfg.useColor(w) {
		return nil
	}
	return libdiff.NewColors()
}

type ViewConfig struct {
	*MainConfig

	Plugs bool `cli:"name=p aliases=plugs desc='include plugs'"`
	Depth int  `cli:"name=d aliases=depth desc='levels to show, 0 for all'"`
	View  *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	Edits   string `cli:"name=f desc='YAML file mapping plug paths to values'"`
	Merge   string `cli:"name=m desc='JSON merge patch file over plug values'"`
	Patch   string `cli:"name=p desc='JSON patch file over plug values'"`
	DryRun  bool   `cli:"name=n desc='print the changes instead of the result'"`
	InPlace bool   `cli:"name=i desc='write the result to the input file'"`
	Set     *cli.Command
}

type FindConfig struct {
	*MainConfig

	IDPaths bool `cli:"name=id desc='print object id paths'"`
	Find    *cli.Command
}

type AOVConfig struct {
	*MainConfig
	AOV *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='only set the exit code'"`
	Check *cli.Command
}
