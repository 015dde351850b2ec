package main

import (
	"fmt"
	"io"

	"github.com/JonMackey/HexLoaderUtility/avrconf"
	"github.com/JonMackey/HexLoaderUtility/encode"
	"github.com/JonMackey/HexLoaderUtility/ir"
	"github.com/JonMackey/HexLoaderUtility/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	f, err := cfg.load()
	if err != nil {
		return err
	}
	a, err := exportDesc(f, args[0])
	if err != nil {
		return err
	}
	b, err := exportDesc(f, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		a, b = b, a
	}
	if cfg.Merge {
		d, err := libdiff.MergePatch(a, b)
		if err != nil {
			return fmt.Errorf("error computing merge patch: %w", err)
		}
		_, err = fmt.Fprintf(cc.Out, "%s\n", d)
		return err
	}
	changes := libdiff.Diff(a, b)
	if len(changes) == 0 {
		return nil
	}
	if err := writeChanges(cc.Out, changes, cfg.colors(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func exportDesc(f *avrconf.ConfigFile, desc string) (*ir.Node, error) {
	rec := f.Export(desc)
	if rec == nil {
		return nil, fmt.Errorf("no part with description %q in %s", desc, f.Path())
	}
	return rec, nil
}

func writeChanges(w io.Writer, changes []libdiff.Change, colors *encode.Colors) error {
	for _, c := range changes {
		line := c.String()
		if colors != nil {
			attr := encode.InsertColor
			switch c.Kind {
			case libdiff.Delete:
				attr = encode.DeleteColor
			case libdiff.Replace:
				attr = encode.ReplaceColor
			}
			line = colors.Color(attr, line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
