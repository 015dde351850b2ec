package main

import (
	"fmt"

	"github.com/JonMackey/HexLoaderUtility/avrconf"
	"github.com/JonMackey/HexLoaderUtility/eval"
	"github.com/JonMackey/HexLoaderUtility/ir"

	"github.com/scott-cotton/cli"
)

func parts(cfg *PartsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parts.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: parts takes no arguments, got %v", cli.ErrUsage, args)
	}
	var filter *eval.Filter
	if cfg.Where != "" {
		filter, err = eval.Compile(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	f, err := cfg.load()
	if err != nil {
		return err
	}
	names, err := selectParts(f, filter, cfg.ID)
	if err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(cc.Out, name); err != nil {
			return err
		}
	}
	return nil
}

// selectParts returns the descriptions, or identifiers with byID, of the
// resolved parts of f matching filter, in file order.  A nil filter
// matches every part.
func selectParts(f *avrconf.ConfigFile, filter *eval.Filter, byID bool) ([]string, error) {
	var res []string
	for _, id := range f.Parts() {
		rec := f.ExportID(id)
		if filter != nil {
			ok, err := filter.Match(rec)
			if err != nil {
				return nil, fmt.Errorf("part %s: %w", id, err)
			}
			if !ok {
				continue
			}
		}
		name := id
		if !byID {
			name, _ = ir.GetString(rec, "desc")
		}
		res = append(res, name)
	}
	return res, nil
}
