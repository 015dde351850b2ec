package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/JonMackey/HexLoaderUtility/avrconf"
	"github.com/JonMackey/HexLoaderUtility/encode"
	"github.com/JonMackey/HexLoaderUtility/format"
	"github.com/JonMackey/HexLoaderUtility/ir"

	"github.com/scott-cotton/cli"
)

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: export requires at least one description", cli.ErrUsage)
	}
	f, err := cfg.load()
	if err != nil {
		return err
	}
	res, err := exportParts(f, args)
	if err != nil {
		return err
	}
	opts := append(cfg.encOpts(cc.Out), encode.EncodeIndent(cfg.Indent))
	if cfg.Split != "" {
		paths, err := splitParts(cfg.Split, res, cfg.outFormat(), opts...)
		for _, p := range paths {
			cfg.log.Debug("wrote part", "path", p)
		}
		return err
	}
	if err := encode.Encode(res, cc.Out, opts...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

// exportParts resolves each description and keys the records by id.
func exportParts(f *avrconf.ConfigFile, descs []string) (*ir.Node, error) {
	res := ir.NewObject()
	for _, desc := range descs {
		rec, err := exportDesc(f, desc)
		if err != nil {
			return nil, err
		}
		id, _ := ir.GetString(rec, "id")
		res.Insert(id, rec)
	}
	return res, nil
}

// splitParts writes each child of res to dir/<id><suffix> and returns the
// paths written.  Colors are never written to files.
func splitParts(dir string, res *ir.Node, f format.Format, opts ...encode.EncodeOption) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	opts = append(opts, encode.EncodeColors(nil))
	var paths []string
	for id, rec := range res.All() {
		p := filepath.Join(dir, id+f.Suffix())
		w, err := os.Create(p)
		if err != nil {
			return paths, err
		}
		err = encode.Encode(rec, w, opts...)
		if cerr := w.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return paths, fmt.Errorf("error encoding %s: %w", p, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}
