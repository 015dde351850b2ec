package main

import (
	"fmt"

	"github.com/JonMackey/HexLoaderUtility/encode"
	"github.com/JonMackey/HexLoaderUtility/format"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: dump takes no arguments, got %v", cli.ErrUsage, args)
	}
	f, err := cfg.load()
	if err != nil {
		return err
	}
	opts := append(cfg.encOpts(cc.Out), encode.EncodeFormat(format.FlatFormat))
	return f.Dump(cc.Out, opts...)
}
