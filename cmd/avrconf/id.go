package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func id(cfg *IDConfig, cc *cli.Context, args []string) error {
	args, err := cfg.ID.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: id requires 1 arg, got %v", cli.ErrUsage, args)
	}
	f, err := cfg.load()
	if err != nil {
		return err
	}
	res, ok := f.IDForDesc(args[0], cfg.D)
	if !ok {
		return fmt.Errorf("no part with description %q in %s", args[0], f.Path())
	}
	_, err = fmt.Fprintln(cc.Out, res)
	return err
}
