package main

import (
	"errors"
	"fmt"

	"github.com/JonMackey/HexLoaderUtility/avrconf"
	"github.com/JonMackey/HexLoaderUtility/token"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: check takes no arguments, got %v", cli.ErrUsage, args)
	}
	f, err := cfg.load()
	if err == nil {
		_, err = fmt.Fprintf(cc.Out, "ok: %d parts in %s\n", len(f.Parts()), f.Path())
		return err
	}
	where := cfg.confPath()
	var te *token.TokenizeErr
	if errors.As(err, &te) {
		line, col := te.Pos.LineCol()
		where = fmt.Sprintf("%s:%d:%d", where, line, col)
	}
	fmt.Fprintf(cc.Out, "%s: %s: %v\n", where, avrconf.Code(err), err)
	return cli.ExitCodeErr(1)
}
