package main

import (
	"github.com/JonMackey/HexLoaderUtility/avrconf"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{files: avrconf.NewFiles()}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "avrconf").
		WithSynopsis("avrconf [opts] command [opts]").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return avrconfMain(cfg, cc, args)
		}).
		WithSubs(
			PartsCommand(cfg),
			ExportCommand(cfg),
			IDCommand(cfg),
			DumpCommand(cfg),
			DiffCommand(cfg),
			CheckCommand(cfg))
}

const mainDescription = `avrconf reads part definitions from avrdude.conf files.

Parts are resolved through their parent chain: a part has every retained
field of its ancestors that it does not define itself.  Memory regions are
flattened into dotted fields such as flash.size.

Settings are read from $AVRCONF_CONFIG or avrconf/config.toml under the
user configuration directory:

  conf = "/etc/avrdude.conf"
  format = "yaml"       # flat, yaml or json
  color = true
  log_level = "info"    # debug, info, warn or error
`

func PartsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PartsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Parts, "parts").
		WithAliases("p", "ls").
		WithSynopsis("parts [-where expr] [-id]").
		WithDescription("list part descriptions in file order, optionally filtered by an expression over the resolved part, such as 'flash.size >= 32768'").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return parts(cfg, cc, args)
		})
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: flat/f, yaml/y, json/j",
			Type:        cli.NamedFuncOpt(mainCfg.fmtFunc(&mainCfg.OutFormat), "(format)"),
		})
	return cli.NewCommandAt(&cfg.Export, "export").
		WithAliases("e", "x").
		WithSynopsis("export [-O format] [-indent n] [-split dir] <desc>...").
		WithDescription("write the resolved parts with the given descriptions, keyed by id, or one file per part named by id with -split").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return export(cfg, cc, args)
		})
}

func IDCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &IDConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.ID, "id").
		WithSynopsis("id [-d] <desc>").
		WithDescription("print the identifier of the part with the given description").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return id(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump").
		WithDescription("write every part as stored, without inheritance, in flat form").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-merge] [-r] <descA> <descB>").
		WithDescription("compare two resolved parts; exits with 1 if they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check").
		WithDescription("parse the file and report the first error; exits with 1 on error").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}
