package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/JonMackey/HexLoaderUtility/avrconf"
	"github.com/JonMackey/HexLoaderUtility/config"
	"github.com/JonMackey/HexLoaderUtility/encode"
	"github.com/JonMackey/HexLoaderUtility/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Conf     string `cli:"name=f aliases=conf desc='avrdude.conf file to read'"`
	Settings string `cli:"name=config desc='settings file'"`
	Color    bool   `cli:"name=color desc='output with color'"`
	V        bool   `cli:"name=v desc='verbose logging'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command

	settings *config.Config
	log      *slog.Logger
	files    *avrconf.Files
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

// setup loads the settings and builds the logger.  Flags given on the
// command line take precedence over settings.
func (cfg *MainConfig) setup() error {
	var err error
	if cfg.Settings != "" {
		cfg.settings, err = config.Load(cfg.Settings)
	} else {
		cfg.settings, err = config.Discover()
	}
	if err != nil {
		return err
	}
	level, err := cfg.settings.Level()
	if err != nil {
		return err
	}
	if cfg.V {
		level = slog.LevelDebug
	}
	cfg.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	return nil
}

func (cfg *MainConfig) confPath() string {
	if cfg.Conf != "" {
		return cfg.Conf
	}
	return cfg.settings.Conf
}

// load reads the configured avrdude.conf, once per run.
func (cfg *MainConfig) load() (*avrconf.ConfigFile, error) {
	p := cfg.confPath()
	if f := cfg.files.Get(p); f != nil {
		return f, nil
	}
	return cfg.files.Load(p, avrconf.WithLogger(cfg.log))
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return cfg.settings.Format
}

func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return nil
	}
	if cfg.settings.Color != nil {
		if *cfg.settings.Color {
			return encode.NewColors()
		}
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if c := cfg.colors(w); c != nil {
		res = append(res, encode.EncodeColors(c))
	}
	return res
}

type PartsConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='only list parts matching this expression'"`
	ID    bool   `cli:"name=id desc='list identifiers instead of descriptions'"`

	Parts *cli.Command
}

type ExportConfig struct {
	*MainConfig
	Indent int    `cli:"name=indent desc='indent width of yaml and json output'"`
	Split  string `cli:"name=split desc='write each part to its own file in this directory'"`

	Export *cli.Command
}

type IDConfig struct {
	*MainConfig
	D bool `cli:"name=d desc='append the path delimiter'"`

	ID *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Merge   bool `cli:"name=merge desc='output a JSON merge patch'"`
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}
