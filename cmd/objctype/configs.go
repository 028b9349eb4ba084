package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"go.uber.org/zap"

	objctype "github.com/appsworld/go-objctype"
	"github.com/appsworld/go-objctype/types"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='output with color'"`
	Verbose bool   `cli:"name=v desc='log decoder diagnostics to stderr'"`
	Model   string `cli:"name=model desc='data model for nominal sizes: lp64 or ilp32'"`

	Main *cli.Command
	log  *zap.Logger
}

func (cfg *MainConfig) dataModel() (types.DataModel, error) {
	m, ok := types.ParseDataModel(cfg.Model)
	if !ok {
		return m, fmt.Errorf("%w: unknown data model %q", cli.ErrUsage, cfg.Model)
	}
	return m, nil
}

// logger builds the run's logger on first use and returns it afterwards.
func (cfg *MainConfig) logger() *zap.Logger {
	if cfg.log != nil {
		return cfg.log
	}
	cfg.log = zap.NewNop()
	if cfg.Verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			cfg.log = l
		}
	}
	return cfg.log
}

func (cfg *MainConfig) syncLogger() {
	if cfg.log != nil {
		_ = cfg.log.Sync()
	}
}

func (cfg *MainConfig) decodeOpts(strict bool) []objctype.Option {
	opts := []objctype.Option{objctype.WithLogger(cfg.logger())}
	if strict {
		opts = append(opts, objctype.WithStrict())
	}
	return opts
}

// colorSet reports whether -color was given explicitly, either way.
func (cfg *MainConfig) colorSet() bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" {
			return opt.Value != nil
		}
	}
	return false
}

func (cfg *MainConfig) palette(w io.Writer) *palette {
	if cfg.Color {
		return newPalette(true)
	}
	if cfg.colorSet() {
		return newPalette(false)
	}
	f, ok := w.(*os.File)
	if !ok {
		return newPalette(false)
	}
	return newPalette(isatty.IsTerminal(f.Fd()) && !color.NoColor)
}

type DecodeConfig struct {
	*MainConfig
	Y      bool `cli:"name=y aliases=yaml desc='output yaml'"`
	J      bool `cli:"name=j aliases=json desc='output json'"`
	Strict bool `cli:"name=strict desc='treat every diagnostic as an invalid token'"`

	Decode *cli.Command
}

type DeclConfig struct {
	*MainConfig
	Strict bool `cli:"name=strict desc='treat every diagnostic as an invalid token'"`

	Decl *cli.Command
}

type SigConfig struct {
	*MainConfig

	Sig *cli.Command
}

type PropConfig struct {
	*MainConfig
	Name string `cli:"name=n aliases=name desc='property name (default from the ivar)'"`

	Prop *cli.Command
}

type IfaceConfig struct {
	*MainConfig
	Addrs bool `cli:"name=a aliases=addrs desc='include addresses and ivar offsets'"`
	Brief bool `cli:"name=b aliases=brief desc='print raw encodings instead of declarations'"`

	Iface *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
