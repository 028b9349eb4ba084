package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "objctype").
		WithSynopsis("objctype [opts] command [opts]").
		WithDescription("objctype decodes Objective-C runtime type encodings.").
		WithOpts(opts...).
		WithSubs(
			DecodeCommand(cfg),
			DeclCommand(cfg),
			SigCommand(cfg),
			PropCommand(cfg),
			IfaceCommand(cfg),
			DiffCommand(cfg))
}

func DecodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DecodeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("decode").
		WithAliases("d", "dec").
		WithSynopsis("decode [-y|-j] [-strict] encoding...").
		WithDescription("decode type encodings and show the type tree").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return decode(cfg, cc, args)
		})
	cfg.Decode = cmd
	return cmd
}

func DeclCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DeclConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("decl").
		WithSynopsis("decl encoding...").
		WithDescription("render type encodings as C declarations").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return decl(cfg, cc, args)
		})
	cfg.Decl = cmd
	return cmd
}

func SigCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SigConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("sig").
		WithAliases("s").
		WithSynopsis("sig method-types...").
		WithDescription("split method type encodings such as v24@0:8@16 into their arguments").
		WithRun(func(cc *cli.Context, args []string) error {
			return sig(cfg, cc, args)
		})
	cfg.Sig = cmd
	return cmd
}

func PropCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PropConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("prop").
		WithAliases("p").
		WithSynopsis("prop [-n name] attributes...").
		WithDescription("render property attribute strings as @property declarations").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return prop(cfg, cc, args)
		})
	cfg.Prop = cmd
	return cmd
}

func IfaceCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &IfaceConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("iface").
		WithAliases("i").
		WithSynopsis("iface [-a] [-b] [files]").
		WithDescription("render yaml class, protocol and category descriptions as headers").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return iface(cfg, cc, args)
		})
	cfg.Iface = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithSynopsis("diff encoding1 encoding2").
		WithDescription("compare the type trees of two encodings, exit 1 if they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
