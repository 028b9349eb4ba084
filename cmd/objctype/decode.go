package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	objctype "github.com/appsworld/go-objctype"
	"github.com/appsworld/go-objctype/types"
)

func decode(cfg *DecodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decode.Parse(cc, args)
	if err != nil {
		cfg.Decode.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: decode requires at least one encoding", cli.ErrUsage)
	}
	defer cfg.syncLogger()
	failed, err := decodeArgs(cfg, cc.Out, args)
	if err != nil {
		return err
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// decodeArgs writes every decoded argument to w and reports whether any of
// them did not decode cleanly.
func decodeArgs(cfg *DecodeConfig, w io.Writer, args []string) (bool, error) {
	model, err := cfg.dataModel()
	if err != nil {
		return false, err
	}
	pal := cfg.palette(w)
	opts := cfg.decodeOpts(cfg.Strict)
	failed := false
	for i, arg := range args {
		res := objctype.Decode(arg, opts...)
		if res.Status() != objctype.NoError {
			failed = true
		}
		if i > 0 {
			sep := "\n"
			if cfg.Y {
				sep = "---\n"
			}
			if _, err := io.WriteString(w, sep); err != nil {
				return failed, err
			}
		}
		if err := writeResult(cfg, w, res, model, pal); err != nil {
			return failed, fmt.Errorf("error writing %q: %w", arg, err)
		}
	}
	return failed, nil
}

func writeResult(cfg *DecodeConfig, w io.Writer, res *objctype.Result, model types.DataModel, pal *palette) error {
	var (
		d   []byte
		err error
	)
	switch {
	case cfg.J:
		d, err = yaml.MarshalWithOptions(viewResult(res, model), yaml.JSON())
	case cfg.Y:
		d, err = yaml.Marshal(viewResult(res, model))
	default:
		if res.Status() == objctype.InvalidInput {
			msg, _ := res.Diagnostic()
			_, err := fmt.Fprintln(w, pal.diag.Sprint("! "+msg))
			return err
		}
		return writeTree(w, res, model, pal)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
