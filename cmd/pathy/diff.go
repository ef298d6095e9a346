package main

import (
	"fmt"

	"github.com/abarnert/pathy/encode"
	"github.com/abarnert/pathy/ir"
	"github.com/abarnert/pathy/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two file arguments", cli.ErrUsage)
	}
	from, err := decodeArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	to, err := decodeArg(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	var d *ir.Node
	if cfg.Key != "" {
		if d, err = libdiff.DiffArrayByKey(from, to, cfg.Key, libdiff.Diff); err != nil {
			return err
		}
	} else {
		d = libdiff.Diff(from, to)
	}
	if d == nil {
		return nil
	}
	if err := encode.Encode(d, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding diff: %w", err)
	}
	return nil
}
