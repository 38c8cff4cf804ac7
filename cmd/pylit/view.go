package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/pylit-format/go-pylit/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range orStdin(args) {
		node, err := parseArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}
