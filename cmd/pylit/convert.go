package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/pylit-format/go-pylit/encode"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range orStdin(args) {
		node, err := parseArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		switch f := cfg.outFormat(); {
		case f.IsJSON():
			d, err := encode.MarshalJSON(node)
			if err != nil {
				return fmt.Errorf("error converting %s: %w", arg, err)
			}
			fmt.Fprintf(cc.Out, "%s\n", d)
		case f.IsYAML():
			d, err := encode.MarshalYAML(node)
			if err != nil {
				return fmt.Errorf("error converting %s: %w", arg, err)
			}
			fmt.Fprintf(cc.Out, "%s", d)
		default:
			if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
				return fmt.Errorf("error encoding %s: %w", arg, err)
			}
			fmt.Fprintln(cc.Out)
		}
	}
	return nil
}
