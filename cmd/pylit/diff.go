package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/pylit-format/go-pylit/encode"
	"github.com/pylit-format/go-pylit/ir"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	a, err := parseArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := parseArg(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	if ir.Equal(a, b) {
		return nil
	}
	if cfg.Quiet {
		return cli.ExitCodeErr(1)
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(encode.MustString(a), encode.MustString(b), false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if cfg.Color {
		fmt.Fprintln(cc.Out, dmp.DiffPrettyText(diffs))
	} else {
		for _, d := range diffs {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				fmt.Fprintf(cc.Out, "+{%s}", d.Text)
			case diffmatchpatch.DiffDelete:
				fmt.Fprintf(cc.Out, "-{%s}", d.Text)
			default:
				fmt.Fprint(cc.Out, d.Text)
			}
		}
		fmt.Fprintln(cc.Out)
	}
	return cli.ExitCodeErr(1)
}
