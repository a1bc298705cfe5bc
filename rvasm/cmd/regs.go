package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/ethereum-optimism/rvasm/rvasm/asm"
)

func Regs(ctx *cli.Context) error {
	w := tabwriter.NewWriter(ctx.App.Writer, 0, 0, 2, ' ', 0)
	names := ctx.Args().Slice()
	if len(names) == 0 {
		for i, name := range asm.ABINames() {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", asm.Register(i), name); err != nil {
				return err
			}
		}
		return w.Flush()
	}
	for _, name := range names {
		reg, ok, err := asm.ParseRegister(name)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %q", asm.ErrInvalidRegister, name)
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\n", name, reg, uint8(reg)); err != nil {
			return err
		}
	}
	return w.Flush()
}

var RegsCommand = &cli.Command{
	Name:        "regs",
	Usage:       "Resolve register names to canonical registers",
	Description: "Resolve ABI register names (sp, a0, fp, ...) to canonical xN registers. Without arguments, list every register.",
	ArgsUsage:   "[name...]",
	Action:      Regs,
}
