package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/profile"
	"github.com/urfave/cli/v2"

	"github.com/ethereum-optimism/optimism/op-service/ioutil"
	"github.com/ethereum-optimism/optimism/op-service/jsonutil"

	"github.com/ethereum-optimism/rvasm/rvasm/asm"
)

// EncodedInstruction is one entry of the JSON output.
type EncodedInstruction struct {
	Instruction string          `json:"instruction"`
	Format      string          `json:"format,omitempty"`
	Fields      string          `json:"fields,omitempty"`
	Binary      string          `json:"binary,omitempty"`
	Word        *hexutil.Uint64 `json:"word,omitempty"`
	Bytes       hexutil.Bytes   `json:"bytes,omitempty"`
	Error       string          `json:"error,omitempty"`
}

func newEncodedInstruction(ins *asm.Instruction) EncodedInstruction {
	word := hexutil.Uint64(ins.Word)
	return EncodedInstruction{
		Instruction: ins.Text,
		Format:      ins.Format.String(),
		Fields:      ins.String(),
		Binary:      ins.Word.Bits(),
		Word:        &word,
		Bytes:       ins.Word.Bytes(),
	}
}

var renderers = map[string]func(ins *asm.Instruction) string{
	"fields": (*asm.Instruction).String,
	"bin":    func(ins *asm.Instruction) string { return ins.Word.Bits() },
	"hex":    func(ins *asm.Instruction) string { return ins.Word.Hex() },
}

// Render formats an encoding as "fields", "bin" or "hex".
func Render(ins *asm.Instruction, format string) (string, error) {
	render, ok := renderers[format]
	if !ok {
		return "", fmt.Errorf("unknown output format %q", format)
	}
	return render(ins), nil
}

var errEncodeFailed = errors.New("some instructions failed to encode")

func Encode(ctx *cli.Context) error {
	if ctx.Bool(PProfCPUFlag.Name) {
		defer profile.Start(profile.NoShutdownHook, profile.ProfilePath("."), profile.CPUProfile).Stop()
	}

	lvl, err := ParseLevel(ctx.String(LogLevelFlag.Name))
	if err != nil {
		return err
	}
	l := Logger(ctx.App.ErrWriter, lvl)

	format := ctx.String(FormatFlag.Name)
	render, ok := renderers[format]
	if !ok {
		return fmt.Errorf("unknown output format %q", format)
	}

	lines := ctx.Args().Slice()
	if input := ctx.Path(InputFlag.Name); input != "" {
		if len(lines) > 0 {
			return fmt.Errorf("instructions given both as arguments and via --%s", InputFlag.Name)
		}
		if lines, err = LoadInstructions(input, ctx.App.Reader); err != nil {
			return err
		}
	}
	if len(lines) == 0 {
		return errors.New("no instructions to encode")
	}

	output := ctx.Path(OutputFlag.Name)
	keepGoing := ctx.Bool(KeepGoingFlag.Name)
	results := make([]EncodedInstruction, 0, len(lines))
	failed := 0
	start := time.Now()
	for i, line := range lines {
		if i%100 == 0 { // don't check the context on every instruction
			if err := ctx.Context.Err(); err != nil {
				return err
			}
		}
		ins, err := asm.Encode(line)
		if err != nil {
			if !keepGoing {
				return err
			}
			failed++
			l.Warn("failed to encode instruction", "line", i+1, "err", err)
			results = append(results, EncodedInstruction{Instruction: line, Error: err.Error()})
			continue
		}
		l.Debug("encoded instruction", "line", i+1, "insn", line, "format", ins.Format.String(), "word", HexU32(ins.Word))
		results = append(results, newEncodedInstruction(ins))
		// stdout belongs to the JSON output when it is the target
		if output != "-" {
			if _, err := fmt.Fprintf(ctx.App.Writer, "%s -> %s\n", line, render(ins)); err != nil {
				return err
			}
		}
	}

	if output != "" {
		if err := jsonutil.WriteJSON(results, ioutil.ToStdOutOrFileOrNoop(output, OutFilePerm)); err != nil {
			return fmt.Errorf("failed to write encoding output: %w", err)
		}
	}
	l.Info("encoding done", "total", len(lines), "failed", failed, "elapsed", time.Since(start))
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errEncodeFailed, failed, len(lines))
	}
	return nil
}

var EncodeCommand = &cli.Command{
	Name:        "encode",
	Usage:       "Encode RV32I instructions into 32-bit machine words",
	Description: "Encode RV32I instructions, given as arguments or via --input, into 32-bit machine words. Each encoding is printed as 'instruction -> encoding'.",
	ArgsUsage:   "[instruction...]",
	Action:      Encode,
	Flags: []cli.Flag{
		InputFlag,
		OutputFlag,
		FormatFlag,
		KeepGoingFlag,
		LogLevelFlag,
		PProfCPUFlag,
	},
}
