package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ethereum-optimism/rvasm/rvasm/asm"
)

func newApp(stdout, stderr io.Writer, stdin string) *cli.App {
	app := cli.NewApp()
	app.Name = "rvasm"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Reader = strings.NewReader(stdin)
	app.Commands = []*cli.Command{EncodeCommand, RegsCommand}
	return app
}

func runApp(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr, stdin).Run(append([]string{"rvasm"}, args...))
	return stdout.String(), stderr.String(), err
}

var errClosedOutput = errors.New("output closed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errClosedOutput }

func TestEncodeCommand(t *testing.T) {
	t.Run("Arguments", func(t *testing.T) {
		out, _, err := runApp(t, "", "encode", "add x1, x2, x3", "ecall")
		require.NoError(t, err)
		require.Equal(t,
			"add x1, x2, x3 -> 0000000 00011 00010 000 00001 0110011\n"+
				"ecall -> 00000000000000000000000001110011\n", out)
	})

	t.Run("Formats", func(t *testing.T) {
		out, _, err := runApp(t, "", "encode", "--format", "hex", "sw x1, 10(x2)")
		require.NoError(t, err)
		require.Equal(t, "sw x1, 10(x2) -> 0x00112523\n", out)

		out, _, err = runApp(t, "", "encode", "--format", "bin", "addi x1, x2, 10")
		require.NoError(t, err)
		require.Equal(t, "addi x1, x2, 10 -> 00000000101000010000000010010011\n", out)

		_, _, err = runApp(t, "", "encode", "--format", "octal", "ecall")
		require.ErrorContains(t, err, "unknown output format")

		err = newApp(failingWriter{}, io.Discard, "").Run([]string{"rvasm", "encode", "--format", "hex", "ecall"})
		require.ErrorIs(t, err, errClosedOutput)
	})

	t.Run("FirstFailureAborts", func(t *testing.T) {
		out, _, err := runApp(t, "", "encode", "add x1, x2, x3", "mul x1, x2, x3", "ecall")
		require.ErrorIs(t, err, asm.ErrUnrecognizedMnemonic)
		require.Equal(t, "add x1, x2, x3 -> 0000000 00011 00010 000 00001 0110011\n", out)
	})

	t.Run("KeepGoingWithJSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		out, logs, err := runApp(t, "", "encode", "--keep-going", "--output", path, "jal x1, 2000", "beq x1, x2, 3")
		require.ErrorIs(t, err, errEncodeFailed)
		require.Equal(t, "jal x1, 2000 -> 0 1111101000 0 00000000 00001 1101111\n", out)
		require.Contains(t, logs, "failed to encode instruction")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var results []EncodedInstruction
		require.NoError(t, json.Unmarshal(data, &results))
		require.Len(t, results, 2)

		require.Equal(t, "jal x1, 2000", results[0].Instruction)
		require.Equal(t, "J", results[0].Format)
		require.Equal(t, "01111101000000000000000011101111", results[0].Binary)
		require.NotNil(t, results[0].Word)
		require.Equal(t, uint64(0x7d0000ef), uint64(*results[0].Word))
		require.Equal(t, []byte{0xef, 0x00, 0x00, 0x7d}, []byte(results[0].Bytes))
		require.Empty(t, results[0].Error)

		require.Equal(t, "beq x1, x2, 3", results[1].Instruction)
		require.Nil(t, results[1].Word)
		require.Contains(t, results[1].Error, asm.ErrMisalignedImmediate.Error())
	})

	t.Run("TextInput", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prog.s")
		src := "# loads\nlw s0, 100(a0)\n\n  sw t0, 200(gp) # store\n"
		require.NoError(t, os.WriteFile(path, []byte(src), 0644))
		out, _, err := runApp(t, "", "encode", "--input", path, "--format", "hex")
		require.NoError(t, err)
		require.Equal(t, "lw s0, 100(a0) -> 0x06452403\nsw t0, 200(gp) -> 0x0c51a423\n", out)
	})

	t.Run("JSONInput", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prog.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"instructions": ["ebreak", "lui x1 1000"]}`), 0644))
		out, _, err := runApp(t, "", "encode", "--input", path, "--format", "hex")
		require.NoError(t, err)
		require.Equal(t, "ebreak -> 0x00100073\nlui x1 1000 -> 0x003e80b7\n", out)
	})

	t.Run("StdinInput", func(t *testing.T) {
		out, _, err := runApp(t, "pause\nfence.tso\n", "encode", "--input", "-", "--format", "hex")
		require.NoError(t, err)
		require.Equal(t, "pause -> 0x0100000f\nfence.tso -> 0x8330000f\n", out)
	})

	t.Run("MissingInstructions", func(t *testing.T) {
		_, _, err := runApp(t, "", "encode")
		require.ErrorContains(t, err, "no instructions")

		path := filepath.Join(t.TempDir(), "prog.s")
		require.NoError(t, os.WriteFile(path, []byte("ecall\n"), 0644))
		_, _, err = runApp(t, "", "encode", "--input", path, "ecall")
		require.ErrorContains(t, err, "both as arguments")

		_, _, err = runApp(t, "", "encode", "--input", filepath.Join(t.TempDir(), "missing.s"))
		require.ErrorContains(t, err, "failed to open input")
	})

	t.Run("DebugLogging", func(t *testing.T) {
		_, logs, err := runApp(t, "", "encode", "--log.level", "debug", "add x1, x2, x3")
		require.NoError(t, err)
		require.Contains(t, logs, "encoded instruction")
		require.Contains(t, logs, "word=003100b3")

		_, _, err = runApp(t, "", "encode", "--log.level", "loud", "ecall")
		require.ErrorContains(t, err, "unknown log level")
	})
}

func TestRegsCommand(t *testing.T) {
	out, _, err := runApp(t, "", "regs", "fp", "sp")
	require.NoError(t, err)
	require.Equal(t, "fp  x8  8\nsp  x2  2\n", out)

	out, _, err = runApp(t, "", "regs")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 32)
	require.Equal(t, "x0   zero", lines[0])
	require.Equal(t, "x8   s0", lines[8])
	require.Equal(t, "x31  t6", lines[31])

	_, _, err = runApp(t, "", "regs", "x99")
	require.ErrorIs(t, err, asm.ErrInvalidRegister)
	_, _, err = runApp(t, "", "regs", "bogus")
	require.ErrorIs(t, err, asm.ErrInvalidRegister)

	t.Run("WriteFailure", func(t *testing.T) {
		for _, args := range [][]string{{"regs"}, {"regs", "sp"}} {
			err := newApp(failingWriter{}, io.Discard, "").Run(append([]string{"rvasm"}, args...))
			require.ErrorIs(t, err, errClosedOutput)
		}
	})
}

func TestRender(t *testing.T) {
	ins, err := asm.Encode("jal x1, 2000")
	require.NoError(t, err)
	for format, want := range map[string]string{
		"fields": "0 1111101000 0 00000000 00001 1101111",
		"bin":    "01111101000000000000000011101111",
		"hex":    "0x7d0000ef",
	} {
		got, err := Render(ins, format)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err = Render(ins, "dec")
	require.Error(t, err)
}
