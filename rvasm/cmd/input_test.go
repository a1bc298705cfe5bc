package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadInstructions(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prog.s")
		require.NoError(t, os.WriteFile(path, []byte("add x1, x2, x3\n\n# full line comment\n\tecall   # trailing\n"), 0644))
		lines, err := LoadInstructions(path, nil)
		require.NoError(t, err)
		require.Equal(t, []string{"add x1, x2, x3", "ecall"}, lines)
	})

	t.Run("JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prog.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"instructions": ["lw a0, 8(sp)", "jal ra, 16"]}`), 0644))
		lines, err := LoadInstructions(path, nil)
		require.NoError(t, err)
		require.Equal(t, []string{"lw a0, 8(sp)", "jal ra, 16"}, lines)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prog.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"instructions": [`), 0644))
		_, err := LoadInstructions(path, nil)
		require.ErrorContains(t, err, "failed to load program")
	})

	t.Run("Stdin", func(t *testing.T) {
		lines, err := LoadInstructions("-", strings.NewReader("ebreak\r\n  \npause"))
		require.NoError(t, err)
		require.Equal(t, []string{"ebreak", "pause"}, lines)
	})
}

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"trace", "DEBUG", "Info", "", "warn", "error", "crit"} {
		_, err := ParseLevel(name)
		require.NoError(t, err, name)
	}
	_, err := ParseLevel("verbose")
	require.Error(t, err)
}

func TestHexU32(t *testing.T) {
	require.Equal(t, "00000073", HexU32(0x73).String())
	text, err := HexU32(0xdeadbeef).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "deadbeef", string(text))
}
