package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum-optimism/optimism/op-service/jsonutil"
)

// Program is the JSON input format: a flat list of instruction lines.
type Program struct {
	Instructions []string `json:"instructions"`
}

// LoadInstructions reads instruction lines from path. JSON files are decoded as
// a Program; anything else is read as text, one instruction per line.
// A path of "-" reads text from stdin.
func LoadInstructions(path string, stdin io.Reader) ([]string, error) {
	if path == "-" {
		return readLines(stdin)
	}
	if strings.HasSuffix(path, ".json") {
		p, err := jsonutil.LoadJSON[Program](path)
		if err != nil {
			return nil, fmt.Errorf("failed to load program %q: %w", path, err)
		}
		return p.Instructions, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input %q: %w", path, err)
	}
	defer f.Close()
	lines, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read input %q: %w", path, err)
	}
	return lines, nil
}

// readLines returns the non-empty lines of r, with '#' comments removed.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line, _, _ := strings.Cut(scanner.Text(), "#")
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
