package cmd

import (
	"os"

	"github.com/urfave/cli/v2"
)

const envVarPrefix = "RVASM"

func prefixEnvVars(name string) []string {
	return []string{envVarPrefix + "_" + name}
}

var OutFilePerm = os.FileMode(0o644)

var (
	InputFlag = &cli.PathFlag{
		Name:      "input",
		Usage:     "Read instructions from a text file (one per line) or a JSON program ('.json'). '-' reads stdin.",
		TakesFile: true,
		EnvVars:   prefixEnvVars("INPUT"),
	}
	OutputFlag = &cli.PathFlag{
		Name:      "output",
		Usage:     "Write JSON encoding results to this path. '-' writes to stdout.",
		TakesFile: true,
		EnvVars:   prefixEnvVars("OUTPUT"),
	}
	FormatFlag = &cli.StringFlag{
		Name:    "format",
		Usage:   "Text rendering of each encoding: 'fields' (delimited), 'bin' (32 bits) or 'hex'.",
		Value:   "fields",
		EnvVars: prefixEnvVars("FORMAT"),
	}
	KeepGoingFlag = &cli.BoolFlag{
		Name:    "keep-going",
		Usage:   "Report instructions that fail to encode and continue with the rest.",
		EnvVars: prefixEnvVars("KEEP_GOING"),
	}
	LogLevelFlag = &cli.StringFlag{
		Name:    "log.level",
		Usage:   "Log level: trace, debug, info, warn, error or crit.",
		Value:   "info",
		EnvVars: prefixEnvVars("LOG_LEVEL"),
	}
	PProfCPUFlag = &cli.BoolFlag{
		Name:    "pprof.cpu",
		Usage:   "Enable pprof cpu profiling",
		EnvVars: prefixEnvVars("PPROF_CPU"),
	}
)
