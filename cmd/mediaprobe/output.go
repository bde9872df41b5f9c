package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"mediaprobe/internal/config"
)

type outputFlags struct {
	json  bool
	table bool
}

// resolveOutputFormat picks table or json. Flags win over configuration;
// "auto" renders tables on a terminal and JSON everywhere else.
func resolveOutputFormat(flags outputFlags, cfg *config.Config, w io.Writer) (string, error) {
	if flags.json && flags.table {
		return "", fmt.Errorf("--json and --table are mutually exclusive")
	}
	switch {
	case flags.json:
		return config.OutputJSON, nil
	case flags.table:
		return config.OutputTable, nil
	}
	format := config.OutputAuto
	if cfg != nil {
		format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	}
	if format == config.OutputAuto || format == "" {
		if isTerminal(w) {
			return config.OutputTable, nil
		}
		return config.OutputJSON, nil
	}
	return format, nil
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
