package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mediaprobe/internal/config"
	"mediaprobe/internal/media/probe"
	"mediaprobe/internal/media/record"
)

func newParseCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string
	var output outputFlags

	cmd := &cobra.Command{
		Use:   "parse [FILE|-]",
		Short: "Normalize saved ffprobe JSON or mediainfo -f output",
		Long: "Parse reads backend output from FILE (or stdin when FILE is - or omitted) and prints\n" +
			"the record it normalizes to. Without --format, output starting with '{' is treated as\n" +
			"ffprobe JSON and anything else as a mediainfo report.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			format, err := resolveOutputFormat(output, cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			source := "-"
			if len(args) == 1 {
				source = args[0]
			}
			data, err := readSource(cmd, source)
			if err != nil {
				return err
			}

			kind, err := parseKind(formatFlag, data)
			if err != nil {
				return err
			}
			rec, parseErr := probe.Normalize(kind, data)

			if format == config.OutputJSON {
				if err := writeJSON(cmd, rec); err != nil {
					return err
				}
			} else {
				printParsedTable(cmd, rec)
			}
			if parseErr != nil {
				return fmt.Errorf("parse %s output: %w", kind, parseErr)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Input format: ffprobe or mediainfo (detected when omitted)")
	cmd.Flags().BoolVar(&output.json, "json", false, "Print the record as JSON")
	cmd.Flags().BoolVar(&output.table, "table", false, "Print the record as a table")
	return cmd
}

func readSource(cmd *cobra.Command, source string) ([]byte, error) {
	if source == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return data, nil
}

func parseKind(flag string, data []byte) (probe.Kind, error) {
	if strings.TrimSpace(flag) != "" {
		return probe.ParseKind(flag)
	}
	trimmed := bytes.TrimLeft(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")), " \t\r\n")
	if bytes.HasPrefix(trimmed, []byte("{")) {
		return probe.KindFFprobe, nil
	}
	return probe.KindMediaInfo, nil
}

func printParsedTable(cmd *cobra.Command, rec record.Record) {
	out := cmd.OutOrStdout()
	if rec.IsEmpty() {
		fmt.Fprintln(out, "no fields recognized")
		return
	}
	fmt.Fprintln(out, renderRecord(rec))
}
