package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mediaprobe/internal/config"
	"mediaprobe/internal/media/record"
)

// probeResult is the JSON shape emitted when several files are probed.
type probeResult struct {
	Path   string         `json:"path"`
	Record *record.Record `json:"record"`
	Error  string         `json:"error,omitempty"`
}

func newProbeCommand(ctx *commandContext) *cobra.Command {
	var overrides proberOverrides
	var timeoutSeconds int
	var output outputFlags

	cmd := &cobra.Command{
		Use:   "probe FILE...",
		Short: "Probe media files and print their normalized information",
		Long: "Probe runs ffprobe or mediainfo against each file and prints the normalized record.\n" +
			"A file that does not exist, or a missing backend, yields no record and a non-zero exit.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("timeout") {
				if timeoutSeconds < 0 {
					return fmt.Errorf("--timeout must be zero (no limit) or positive")
				}
				overrides.timeout = time.Duration(timeoutSeconds) * time.Second
				overrides.timeoutSet = true
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			format, err := resolveOutputFormat(output, cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			prober, err := ctx.newProber(overrides)
			if err != nil {
				return err
			}

			results := make([]probeResult, 0, len(args))
			missing := 0
			for _, path := range args {
				rec, inspectErr := prober.Inspect(cmd.Context(), path)
				result := probeResult{Path: path, Record: rec}
				if inspectErr != nil {
					result.Error = inspectErr.Error()
				}
				if rec == nil {
					missing++
				}
				results = append(results, result)
			}

			if format == config.OutputJSON {
				if len(results) == 1 {
					if err := writeJSON(cmd, results[0].Record); err != nil {
						return err
					}
				} else if err := writeJSON(cmd, results); err != nil {
					return err
				}
			} else {
				printProbeTables(cmd, results)
			}

			if missing > 0 {
				return fmt.Errorf("%d of %d file(s) yielded no media information", missing, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&overrides.backend, "backend", "", "Backend executable (ffprobe or mediainfo); overrides --mode")
	cmd.Flags().StringVar(&overrides.mode, "mode", "", "Backend discovery mode: auto, ffprobe, or mediainfo")
	cmd.Flags().IntVar(&timeoutSeconds, "timeout", 0, "Seconds to wait for the backend (0 disables the limit)")
	cmd.Flags().BoolVar(&output.json, "json", false, "Print records as JSON")
	cmd.Flags().BoolVar(&output.table, "table", false, "Print records as tables")
	return cmd
}

func printProbeTables(cmd *cobra.Command, results []probeResult) {
	out := cmd.OutOrStdout()
	for i, result := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, result.Path)
		switch {
		case result.Record == nil:
			fmt.Fprintf(out, "  no information: %s\n", result.Error)
		case result.Record.IsEmpty():
			if result.Error != "" {
				fmt.Fprintf(out, "  no fields recognized: %s\n", result.Error)
			} else {
				fmt.Fprintln(out, "  no fields recognized")
			}
		default:
			fmt.Fprintln(out, renderRecord(*result.Record))
		}
	}
}
