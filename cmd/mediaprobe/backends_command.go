package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediaprobe/internal/deps"
)

type backendsReport struct {
	Backends []backendStatus `json:"backends"`
	Selected *selectedBackend `json:"selected"`
	Reason   string           `json:"reason,omitempty"`
}

type backendStatus struct {
	Name      string `json:"name"`
	Command   string `json:"command"`
	Available bool   `json:"available"`
	Detail    string `json:"detail,omitempty"`
}

type selectedBackend struct {
	Kind string `json:"kind"`
	Path string `json:"path"`
}

func backendRequirements() []deps.Requirement {
	return []deps.Requirement{
		{Name: "ffprobe", Command: "ffprobe", Description: "JSON stream and format report", Optional: true},
		{Name: "mediainfo", Command: "mediainfo", Description: "Full text report (-f)", Optional: true},
	}
}

func newBackendsCommand(ctx *commandContext) *cobra.Command {
	var overrides proberOverrides
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "backends",
		Short: "Show which backends are installed and which one probes would use",
		RunE: func(cmd *cobra.Command, args []string) error {
			prober, err := ctx.newProber(overrides)
			if err != nil {
				return err
			}

			report := backendsReport{}
			for _, status := range deps.CheckBinaries(ctx.locator(), backendRequirements()) {
				report.Backends = append(report.Backends, backendStatus{
					Name:      status.Name,
					Command:   status.Command,
					Available: status.Available,
					Detail:    status.Detail,
				})
			}
			if backend, err := prober.Backend(); err != nil {
				report.Reason = err.Error()
			} else {
				report.Selected = &selectedBackend{Kind: backend.Kind.String(), Path: backend.Path}
			}

			if jsonOutput {
				return writeJSON(cmd, report)
			}
			printBackends(cmd, report, isTerminal(cmd.OutOrStdout()))
			return nil
		},
	}

	cmd.Flags().StringVar(&overrides.backend, "backend", "", "Backend executable to evaluate instead of discovery")
	cmd.Flags().StringVar(&overrides.mode, "mode", "", "Backend discovery mode: auto, ffprobe, or mediainfo")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the report as JSON")
	return cmd
}

func printBackends(cmd *cobra.Command, report backendsReport, colorize bool) {
	out := cmd.OutOrStdout()
	for _, line := range renderSectionHeader("Backends", colorize) {
		fmt.Fprintln(out, line)
	}
	for _, b := range report.Backends {
		if b.Available {
			fmt.Fprintln(out, renderStatusLine(b.Name, statusOK, b.Command, colorize))
			continue
		}
		fmt.Fprintln(out, renderStatusLine(b.Name, statusWarn, b.Detail, colorize))
	}
	fmt.Fprintln(out)
	for _, line := range renderSectionHeader("Selection", colorize) {
		fmt.Fprintln(out, line)
	}
	if report.Selected == nil {
		fmt.Fprintln(out, renderStatusLine("Selected", statusError, report.Reason, colorize))
		return
	}
	fmt.Fprintln(out, renderStatusLine("Selected", statusOK, fmt.Sprintf("%s (%s)", report.Selected.Kind, report.Selected.Path), colorize))
}
