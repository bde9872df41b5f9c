// Package main hosts the mediaprobe CLI entrypoint and command graph.
//
// The Cobra-based command tree probes media files through ffprobe or
// mediainfo, replays saved backend output through the same parsers, reports
// which backends are available, and scaffolds configuration. Configuration
// and logger setup are resolved once per invocation so subcommands only deal
// with presentation.
package main
