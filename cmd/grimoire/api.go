package main

import (
	"github.com/spf13/cobra"

	"github.com/grimoire-tools/grimoire/internal/server/endpoints"
)

var apiServerURL string

// apiCmd mirrors the HTTP API as CLI subcommands. Each endpoint registers
// both its route and its command, so the two surfaces stay in sync.
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Call a running grimoire server from the command line",
}

func init() {
	apiCmd.PersistentFlags().StringVar(
		&apiServerURL, "server", "http://127.0.0.1:8080", "base URL of the grimoire server",
	)

	getServerURL := func() string { return apiServerURL }
	for _, ep := range endpoints.All() {
		apiCmd.AddCommand(ep.Command(getServerURL))
	}

	rootCmd.AddCommand(apiCmd)
}
