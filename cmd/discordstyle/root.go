package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by all subcommands.
type rootOptions struct {
	configFile string
}

// NewRootCmd creates the root command for the discordstyle CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "discordstyle",
		Short: "discordstyle - Discord markup builder and escaper",
		Long: `discordstyle builds Discord message markup (timestamps, mentions,
converted Markdown) and escapes user text so markup renders literally.`,
		SilenceUsage: true,
	}

	// Global flag for config file path
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "render config file path (YAML)")

	cmd.AddCommand(NewEscapeCmd())
	cmd.AddCommand(NewConvertCmd(opts))
	cmd.AddCommand(NewTimestampCmd())
	cmd.AddCommand(NewMentionCmd())

	return cmd
}

// readInput joins args with spaces, or reads stdin when there are none.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(data), nil
}
