package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riverfjs/discordstyle-go"
)

// NewConvertCmd creates the convert subcommand. The render config is read
// from root.configFile when the command runs.
func NewConvertCmd(root *rootOptions) *cobra.Command {
	var (
		split     bool
		maxLength int
	)

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert Markdown to Discord markup",
		Long: `Convert CommonMark/GFM Markdown to Discord markup. Reads the file,
or stdin when no file is given. With --split the output is cut into
messages that fit the length limit, separated by a line of dashes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadRenderConfig(root.configFile)
			if err != nil {
				return err
			}

			var markdown string
			if len(args) == 1 {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				markdown = string(data)
			} else if markdown, err = readInput(cmd, nil); err != nil {
				return err
			}

			out := discordstyle.Convert(markdown, discordstyle.WithConfig(config))
			if !split {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}
			for i, chunk := range discordstyle.SplitMessage(out, maxLength) {
				if i > 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "-----")
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), chunk)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&split, "split", false, "split output into messages")
	cmd.Flags().IntVar(&maxLength, "max-length", discordstyle.MaxMessageLength, "message length limit used with --split")

	return cmd
}
