package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riverfjs/discordstyle-go"
)

type escapeOptions struct {
	markdown   bool
	mentions   bool
	timestamps bool
	channels   bool
}

// NewEscapeCmd creates the escape subcommand.
func NewEscapeCmd() *cobra.Command {
	opts := &escapeOptions{}

	cmd := &cobra.Command{
		Use:   "escape [text...]",
		Short: "Escape markup and mentions in text",
		Long: `Escape markdown markers, quotes, timestamps and mentions so Discord
shows the text literally. Reads stdin when no text is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), runEscape(text, opts))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.markdown, "markdown", true, "escape markdown markers and quotes")
	cmd.Flags().BoolVar(&opts.mentions, "mentions", true, "escape user, role and @everyone/@here mentions")
	cmd.Flags().BoolVar(&opts.timestamps, "timestamps", true, "escape smart timestamps (with --markdown)")
	cmd.Flags().BoolVar(&opts.channels, "channels", true, "escape channel mentions (with --mentions)")

	return cmd
}

func runEscape(text string, opts *escapeOptions) string {
	if opts.markdown {
		text = discordstyle.EscapeMarkdown(text, opts.timestamps)
	}
	if opts.mentions {
		text = discordstyle.EscapeMentions(text, opts.channels)
	}
	return text
}
