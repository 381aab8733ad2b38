package main

import (
	"fmt"
	"strconv"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/riverfjs/discordstyle-go"
)

// NewTimestampCmd creates the timestamp subcommand.
func NewTimestampCmd() *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "timestamp <unix-seconds>",
		Short: "Render a smart timestamp",
		Long: `Render a smart timestamp that every client shows in its own locale.
--style accepts a code (t T d D f F R) or a name such as "relative".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seconds, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return oops.In(discordstyle.ValidationDomain).Code(discordstyle.CodeInvalidTime).
					With("time", args[0]).
					Wrapf(err, "invalid unix seconds")
			}
			ts, err := parseStyleAndBuild(seconds, style)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), ts.Render())
			return nil
		},
	}

	cmd.Flags().StringVar(&style, "style", "", "timestamp style code or name")

	return cmd
}

func parseStyleAndBuild(seconds int64, style string) (*discordstyle.TimeStamp, error) {
	s, err := discordstyle.ParseTimeStyle(style)
	if err != nil {
		return nil, err
	}
	return discordstyle.NewTimeStamp(seconds, s)
}
