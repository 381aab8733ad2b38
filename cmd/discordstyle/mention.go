package main

import (
	"fmt"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/riverfjs/discordstyle-go"
)

// NewMentionCmd creates the mention subcommand.
func NewMentionCmd() *cobra.Command {
	var nickname bool

	cmd := &cobra.Command{
		Use:       "mention <user|role|channel> <id>",
		Short:     "Render a user, role or channel mention",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"user", "role", "channel"},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := buildMention(args[0], args[1], nickname)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), m.Render())
			return nil
		},
	}

	cmd.Flags().BoolVar(&nickname, "nickname", false, "use the nickname form for user mentions")

	return cmd
}

func buildMention(kind, id string, nickname bool) (discordstyle.Mention, error) {
	var (
		m   discordstyle.Mention
		err error
	)
	switch kind {
	case "user":
		m, err = discordstyle.NewUserMention(id, nickname)
	case "role":
		m, err = discordstyle.NewRoleMention(id)
	case "channel":
		m, err = discordstyle.NewChannelMention(id)
	default:
		return nil, oops.In("cli").With("kind", kind).Errorf("unknown mention kind %q", kind)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}
