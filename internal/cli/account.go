package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/gamestats/internal/model"
)

func newRegisterCmd() *cobra.Command {
	var name, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new player account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := operationContext(cmd)
			defer cancel()

			player, err := app.AccountService.Register(ctx, name, password)
			if err != nil {
				return err
			}

			out := NewOutput(opts.Output, cmd.OutOrStdout())
			out.Print(RegisterResult{Player: player, password: password})
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newDeleteCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete every account with a name",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := operationContext(cmd)
			defer cancel()

			removed, err := app.AccountService.Delete(ctx, name)
			if err != nil {
				return err
			}

			out := NewOutput(opts.Output, cmd.OutOrStdout())
			out.Print(DeleteResult{Name: name, Deleted: removed})
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newRecordCmd() *cobra.Command {
	var name, password, tag string

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Sign in and record a game outcome",
		Long: `Sign in and record a game outcome.

Outcomes: c4-win, c4-loss, toot-win, toot-loss (or cy, cn, ty, tn).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := model.ParseOutcome(tag)
			if err != nil {
				return err
			}

			ctx, cancel := operationContext(cmd)
			defer cancel()

			player, err := app.AccountService.Authenticate(ctx, name, password)
			if err != nil {
				return err
			}

			matched, err := app.AccountService.RecordOutcome(ctx, player.Name, outcome)
			if err != nil {
				return err
			}

			out := NewOutput(opts.Output, cmd.OutOrStdout())
			out.Print(RecordResult{Name: player.Name, Outcome: outcome.String(), Matched: matched})
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	cmd.Flags().StringVar(&tag, "outcome", "", "Game outcome (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("outcome")

	return cmd
}
