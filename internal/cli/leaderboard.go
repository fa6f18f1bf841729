package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/gamestats/internal/model"
	"github.com/mcoot/gamestats/internal/services/leaderboard"
)

func newLeaderboardCmd() *cobra.Command {
	var gameName string
	var top int

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show leaderboards",
		Long: `Show leaderboards.

Without --game both boards are shown: c4 top 4 and toot top 3.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := operationContext(cmd)
			defer cancel()

			out := NewOutput(opts.Output, cmd.OutOrStdout())

			if gameName == "" {
				boards, err := app.LeaderboardService.Standard(ctx)
				if err != nil {
					return err
				}
				out.Print(boards)
				return nil
			}

			game, err := model.ParseGame(gameName)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("top") {
				top = defaultTop(game)
			}

			board, err := app.LeaderboardService.Top(ctx, game, top)
			if err != nil {
				return err
			}
			out.Print(board)
			return nil
		},
	}

	cmd.Flags().StringVar(&gameName, "game", "", "Game: c4 or toot (default both)")
	cmd.Flags().IntVar(&top, "top", 0, "Number of players to show (default 4 for c4, 3 for toot)")

	return cmd
}

func defaultTop(game model.Game) int {
	if game == model.GameToot {
		return leaderboard.DefaultTootTop
	}
	return leaderboard.DefaultC4Top
}
