package console

import (
	"fmt"
	"io"

	"github.com/mcoot/gamestats/internal/model"
)

// WriteLeaderboard prints a board in the operator format:
//
//	C4 champion players (top 4):
//
//	1) alice:      WINS-5 PLAYED-8    WINRATE-62%
func WriteLeaderboard(w io.Writer, board *model.Leaderboard) {
	fmt.Fprintf(w, "%s champion players (top %d):\n", board.Game.Title(), board.Top)
	fmt.Fprintln(w, " ")
	for _, e := range board.Entries {
		fmt.Fprintf(w, "%d) %s:      WINS-%d PLAYED-%d    WINRATE-%s%%\n",
			e.Rank, e.Name, e.Won, e.Played, e.WinRatePercent())
	}
}

// WriteRegistered prints the confirmation shown after an account is created
func WriteRegistered(w io.Writer, name, password string) {
	fmt.Fprintf(w, "Document inserted with \nname:%s, \npassword:%s \n\n", name, password)
	fmt.Fprintln(w)
}

// WriteDatabases prints the store description shown at startup
func WriteDatabases(w io.Writer, names []string) {
	fmt.Fprintln(w, "Databases:")
	for _, name := range names {
		fmt.Fprintf(w, "- %s\n", name)
	}
}
