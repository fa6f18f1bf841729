package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/mcoot/gamestats/internal/factory"
	"github.com/mcoot/gamestats/internal/model"
	"github.com/mcoot/gamestats/internal/services/accounts"
	"github.com/mcoot/gamestats/internal/services/credentials"
	"github.com/mcoot/gamestats/internal/services/leaderboard"
	"github.com/mcoot/gamestats/internal/storage/mocks"
	"github.com/mcoot/gamestats/internal/testutil"
)

type ConsoleSuite struct {
	suite.Suite
	app *factory.TestApp
	ctx context.Context
}

func TestConsoleSuite(t *testing.T) {
	suite.Run(t, new(ConsoleSuite))
}

func (s *ConsoleSuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.ctx = context.Background()
}

// run feeds the given lines to a fresh console and returns its output
func (s *ConsoleSuite) run(lines ...string) string {
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	c := New(in, &out, Config{
		Accounts:     s.app.AccountService,
		Leaderboards: s.app.LeaderboardService,
		Storage:      s.app.Storage,
		Logger:       testutil.NopLogger(),
	})
	s.Require().NoError(c.Run(s.ctx))
	return out.String()
}

func (s *ConsoleSuite) TestStartupListsDatabases() {
	out := s.run("done")

	s.True(strings.HasPrefix(out, "Databases:\n- memory\n"))
	s.Contains(out, "enter cmd: [done to exit]\n1 - insert doc\n2 - delete doc\n3 - sign in\n4 - leaderboards\nchoose command:\n")
}

func (s *ConsoleSuite) TestEndOfInputExits() {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, Config{
		Accounts:     s.app.AccountService,
		Leaderboards: s.app.LeaderboardService,
		Storage:      s.app.Storage,
	})

	s.NoError(c.Run(s.ctx))
	s.Contains(out.String(), "choose command:")
}

func (s *ConsoleSuite) TestInsertDoc() {
	out := s.run("1", "alice", "secret", "done")

	s.Contains(out, "---\nusername:\npassword:\nDocument inserted with \nname:alice, \npassword:secret \n\n\n---\n")

	players, err := s.app.Storage.FindPlayersByName(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal("secret", players[0].Password)
}

func (s *ConsoleSuite) TestDeleteDoc() {
	out := s.run("1", "alice", "pw", "2", "alice", "done")

	s.Contains(out, "username to delete:\nDocument deleted!\n---\n")

	players, err := s.app.Storage.FindPlayersByName(s.ctx, "alice")
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *ConsoleSuite) TestDeleteUnknownNameSucceeds() {
	out := s.run("2", "ghost", "done")

	s.Contains(out, "Document deleted!")
	s.NotContains(out, "operation failed")
}

func (s *ConsoleSuite) TestSignInAndRecordWin() {
	out := s.run("1", "alice", "pw", "3", "alice", "pw", "y", "cy", "done")

	s.Contains(out, "what is your:\n - username:\n - password:\nWelcome, alice! You are signed in.\nDo you want to play a game? [y/n]\ndid you win? [cy / cn / ty / tn]\n---\n")

	players, err := s.app.Storage.FindPlayersByName(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal(1, players[0].C4GamesPlayed)
	s.Equal(1, players[0].C4GamesWon)
	s.Zero(players[0].TootGamesPlayed)
}

func (s *ConsoleSuite) TestSignInTootLoss() {
	s.run("1", "bob", "pw", "3", "bob", "pw", "y", "tn", "done")

	players, err := s.app.Storage.FindPlayersByName(s.ctx, "bob")
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal(1, players[0].TootGamesPlayed)
	s.Zero(players[0].TootGamesWon)
}

func (s *ConsoleSuite) TestSignInDeclineGame() {
	out := s.run("1", "alice", "pw", "3", "alice", "pw", "n", "done")

	s.Contains(out, "Do you want to play a game? [y/n]\ny no :(\n")
}

func (s *ConsoleSuite) TestSignInInvalidOutcome() {
	out := s.run("1", "alice", "pw", "3", "alice", "pw", "y", "maybe", "done")

	s.Contains(out, "invalid input\n")

	players, err := s.app.Storage.FindPlayersByName(s.ctx, "alice")
	s.Require().NoError(err)
	s.Zero(players[0].C4GamesPlayed)
	s.Zero(players[0].TootGamesPlayed)
}

func (s *ConsoleSuite) TestSignInWrongPassword() {
	out := s.run("1", "alice", "pw", "3", "alice", "nope", "done")

	s.Contains(out, "Invalid username or password. Please try again.\n")
	s.NotContains(out, "Welcome")
}

func (s *ConsoleSuite) TestSignInUnknownUser() {
	out := s.run("3", "ghost", "pw", "done")

	s.Contains(out, "Invalid username or password. Please try again.\n")
}

func (s *ConsoleSuite) TestLeaderboards() {
	out := s.run(
		"1", "alice", "pw",
		"3", "alice", "pw", "y", "cy",
		"3", "alice", "pw", "y", "cn",
		"4", "done",
	)

	s.Contains(out, "C4 champion players (top 4):\n \n1) alice:      WINS-1 PLAYED-2    WINRATE-50%\n---\nTOOTOTTO champion players (top 3):\n \n1) alice:      WINS-0 PLAYED-0    WINRATE-0%\n---\n")
}

func (s *ConsoleSuite) TestInvalidCommand() {
	out := s.run("7", "done")

	s.Contains(out, "---\ninvalid command\n---\n")
}

func (s *ConsoleSuite) TestCommandsAreTrimmed() {
	out := s.run("  4  ", " done ")

	s.Contains(out, "C4 champion players (top 4):")
}

func TestStoreFailureIsReportedAndLoopContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStorage(ctrl)
	store.EXPECT().Describe(gomock.Any()).Return([]string{"mock"}, nil)
	store.EXPECT().DeletePlayersByName(gomock.Any(), "alice").Return(int64(0), errors.New("connection reset"))

	logger, logs := testutil.CaptureLogger()
	var out bytes.Buffer
	c := New(strings.NewReader("2\nalice\ndone\n"), &out, Config{
		Accounts:     accounts.New(store, credentials.Plaintext{}, logger),
		Leaderboards: leaderboard.New(store),
		Storage:      store,
		Logger:       logger,
	})

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "operation failed: delete players: connection reset\n---\nenter cmd:") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
	if !strings.Contains(logs.String(), `"action":"delete"`) {
		t.Errorf("expected failure to be logged, got %s", logs.String())
	}
}

func TestDescribeFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStorage(ctrl)
	store.EXPECT().Describe(gomock.Any()).Return(nil, model.ErrStoreUnavailable)

	c := New(strings.NewReader("done\n"), &bytes.Buffer{}, Config{
		Accounts:     accounts.New(store, credentials.Plaintext{}, testutil.NopLogger()),
		Leaderboards: leaderboard.New(store),
		Storage:      store,
	})

	err := c.Run(context.Background())
	if !errors.Is(err, model.ErrStoreUnavailable) {
		t.Fatalf("Run() error = %v, want ErrStoreUnavailable", err)
	}
}

func TestCancelledContextStopsLoop(t *testing.T) {
	app := factory.NewTestApp()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	c := New(strings.NewReader("4\n"), &out, Config{
		Accounts:     app.AccountService,
		Leaderboards: app.LeaderboardService,
		Storage:      app.Storage,
	})

	if err := c.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if strings.Contains(out.String(), "choose command:") {
		t.Errorf("loop should not prompt after cancellation:\n%s", out.String())
	}
}

// runAsync starts a console on a pipe and returns the writer end and a
// channel that receives Run's result
func runAsync(ctx context.Context, app *factory.TestApp, out io.Writer) (*io.PipeWriter, <-chan error) {
	pr, pw := io.Pipe()
	c := New(pr, out, Config{
		Accounts:     app.AccountService,
		Leaderboards: app.LeaderboardService,
		Storage:      app.Storage,
	})

	result := make(chan error, 1)
	go func() { result <- c.Run(ctx) }()
	return pw, result
}

func TestCancelInterruptsPendingCommandRead(t *testing.T) {
	app := factory.NewTestApp()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pw, result := runAsync(ctx, app, io.Discard)
	defer pw.Close()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-result:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation while waiting for input")
	}
}

func TestCancelDuringActionDropsIt(t *testing.T) {
	app := factory.NewTestApp()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out bytes.Buffer
	pw, result := runAsync(ctx, app, &out)
	defer pw.Close()

	// Write returns once the console has consumed the line
	if _, err := pw.Write([]byte("1\nalice\n")); err != nil {
		t.Fatalf("write input: %v", err)
	}
	cancel()

	select {
	case err := <-result:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation mid-action")
	}

	players, err := app.Storage.FindPlayersByName(context.Background(), "alice")
	if err != nil {
		t.Fatalf("FindPlayersByName() error = %v", err)
	}
	if len(players) != 0 {
		t.Errorf("interrupted registration stored %d players", len(players))
	}
	if strings.Contains(out.String(), "Document inserted") {
		t.Errorf("interrupted registration printed a confirmation:\n%s", out.String())
	}
}
