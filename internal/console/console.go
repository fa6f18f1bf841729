// Package console implements the interactive operator loop: a numbered menu
// read line by line from an input stream.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/mcoot/gamestats/internal/model"
	"github.com/mcoot/gamestats/internal/services/accounts"
	"github.com/mcoot/gamestats/internal/services/leaderboard"
	"github.com/mcoot/gamestats/internal/storage"
)

const separator = "---"

// Config holds the collaborators a Console needs
type Config struct {
	Accounts     *accounts.Service
	Leaderboards *leaderboard.Service
	Storage      storage.Storage
	Logger       *slog.Logger

	// Timeout bounds each store call. Zero means no bound.
	Timeout time.Duration
}

// Console runs the menu loop against one input and one output stream
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	config Config

	// lines is fed by the reader goroutine and closed at end of input.
	// readErr is only read after lines is closed.
	lines   chan string
	readErr error
	done    chan struct{}
}

// New creates a Console reading from in and writing to out
func New(in io.Reader, out io.Writer, cfg Config) *Console {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		config: cfg,
		lines:  make(chan string),
		done:   make(chan struct{}),
	}
}

// Run prints the store description, then serves menu commands until "done",
// end of input, or ctx is cancelled. Cancellation also interrupts a pending
// read. Per-action failures are reported and the loop continues; only a
// failure to describe the store at startup or an input read error is
// returned. Run must be called at most once.
func (c *Console) Run(ctx context.Context) error {
	if err := c.describe(ctx); err != nil {
		return err
	}

	go c.scan()
	defer close(c.done)

	for {
		if ctx.Err() != nil {
			return nil
		}

		c.println("enter cmd: [done to exit]")
		c.println("1 - insert doc")
		c.println("2 - delete doc")
		c.println("3 - sign in")
		c.println("4 - leaderboards")
		c.println("choose command:")

		cmd, ok := c.readLine(ctx)
		if !ok {
			if ctx.Err() != nil {
				return nil
			}
			return c.readErr
		}

		switch cmd {
		case "1":
			c.section(func() { c.register(ctx) })
		case "2":
			c.section(func() { c.delete(ctx) })
		case "3":
			c.section(func() { c.signIn(ctx) })
		case "4":
			c.section(func() { c.leaderboards(ctx) })
		case "done":
			return nil
		default:
			c.section(func() { c.println("invalid command") })
		}
	}
}

func (c *Console) describe(ctx context.Context) error {
	opCtx, cancel := c.operationContext(ctx)
	defer cancel()

	names, err := c.config.Storage.Describe(opCtx)
	if err != nil {
		return fmt.Errorf("describe store: %w", err)
	}
	WriteDatabases(c.out, names)
	return nil
}

func (c *Console) register(ctx context.Context) {
	c.println("username:")
	name, ok := c.readLine(ctx)
	if !ok {
		return
	}
	c.println("password:")
	password, ok := c.readLine(ctx)
	if !ok {
		return
	}

	opCtx, cancel := c.operationContext(ctx)
	defer cancel()

	if _, err := c.config.Accounts.Register(opCtx, name, password); err != nil {
		c.fail("register", err)
		return
	}
	WriteRegistered(c.out, name, password)
}

func (c *Console) delete(ctx context.Context) {
	c.println("username to delete:")
	name, ok := c.readLine(ctx)
	if !ok {
		return
	}

	opCtx, cancel := c.operationContext(ctx)
	defer cancel()

	if _, err := c.config.Accounts.Delete(opCtx, name); err != nil {
		c.fail("delete", err)
		return
	}
	c.println("Document deleted!")
}

func (c *Console) signIn(ctx context.Context) {
	c.println("what is your:")
	c.println(" - username:")
	name, ok := c.readLine(ctx)
	if !ok {
		return
	}
	c.println(" - password:")
	password, ok := c.readLine(ctx)
	if !ok {
		return
	}

	opCtx, cancel := c.operationContext(ctx)
	player, err := c.config.Accounts.Authenticate(opCtx, name, password)
	cancel()
	if errors.Is(err, model.ErrInvalidCredentials) {
		c.println("Invalid username or password. Please try again.")
		return
	}
	if err != nil {
		c.fail("sign in", err)
		return
	}

	fmt.Fprintf(c.out, "Welcome, %s! You are signed in.\n", player.Name)
	c.println("Do you want to play a game? [y/n]")
	answer, ok := c.readLine(ctx)
	if !ok {
		return
	}
	if answer != "y" {
		c.println("y no :(")
		return
	}

	c.println("did you win? [cy / cn / ty / tn]")
	tag, ok := c.readLine(ctx)
	if !ok {
		return
	}
	outcome, err := model.ParseOutcome(tag)
	if err != nil {
		c.println("invalid input")
		return
	}

	opCtx, cancel = c.operationContext(ctx)
	defer cancel()
	if _, err := c.config.Accounts.RecordOutcome(opCtx, player.Name, outcome); err != nil {
		c.fail("record outcome", err)
	}
}

func (c *Console) leaderboards(ctx context.Context) {
	opCtx, cancel := c.operationContext(ctx)
	defer cancel()

	boards, err := c.config.Leaderboards.Standard(opCtx)
	if err != nil {
		c.fail("leaderboards", err)
		return
	}
	for i, board := range boards {
		if i > 0 {
			c.println(separator)
		}
		WriteLeaderboard(c.out, board)
	}
}

// section brackets an action with separator lines
func (c *Console) section(fn func()) {
	c.println(separator)
	fn()
	c.println(separator)
}

func (c *Console) fail(action string, err error) {
	c.config.Logger.Error("console action failed",
		slog.String("action", action),
		slog.String("error", err.Error()))
	fmt.Fprintf(c.out, "operation failed: %s\n", err)
}

func (c *Console) operationContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.config.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.config.Timeout)
}

// scan forwards input lines until end of input or until Run returns
func (c *Console) scan() {
	defer close(c.lines)
	for c.in.Scan() {
		select {
		case c.lines <- c.in.Text():
		case <-c.done:
			return
		}
	}
	c.readErr = c.in.Err()
}

// readLine returns the next trimmed input line; ok is false at end of input
// or once ctx is cancelled
func (c *Console) readLine(ctx context.Context) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-c.lines:
		if !ok {
			return "", false
		}
		return strings.TrimSpace(line), true
	}
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}
