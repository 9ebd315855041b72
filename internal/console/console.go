// Package console is the terminal front end for a blackjack session. It
// reads bets and decisions with readline and renders the table with
// lipgloss. It implements both game.Agent and game.Observer.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/chzyer/readline"

	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/game"
)

// DefaultHiddenCard is shown in place of the dealer's face-down card
const DefaultHiddenCard = "<card hidden>"

// LineReader reads one line of input at a time. *readline.Instance
// satisfies it.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

// Options configures a Console
type Options struct {
	// In and Out default to the process's stdin and stdout
	In  io.ReadCloser
	Out io.Writer

	// HistoryFile keeps readline history between runs; empty disables it
	HistoryFile string

	// Color enables ANSI styling
	Color bool

	// HiddenCard replaces the dealer's hole card while it is face down
	HiddenCard string
}

// Console handles the human player's side of the game
type Console struct {
	rl         LineReader
	out        io.Writer
	styles     *Styles
	hiddenCard string

	closeOnce sync.Once
	closeErr  error
}

var (
	_ game.Agent    = (*Console)(nil)
	_ game.Observer = (*Console)(nil)
)

// New creates a console reading from a readline instance
func New(opts Options) (*Console, error) {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     opts.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdin:           opts.In,
		Stdout:          opts.Out,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialise readline: %w", err)
	}

	return NewWithReader(rl, opts), nil
}

// NewWithReader creates a console over any LineReader
func NewWithReader(rl LineReader, opts Options) *Console {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.HiddenCard == "" {
		opts.HiddenCard = DefaultHiddenCard
	}
	return &Console{
		rl:         rl,
		out:        opts.Out,
		styles:     NewStyles(opts.Out, opts.Color),
		hiddenCard: opts.HiddenCard,
	}
}

// Close releases the terminal. It is safe to call more than once.
func (c *Console) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.rl.Close()
	})
	return c.closeErr
}

// Banner prints the welcome title
func (c *Console) Banner() {
	c.println(c.styles.Title.Render(" ♠ ♥ Welcome to Blackjack! ♦ ♣ "))
	c.println("")
}

// readLine prompts and returns the trimmed line. EOF and ^C end the session.
func (c *Console) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Readline blocks until a line arrives; closing the reader is the only
	// way to interrupt it when ctx is cancelled.
	stop := context.AfterFunc(ctx, func() { c.Close() })
	defer stop()

	c.rl.SetPrompt(c.styles.Prompt.Render(prompt))
	line, err := c.rl.Readline()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
		return "", game.ErrQuit
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Wager asks for a bet until the input is a whole number. Whether the
// amount is affordable is the ledger's call.
func (c *Console) Wager(ctx context.Context, total int) (int, error) {
	for {
		line, err := c.readLine(ctx, fmt.Sprintf("How many chips would you like to bet? (%d available) ", total))
		if err != nil {
			return 0, err
		}

		amount, err := parseBet(line)
		if err != nil {
			c.println(c.styles.Error.Render("Please enter a whole number of chips."))
			continue
		}
		return amount, nil
	}
}

func parseBet(line string) (int, error) {
	amount, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", game.ErrMalformedBetInput, line)
	}
	return amount, nil
}

// Decide asks for hit or stand until it gets one
func (c *Console) Decide(ctx context.Context, view game.TableView) (game.Decision, error) {
	for {
		line, err := c.readLine(ctx, "Would you like to Hit or Stand? ('h' or 's') ")
		if err != nil {
			return 0, err
		}

		decision, err := game.ParseDecision(line)
		if errors.Is(err, game.ErrUnrecognizedChoice) {
			c.println(c.styles.Warning.Render("Please try again."))
			continue
		}
		if err != nil {
			return 0, err
		}

		if decision == game.Stand {
			c.println(c.styles.Info.Render("Player stands. Dealer is playing."))
		}
		return decision, nil
	}
}

// PlayAgain treats anything other than "y" as no
func (c *Console) PlayAgain(ctx context.Context, total int) (bool, error) {
	line, err := c.readLine(ctx, "Would you like to play another hand? Enter 'y' or 'n' ")
	if err != nil {
		return false, err
	}

	if game.ParsePlayAgain(line) {
		return true, nil
	}
	c.println(c.styles.Success.Render("Thanks for playing"))
	return false, nil
}

// BetRejected explains why a bet was refused
func (c *Console) BetRejected(err error) {
	msg := strings.TrimPrefix(err.Error(), game.ErrInvalidBet.Error()+": ")
	c.println(c.styles.Error.Render(fmt.Sprintf("Sorry, %s", msg)))
}

// ShowTable renders both hands. While the dealer's first card is face down
// it is shown as the placeholder and the dealer's value is withheld.
func (c *Console) ShowTable(view game.TableView) {
	c.println("")
	c.println(c.styles.Heading.Render("Dealer's Hand:"))
	for range view.HiddenCards {
		c.println(" " + c.styles.Hidden.Render(c.hiddenCard))
	}
	for _, card := range view.Dealer {
		c.println(" " + c.formatCard(card))
	}
	if view.Revealed() {
		c.println(c.styles.Info.Render(fmt.Sprintf(" Value: %d", view.DealerValue)))
	}

	c.println("")
	c.println(c.styles.Heading.Render("Player's Hand:"))
	for _, card := range view.Player {
		c.println(" " + c.formatCard(card))
	}
	c.println(c.styles.Info.Render(fmt.Sprintf(" Value: %d", view.PlayerValue)))
}

// ShowResult announces how the round ended
func (c *Console) ShowResult(result *game.RoundResult) {
	var line string
	switch result.Outcome {
	case game.PlayerBust:
		line = c.styles.Error.Render(fmt.Sprintf("Player busts! You lose %d chips.", result.Bet))
	case game.DealerBust:
		line = c.styles.Success.Render(fmt.Sprintf("Dealer busts! You win %d chips.", result.Bet))
	case game.DealerWins:
		line = c.styles.Error.Render(fmt.Sprintf("Dealer wins! You lose %d chips.", result.Bet))
	case game.PlayerWins:
		line = c.styles.Success.Render(fmt.Sprintf("Player wins! You win %d chips.", result.Bet))
	case game.Push:
		line = c.styles.Warning.Render("Dealer and Player tie. It's a push.")
	}
	c.println("")
	c.println(line)
}

// ShowTotal reports the player's chips at the end of a round
func (c *Console) ShowTotal(total int) {
	c.println("")
	c.println("Player's winnings stand at " + c.styles.Chips.Render(strconv.Itoa(total)))
}

// RoundFailed reports a round that could not be finished
func (c *Console) RoundFailed(err error) {
	c.println(c.styles.Error.Render(fmt.Sprintf("Round abandoned: %s. No chips changed hands.", err)))
}

func (c *Console) formatCard(card deck.Card) string {
	if card.IsRed() {
		return c.styles.RedCard.Render(card.String())
	}
	return c.styles.BlackCard.Render(card.String())
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}
