package console

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/game"
)

// fakeReader returns queued lines, then err (io.EOF if unset)
type fakeReader struct {
	lines   []string
	err     error
	prompts []string
	closed  bool
}

func (f *fakeReader) Readline() (string, error) {
	if len(f.lines) == 0 {
		if f.err != nil {
			return "", f.err
		}
		return "", io.EOF
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line, nil
}

func (f *fakeReader) SetPrompt(p string) { f.prompts = append(f.prompts, p) }
func (f *fakeReader) Close() error { f.closed = true; return nil }

func newTestConsole(lines ...string) (*Console, *fakeReader, *bytes.Buffer) {
	rl := &fakeReader{lines: lines}
	out := &bytes.Buffer{}
	return NewWithReader(rl, Options{Out: out}), rl, out
}

func TestWagerRepromptsOnMalformedInput(t *testing.T) {
	t.Parallel()

	c, rl, out := newTestConsole("ten", "", "12.5", " 40 ")
	amount, err := c.Wager(context.Background(), 100)
	require.NoError(t, err)

	assert.Equal(t, 40, amount)
	assert.Len(t, rl.prompts, 4)
	assert.Contains(t, rl.prompts[0], "(100 available)")
	assert.Equal(t, 3, bytes.Count(out.Bytes(), []byte("Please enter a whole number of chips.")))
}

func TestWagerPassesUnaffordableBetsThrough(t *testing.T) {
	t.Parallel()

	c, _, _ := newTestConsole("500")
	amount, err := c.Wager(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 500, amount)
}

func TestParseBet(t *testing.T) {
	t.Parallel()

	_, err := parseBet("abc")
	assert.ErrorIs(t, err, game.ErrMalformedBetInput)

	n, err := parseBet("-3")
	assert.NoError(t, err)
	assert.Equal(t, -3, n)
}

func TestDecide(t *testing.T) {
	t.Parallel()

	c, _, out := newTestConsole("x", "hit", "h", "s")
	ctx := context.Background()

	d, err := c.Decide(ctx, game.TableView{})
	require.NoError(t, err)
	assert.Equal(t, game.Hit, d)
	assert.Equal(t, 2, bytes.Count(out.Bytes(), []byte("Please try again.")))

	d, err = c.Decide(ctx, game.TableView{})
	require.NoError(t, err)
	assert.Equal(t, game.Stand, d)
	assert.Contains(t, out.String(), "Player stands. Dealer is playing.")
}

func TestPlayAgain(t *testing.T) {
	t.Parallel()

	c, _, out := newTestConsole("y", "n", "maybe")
	ctx := context.Background()

	again, err := c.PlayAgain(ctx, 100)
	require.NoError(t, err)
	assert.True(t, again)

	again, err = c.PlayAgain(ctx, 100)
	require.NoError(t, err)
	assert.False(t, again)
	assert.Contains(t, out.String(), "Thanks for playing")

	again, err = c.PlayAgain(ctx, 100)
	require.NoError(t, err)
	assert.False(t, again, "anything but y is no")
}

func TestInputEndsSession(t *testing.T) {
	t.Parallel()

	c, _, _ := newTestConsole()
	_, err := c.Wager(context.Background(), 100)
	assert.ErrorIs(t, err, game.ErrQuit)

	rl := &fakeReader{err: readline.ErrInterrupt}
	c = NewWithReader(rl, Options{Out: io.Discard})
	_, err = c.Decide(context.Background(), game.TableView{})
	assert.ErrorIs(t, err, game.ErrQuit)

	boom := errors.New("boom")
	c = NewWithReader(&fakeReader{err: boom}, Options{Out: io.Discard})
	_, err = c.PlayAgain(context.Background(), 100)
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c, _, _ = newTestConsole("10")
	_, err = c.Wager(ctx, 100)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestShowTablePartial(t *testing.T) {
	t.Parallel()

	c, _, out := newTestConsole()
	c.ShowTable(game.TableView{
		Player:      deck.MustParseCards("Th9h"),
		PlayerValue: 19,
		Dealer:      deck.MustParseCards("Kd"),
		HiddenCards: 1,
	})

	want := "\nDealer's Hand:\n <card hidden>\n King of Diamonds\n\nPlayer's Hand:\n Ten of Hearts\n Nine of Hearts\n Value: 19\n"
	assert.Equal(t, want, out.String())
}

func TestShowTableFull(t *testing.T) {
	t.Parallel()

	rl := &fakeReader{}
	out := &bytes.Buffer{}
	c := NewWithReader(rl, Options{Out: out, HiddenCard: "??"})
	c.ShowTable(game.TableView{
		Player:      deck.MustParseCards("Th9h"),
		PlayerValue: 19,
		Dealer:      deck.MustParseCards("7cKd"),
		DealerValue: 17,
	})

	s := out.String()
	assert.NotContains(t, s, "??")
	assert.Contains(t, s, " Seven of Clubs\n King of Diamonds\n Value: 17\n")
}

func TestShowResultAndTotal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		outcome game.Outcome
		want    string
	}{
		{game.PlayerBust, "Player busts! You lose 10 chips."},
		{game.DealerBust, "Dealer busts! You win 10 chips."},
		{game.DealerWins, "Dealer wins! You lose 10 chips."},
		{game.PlayerWins, "Player wins! You win 10 chips."},
		{game.Push, "Dealer and Player tie. It's a push."},
	}

	for _, tt := range tests {
		t.Run(tt.outcome.String(), func(t *testing.T) {
			c, _, out := newTestConsole()
			c.ShowResult(&game.RoundResult{Outcome: tt.outcome, Bet: 10})
			assert.Contains(t, out.String(), tt.want)
		})
	}

	c, _, out := newTestConsole()
	c.ShowTotal(130)
	assert.Contains(t, out.String(), "Player's winnings stand at 130")

	c.BetRejected(fmt.Errorf("%w: your bet can't exceed 100", game.ErrInvalidBet))
	assert.Contains(t, out.String(), "Sorry, your bet can't exceed 100")
	assert.NotContains(t, out.String(), "invalid bet")

	c.RoundFailed(game.ErrDeckExhausted)
	assert.Contains(t, out.String(), "Round abandoned: deck exhausted")
}

func TestConsolePlaysASession(t *testing.T) {
	t.Parallel()

	c, rl, out := newTestConsole("150", "20", "s", "n")
	cards := deck.MustParseCards("Th9hTcQd")
	s := game.NewSession(100, c,
		game.WithObserver(c),
		game.WithDeckSource(func() *deck.Deck { return deck.NewStackedDeck(cards) }),
	)
	require.NoError(t, s.Run(context.Background()))
	require.NoError(t, c.Close())

	assert.True(t, rl.closed)
	assert.Equal(t, 80, s.Ledger().Total())
	text := out.String()
	assert.Contains(t, text, "Sorry, your bet can't exceed 100")
	assert.Contains(t, text, "Dealer wins! You lose 20 chips.")
	assert.Contains(t, text, "Player's winnings stand at 80")
}

// blockingReader blocks in Readline until it is closed, like a terminal
// waiting on a user who never types.
type blockingReader struct {
	once   sync.Once
	done   chan struct{}
	closes int
	mu     sync.Mutex
}

func newBlockingReader() *blockingReader {
	return &blockingReader{done: make(chan struct{})}
}

func (b *blockingReader) Readline() (string, error) {
	<-b.done
	return "", io.EOF
}

func (b *blockingReader) SetPrompt(string) {}

func (b *blockingReader) Close() error {
	b.mu.Lock()
	b.closes++
	b.mu.Unlock()
	b.once.Do(func() { close(b.done) })
	return nil
}

func TestCancelUnblocksPendingRead(t *testing.T) {
	t.Parallel()

	rl := newBlockingReader()
	c := NewWithReader(rl, Options{Out: io.Discard})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := c.Wager(ctx, 100)
		errCh <- err
	}()

	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Wager still blocked after cancel")
	}

	require.NoError(t, c.Close())
	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Equal(t, 1, rl.closes, "reader is closed exactly once")
}
