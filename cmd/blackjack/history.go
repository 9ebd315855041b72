package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lox/blackjack-cli/internal/config"
	"github.com/lox/blackjack-cli/internal/history"
)

// HistoryCmd prints the sessions in a history file
type HistoryCmd struct {
	File   string `arg:"" optional:"" name:"file" help:"History file (defaults to the configured one)" type:"path"`
	Rounds bool   `short:"r" help:"List every round, not just session totals"`
	Limit  int    `help:"Show only the most recent N sessions (0 = all)"`
}

func (cmd *HistoryCmd) Run(globals *Globals) error {
	path := cmd.File
	if path == "" {
		cfg, err := config.Load(globals.Config)
		if err != nil {
			return err
		}
		path = cfg.History.File
	}

	f, err := history.Load(path)
	if err != nil {
		return err
	}
	if len(f.Sessions) == 0 {
		return fmt.Errorf("no sessions found in %s", path)
	}

	sessions := f.Sessions
	if cmd.Limit > 0 && cmd.Limit < len(sessions) {
		sessions = sessions[len(sessions)-cmd.Limit:]
	}

	for i := range sessions {
		printSession(os.Stdout, &sessions[i], cmd.Rounds)
	}
	return nil
}

func printSession(w io.Writer, s *history.SessionRecord, rounds bool) {
	sum := s.Summary()
	fmt.Fprintf(w, "Session %s  %s\n", shortID(s.ID), s.Started.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "  chips %d -> %d (%+d) over %d rounds: %d won, %d lost, %d pushed\n",
		s.StartingChips, s.FinalChips, sum.Net, sum.Rounds, sum.Wins, sum.Losses, sum.Pushes)

	if !rounds {
		return
	}
	for _, r := range s.Rounds {
		fmt.Fprintf(w, "  #%-3d bet %-4d %-12s player [%s] %d  dealer [%s] %d  total %d\n",
			r.Number, r.Bet, r.Outcome,
			strings.Join(r.PlayerCards, " "), r.PlayerValue,
			strings.Join(r.DealerCards, " "), r.DealerValue,
			r.TotalAfter)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
