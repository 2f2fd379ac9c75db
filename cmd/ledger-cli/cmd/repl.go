package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/sheikh-saqib/token-ledger-system/internal/script"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive ledger session",
	RunE: func(*cobra.Command, []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		defer s.close()

		fmt.Printf("ledger ready: creator=%s supply=%d (type 'help' or 'quit')\n",
			s.cfg.Creator, s.cfg.InitialSupply)

		prompt := promptui.Prompt{Label: "ledger"}
		for {
			line, err := prompt.Run()
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}
			if err != nil {
				return err
			}

			switch strings.TrimSpace(strings.ToLower(line)) {
			case "quit", "exit":
				return nil
			case "help":
				printHelp()
				continue
			}
			if script.Skippable(line) {
				continue
			}
			s.execLine(line)
		}
	},
}

func printHelp() {
	fmt.Print(`commands:
  balance <addr>
  allowance <owner> <spender>
  supply
  transfer <from> <to> <amount>
  approve <owner> <spender> <amount>
  transferfrom <spender> <from> <to> <amount>
  quit
`)
}
