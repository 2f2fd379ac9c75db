package cmd

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sheikh-saqib/token-ledger-system/internal/script"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Execute a ledger script, one command per line",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		defer s.close()

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		// A rejected command is reported and the script keeps going; the
		// ledger stays consistent after any failure.
		scanner := bufio.NewScanner(f)
		lineNo := 0
		for scanner.Scan() {
			lineNo++
			line := scanner.Text()
			if script.Skippable(line) {
				continue
			}
			s.log.Debug("script line", zap.Int("line", lineNo), zap.String("text", line))
			s.execLine(line)
		}
		return scanner.Err()
	},
}
