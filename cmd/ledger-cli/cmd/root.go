package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sheikh-saqib/token-ledger-system/internal/config"
	interfaces "github.com/sheikh-saqib/token-ledger-system/internal/interfaces"
	"github.com/sheikh-saqib/token-ledger-system/internal/ledger"
	"github.com/sheikh-saqib/token-ledger-system/internal/script"
)

var rootCmd = &cobra.Command{
	Use:        "ledger-cli",
	Short:      "In-memory fungible-token ledger",
	SuggestFor: []string{"ledgercli"},
}

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		replCmd,
		runCmd,
	)
}

func Execute() error {
	return rootCmd.Execute()
}

// session ties together one process-lifetime ledger, its runner and a
// logger. All state is gone when the process exits.
type session struct {
	cfg    config.Config
	log    *zap.Logger
	runner *script.Runner
}

func newSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}
	logCfg := zap.NewDevelopmentConfig()
	logCfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := logCfg.Build()
	if err != nil {
		return nil, err
	}

	var tokenLedger interfaces.TokenLedger = ledger.New(
		ledger.Address(cfg.Creator),
		ledger.Balance(cfg.InitialSupply),
	)
	logger.Info("ledger created",
		zap.String("creator", cfg.Creator),
		zap.Uint64("initial_supply", cfg.InitialSupply),
	)

	return &session{
		cfg:    cfg,
		log:    logger,
		runner: script.NewRunner(tokenLedger),
	}, nil
}

func (s *session) close() {
	_ = s.log.Sync()
}

// execLine runs one command line and renders its outcome. Parse and ledger
// failures are reported to the user, never propagated: the session keeps
// going either way.
func (s *session) execLine(line string) {
	res, err := s.runner.Exec(line)
	if err != nil {
		color.Yellow("%v", err)
		return
	}

	if res.Err != nil {
		s.log.Debug("operation rejected",
			zap.String("op_id", res.Op.ID),
			zap.String("kind", string(res.Op.Kind)),
			zap.Error(res.Err),
		)
		color.Red("%s: %v", res.Op.Kind, res.Err)
		return
	}

	s.log.Debug("operation applied",
		zap.String("op_id", res.Op.ID),
		zap.String("kind", string(res.Op.Kind)),
	)
	if res.Output != "" {
		fmt.Println(res.Output)
		return
	}
	color.Green("ok")
}
