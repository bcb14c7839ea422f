package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"ticketqueen/internal/pkg/config"
	"ticketqueen/internal/usecase/commands"

	"go.uber.org/fx"
)

var RecoveryModule = fx.Module("recovery",
	fx.Invoke(StartRecovery),
)

// StartRecovery rebuilds counters before the server takes traffic and then
// keeps replaying ticket issuance for quarantined purchases in the background.
func StartRecovery(lc fx.Lifecycle, cfg config.Config, recovery commands.RecoveryCommands, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			if cfg.Recovery.RunOnStart {
				report, err := recovery.Recover(startCtx)
				if err != nil {
					cancel()
					close(done)
					return err
				}
				logger.Info("inventory recovered",
					"events", report.EventsChecked,
					"corrected", len(report.Corrected),
					"replayed", report.ReplayedRequests,
					"pending", report.PendingRequests,
					"checkpoint_seq", report.CheckpointSeq)
			}
			go sweep(ctx, done, cfg.Recovery.SweepInterval, recovery, logger)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}

func sweep(ctx context.Context, done chan<- struct{}, interval time.Duration, recovery commands.RecoveryCommands, logger *slog.Logger) {
	defer close(done)
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			replayed, pending, err := recovery.ReplayPendingIssuance(ctx)
			if err != nil {
				logger.Warn("ticket issuance sweep failed", "error", err.Error())
				continue
			}
			if replayed > 0 || pending > 0 {
				logger.Info("ticket issuance sweep", "replayed", replayed, "pending", pending)
			}
		}
	}
}
