package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pratikode/pratikode-go/internal/config"
	"github.com/pratikode/pratikode-go/internal/database"
	"github.com/pratikode/pratikode-go/internal/journal"
	"github.com/pratikode/pratikode-go/internal/logger"
	"github.com/pratikode/pratikode-go/internal/sandbox"
	"github.com/pratikode/pratikode-go/pkg/pratikode"
)

func main() {
	smoke := flag.Bool("smoke", false, "run a login and transfer round trip against PRATIKODE_BASE_URL and exit")
	flag.Parse()

	cfg := config.Load()
	log := logger.New(cfg.Log.Level)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	if *smoke {
		err = runSmoke(ctx, cfg, log)
	} else {
		err = runSandbox(ctx, cfg, log)
	}
	if code := exitCode(log, err); code != 0 {
		os.Exit(code)
	}
}

// exitCode logs err and flushes the logger. os.Exit skips deferred calls, so
// the flush has to happen here.
func exitCode(log *zap.Logger, err error) int {
	if err == nil {
		return 0
	}
	log.Error("exiting", zap.Error(err))
	_ = log.Sync()
	return 1
}

func runSandbox(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	srv, err := sandbox.New(cfg.Sandbox, log)
	if err != nil {
		return err
	}
	httpServer := srv.HTTPServer()

	errCh := make(chan error, 1)
	go func() {
		log.Info("Pratik Ödeme sandbox listening",
			zap.String("addr", httpServer.Addr),
			zap.String("channel_id", cfg.Sandbox.Merchant.ChannelID),
			zap.String("wallet_id", cfg.Sandbox.Merchant.WalletID))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("shutting down sandbox")
	return httpServer.Shutdown(shutdownCtx)
}

// runSmoke logs in, sends 1.00 TRY to the sandbox peer wallet and approves it
// with the code from the smscode header.
func runSmoke(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	opts := cfg.ClientOptions()
	opts.Logger = log

	if cfg.Journal.Enabled {
		db, err := database.New(ctx, cfg.Journal.Driver, cfg.Journal.DSN)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.Migrate(ctx); err != nil {
			return err
		}
		opts.Recorder = journal.New(db.DB, log)
	}

	client := pratikode.NewClient(opts)

	if _, err := client.Login(ctx, &pratikode.LoginRequest{
		UserName:   cfg.Sandbox.Merchant.UserName,
		Password:   cfg.Sandbox.Merchant.Password,
		DealerCode: cfg.Sandbox.Merchant.DealerCode,
	}); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if _, err := client.CreateSecretKey(ctx); err != nil {
		return fmt.Errorf("secret key: %w", err)
	}

	amount := decimal.NewFromInt(1)
	resp, err := client.SendMoneyToWallet(ctx, &pratikode.SendToWalletRequest{
		SenderWalletID:    cfg.Sandbox.Merchant.WalletID,
		ReceiverWalletID:  sandbox.PeerWalletID,
		SenderDescription: "smoke test",
		Amount:            amount,
		ExtTransactionID:  pratikode.NewExtTransactionID(),
	})
	if err != nil {
		return fmt.Errorf("send money: %w", err)
	}

	if resp.RequiresApproval() {
		if _, err := client.ApproveSendMoney(ctx, &pratikode.ApproveRequest{
			SenderWalletID: cfg.Sandbox.Merchant.WalletID,
			Amount:         amount,
			TransactionID:  resp.TransactionID(),
			PassCode:       resp.SideChannel()[pratikode.HeaderSMSCode],
		}); err != nil {
			return fmt.Errorf("approve: %w", err)
		}
	}

	balance, err := client.FormattedBalance(ctx)
	if err != nil {
		return fmt.Errorf("balance: %w", err)
	}
	for _, w := range balance.Wallets {
		log.Info("smoke test complete",
			zap.String("transaction_id", resp.TransactionID()),
			zap.String("wallet_id", w.WalletID),
			zap.String("available", pratikode.FormatDecimal(w.AvailableBalance)),
			zap.String("currency", w.CurrencyCode))
	}
	return nil
}
