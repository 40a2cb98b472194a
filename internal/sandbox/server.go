// Package sandbox runs an in-memory imitation of the Pratik Ödeme merchant
// API. It speaks the same wire protocol as the real service: channelID and
// accessToken headers, side-channel response headers, keyed transfer hashes
// and Success:false domain errors. One-time transfer codes are returned in
// the smscode header and broadcast on a websocket feed.
package sandbox

import (
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/pratikode/pratikode-go/internal/config"
	"github.com/pratikode/pratikode-go/pkg/pratikode"
)

// PeerWalletID is a second business wallet seeded for wallet-to-wallet
// transfers.
const PeerWalletID = "1000000002"

// Server is the sandbox HTTP server state
type Server struct {
	cfg    config.SandboxConfig
	logger *zap.Logger
	now    func() time.Time
	hub    *smsHub
	codes  *codeSource

	mu           sync.Mutex
	merchant     merchant
	sessions     map[string]*session
	wallets      map[string]*wallet
	ibans        []*savedIBAN
	nextIBANID   int64
	transactions []*transaction
}

// Option configures a Server
type Option func(*Server)

// WithClock overrides the server clock.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// WithEntropy replaces crypto/rand as the source of one-time transfer codes.
func WithEntropy(r io.Reader) Option {
	return func(s *Server) {
		s.codes = newCodeSource(r)
	}
}

// New creates a sandbox seeded with the configured merchant, its wallet and
// a peer wallet.
func New(cfg config.SandboxConfig, logger *zap.Logger, opts ...Option) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(pratikode.HashPassword(cfg.Merchant.Password)), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash merchant password: %w", err)
	}

	s := &Server{
		cfg:    cfg,
		logger: logger.Named("sandbox"),
		now:    time.Now,
		codes:  newCodeSource(nil),
		merchant: merchant{
			userName:     cfg.Merchant.UserName,
			passwordHash: passwordHash,
			dealerCode:   cfg.Merchant.DealerCode,
			channelID:    cfg.Merchant.ChannelID,
			walletID:     cfg.Merchant.WalletID,
		},
		sessions:   make(map[string]*session),
		wallets:    make(map[string]*wallet),
		nextIBANID: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.hub = newSMSHub(s.logger)

	s.wallets[cfg.Merchant.WalletID] = &wallet{
		id:       cfg.Merchant.WalletID,
		name:     cfg.Merchant.UserName,
		iban:     cfg.Merchant.IBAN,
		currency: pratikode.DefaultCurrency,
	}
	s.wallets[PeerWalletID] = &wallet{
		id:       PeerWalletID,
		name:     "Sandbox Peer",
		iban:     "TR000000000000000000000002",
		currency: pratikode.DefaultCurrency,
	}

	if cfg.Merchant.OpeningBalance > 0 {
		w := s.wallets[cfg.Merchant.WalletID]
		w.total = cfg.Merchant.OpeningBalance
		now := s.now().UTC()
		s.transactions = append(s.transactions, &transaction{
			id:               uuid.New().String(),
			extTransactionID: "opening-balance",
			typeID:           pratikode.TransactionTypeCorporateTopup,
			status:           pratikode.TransactionStatusCompleted,
			receiverWalletID: w.id,
			description:      "Opening balance",
			amount:           cfg.Merchant.OpeningBalance,
			nextAmount:       w.total,
			currency:         w.currency,
			createdAt:        now,
			completedAt:      now,
		})
	}

	return s, nil
}

// Router creates and configures the HTTP router
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.Use(s.RecoveryMiddleware)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/health", s.HealthCheck).Methods("GET")
	r.HandleFunc("/sandbox/sms", s.HandleSMSFeed).Methods("GET")

	api := r.PathPrefix("/merchantapi").Subrouter()
	api.Use(s.ChannelMiddleware)
	api.HandleFunc("/login", s.Login).Methods("POST")

	protected := api.PathPrefix("").Subrouter()
	protected.Use(s.AuthMiddleware)

	// Auth
	protected.HandleFunc("/my_secret_key", s.CreateSecretKey).Methods("POST")
	protected.HandleFunc("/my_confirm_key", s.CreateConfirmKey).Methods("POST")
	protected.HandleFunc("/error_code_list", s.ErrorCodeList).Methods("POST")

	// Account
	protected.HandleFunc("/my_account_basic", s.AccountBasic).Methods("POST")
	protected.HandleFunc("/my_balance", s.Balance).Methods("POST")
	protected.HandleFunc("/my_iban_save", s.SaveIBAN).Methods("POST")
	protected.HandleFunc("/my_iban_update", s.UpdateIBAN).Methods("POST")
	protected.HandleFunc("/my_iban", s.IBANList).Methods("POST")

	// Transactions
	protected.HandleFunc("/check_business_wallet", s.CheckBusinessWallet).Methods("POST")
	protected.HandleFunc("/topup_bank_to_business_wallet", s.Topup).Methods("POST")
	protected.HandleFunc("/send_money_to_bank", s.SendMoneyToBank).Methods("POST")
	protected.HandleFunc("/send_money_to_wallet", s.SendMoneyToWallet).Methods("POST")
	protected.HandleFunc("/send_money_confirm", s.ApproveSendMoney).Methods("POST")
	protected.HandleFunc("/send_money_status", s.TransactionStatus).Methods("POST")

	// Reports
	protected.HandleFunc("/money-transaction-history", s.TransactionHistory).Methods("POST")
	protected.HandleFunc("/money-transaction-summary", s.TransactionSummary).Methods("POST")

	r.NotFoundHandler = http.HandlerFunc(NotFoundHandler)

	return r
}

// HTTPServer wraps Router in an http.Server listening on the configured port.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      s.Router(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}
}

// HealthCheck handles GET /health
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"clients": s.hub.count(),
	})
}

// NotFoundHandler handles 404 errors
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"Success":             false,
		"ResponseDescription": "Resource not found",
	})
}
