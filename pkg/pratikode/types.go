package pratikode

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultTimeout bounds every request when ClientConfig.Timeout is unset.
const DefaultTimeout = 30 * time.Second

// DefaultCurrency is used when a request leaves CurrencyCode empty.
const DefaultCurrency = "TRY"

// ClientConfig holds the configuration for the Pratik Ödeme client
type ClientConfig struct {
	// BaseURL is the API root, e.g. "https://api.pratikode.com.tr".
	BaseURL string

	// ChannelID is sent in the channelID header of every request.
	ChannelID string

	// Timeout bounds a single request. Defaulted to 30 seconds.
	Timeout time.Duration

	// InsecureSkipVerify disables TLS certificate verification. Only for
	// test hosts with self-signed certificates.
	InsecureSkipVerify bool

	// Logger receives debug lines for every request. Tokens, secrets and
	// hashes are never logged. Optional.
	Logger *zap.Logger

	// Recorder, when set, is given one TransferRecord per money-movement
	// call. Optional.
	Recorder Recorder

	// Now overrides the clock used for report date defaults. Optional.
	Now func() time.Time
}

// DefaultConfig returns a default client configuration
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		Timeout: DefaultTimeout,
	}
}

// LoginRequest is the input for Login
type LoginRequest struct {
	UserName   string
	Password   string // plain text; sent as its SHA-512 hex digest
	DealerCode string
	BranchCode string // optional
}

// TopupRequest is the input for TopupBankToBusinessWallet
type TopupRequest struct {
	Method                  string // topupBusinessWalletMethod, e.g. "publicIBAN"
	ReceiverIBAN            string
	SenderIBAN              string
	SenderAccountHolderName string
	SenderDescription       string
	Amount                  decimal.Decimal
	CurrencyCode            string
	Description             string
	ExtTransactionID        string
}

// SendToBankRequest is the input for SendMoneyToBank
type SendToBankRequest struct {
	SenderWalletID            string
	ReceiverAccountHolderName string
	ReceiverIBAN              string
	ReceiverNationalIDOrTaxNo string
	SenderDescription         string
	PaymentType               PaymentType // defaulted to PaymentTypeOther
	Amount                    decimal.Decimal
	CurrencyCode              string // defaulted to TRY
	ExtTransactionID          string
	ConfirmType               string // defaulted to SMS
}

// SendToWalletRequest is the input for SendMoneyToWallet
type SendToWalletRequest struct {
	SenderWalletID    string
	ReceiverWalletID  string
	SenderDescription string
	PaymentType       PaymentType // defaulted to PaymentTypeECommerce
	Amount            decimal.Decimal
	CurrencyCode      string // defaulted to TRY
	ExtTransactionID  string
	ConfirmType       string // defaulted to SMS
}

// ApproveRequest is the input for ApproveSendMoney
type ApproveRequest struct {
	SenderWalletID string
	Amount         decimal.Decimal
	TransactionID  string
	PassCode       string
	CurrencyCode   string // defaulted to TRY
}

// StatusRequest is the input for TransactionStatus. At least one of the IDs
// must be set.
type StatusRequest struct {
	TransactionID     string
	ExtTransactionID  string
	TransactionTypeID TransactionType // defaulted to TransactionTypeCorporateWithdrawal
}

// HistoryQuery filters TransactionHistory. Zero values take the provider
// defaults: the last 30 days, completed transactions of every type, first
// page of 100.
type HistoryQuery struct {
	StartDate         string // dd-mm-yyyyTHH:MM:SS
	EndDate           string
	TransactionTypeID TransactionType
	// TransactionStatus nil means completed; a pointer to "" lists every status.
	TransactionStatus *TransactionStatus
	Description       string
	MinAmount         string // minor units
	MaxAmount         string // minor units
	CurrentPage       int
	PageSize          PageSize
	WalletID          string
}

// SummaryQuery filters TransactionSummary.
type SummaryQuery struct {
	StartDate   string // dd-mm-yyyy
	EndDate     string
	CurrentPage int
	PageSize    PageSize
}

// Wallet is one entry of FormattedBalance.
type Wallet struct {
	WalletID           string
	TotalBalance       decimal.Decimal
	UnavailableBalance decimal.Decimal
	AvailableBalance   decimal.Decimal
	IBAN               string
	CurrencyCode       string
}

// BalanceSummary is the typed view returned by FormattedBalance.
type BalanceSummary struct {
	Wallets           []Wallet
	TransactionLimits any
}
