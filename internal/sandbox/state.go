package sandbox

import (
	"sort"
	"strings"
	"time"

	"github.com/pratikode/pratikode-go/pkg/pratikode"
)

// Response codes returned by the sandbox in ResponseCode.
const (
	CodeOK                  = "00"
	CodeInvalidCredentials  = "101"
	CodeInvalidToken        = "102"
	CodeSecretKeyMissing    = "103"
	CodeHashMismatch        = "104"
	CodeInsufficientBalance = "105"
	CodeWalletNotFound      = "106"
	CodeDuplicateTransfer   = "107"
	CodeTransactionNotFound = "108"
	CodeInvalidPassCode     = "109"
	CodeInvalidRequest      = "110"
	CodeInvalidIBAN         = "111"
)

var errorCodes = map[string]string{
	CodeOK:                  "İşlem başarılı",
	CodeInvalidCredentials:  "Kullanıcı adı veya şifre hatalı",
	CodeInvalidToken:        "Oturum geçersiz veya süresi dolmuş",
	CodeSecretKeyMissing:    "Gizli anahtar oluşturulmamış",
	CodeHashMismatch:        "Hash doğrulaması başarısız",
	CodeInsufficientBalance: "Yetersiz bakiye",
	CodeWalletNotFound:      "Cüzdan bulunamadı",
	CodeDuplicateTransfer:   "Bu extTransactionId ile daha önce işlem yapılmış",
	CodeTransactionNotFound: "İşlem bulunamadı",
	CodeInvalidPassCode:     "Onay kodu hatalı",
	CodeInvalidRequest:      "Eksik veya hatalı parametre",
	CodeInvalidIBAN:         "IBAN geçersiz",
}

type merchant struct {
	userName     string
	passwordHash []byte // bcrypt of the SHA-512 hex digest
	dealerCode   string
	channelID    string
	walletID     string
}

// session is the server side of an access token.
type session struct {
	id         string
	expiresAt  time.Time
	secret     string
	confirmKey string
}

type wallet struct {
	id          string
	name        string
	iban        string
	currency    string
	total       int64
	unavailable int64
}

func (w *wallet) available() int64 {
	return w.total - w.unavailable
}

type savedIBAN struct {
	id         int64
	iban       string
	holderName string
	status     int
	createdAt  time.Time
}

type transaction struct {
	id               string
	extTransactionID string
	typeID           pratikode.TransactionType
	status           pratikode.TransactionStatus
	senderWalletID   string
	receiverWalletID string
	receiverIBAN     string
	receiverName     string
	description      string
	amount           int64
	fee              int64
	nextAmount       int64
	currency         string
	passCode         string
	createdAt        time.Time
	completedAt      time.Time
}

func (t *transaction) involves(walletID string) bool {
	return t.senderWalletID == walletID || t.receiverWalletID == walletID
}

// incoming reports whether t credits walletID.
func (t *transaction) incoming(walletID string) bool {
	return t.receiverWalletID == walletID
}

func (t *transaction) toMap() map[string]any {
	m := map[string]any{
		"transactionId":         t.id,
		"extTransactionId":      t.extTransactionID,
		"transactionTypeId":     string(t.typeID),
		"transactionTypeName":   t.typeID.Name(),
		"transactionStatus":     string(t.status),
		"transactionStatusName": t.status.Name(),
		"transactionAmount":     t.amount,
		"transactionFeeAmount":  t.fee,
		"nextAmount":            t.nextAmount,
		"currencyCode":          t.currency,
		"description":           t.description,
		"senderWalletId":        t.senderWalletID,
		"transactionDate":       t.createdAt.Format(historyLayout),
	}
	if t.receiverWalletID != "" {
		m["receiverWalletId"] = t.receiverWalletID
	}
	if t.receiverIBAN != "" {
		m["receiverIban"] = t.receiverIBAN
		m["receiverAccountHolderName"] = t.receiverName
	}
	return m
}

// findTransaction looks a transfer up by provider or merchant reference. The
// client sends "0" for the reference it does not know.
func (s *Server) findTransaction(id, extID string) *transaction {
	for _, t := range s.transactions {
		if id != "" && id != "0" && t.id == id {
			return t
		}
		if extID != "" && extID != "0" && t.extTransactionID == extID {
			return t
		}
	}
	return nil
}

func (s *Server) walletByIBAN(iban string) *wallet {
	for _, w := range s.wallets {
		if strings.EqualFold(w.iban, iban) {
			return w
		}
	}
	return nil
}

// sortedErrorCodes returns the error code catalogue ordered by code.
func sortedErrorCodes() []map[string]string {
	codes := make([]string, 0, len(errorCodes))
	for code := range errorCodes {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	out := make([]map[string]string, 0, len(codes))
	for _, code := range codes {
		out = append(out, map[string]string{
			"errorCode":        code,
			"errorDescription": errorCodes[code],
		})
	}
	return out
}

// validIBAN accepts Turkish IBANs: TR followed by 24 digits.
func validIBAN(iban string) bool {
	if len(iban) != 26 || !strings.HasPrefix(strings.ToUpper(iban), "TR") {
		return false
	}
	for _, r := range iban[2:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
