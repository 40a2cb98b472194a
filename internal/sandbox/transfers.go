package sandbox

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pratikode/pratikode-go/pkg/pratikode"
)

// verifyHash recomputes the hashKey over fields with the session secret.
// Callers hold s.mu.
func (s *Server) verifyHash(sess *session, body request, fields ...string) string {
	if sess.secret == "" {
		return CodeSecretKeyMissing
	}
	values := make([]any, len(fields))
	for i, f := range fields {
		values[i] = body.str(f)
	}
	expected, err := pratikode.ComputeHash(sess.secret, values...)
	if err != nil || expected != body.str("hashKey") {
		return CodeHashMismatch
	}
	return ""
}

// CheckBusinessWallet handles POST /merchantapi/check_business_wallet
func (s *Server) CheckBusinessWallet(w http.ResponseWriter, r *http.Request) {
	body, err := decodeRequest(r)
	if err != nil {
		respondBadRequest(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	wl, ok := s.wallets[body.str("dataInfo")]
	if !ok || (body.str("currencyCode") != "" && body.str("currencyCode") != wl.currency) {
		respondFail(w, CodeWalletNotFound)
		return
	}
	respondOK(w, map[string]any{
		"walletId":     wl.id,
		"walletName":   wl.name,
		"currencyCode": wl.currency,
	})
}

// Topup handles POST /merchantapi/topup_bank_to_business_wallet. The credit
// is applied immediately.
func (s *Server) Topup(w http.ResponseWriter, r *http.Request) {
	body, err := decodeRequest(r)
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	if key, ok := body.missing("receiverIban", "senderIban", "extTransactionId", "hashKey"); ok {
		respondFailf(w, CodeInvalidRequest, key+" is required")
		return
	}
	amount, ok := body.integer("amount")
	if !ok || amount <= 0 {
		respondFailf(w, CodeInvalidRequest, "amount must be a positive integer")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := sessionFrom(r)
	if code := s.verifyHash(sess, body, "amount", "receiverIban", "extTransactionId"); code != "" {
		respondFail(w, code)
		return
	}
	if s.findTransaction("", body.str("extTransactionId")) != nil {
		respondFail(w, CodeDuplicateTransfer)
		return
	}
	wl := s.walletByIBAN(body.str("receiverIban"))
	if wl == nil {
		respondFail(w, CodeInvalidIBAN)
		return
	}

	wl.total += amount
	now := s.now().UTC()
	tx := &transaction{
		id:               uuid.New().String(),
		extTransactionID: body.str("extTransactionId"),
		typeID:           pratikode.TransactionTypeCorporateTopup,
		status:           pratikode.TransactionStatusCompleted,
		receiverWalletID: wl.id,
		receiverIBAN:     body.str("senderIban"),
		receiverName:     body.str("senderAccountHolderName"),
		description:      body.str("description"),
		amount:           amount,
		nextAmount:       wl.total,
		currency:         wl.currency,
		createdAt:        now,
		completedAt:      now,
	}
	s.transactions = append(s.transactions, tx)

	respondOK(w, map[string]any{
		"transactionDetails": []map[string]any{{"transactionId": tx.id}},
	})
}

// SendMoneyToBank handles POST /merchantapi/send_money_to_bank
func (s *Server) SendMoneyToBank(w http.ResponseWriter, r *http.Request) {
	body, err := decodeRequest(r)
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	if key, ok := body.missing("senderWalletId", "receiverIban", "receiverAccountHolderName", "extTransactionId", "hashKey"); ok {
		respondFailf(w, CodeInvalidRequest, key+" is required")
		return
	}
	if !validIBAN(body.str("receiverIban")) {
		respondFail(w, CodeInvalidIBAN)
		return
	}

	s.createTransfer(w, r, body, "receiverIban", func(tx *transaction) {
		tx.receiverIBAN = body.str("receiverIban")
		tx.receiverName = body.str("receiverAccountHolderName")
	})
}

// SendMoneyToWallet handles POST /merchantapi/send_money_to_wallet
func (s *Server) SendMoneyToWallet(w http.ResponseWriter, r *http.Request) {
	body, err := decodeRequest(r)
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	if key, ok := body.missing("senderWalletId", "receiverWalletId", "extTransactionId", "hashKey"); ok {
		respondFailf(w, CodeInvalidRequest, key+" is required")
		return
	}

	s.mu.Lock()
	_, exists := s.wallets[body.str("receiverWalletId")]
	s.mu.Unlock()
	if !exists {
		respondFail(w, CodeWalletNotFound)
		return
	}

	s.createTransfer(w, r, body, "receiverWalletId", func(tx *transaction) {
		tx.receiverWalletID = body.str("receiverWalletId")
	})
}

// createTransfer verifies the hash, reserves the amount on the sender wallet
// and creates a pending transfer waiting for its one-time code.
func (s *Server) createTransfer(w http.ResponseWriter, r *http.Request, body request, receiverField string, fill func(*transaction)) {
	amount, ok := body.integer("amount")
	if !ok || amount <= 0 {
		respondFailf(w, CodeInvalidRequest, "amount must be a positive integer")
		return
	}
	if pt := pratikode.PaymentType(body.str("paymentType")); pt != "" && !pt.IsValid() {
		respondFailf(w, CodeInvalidRequest, "unknown paymentType")
		return
	}

	passCode, err := s.codes.passCode()
	if err != nil {
		s.logger.Error("failed to generate pass code", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]any{"Success": false})
		return
	}

	s.mu.Lock()
	sess := sessionFrom(r)
	if code := s.verifyHash(sess, body, "senderWalletId", "amount", receiverField, "extTransactionId"); code != "" {
		s.mu.Unlock()
		respondFail(w, code)
		return
	}
	if s.findTransaction("", body.str("extTransactionId")) != nil {
		s.mu.Unlock()
		respondFail(w, CodeDuplicateTransfer)
		return
	}
	sender, ok := s.wallets[body.str("senderWalletId")]
	if !ok || sender.id != s.merchant.walletID {
		s.mu.Unlock()
		respondFail(w, CodeWalletNotFound)
		return
	}
	if sender.available() < amount {
		s.mu.Unlock()
		respondFail(w, CodeInsufficientBalance)
		return
	}

	sender.unavailable += amount
	tx := &transaction{
		id:               uuid.New().String(),
		extTransactionID: body.str("extTransactionId"),
		typeID:           pratikode.TransactionTypeCorporateWithdrawal,
		status:           pratikode.TransactionStatusPending,
		senderWalletID:   sender.id,
		description:      body.str("senderDescription"),
		amount:           amount,
		nextAmount:       sender.total,
		currency:         sender.currency,
		passCode:         passCode,
		createdAt:        s.now().UTC(),
	}
	fill(tx)
	s.transactions = append(s.transactions, tx)
	s.mu.Unlock()

	message := fmt.Sprintf("Onay kodunuz: %s (%s %s)",
		tx.passCode, pratikode.FormatDecimal(decimal.New(amount, -2)), tx.currency)
	s.hub.broadcast(SMSMessage{
		TransactionID: tx.id,
		WalletID:      tx.senderWalletID,
		SMSCode:       tx.passCode,
		Message:       message,
	})
	s.logger.Info("transfer pending approval",
		zap.String("transaction_id", tx.id),
		zap.Int64("amount", amount))

	w.Header().Set(pratikode.HeaderSMSCode, tx.passCode)
	w.Header().Set(pratikode.HeaderSMSMessage, message)
	respondOK(w, map[string]any{
		"NextStep":           pratikode.StepApproveSendMoney,
		"transactionDetails": []map[string]any{{"transactionId": tx.id, "extTransactionId": tx.extTransactionID}},
	})
}

// ApproveSendMoney handles POST /merchantapi/send_money_confirm
func (s *Server) ApproveSendMoney(w http.ResponseWriter, r *http.Request) {
	body, err := decodeRequest(r)
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	if key, ok := body.missing("senderWalletId", "transactionId", "passCode", "amount"); ok {
		respondFailf(w, CodeInvalidRequest, key+" is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.findTransaction(body.str("transactionId"), "")
	if tx == nil || tx.status != pratikode.TransactionStatusPending || tx.senderWalletID != body.str("senderWalletId") {
		respondFail(w, CodeTransactionNotFound)
		return
	}
	if amount, ok := body.integer("amount"); !ok || amount != tx.amount {
		respondFailf(w, CodeInvalidRequest, "amount does not match the pending transfer")
		return
	}
	if body.str("passCode") != tx.passCode {
		respondFail(w, CodeInvalidPassCode)
		return
	}

	sender := s.wallets[tx.senderWalletID]
	sender.unavailable -= tx.amount
	sender.total -= tx.amount
	if receiver, ok := s.wallets[tx.receiverWalletID]; ok {
		receiver.total += tx.amount
	}

	tx.status = pratikode.TransactionStatusCompleted
	tx.nextAmount = sender.total
	tx.completedAt = s.now().UTC()

	respondOK(w, map[string]any{
		"transactionDetails": []map[string]any{tx.toMap()},
	})
}

// TransactionStatus handles POST /merchantapi/send_money_status
func (s *Server) TransactionStatus(w http.ResponseWriter, r *http.Request) {
	body, err := decodeRequest(r)
	if err != nil {
		respondBadRequest(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.findTransaction(body.str("transactionId"), body.str("extTransactionId"))
	typeID := pratikode.TransactionType(body.str("transactionTypeId"))
	if tx == nil || (typeID != "" && typeID != pratikode.TransactionTypeAll && typeID != tx.typeID) {
		respondFail(w, CodeTransactionNotFound)
		return
	}

	respondOK(w, map[string]any{
		"transactionStatus":     string(tx.status),
		"transactionStatusName": tx.status.Name(),
		"transactionDetails":    []map[string]any{tx.toMap()},
	})
}
