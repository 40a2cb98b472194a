package sandbox

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pratikode/pratikode-go/pkg/pratikode"
)

// === Authentication ===

// Login handles POST /merchantapi/login
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	body, err := decodeRequest(r)
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	if key, ok := body.missing("UserName", "Password", "DealerCode"); ok {
		respondFailf(w, CodeInvalidRequest, key+" is required")
		return
	}

	if err := s.authenticate(body.str("UserName"), body.str("Password"), body.str("DealerCode")); err != nil {
		s.logger.Info("login failed", zap.String("user", body.str("UserName")))
		respondFail(w, CodeInvalidCredentials)
		return
	}

	s.mu.Lock()
	sess, token, err := s.createSession()
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("failed to create session", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]any{"Success": false})
		return
	}

	respondOK(w, map[string]any{
		"Token":     token,
		"ExpiresAt": sess.expiresAt.Format(historyLayout),
	})
}

// CreateSecretKey handles POST /merchantapi/my_secret_key. The key is only
// delivered in the secretkey response header.
func (s *Server) CreateSecretKey(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	secret := strings.ReplaceAll(uuid.New().String(), "-", "")

	s.mu.Lock()
	sess.secret = secret
	s.mu.Unlock()

	w.Header().Set(pratikode.HeaderSecretKey, secret)
	respondOK(w, nil)
}

// CreateConfirmKey handles POST /merchantapi/my_confirm_key
func (s *Server) CreateConfirmKey(w http.ResponseWriter, r *http.Request) {
	body, err := decodeRequest(r)
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	key := body.str("confirmKey")
	if key == "" || len(key) > 10 {
		respondFailf(w, CodeInvalidRequest, "confirmKey must be 1 to 10 digits")
		return
	}

	sess := sessionFrom(r)
	s.mu.Lock()
	sess.confirmKey = key
	s.mu.Unlock()

	w.Header().Set(pratikode.HeaderConfirmKey, key)
	respondOK(w, nil)
}

// ErrorCodeList handles POST /merchantapi/error_code_list
func (s *Server) ErrorCodeList(w http.ResponseWriter, r *http.Request) {
	respondOK(w, map[string]any{
		"errorCodeList": sortedErrorCodes(),
	})
}

// === Account ===

// AccountBasic handles POST /merchantapi/my_account_basic
func (s *Server) AccountBasic(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wl := s.wallets[s.merchant.walletID]
	respondOK(w, map[string]any{
		"userName":     s.merchant.userName,
		"dealerCode":   s.merchant.dealerCode,
		"walletId":     wl.id,
		"walletName":   wl.name,
		"iban":         wl.iban,
		"currencyCode": wl.currency,
	})
}

// Balance handles POST /merchantapi/my_balance
func (s *Server) Balance(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wl := s.wallets[s.merchant.walletID]
	respondOK(w, map[string]any{
		"walletInfo": []map[string]any{{
			"walletId":           wl.id,
			"totalBalance":       wl.total,
			"unavailableBalance": wl.unavailable,
			"iban":               wl.iban,
			"currencyCode":       wl.currency,
		}},
		"transactionLimits": []map[string]any{{
			"currencyCode":     wl.currency,
			"dailyLimit":       int64(100000000),
			"transactionLimit": int64(10000000),
		}},
	})
}

// SaveIBAN handles POST /merchantapi/my_iban_save
func (s *Server) SaveIBAN(w http.ResponseWriter, r *http.Request) {
	body, err := decodeRequest(r)
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	if key, ok := body.missing("iban", "accountHolderName"); ok {
		respondFailf(w, CodeInvalidRequest, key+" is required")
		return
	}
	if !validIBAN(body.str("iban")) {
		respondFail(w, CodeInvalidIBAN)
		return
	}

	s.mu.Lock()
	saved := &savedIBAN{
		id:         s.nextIBANID,
		iban:       strings.ToUpper(body.str("iban")),
		holderName: body.str("accountHolderName"),
		status:     pratikode.IBANStatusActivate,
		createdAt:  s.now().UTC(),
	}
	s.nextIBANID++
	s.ibans = append(s.ibans, saved)
	s.mu.Unlock()

	respondOK(w, map[string]any{"ibanId": saved.id})
}

// UpdateIBAN handles POST /merchantapi/my_iban_update
func (s *Server) UpdateIBAN(w http.ResponseWriter, r *http.Request) {
	body, err := decodeRequest(r)
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	id, ok := body.integer("ibanId")
	status, statusOK := body.integer("status")
	if !ok || !statusOK || (status != pratikode.IBANStatusDelete && status != pratikode.IBANStatusActivate) {
		respondFail(w, CodeInvalidRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, saved := range s.ibans {
		if saved.id == id {
			saved.status = int(status)
			respondOK(w, map[string]any{"ibanId": saved.id, "status": saved.status})
			return
		}
	}
	respondFail(w, CodeInvalidIBAN)
}

// IBANList handles POST /merchantapi/my_iban. Deleted IBANs are listed with
// status 0.
func (s *Server) IBANList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]map[string]any, 0, len(s.ibans))
	for _, saved := range s.ibans {
		list = append(list, map[string]any{
			"ibanId":            saved.id,
			"iban":              saved.iban,
			"accountHolderName": saved.holderName,
			"status":            saved.status,
			"createdAt":         saved.createdAt.Format(historyLayout),
		})
	}
	respondOK(w, map[string]any{"ibanList": list})
}
