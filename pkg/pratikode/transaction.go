package pratikode

import (
	"context"
	"strconv"

	"github.com/google/uuid"
)

const (
	EndpointCheckBusinessWallet = "merchantapi/check_business_wallet"
	EndpointTopup               = "merchantapi/topup_bank_to_business_wallet"
	EndpointSendToBank          = "merchantapi/send_money_to_bank"
	EndpointSendToWallet        = "merchantapi/send_money_to_wallet"
	EndpointSendConfirm         = "merchantapi/send_money_confirm"
	EndpointSendStatus          = "merchantapi/send_money_status"
)

// ConfirmTypeSMS is the default confirmation channel for outgoing transfers.
const ConfirmTypeSMS = "SMS"

// NewExtTransactionID returns a fresh merchant-side transaction reference.
func NewExtTransactionID() string {
	return uuid.NewString()
}

// CheckBusinessWallet looks up a business wallet by phone number or wallet ID.
func (c *Client) CheckBusinessWallet(ctx context.Context, dataInfo, currencyCode string) (Response, error) {
	if currencyCode == "" {
		currencyCode = DefaultCurrency
	}
	if err := validateRequired(field{"dataInfo", dataInfo}); err != nil {
		return nil, err
	}

	return c.Execute(ctx, EndpointCheckBusinessWallet, map[string]any{
		"dataInfo":     dataInfo,
		"currencyCode": currencyCode,
	})
}

// TopupBankToBusinessWallet announces an incoming bank transfer into the
// business wallet. The hashKey covers amount, receiver IBAN and
// extTransactionId.
func (c *Client) TopupBankToBusinessWallet(ctx context.Context, req *TopupRequest) (Response, error) {
	if err := validateRequired(
		field{"topupBusinessWalletMethod", req.Method},
		field{"receiverIban", req.ReceiverIBAN},
		field{"senderIban", req.SenderIBAN},
		field{"senderAccountHolderName", req.SenderAccountHolderName},
		field{"currencyCode", req.CurrencyCode},
		field{"extTransactionId", req.ExtTransactionID},
	); err != nil {
		return nil, err
	}
	if err := validatePositive("amount", req.Amount); err != nil {
		return nil, err
	}

	amount := FormatAmount(req.Amount)
	hashKey, err := c.Sign(amount, req.ReceiverIBAN, req.ExtTransactionID)
	if err != nil {
		return nil, err
	}

	resp, err := c.Execute(ctx, EndpointTopup, map[string]any{
		"thisStep":                  "Topup_Bank_to_Business_Wallet",
		"topupBusinessWalletMethod": req.Method,
		"receiverIban":              req.ReceiverIBAN,
		"senderIban":                req.SenderIBAN,
		"senderAccountHolderName":   req.SenderAccountHolderName,
		"senderDescription":         req.SenderDescription,
		"amount":                    amount,
		"currencyCode":              req.CurrencyCode,
		"description":               req.Description,
		"extTransactionId":          req.ExtTransactionID,
		"hashKey":                   hashKey,
	})
	c.record(ctx, &TransferRecord{
		Endpoint:         EndpointTopup,
		ExtTransactionID: req.ExtTransactionID,
		AmountMinor:      amount,
		CurrencyCode:     req.CurrencyCode,
	}, resp, err)
	return resp, err
}

// SendMoneyToBank creates an outgoing transfer to an IBAN. The provider
// usually answers with NextStep=Approve_Send_Money; finish the transfer with
// ApproveSendMoney using the one-time code.
func (c *Client) SendMoneyToBank(ctx context.Context, req *SendToBankRequest) (Response, error) {
	if err := validateRequired(
		field{"senderWalletId", req.SenderWalletID},
		field{"receiverAccountHolderName", req.ReceiverAccountHolderName},
		field{"receiverIban", req.ReceiverIBAN},
		field{"receiverNationalIdOrTaxNo", req.ReceiverNationalIDOrTaxNo},
		field{"extTransactionId", req.ExtTransactionID},
	); err != nil {
		return nil, err
	}
	if err := validatePositive("amount", req.Amount); err != nil {
		return nil, err
	}
	paymentType, err := paymentTypeOrDefault(req.PaymentType, PaymentTypeOther)
	if err != nil {
		return nil, err
	}
	currency := orDefault(req.CurrencyCode, DefaultCurrency)

	amount := FormatAmount(req.Amount)
	hashKey, err := c.Sign(req.SenderWalletID, amount, req.ReceiverIBAN, req.ExtTransactionID)
	if err != nil {
		return nil, err
	}

	resp, err := c.Execute(ctx, EndpointSendToBank, map[string]any{
		"thisStep":                  "Send_Money_To_Bank",
		"senderWalletId":            req.SenderWalletID,
		"receiverAccountHolderName": req.ReceiverAccountHolderName,
		"receiverIban":              req.ReceiverIBAN,
		"receiverNationalIdOrTaxNo": req.ReceiverNationalIDOrTaxNo,
		"senderDescription":         req.SenderDescription,
		"paymentType":               string(paymentType),
		"amount":                    amount,
		"currencyCode":              currency,
		"extTransactionId":          req.ExtTransactionID,
		"confirmType":               orDefault(req.ConfirmType, ConfirmTypeSMS),
		"hashKey":                   hashKey,
	})
	c.record(ctx, &TransferRecord{
		Endpoint:         EndpointSendToBank,
		ExtTransactionID: req.ExtTransactionID,
		AmountMinor:      amount,
		CurrencyCode:     currency,
	}, resp, err)
	return resp, err
}

// SendMoneyToWallet creates a wallet-to-wallet transfer.
func (c *Client) SendMoneyToWallet(ctx context.Context, req *SendToWalletRequest) (Response, error) {
	if err := validateRequired(
		field{"senderWalletId", req.SenderWalletID},
		field{"receiverWalletId", req.ReceiverWalletID},
		field{"extTransactionId", req.ExtTransactionID},
	); err != nil {
		return nil, err
	}
	if err := validatePositive("amount", req.Amount); err != nil {
		return nil, err
	}
	paymentType, err := paymentTypeOrDefault(req.PaymentType, PaymentTypeECommerce)
	if err != nil {
		return nil, err
	}
	currency := orDefault(req.CurrencyCode, DefaultCurrency)

	amount := FormatAmount(req.Amount)
	hashKey, err := c.Sign(req.SenderWalletID, amount, req.ReceiverWalletID, req.ExtTransactionID)
	if err != nil {
		return nil, err
	}

	resp, err := c.Execute(ctx, EndpointSendToWallet, map[string]any{
		"thisStep":          "Send_Money_To_Wallet",
		"senderWalletId":    req.SenderWalletID,
		"receiverWalletId":  req.ReceiverWalletID,
		"senderDescription": req.SenderDescription,
		"paymentType":       string(paymentType),
		"amount":            amount,
		"currencyCode":      currency,
		"extTransactionId":  req.ExtTransactionID,
		"confirmType":       orDefault(req.ConfirmType, ConfirmTypeSMS),
		"hashKey":           hashKey,
	})
	c.record(ctx, &TransferRecord{
		Endpoint:         EndpointSendToWallet,
		ExtTransactionID: req.ExtTransactionID,
		AmountMinor:      amount,
		CurrencyCode:     currency,
	}, resp, err)
	return resp, err
}

// ApproveSendMoney confirms a pending transfer with the one-time pass code.
func (c *Client) ApproveSendMoney(ctx context.Context, req *ApproveRequest) (Response, error) {
	if err := validateRequired(
		field{"senderWalletId", req.SenderWalletID},
		field{"transactionId", req.TransactionID},
		field{"passCode", req.PassCode},
	); err != nil {
		return nil, err
	}
	if err := validatePositive("amount", req.Amount); err != nil {
		return nil, err
	}
	currency := orDefault(req.CurrencyCode, DefaultCurrency)

	amount := FormatAmount(req.Amount)
	resp, err := c.Execute(ctx, EndpointSendConfirm, map[string]any{
		"thisStep":       "Approve_Send_Money",
		"senderWalletId": req.SenderWalletID,
		"amount":         strconv.FormatInt(amount, 10),
		"currencyCode":   currency,
		"transactionId":  req.TransactionID,
		"passCode":       req.PassCode,
	})
	c.record(ctx, &TransferRecord{
		Endpoint:      EndpointSendConfirm,
		TransactionID: req.TransactionID,
		AmountMinor:   amount,
		CurrencyCode:  currency,
	}, resp, err)
	return resp, err
}

// TransactionStatus queries a transfer by provider or merchant reference.
func (c *Client) TransactionStatus(ctx context.Context, req *StatusRequest) (Response, error) {
	if unknownID(req.TransactionID) && unknownID(req.ExtTransactionID) {
		return nil, &ValidationError{Reason: "either transactionId or extTransactionId must be provided"}
	}
	typeID := req.TransactionTypeID
	if typeID == "" {
		typeID = TransactionTypeCorporateWithdrawal
	}
	if !typeID.IsValid() {
		return nil, &ValidationError{Field: "transactionTypeId", Reason: "is not a known transaction type"}
	}

	return c.Execute(ctx, EndpointSendStatus, map[string]any{
		"transactionId":     orDefault(req.TransactionID, "0"),
		"extTransactionId":  orDefault(req.ExtTransactionID, "0"),
		"transactionTypeId": string(typeID),
	})
}

// unknownID reports whether id is empty or the "0" placeholder.
func unknownID(id string) bool {
	return id == "" || id == "0"
}

func paymentTypeOrDefault(p, def PaymentType) (PaymentType, error) {
	if p == "" {
		return def, nil
	}
	if !p.IsValid() {
		return "", &ValidationError{Field: "paymentType", Reason: "is not a known payment type"}
	}
	return p, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
