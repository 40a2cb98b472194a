package pratikode

import (
	"context"
	"fmt"
)

const (
	EndpointAccountBasic = "merchantapi/my_account_basic"
	EndpointBalance      = "merchantapi/my_balance"
	EndpointIBANSave     = "merchantapi/my_iban_save"
	EndpointIBANUpdate   = "merchantapi/my_iban_update"
	EndpointIBANList     = "merchantapi/my_iban"
)

// IBAN status values accepted by UpdateIBAN.
const (
	IBANStatusDelete   = 0
	IBANStatusActivate = 1
)

// AccountBasic returns the merchant account details.
func (c *Client) AccountBasic(ctx context.Context) (Response, error) {
	return c.Execute(ctx, EndpointAccountBasic, map[string]any{
		"thisStep": "My_Account_Basic",
	})
}

// Balance returns the wallet balances. Each walletInfo entry gains
// totalBalanceFormatted and unavailableBalanceFormatted decimal strings.
func (c *Client) Balance(ctx context.Context) (Response, error) {
	resp, err := c.Execute(ctx, EndpointBalance, map[string]any{
		"thisStep": "My_Balance",
	})
	if err != nil {
		return nil, err
	}

	for _, wallet := range resp.List("walletInfo") {
		formatMinorField(wallet, "totalBalance")
		formatMinorField(wallet, "unavailableBalance")
	}
	return resp, nil
}

// FormattedBalance returns the balances as decimal amounts with the available
// balance computed as total minus unavailable.
func (c *Client) FormattedBalance(ctx context.Context) (*BalanceSummary, error) {
	resp, err := c.Balance(ctx)
	if err != nil {
		return nil, err
	}

	summary := &BalanceSummary{
		Wallets:           []Wallet{},
		TransactionLimits: resp["transactionLimits"],
	}
	if summary.TransactionLimits == nil {
		summary.TransactionLimits = []any{}
	}

	for _, w := range resp.List("walletInfo") {
		total, err := ParseAmount(w["totalBalance"])
		if err != nil {
			return nil, err
		}
		unavailable, err := ParseAmount(w["unavailableBalance"])
		if err != nil {
			return nil, err
		}
		currency := stringValue(w["currencyCode"])
		if currency == "" {
			currency = DefaultCurrency
		}
		summary.Wallets = append(summary.Wallets, Wallet{
			WalletID:           stringValue(w["walletId"]),
			TotalBalance:       total,
			UnavailableBalance: unavailable,
			AvailableBalance:   total.Sub(unavailable),
			IBAN:               stringValue(w["iban"]),
			CurrencyCode:       currency,
		})
	}
	return summary, nil
}

// SaveIBAN registers a withdrawal IBAN for the merchant.
func (c *Client) SaveIBAN(ctx context.Context, iban, accountHolderName string) (Response, error) {
	if err := validateRequired(
		field{"iban", iban},
		field{"accountHolderName", accountHolderName},
	); err != nil {
		return nil, err
	}

	return c.Execute(ctx, EndpointIBANSave, map[string]any{
		"iban":              iban,
		"accountHolderName": accountHolderName,
	})
}

// UpdateIBAN deletes (IBANStatusDelete) or activates (IBANStatusActivate) a
// saved IBAN.
func (c *Client) UpdateIBAN(ctx context.Context, ibanID int64, status int) (Response, error) {
	if status != IBANStatusDelete && status != IBANStatusActivate {
		return nil, &ValidationError{Field: "status", Reason: fmt.Sprintf("must be 0 (delete) or 1 (activate), got %d", status)}
	}

	return c.Execute(ctx, EndpointIBANUpdate, map[string]any{
		"ibanId": ibanID,
		"status": status,
	})
}

// DeleteIBAN is UpdateIBAN with IBANStatusDelete.
func (c *Client) DeleteIBAN(ctx context.Context, ibanID int64) (Response, error) {
	return c.UpdateIBAN(ctx, ibanID, IBANStatusDelete)
}

// ActivateIBAN is UpdateIBAN with IBANStatusActivate.
func (c *Client) ActivateIBAN(ctx context.Context, ibanID int64) (Response, error) {
	return c.UpdateIBAN(ctx, ibanID, IBANStatusActivate)
}

// IBANList returns the saved IBANs.
func (c *Client) IBANList(ctx context.Context) (Response, error) {
	return c.Execute(ctx, EndpointIBANList, map[string]any{
		"thisStep": "My_Iban",
	})
}
