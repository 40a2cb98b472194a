// Package pratikode provides a client for the Pratik Ödeme merchant API.
//
// The merchant API lets a business manage its corporate wallet: log in,
// query balances and saved IBANs, move money to bank accounts or other
// wallets, and pull transaction reports. Every call is a JSON POST below
// merchantapi/.
//
// # Authentication
//
// Requests carry two headers:
//   - channelID: the channel assigned to the merchant (ClientConfig.ChannelID)
//   - accessToken: the token returned by Login, once logged in
//
// Money movements additionally carry a hashKey: the SHA-256 of the
// transaction fields joined by ":" and followed by the secret key obtained
// from CreateSecretKey. Some values (secretkey, confirmkey, smscode,
// smsmessage) are delivered in response headers; they are exposed on the
// decoded Response under SideChannelKey.
//
// # Basic Usage
//
//	client := pratikode.NewClient(&pratikode.ClientConfig{
//	    BaseURL:   "https://api.pratikode.com.tr",
//	    ChannelID: "your-channel-id",
//	})
//
//	// Log in and fetch the secret key used for hashes
//	_, err := client.Login(ctx, &pratikode.LoginRequest{
//	    UserName:   "merchant",
//	    Password:   "password",
//	    DealerCode: "dealer",
//	})
//	_, err = client.CreateSecretKey(ctx)
//
//	// Send money, then confirm with the one-time code
//	resp, err := client.SendMoneyToBank(ctx, &pratikode.SendToBankRequest{
//	    SenderWalletID: walletID,
//	    Amount:         decimal.RequireFromString("150.00"),
//	    // ...
//	})
//	if resp.RequiresApproval() {
//	    _, err = client.ApproveSendMoney(ctx, &pratikode.ApproveRequest{...})
//	}
//
// Amounts are decimal.Decimal values in major units; the client converts
// them to the integer minor units (kuruş) used on the wire.
//
// # Error Handling
//
// Provider-side failures (Success=false) are returned as *APIError:
//
//	_, err := client.SendMoneyToBank(ctx, req)
//	if apiErr, ok := pratikode.IsAPIError(err); ok {
//	    log.Printf("rejected: %s (%s)", apiErr.Message, apiErr.Code)
//	}
//
// Other failures are *TransportError, *HTTPStatusError, *DecodeError,
// *ValidationError or ErrMissingSecret.
package pratikode
