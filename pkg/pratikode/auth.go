package pratikode

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
)

// Endpoint paths, relative to BaseURL.
const (
	EndpointLogin         = "merchantapi/login"
	EndpointSecretKey     = "merchantapi/my_secret_key"
	EndpointConfirmKey    = "merchantapi/my_confirm_key"
	EndpointErrorCodeList = "merchantapi/error_code_list"
)

const maxConfirmKeyLength = 10

// HashPassword returns the lowercase hex SHA-512 digest the login endpoint
// expects instead of the plain password.
func HashPassword(password string) string {
	sum := sha512.Sum512([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Login authenticates the merchant user and stores the returned token in the
// session. Later requests carry it in the accessToken header.
func (c *Client) Login(ctx context.Context, req *LoginRequest) (Response, error) {
	if err := validateRequired(
		field{"username", req.UserName},
		field{"password", req.Password},
		field{"dealerCode", req.DealerCode},
	); err != nil {
		return nil, err
	}

	body := map[string]any{
		"UserName":   req.UserName,
		"Password":   HashPassword(req.Password),
		"DealerCode": req.DealerCode,
	}
	if req.BranchCode != "" {
		body["BranchCode"] = req.BranchCode
	}

	resp, err := c.Execute(ctx, EndpointLogin, body)
	if err != nil {
		return nil, err
	}

	if token := resp.String("Token"); token != "" {
		c.session.SetToken(token)
	}
	return resp, nil
}

// CreateSecretKey asks the provider for a fresh secret key and stores it in
// the session. The key arrives in the secretkey response header; a secretKey
// body field is used when the header is absent.
func (c *Client) CreateSecretKey(ctx context.Context) (Response, error) {
	resp, err := c.Execute(ctx, EndpointSecretKey, map[string]any{
		"thisStep": "Secret_Key_Send",
	})
	if err != nil {
		return nil, err
	}

	if secret := resp.SideChannel()[HeaderSecretKey]; secret != "" {
		c.session.SetSecret(secret)
	} else if secret := resp.String("secretKey"); secret != "" {
		c.session.SetSecret(secret)
	}
	return resp, nil
}

// CreateConfirmKey registers the merchant's numeric confirm key (at most ten
// digits).
func (c *Client) CreateConfirmKey(ctx context.Context, confirmKey string) (Response, error) {
	if err := validateRequired(field{"confirmKey", confirmKey}); err != nil {
		return nil, err
	}
	if !isNumeric(confirmKey) || len(confirmKey) > maxConfirmKeyLength {
		return nil, &ValidationError{Field: "confirmKey", Reason: "must be numeric and max 10 characters"}
	}

	return c.Execute(ctx, EndpointConfirmKey, map[string]any{
		"thisStep":   "Confirm_Key_Send",
		"confirmKey": confirmKey,
	})
}

// ErrorCodeList returns the provider's error code catalogue.
func (c *Client) ErrorCodeList(ctx context.Context) (Response, error) {
	return c.Execute(ctx, EndpointErrorCodeList, map[string]any{
		"thisStep": "Error Code List",
	})
}

// Logout forgets the token and the secret key. It does not call the API.
func (c *Client) Logout() {
	c.session.Clear()
}
