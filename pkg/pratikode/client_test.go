package pratikode

import (
	"context"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

const (
	testChannelID = "test-channel"
	testSecret    = "test-secret"
	testToken     = "test-token"
)

// mockServer creates a test server that validates the common request headers
// and returns the given response with the given extra response headers.
func mockServer(t *testing.T, expectedPath string, validateBody func(body map[string]any), headers map[string]string, response interface{}) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Validate method
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		// Validate path
		if r.URL.Path != expectedPath {
			t.Errorf("Expected path %s, got %s", expectedPath, r.URL.Path)
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}

		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Expected Content-Type application/json, got %s", r.Header.Get("Content-Type"))
		}
		if r.Header.Get("channelID") != testChannelID {
			t.Errorf("Expected channelID %s, got %s", testChannelID, r.Header.Get("channelID"))
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("Failed to decode body: %v", err)
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		if validateBody != nil {
			validateBody(body)
		}

		for k, v := range headers {
			w.Header().Set(k, v)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
}

// countingServer fails the test if it is ever called.
func countingServer(t *testing.T) (*httptest.Server, *int32) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{}`))
	}))
	return server, &calls
}

// newTestClient creates a client configured for testing
func newTestClient(baseURL string) *Client {
	return NewClient(&ClientConfig{
		BaseURL:   baseURL,
		ChannelID: testChannelID,
		Timeout:   5 * time.Second,
	})
}

func TestComputeHash(t *testing.T) {
	sum := sha256.Sum256([]byte("W1:500:TR00:ext-1:" + testSecret))
	expected := hex.EncodeToString(sum[:])

	got, err := ComputeHash(testSecret, "W1", int64(500), "TR00", "ext-1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != expected {
		t.Errorf("Expected hash %s, got %s", expected, got)
	}

	again, _ := ComputeHash(testSecret, "W1", int64(500), "TR00", "ext-1")
	if again != got {
		t.Errorf("Expected deterministic hash, got %s and %s", got, again)
	}

	other, _ := ComputeHash(testSecret, "W1", int64(501), "TR00", "ext-1")
	if other == got {
		t.Error("Expected different hash for different amount")
	}
	reordered, _ := ComputeHash(testSecret, "TR00", int64(500), "W1", "ext-1")
	if reordered == got {
		t.Error("Expected different hash for different field order")
	}
	otherSecret, _ := ComputeHash("another-secret", "W1", int64(500), "TR00", "ext-1")
	if otherSecret == got {
		t.Error("Expected different hash for different secret")
	}
}

func TestComputeHash_MissingSecret(t *testing.T) {
	_, err := ComputeHash("", "W1", 500)
	if !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("Expected ErrMissingSecret, got %v", err)
	}
	var target *MissingSecretError
	if !errors.As(err, &target) {
		t.Errorf("Expected *MissingSecretError, got %T", err)
	}
}

func TestSign_AfterLogout(t *testing.T) {
	client := newTestClient("http://localhost")

	if _, err := client.Sign("a"); !errors.Is(err, ErrMissingSecret) {
		t.Errorf("Expected ErrMissingSecret before secret is set, got %v", err)
	}

	client.Session().SetSecret(testSecret)
	if _, err := client.Sign("a"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	client.Logout()
	if _, err := client.Sign("a"); !errors.Is(err, ErrMissingSecret) {
		t.Errorf("Expected ErrMissingSecret after logout, got %v", err)
	}
	if client.Session().Token() != "" {
		t.Errorf("Expected empty token after logout, got '%s'", client.Session().Token())
	}
	client.Logout()
}

func TestExtractSideChannel(t *testing.T) {
	lines := []string{
		"HTTP/1.1 200 OK",
		"Content-Type: application/json",
		"SecretKey: abc123",
		"SMSCode:  654321 ",
		"smsmessage: code: 654321",
		"X-Other: ignored",
	}

	got := ExtractSideChannel(lines)

	if len(got) != 3 {
		t.Fatalf("Expected 3 side-channel values, got %d: %v", len(got), got)
	}
	if got[HeaderSecretKey] != "abc123" {
		t.Errorf("Expected secretkey 'abc123', got '%s'", got[HeaderSecretKey])
	}
	if got[HeaderSMSCode] != "654321" {
		t.Errorf("Expected smscode '654321', got '%s'", got[HeaderSMSCode])
	}
	if got[HeaderSMSMessage] != "code: 654321" {
		t.Errorf("Expected smsmessage 'code: 654321', got '%s'", got[HeaderSMSMessage])
	}

	empty := ExtractSideChannel([]string{"Content-Type: application/json"})
	if empty == nil || len(empty) != 0 {
		t.Errorf("Expected empty non-nil map, got %v", empty)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in       string
		expected int64
	}{
		{"5.00", 500},
		{"0.50", 50},
		{"1500.75", 150075},
		{"1.239", 123},
		{"-1.239", -123},
		{"0.001", 0},
	}

	for _, tt := range tests {
		got := FormatAmount(decimal.RequireFromString(tt.in))
		if got != tt.expected {
			t.Errorf("FormatAmount(%s): expected %d, got %d", tt.in, tt.expected, got)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in       any
		expected string
	}{
		{json.Number("500"), "5"},
		{json.Number("50"), "0.5"},
		{"150075", "1500.75"},
		{int64(1), "0.01"},
		{float64(250), "2.5"},
		{nil, "0"},
	}

	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if err != nil {
			t.Errorf("ParseAmount(%v): unexpected error: %v", tt.in, err)
			continue
		}
		if !got.Equal(decimal.RequireFromString(tt.expected)) {
			t.Errorf("ParseAmount(%v): expected %s, got %s", tt.in, tt.expected, got)
		}
	}

	if _, err := ParseAmount("abc"); err == nil {
		t.Error("Expected error for non-numeric amount")
	}
	if _, err := ParseAmount([]int{1}); err == nil {
		t.Error("Expected error for unsupported type")
	}

	back := FormatAmount(mustParse(t, json.Number("500")))
	if back != 500 {
		t.Errorf("Expected round trip to 500, got %d", back)
	}
}

func mustParse(t *testing.T, v any) decimal.Decimal {
	t.Helper()
	d, err := ParseAmount(v)
	if err != nil {
		t.Fatalf("ParseAmount(%v): %v", v, err)
	}
	return d
}

func TestClassify(t *testing.T) {
	t.Run("success false", func(t *testing.T) {
		body := Response{
			"Success":             false,
			"ResponseCode":        json.Number("101"),
			"ResponseDescription": "Insufficient balance",
		}
		_, err := Classify(body)
		apiErr, ok := IsAPIError(err)
		if !ok {
			t.Fatalf("Expected *APIError, got %T", err)
		}
		if apiErr.Message != "Insufficient balance" {
			t.Errorf("Expected message 'Insufficient balance', got '%s'", apiErr.Message)
		}
		if apiErr.Code != "101" {
			t.Errorf("Expected code '101', got '%s'", apiErr.Code)
		}
		if apiErr.Error() != "Insufficient balance" {
			t.Errorf("Expected Error() 'Insufficient balance', got '%s'", apiErr.Error())
		}
		if apiErr.Response["ResponseCode"] != json.Number("101") {
			t.Errorf("Expected full body on error, got %v", apiErr.Response)
		}
	})

	t.Run("success false without description", func(t *testing.T) {
		_, err := Classify(Response{"Success": false})
		apiErr, ok := IsAPIError(err)
		if !ok {
			t.Fatalf("Expected *APIError, got %T", err)
		}
		if apiErr.Message != "Unknown API error" {
			t.Errorf("Expected 'Unknown API error', got '%s'", apiErr.Message)
		}
		if apiErr.Code != "" {
			t.Errorf("Expected empty code, got '%s'", apiErr.Code)
		}
	})

	t.Run("success absent", func(t *testing.T) {
		body := Response{"data": "x"}
		got, err := Classify(body)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got.String("data") != "x" {
			t.Errorf("Expected body returned unchanged, got %v", got)
		}
	})

	t.Run("success true", func(t *testing.T) {
		if _, err := Classify(Response{"Success": true}); err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})
}

func TestJoinURL(t *testing.T) {
	tests := []struct {
		base, endpoint, expected string
	}{
		{"https://api.example.com", "merchantapi/login", "https://api.example.com/merchantapi/login"},
		{"https://api.example.com/", "merchantapi/login", "https://api.example.com/merchantapi/login"},
		{"https://api.example.com//", "/merchantapi/login", "https://api.example.com/merchantapi/login"},
		{"https://api.example.com/v1", "merchantapi/login", "https://api.example.com/v1/merchantapi/login"},
	}

	for _, tt := range tests {
		if got := joinURL(tt.base, tt.endpoint); got != tt.expected {
			t.Errorf("joinURL(%q, %q): expected %s, got %s", tt.base, tt.endpoint, tt.expected, got)
		}
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(&ClientConfig{BaseURL: "https://api.example.com"})

	if client.httpClient.Timeout != DefaultTimeout {
		t.Errorf("Expected timeout %v, got %v", DefaultTimeout, client.httpClient.Timeout)
	}
	transport, ok := client.httpClient.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("Expected *http.Transport, got %T", client.httpClient.Transport)
	}
	if transport.TLSClientConfig.InsecureSkipVerify {
		t.Error("Expected TLS verification to be enabled by default")
	}

	insecure := NewClient(&ClientConfig{BaseURL: "https://api.example.com", InsecureSkipVerify: true})
	if !insecure.httpClient.Transport.(*http.Transport).TLSClientConfig.InsecureSkipVerify {
		t.Error("Expected TLS verification to be disabled when requested")
	}
}

func TestExecute_SideChannelHeaders(t *testing.T) {
	server := mockServer(t, "/merchantapi/test", nil,
		map[string]string{"secretkey": "s3cr3t", "smscode": "123456"},
		map[string]any{"Success": true})
	defer server.Close()

	client := newTestClient(server.URL)
	resp, err := client.Execute(context.Background(), "merchantapi/test", nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	side := resp.SideChannel()
	if side[HeaderSecretKey] != "s3cr3t" {
		t.Errorf("Expected secretkey 's3cr3t', got '%s'", side[HeaderSecretKey])
	}
	if side[HeaderSMSCode] != "123456" {
		t.Errorf("Expected smscode '123456', got '%s'", side[HeaderSMSCode])
	}
}

func TestExecute_NoSideChannelHeaders(t *testing.T) {
	server := mockServer(t, "/merchantapi/test", nil, nil, map[string]any{"Success": true})
	defer server.Close()

	client := newTestClient(server.URL)
	resp, err := client.Execute(context.Background(), "merchantapi/test", map[string]any{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, ok := resp[SideChannelKey]; ok {
		t.Errorf("Expected no %s key, got %v", SideChannelKey, resp[SideChannelKey])
	}
}

func TestExecute_AccessTokenHeader(t *testing.T) {
	var tokens []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokens = append(tokens, r.Header.Get("accessToken"))
		w.Write([]byte(`{"Success":true}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	ctx := context.Background()

	if _, err := client.Execute(ctx, "merchantapi/a", nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	client.Session().SetToken(testToken)
	if _, err := client.Execute(ctx, "merchantapi/b", nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(tokens) != 2 {
		t.Fatalf("Expected 2 requests, got %d", len(tokens))
	}
	if tokens[0] != "" {
		t.Errorf("Expected no accessToken before login, got '%s'", tokens[0])
	}
	if tokens[1] != testToken {
		t.Errorf("Expected accessToken '%s', got '%s'", testToken, tokens[1])
	}
}

func TestExecuteWithHeaders_AddsValues(t *testing.T) {
	var channelIDs []string
	var custom string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		channelIDs = r.Header.Values("channelID")
		custom = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	extra := http.Header{}
	extra.Set("X-Request-Id", "req-1")
	extra.Set("channelID", "override")

	if _, err := client.ExecuteWithHeaders(context.Background(), "merchantapi/a", nil, extra); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if custom != "req-1" {
		t.Errorf("Expected X-Request-Id 'req-1', got '%s'", custom)
	}
	if len(channelIDs) != 2 || channelIDs[0] != testChannelID || channelIDs[1] != "override" {
		t.Errorf("Expected both channelID values, got %v", channelIDs)
	}
}

func TestExecute_HTTPStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"Success":false,"ResponseDescription":"boom"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Execute(context.Background(), "merchantapi/a", nil)

	var statusErr *HTTPStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Expected *HTTPStatusError, got %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", statusErr.StatusCode)
	}
	if _, ok := IsAPIError(err); ok {
		t.Error("Expected status error to take precedence over body classification")
	}
}

func TestExecute_DecodeError(t *testing.T) {
	for _, payload := range []string{"not json", "null", "", `{"Success":true} <html>oops</html>`, `{"Success":true}}`} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(payload))
		}))

		client := newTestClient(server.URL)
		_, err := client.Execute(context.Background(), "merchantapi/a", nil)
		server.Close()

		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			t.Errorf("Payload %q: expected *DecodeError, got %T: %v", payload, err, err)
		}
	}
}

func TestExecute_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := newTestClient(url)
	_, err := client.Execute(context.Background(), "merchantapi/a", nil)

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("Expected *TransportError, got %T: %v", err, err)
	}
	if transportErr.Endpoint != "merchantapi/a" {
		t.Errorf("Expected endpoint 'merchantapi/a', got '%s'", transportErr.Endpoint)
	}
}

func TestExecute_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(server.URL)
	_, err := client.Execute(ctx, "merchantapi/a", nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	sum := sha512.Sum512([]byte("p4ss"))
	expectedPassword := hex.EncodeToString(sum[:])

	server := mockServer(t, "/merchantapi/login", func(body map[string]any) {
		if body["UserName"] != "merchant" {
			t.Errorf("Expected UserName 'merchant', got '%v'", body["UserName"])
		}
		if body["Password"] != expectedPassword {
			t.Errorf("Expected hashed password, got '%v'", body["Password"])
		}
		if body["DealerCode"] != "D1" {
			t.Errorf("Expected DealerCode 'D1', got '%v'", body["DealerCode"])
		}
		if _, ok := body["BranchCode"]; ok {
			t.Error("Expected no BranchCode when unset")
		}
	}, nil, map[string]any{"Success": true, "Token": testToken})
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Login(context.Background(), &LoginRequest{
		UserName:   "merchant",
		Password:   "p4ss",
		DealerCode: "D1",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if client.Session().Token() != testToken {
		t.Errorf("Expected token '%s', got '%s'", testToken, client.Session().Token())
	}
}

func TestLogin_Failure(t *testing.T) {
	server := mockServer(t, "/merchantapi/login", nil, nil, map[string]any{
		"Success":             false,
		"ResponseCode":        "401",
		"ResponseDescription": "Invalid credentials",
	})
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Login(context.Background(), &LoginRequest{UserName: "u", Password: "p", DealerCode: "d"})

	apiErr, ok := IsAPIError(err)
	if !ok {
		t.Fatalf("Expected *APIError, got %T", err)
	}
	if apiErr.Code != "401" {
		t.Errorf("Expected code '401', got '%s'", apiErr.Code)
	}
	if client.Session().Token() != "" {
		t.Errorf("Expected no token after failed login, got '%s'", client.Session().Token())
	}
}

func TestLogin_MissingDealerCode(t *testing.T) {
	server, calls := countingServer(t)
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Login(context.Background(), &LoginRequest{UserName: "u", Password: "p"})

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected *ValidationError, got %T", err)
	}
	if validationErr.Field != "dealerCode" {
		t.Errorf("Expected field 'dealerCode', got '%s'", validationErr.Field)
	}
	if atomic.LoadInt32(calls) != 0 {
		t.Errorf("Expected no request, got %d", *calls)
	}
}

func TestCreateSecretKey_FromHeader(t *testing.T) {
	server := mockServer(t, "/merchantapi/my_secret_key", func(body map[string]any) {
		if body["thisStep"] != "Secret_Key_Send" {
			t.Errorf("Expected thisStep 'Secret_Key_Send', got '%v'", body["thisStep"])
		}
	}, map[string]string{"secretkey": "from-header"}, map[string]any{"Success": true, "secretKey": "from-body"})
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.CreateSecretKey(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if client.Session().Secret() != "from-header" {
		t.Errorf("Expected secret 'from-header', got '%s'", client.Session().Secret())
	}
}

func TestCreateSecretKey_FromBody(t *testing.T) {
	server := mockServer(t, "/merchantapi/my_secret_key", nil, nil, map[string]any{"Success": true, "secretKey": "from-body"})
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.CreateSecretKey(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if client.Session().Secret() != "from-body" {
		t.Errorf("Expected secret 'from-body', got '%s'", client.Session().Secret())
	}
}

func TestCreateConfirmKey_Validation(t *testing.T) {
	server, calls := countingServer(t)
	defer server.Close()

	client := newTestClient(server.URL)
	for _, key := range []string{"", "12ab", "12345678901"} {
		_, err := client.CreateConfirmKey(context.Background(), key)
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Errorf("Key %q: expected *ValidationError, got %T", key, err)
		}
	}
	if atomic.LoadInt32(calls) != 0 {
		t.Errorf("Expected no request, got %d", *calls)
	}

	if _, err := client.CreateConfirmKey(context.Background(), "1234567890"); err != nil {
		t.Errorf("Unexpected error for valid key: %v", err)
	}
}

func TestSaveIBAN_MissingAccountHolderName(t *testing.T) {
	server, calls := countingServer(t)
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.SaveIBAN(context.Background(), "TR330006100519786457841326", "")

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected *ValidationError, got %T", err)
	}
	if validationErr.Field != "accountHolderName" {
		t.Errorf("Expected field 'accountHolderName', got '%s'", validationErr.Field)
	}
	if validationErr.Error() != "pratikode: field 'accountHolderName' is missing or empty" {
		t.Errorf("Unexpected message: %s", validationErr.Error())
	}
	if atomic.LoadInt32(calls) != 0 {
		t.Errorf("Expected no request, got %d", *calls)
	}
}

func TestUpdateIBAN_InvalidStatus(t *testing.T) {
	client := newTestClient("http://localhost")
	_, err := client.UpdateIBAN(context.Background(), 1, 2)

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected *ValidationError, got %T", err)
	}
	if validationErr.Field != "status" {
		t.Errorf("Expected field 'status', got '%s'", validationErr.Field)
	}
}

func TestDeleteIBAN(t *testing.T) {
	server := mockServer(t, "/merchantapi/my_iban_update", func(body map[string]any) {
		if body["ibanId"] != float64(42) {
			t.Errorf("Expected ibanId 42, got %v", body["ibanId"])
		}
		if body["status"] != float64(IBANStatusDelete) {
			t.Errorf("Expected status 0, got %v", body["status"])
		}
	}, nil, map[string]any{"Success": true})
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.DeleteIBAN(context.Background(), 42); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestBalance_FormatsAmounts(t *testing.T) {
	server := mockServer(t, "/merchantapi/my_balance", nil, nil, map[string]any{
		"Success": true,
		"walletInfo": []map[string]any{
			{"walletId": "W1", "totalBalance": 150075, "unavailableBalance": 5000, "iban": "TR00"},
			{"walletId": "W2", "totalBalance": nil},
		},
	})
	defer server.Close()

	client := newTestClient(server.URL)
	resp, err := client.Balance(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	wallets := resp.List("walletInfo")
	if len(wallets) != 2 {
		t.Fatalf("Expected 2 wallets, got %d", len(wallets))
	}
	if _, ok := wallets[1]["totalBalanceFormatted"]; ok {
		t.Errorf("Expected no formatted field for a null balance, got '%v'", wallets[1]["totalBalanceFormatted"])
	}
	if wallets[0]["totalBalanceFormatted"] != "1500.75" {
		t.Errorf("Expected totalBalanceFormatted '1500.75', got '%v'", wallets[0]["totalBalanceFormatted"])
	}
	if wallets[0]["unavailableBalanceFormatted"] != "50.00" {
		t.Errorf("Expected unavailableBalanceFormatted '50.00', got '%v'", wallets[0]["unavailableBalanceFormatted"])
	}
}

func TestFormattedBalance(t *testing.T) {
	server := mockServer(t, "/merchantapi/my_balance", nil, nil, map[string]any{
		"Success": true,
		"walletInfo": []map[string]any{
			{"walletId": "W1", "totalBalance": 150075, "unavailableBalance": 5000, "iban": "TR00"},
		},
	})
	defer server.Close()

	client := newTestClient(server.URL)
	summary, err := client.FormattedBalance(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(summary.Wallets) != 1 {
		t.Fatalf("Expected 1 wallet, got %d", len(summary.Wallets))
	}
	w := summary.Wallets[0]
	if w.WalletID != "W1" {
		t.Errorf("Expected walletID 'W1', got '%s'", w.WalletID)
	}
	if !w.AvailableBalance.Equal(decimal.RequireFromString("1450.75")) {
		t.Errorf("Expected available 1450.75, got %s", w.AvailableBalance)
	}
	if w.CurrencyCode != DefaultCurrency {
		t.Errorf("Expected currency %s, got %s", DefaultCurrency, w.CurrencyCode)
	}
	if limits, ok := summary.TransactionLimits.([]any); !ok || len(limits) != 0 {
		t.Errorf("Expected empty transaction limits, got %v", summary.TransactionLimits)
	}
}
