package sandbox

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

type request map[string]any

// decodeRequest reads a JSON object body. Numbers are kept as json.Number so
// hash fields render exactly as the client formatted them.
func decodeRequest(r *http.Request) (request, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var body request
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, fmt.Errorf("body is not a JSON object")
	}
	return body, nil
}

// str returns body[key] as a string, "" when absent.
func (b request) str(key string) string {
	switch v := b[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// integer parses body[key] as an integer in either number or string form.
func (b request) integer(key string) (int64, bool) {
	s := b.str(key)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// missing returns the first key whose value is absent or empty.
func (b request) missing(keys ...string) (string, bool) {
	for _, k := range keys {
		if b.str(k) == "" {
			return k, true
		}
	}
	return "", false
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		http.Error(w, "encoding error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// respondOK writes a successful envelope. Side-channel headers must be set
// on w before calling it.
func respondOK(w http.ResponseWriter, body map[string]any) {
	if body == nil {
		body = map[string]any{}
	}
	body["Success"] = true
	if _, ok := body["ResponseCode"]; !ok {
		body["ResponseCode"] = CodeOK
	}
	if _, ok := body["ResponseDescription"]; !ok {
		body["ResponseDescription"] = errorCodes[CodeOK]
	}
	writeJSON(w, http.StatusOK, body)
}

// respondFail writes a domain failure: HTTP 200 with Success=false.
func respondFail(w http.ResponseWriter, code string) {
	respondFailf(w, code, errorCodes[code])
}

func respondFailf(w http.ResponseWriter, code, description string) {
	writeJSON(w, http.StatusOK, map[string]any{
		"Success":             false,
		"ResponseCode":        code,
		"ResponseDescription": description,
	})
}

func respondBadRequest(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"Success":             false,
		"ResponseDescription": "Invalid request body: " + err.Error(),
	})
}
