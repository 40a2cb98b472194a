package pratikode

import (
	"net/http"
	"sort"
	"strings"
)

// Response header names the provider uses to deliver values that are not
// repeated in the JSON body. Keys are lower-case.
const (
	HeaderSecretKey  = "secretkey"
	HeaderConfirmKey = "confirmkey"
	HeaderSMSCode    = "smscode"
	HeaderSMSMessage = "smsmessage"
)

var sideChannelHeaders = map[string]bool{
	HeaderSecretKey:  true,
	HeaderConfirmKey: true,
	HeaderSMSCode:    true,
	HeaderSMSMessage: true,
}

// ExtractSideChannel scans raw "Key: value" header lines and keeps only the
// side-channel keys. Key matching is case-insensitive; lines without a colon
// are skipped. The result is empty (never nil) when nothing matched.
func ExtractSideChannel(lines []string) map[string]string {
	out := make(map[string]string)
	for _, line := range lines {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if sideChannelHeaders[key] {
			out[key] = strings.TrimSpace(value)
		}
	}
	return out
}

// HeaderLines renders h as "Key: value" lines, one per value, in key order.
func HeaderLines(h http.Header) []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var lines []string
	for _, k := range keys {
		for _, v := range h[k] {
			lines = append(lines, k+": "+v)
		}
	}
	return lines
}
