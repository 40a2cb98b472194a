package pratikode

import (
	"encoding/json"
	"fmt"
)

// SideChannelKey is the reserved response key under which side-channel header
// values (secretkey, confirmkey, smscode, smsmessage) are injected. The
// provider never uses a leading underscore in its field names.
const SideChannelKey = "_headers"

// StepApproveSendMoney is the NextStep value the provider returns when a
// transfer is created but still waits for the one-time code.
const StepApproveSendMoney = "Approve_Send_Money"

// Response is a decoded provider response body. Numbers are kept as
// json.Number so minor-unit amounts stay exact.
type Response map[string]any

// SideChannel returns the header values injected under SideChannelKey.
func (r Response) SideChannel() map[string]string {
	switch h := r[SideChannelKey].(type) {
	case map[string]string:
		return h
	case map[string]any:
		out := make(map[string]string, len(h))
		for k, v := range h {
			out[k] = fmt.Sprint(v)
		}
		return out
	}
	return map[string]string{}
}

// String returns r[key] in string form, or "" when absent or null.
func (r Response) String(key string) string {
	return stringValue(r[key])
}

// NextStep returns the provider's NextStep marker.
func (r Response) NextStep() string {
	return r.String("NextStep")
}

// RequiresApproval reports whether the transfer must be confirmed with
// ApproveSendMoney before it is executed.
func (r Response) RequiresApproval() bool {
	return r.NextStep() == StepApproveSendMoney
}

// List returns r[key] as a slice of objects, skipping non-object entries.
func (r Response) List(key string) []map[string]any {
	return objectList(r[key])
}

// TransactionID returns the provider transaction id from the first
// transactionDetails entry, falling back to a top-level transactionId.
func (r Response) TransactionID() string {
	if details := r.List("transactionDetails"); len(details) > 0 {
		if id := stringValue(details[0]["transactionId"]); id != "" {
			return id
		}
	}
	return r.String("transactionId")
}

func stringValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func objectList(v any) []map[string]any {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
