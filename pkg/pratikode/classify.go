package pratikode

// Classify turns a decoded body into an *APIError when the provider set
// Success to false. A body without Success is treated as a success.
func Classify(body Response) (Response, error) {
	v, ok := body["Success"]
	if !ok {
		return body, nil
	}
	if success, isBool := v.(bool); isBool && !success {
		return nil, newAPIError(body)
	}
	return body, nil
}

func newAPIError(body Response) *APIError {
	message := "Unknown API error"
	if v, ok := body["ResponseDescription"]; ok && v != nil {
		message = stringValue(v)
	}
	return &APIError{
		Code:     body.String("ResponseCode"),
		Message:  message,
		Response: body,
	}
}
