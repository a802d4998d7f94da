package httpclient

import (
	"encoding/json"
	"fmt"
)

type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	RequestID  string
}

func (r *Response) DecodeJSON(target any) error {
	if err := json.Unmarshal(r.Body, target); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	return nil
}
