//nolint:ireturn
package httpclient

import (
	"context"
	"net/http"
)

// GetJSON decodes a 2xx body into T and maps every other status code to a
// *StatusError.
func GetJSON[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (T, error) {
	var result T

	resp, err := c.Get(ctx, path, opts...)
	if err != nil {
		return result, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return result, NewStatusError(resp.StatusCode, string(resp.Body), resp.RequestID)
	}

	if err := resp.DecodeJSON(&result); err != nil {
		return result, err
	}

	return result, nil
}
