package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/andyle182810/apiprobe/httpclient"
	"github.com/rs/zerolog/log"
)

// EndpointURL is the only endpoint this tool probes.
const EndpointURL = "https://api.github.com"

const (
	successLine = "Success! API data received:"
	failureLine = "Failed to retrieve data."
)

// Runner performs a single GET against the probe endpoint and writes the
// outcome to out. Transport and decode failures are returned to the
// caller; the only handled condition is a non-200 status code.
type Runner struct {
	client *httpclient.Client
	out    io.Writer
}

func New(client *httpclient.Client, out io.Writer) *Runner {
	return &Runner{
		client: client,
		out:    out,
	}
}

func (r *Runner) Run(ctx context.Context) error {
	resp, err := r.client.Get(ctx, "/")
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	log.Debug().
		Int("status_code", resp.StatusCode).
		Str("request_id", resp.RequestID).
		Msg("Response received")

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintln(r.out, failureLine)

		return nil
	}

	var payload any
	if err := resp.DecodeJSON(&payload); err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	rendered, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("fetch: failed to render response: %w", err)
	}

	fmt.Fprintln(r.out, successLine)
	fmt.Fprintln(r.out, string(rendered))

	return nil
}
