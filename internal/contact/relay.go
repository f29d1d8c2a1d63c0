// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Relay forwards a form to the external form service.
type Relay interface {
	// Send returns the HTTP status of the relay response. A non-nil error
	// means the form was not accepted; the status is zero when no response
	// arrived.
	Send(context context.Context, form Form) (int, error)
}

// HTTPRelay posts the form as JSON.
type HTTPRelay struct {
	url    string
	client *http.Client
}

func NewHTTPRelay(url string, client *http.Client) *HTTPRelay {
	return &HTTPRelay{url: url, client: client}
}

// Send treats any 2xx answer as accepted.
func (relay *HTTPRelay) Send(context context.Context, form Form) (int, error) {
	body, err := json.Marshal(form)
	if err != nil {
		return 0, fmt.Errorf("contact: encode form: %w", err)
	}

	request, err := http.NewRequestWithContext(context, http.MethodPost, relay.url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("contact: build request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	response, err := relay.client.Do(request)
	if err != nil {
		return 0, fmt.Errorf("contact: relay: %w", err)
	}
	defer response.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(response.Body, 4<<10))

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return response.StatusCode, fmt.Errorf("contact: relay: unexpected status %d", response.StatusCode)
	}
	return response.StatusCode, nil
}
