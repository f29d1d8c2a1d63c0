// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Source loads the current log snapshot. Every call reads the source again;
// nothing is cached across requests.
type Source interface {
	Load(context context.Context) ([]Entry, error)
	Name() string
}

// NewSource picks an HTTP source for http(s) URLs and a file source otherwise.
func NewSource(location string, timeout time.Duration) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location, &http.Client{Timeout: timeout})
	}
	return NewFileSource(location)
}

// # File Source

// FileSource reads the log file from disk.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (source *FileSource) Name() string { return "file:" + source.path }

func (source *FileSource) Load(context context.Context) ([]Entry, error) {
	if err := context.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(source.path)
	if err != nil {
		return nil, fmt.Errorf("logs: open %s: %w", source.path, err)
	}
	defer file.Close()

	return Decode(file)
}

// # HTTP Source

// HTTPSource fetches the log file from a URL.
type HTTPSource struct {
	url    string
	client *http.Client
}

func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	return &HTTPSource{url: url, client: client}
}

func (source *HTTPSource) Name() string { return source.url }

// Load fetches and decodes the file. Any non-2xx status is an error.
// The request is bound to the caller's context, so an abandoned request
// never delivers a late result.
func (source *HTTPSource) Load(context context.Context) ([]Entry, error) {
	request, err := http.NewRequestWithContext(context, http.MethodGet, source.url, nil)
	if err != nil {
		return nil, fmt.Errorf("logs: build request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := source.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("logs: fetch %s: %w", source.url, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(response.Body, 4<<10))
		return nil, fmt.Errorf("logs: fetch %s: unexpected status %d", source.url, response.StatusCode)
	}

	return Decode(response.Body)
}
