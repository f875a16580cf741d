// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

// Package adapter implements the external exercise feed: a JSON-array
// resource, fetched either over HTTP or from a local file, that serves as the
// authoritative declarative source for the exercise catalog.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/feal94/guitar.io/internal/config"
	"github.com/feal94/guitar.io/internal/logger"
	"github.com/feal94/guitar.io/models"
)

const defaultFeedTimeout = 15 * time.Second

// NewFeedSource builds a feed source from configuration. A configured URL
// wins over a local path.
func NewFeedSource(cfg config.Feed, log *logger.Logger) (FeedSource, error) {
	if cfg.URL != "" {
		return NewHTTPFeed(cfg.URL, log), nil
	}
	if cfg.Path != "" {
		return NewFileFeed(cfg.Path, log), nil
	}

	return nil, fmt.Errorf("no exercise feed configured")
}

// FeedSource is implemented by both feed transports.
type FeedSource interface {
	Fetch(ctx context.Context) ([]models.ExerciseDescriptor, error)
}

// HTTPFeed fetches the exercise list from an HTTP(S) endpoint.
type HTTPFeed struct {
	client *resty.Client
	url    string
	logger *logger.Logger
}

// NewHTTPFeed constructs an HTTPFeed for the given URL.
func NewHTTPFeed(url string, log *logger.Logger) *HTTPFeed {
	cli := resty.New().
		SetTimeout(defaultFeedTimeout)

	return &HTTPFeed{client: cli, url: strings.TrimSpace(url), logger: log}
}

// Fetch implements [FeedSource].
func (f *HTTPFeed) Fetch(ctx context.Context) ([]models.ExerciseDescriptor, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(f.url)
	if err != nil {
		return nil, fmt.Errorf("fetch exercise feed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch exercise feed: unexpected status %s", resp.Status())
	}

	list, err := decodeFeed(resp.Body())
	if err != nil {
		return nil, err
	}
	f.logger.Debug().Int("count", len(list)).Str("url", f.url).Msg("exercise feed fetched")

	return list, nil
}

// FileFeed reads the exercise list from a local JSON file.
type FileFeed struct {
	path   string
	logger *logger.Logger
}

// NewFileFeed constructs a FileFeed for the given path.
func NewFileFeed(path string, log *logger.Logger) *FileFeed {
	return &FileFeed{path: path, logger: log}
}

// Fetch implements [FeedSource].
func (f *FileFeed) Fetch(_ context.Context) ([]models.ExerciseDescriptor, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read exercise feed: %w", err)
	}

	list, err := decodeFeed(data)
	if err != nil {
		return nil, err
	}
	f.logger.Debug().Int("count", len(list)).Str("path", f.path).Msg("exercise feed read")

	return list, nil
}

// decodeFeed parses and validates the JSON feed payload. Validation happens
// here so that a malformed feed is rejected as a whole before the
// synchronizer touches the catalog.
func decodeFeed(data []byte) ([]models.ExerciseDescriptor, error) {
	var list []models.ExerciseDescriptor
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode exercise feed: %w", err)
	}

	for _, d := range list {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("decode exercise feed: %w", err)
		}
	}

	return list, nil
}
