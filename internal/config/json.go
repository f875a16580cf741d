// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// JSONConfig mirrors [Config] with JSON field names and string durations, so
// a config file can spell "24h" instead of nanoseconds.
type JSONConfig struct {
	App struct {
		HashKey    string   `json:"hash_key"`
		LogLevel   string   `json:"log_level"`
		SessionTTL Duration `json:"session_ttl"`
	} `json:"app,omitempty"`

	Storage struct {
		DataDir string `json:"data_dir"`
	} `json:"storage,omitempty"`

	Feed struct {
		URL  string `json:"url"`
		Path string `json:"path"`
	} `json:"feed,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg JSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		App: App{
			HashKey:    jsonCfg.App.HashKey,
			LogLevel:   jsonCfg.App.LogLevel,
			SessionTTL: time.Duration(jsonCfg.App.SessionTTL),
		},
		Storage: Storage{
			DataDir: jsonCfg.Storage.DataDir,
		},
		Feed: Feed{
			URL:  jsonCfg.Feed.URL,
			Path: jsonCfg.Feed.Path,
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
		},
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from a JSON string like "15m"
// or a raw nanosecond number.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("error parsing duration %q: %w", value, err)
		}
		*d = Duration(parsed)
	default:
		return fmt.Errorf("invalid duration value: %v", v)
	}

	return nil
}
