// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		OwnerID string `json:"owner_id"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Relay struct {
		Endpoint       string   `json:"endpoint"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"relay,omitempty"`

	Backend struct {
		BaseURL        string   `json:"base_url"`
		ServiceKey     string   `json:"service_key"`
		Bucket         string   `json:"bucket"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"backend,omitempty"`

	Storage struct {
		DB struct {
			DSN             string `json:"dsn"`
			CachePassphrase string `json:"cache_passphrase"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		RealtimeRetryInterval Duration `json:"realtime_retry_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			OwnerID: jsonCfg.App.OwnerID,
			Version: jsonCfg.App.Version,
		},
		Relay: Relay{
			Endpoint:       jsonCfg.Relay.Endpoint,
			RequestTimeout: time.Duration(jsonCfg.Relay.RequestTimeout),
		},
		Backend: Backend{
			BaseURL:        jsonCfg.Backend.BaseURL,
			ServiceKey:     jsonCfg.Backend.ServiceKey,
			Bucket:         jsonCfg.Backend.Bucket,
			RequestTimeout: time.Duration(jsonCfg.Backend.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN:             jsonCfg.Storage.DB.DSN,
				CachePassphrase: jsonCfg.Storage.DB.CachePassphrase,
			},
		},
		Workers: Workers{
			RealtimeRetryInterval: time.Duration(jsonCfg.Workers.RealtimeRetryInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
