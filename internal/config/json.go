package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sharepad/sharepad/internal/flagx"
	"github.com/sharepad/sharepad/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "30s"
// or as integer nanoseconds. Only fields present in the file override the
// running Config.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	MaxTextLength  int            `json:"max_text_length"`
	RetryAttempts  *int           `json:"retry_attempts"`
	RetryDelay     timex.Duration `json:"retry_delay"`

	HistoryCapacity int    `json:"history_capacity"`
	PreviewLength   int    `json:"preview_length"`
	StoreType       string `json:"store_type"`
	SQLitePath      string `json:"sqlite_path"`
	RedisAddr       string `json:"redis_addr"`
	RedisPassword   string `json:"redis_password"`
	RedisDB         *int   `json:"redis_db"`

	HTTPAddr      string         `json:"http_addr"`
	PollInterval  timex.Duration `json:"poll_interval"`
	Notify        *bool          `json:"notify"`
}

// parseJson overlays cfg with values from the JSON file named by the -c or
// -config flag. No flag means no JSON is loaded.
func parseJson(cfg *Config) error {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return nil
	}
	return loadJsonFile(cfg, jsonConfigFile)
}

func loadJsonFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.MaxTextLength != 0 {
		cfg.MaxTextLength = jc.MaxTextLength
	}
	if jc.RetryAttempts != nil {
		cfg.RetryAttempts = *jc.RetryAttempts
	}
	if jc.RetryDelay.Duration != 0 {
		cfg.RetryDelay = jc.RetryDelay.Duration
	}
	if jc.HistoryCapacity != 0 {
		cfg.HistoryCapacity = jc.HistoryCapacity
	}
	if jc.PreviewLength != 0 {
		cfg.PreviewLength = jc.PreviewLength
	}
	if jc.StoreType != "" {
		cfg.StoreType = jc.StoreType
	}
	if jc.SQLitePath != "" {
		cfg.SQLitePath = jc.SQLitePath
	}
	if jc.RedisAddr != "" {
		cfg.RedisAddr = jc.RedisAddr
	}
	if jc.RedisPassword != "" {
		cfg.RedisPassword = jc.RedisPassword
	}
	if jc.RedisDB != nil {
		cfg.RedisDB = *jc.RedisDB
	}
	if jc.HTTPAddr != "" {
		cfg.HTTPAddr = jc.HTTPAddr
	}
	if jc.PollInterval.Duration != 0 {
		cfg.PollInterval = jc.PollInterval.Duration
	}
	if jc.Notify != nil {
		cfg.NotifyEnabled = *jc.Notify
	}
	return nil
}
