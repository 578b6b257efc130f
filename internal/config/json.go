package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file format.
type StructuredJSONConfig struct {
	App struct {
		SecretKey string `json:"secret_key"`
		LogLevel  string `json:"log_level"`
		Limited   bool   `json:"limited"`
		Version   string `json:"version"`
	} `json:"app,omitempty"`
	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`
	Vendor struct {
		AuthURL         string   `json:"auth_url"`
		EntitlementsURL string   `json:"entitlements_url"`
		StorefrontURL   string   `json:"storefront_url"`
		ClientVersion   string   `json:"client_version"`
		ClientPlatform  string   `json:"client_platform"`
		RequestTimeout  Duration `json:"request_timeout"`
		AuthRate        float64  `json:"auth_rate"`
		AuthBurst       int      `json:"auth_burst"`
	} `json:"vendor,omitempty"`
	Discord struct {
		APIURL         string   `json:"api_url"`
		BotToken       string   `json:"bot_token"`
		OpsWebhookURL  string   `json:"ops_webhook_url"`
		RequestTimeout Duration `json:"request_timeout"`
		RetryCount     int      `json:"retry_count"`
		RetryMaxWait   Duration `json:"retry_max_wait"`
	} `json:"discord,omitempty"`
	Server struct {
		HTTPAddress     string   `json:"http_address"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`
	Workers struct {
		Reminder struct {
			Disabled          bool     `json:"disabled"`
			Interval          Duration `json:"interval"`
			Anchor            string   `json:"anchor"`
			SubscriberTimeout Duration `json:"subscriber_timeout"`
		} `json:"reminder,omitempty"`
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
			SecretKey: jsonCfg.App.SecretKey,
			LogLevel:  jsonCfg.App.LogLevel,
			Limited:   jsonCfg.App.Limited,
			Version:   jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Vendor: Vendor{
			AuthURL:         jsonCfg.Vendor.AuthURL,
			EntitlementsURL: jsonCfg.Vendor.EntitlementsURL,
			StorefrontURL:   jsonCfg.Vendor.StorefrontURL,
			ClientVersion:   jsonCfg.Vendor.ClientVersion,
			ClientPlatform:  jsonCfg.Vendor.ClientPlatform,
			RequestTimeout:  time.Duration(jsonCfg.Vendor.RequestTimeout),
			AuthRate:        jsonCfg.Vendor.AuthRate,
			AuthBurst:       jsonCfg.Vendor.AuthBurst,
		},
		Discord: Discord{
			APIURL:         jsonCfg.Discord.APIURL,
			BotToken:       jsonCfg.Discord.BotToken,
			OpsWebhookURL:  jsonCfg.Discord.OpsWebhookURL,
			RequestTimeout: time.Duration(jsonCfg.Discord.RequestTimeout),
			RetryCount:     jsonCfg.Discord.RetryCount,
			RetryMaxWait:   time.Duration(jsonCfg.Discord.RetryMaxWait),
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Workers: Workers{
			Reminder: Reminder{
				Disabled:          jsonCfg.Workers.Reminder.Disabled,
				Interval:          time.Duration(jsonCfg.Workers.Reminder.Interval),
				Anchor:            jsonCfg.Workers.Reminder.Anchor,
				SubscriberTimeout: time.Duration(jsonCfg.Workers.Reminder.SubscriberTimeout),
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
