package config

import "time"

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// defaultClientPlatform is the platform descriptor the vendor's desktop
// client sends (base64 of a small JSON document describing a Windows PC).
const defaultClientPlatform = "ew0KCSJwbGF0Zm9ybVR5cGUiOiAiUEMiLA0KCSJwbGF0Zm9ybU9TIjogIldpbmRvd3MiLA0KCSJwbGF0Zm9ybU9TVmVyc2lvbiI6ICIxMC4wLjE5MDQyLjEuMjU2LjY0Yml0IiwNCgkicGxhdGZvcm1DaGlwc2V0IjogIlVua25vd24iDQp9"

// Defaults returns the values used for every field no source has set.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "info",
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Vendor: Vendor{
			AuthURL:         "https://auth.riotgames.com",
			EntitlementsURL: "https://entitlements.auth.riotgames.com",
			StorefrontURL:   "https://pd.%s.a.pvp.net",
			ClientVersion:   "release-08.09-shipping-57-2521387",
			ClientPlatform:  defaultClientPlatform,
			RequestTimeout:  15 * time.Second,
			AuthRate:        2,
			AuthBurst:       4,
		},
		Discord: Discord{
			APIURL:         "https://discord.com/api/v10",
			RequestTimeout: 10 * time.Second,
			RetryCount:     3,
			RetryMaxWait:   30 * time.Second,
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Workers: Workers{
			Reminder: Reminder{
				Interval:          24 * time.Hour,
				Anchor:            "00:01",
				SubscriberTimeout: time.Minute,
			},
		},
	}
}
