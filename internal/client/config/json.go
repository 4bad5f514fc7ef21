package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/tqlclient/internal/flagx"
	"github.com/dmitrijs2005/tqlclient/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Values are
// copied into the runtime Config afterwards. Zero values are treated as
// "not set" so a partial file only overrides what it mentions.
type JsonConfig struct {
	Endpoint       string         `json:"endpoint"`
	Username       string         `json:"username"`
	Password       string         `json:"password"`
	Database       string         `json:"database"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c/-config flags (flagx.JsonConfigFlags);
// when absent, nothing is loaded. Read or unmarshal errors panic, matching
// the fail-fast startup behavior of the rest of the loader chain.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Endpoint != "" {
		cfg.Endpoint = jc.Endpoint
	}
	if jc.Username != "" {
		cfg.Username = jc.Username
	}
	if jc.Password != "" {
		cfg.Password = jc.Password
	}
	if jc.Database != "" {
		cfg.Database = jc.Database
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
