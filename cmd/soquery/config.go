package main

import (
	"fmt"
	"os"

	"github.com/alt-code/Research/inifile"
	"github.com/alt-code/Research/src/posts"
)

// DefaultConfigFile is the configuration file looked up in the current
// directory when --config is not given.
const DefaultConfigFile = "soquery.ini"

// Config is the tool's configuration surface: where to run queries and
// where to put the CSVs. Credentials are not configured here.
type Config struct {
	Project   string // BigQuery billing project (required for query commands)
	Location  string // query execution location hint
	Table     string // posts table path
	OutDir    string // pair-detail CSVs
	CountsDir string // per-language count CSVs
	CachePath string // SQLite result cache; empty disables caching
}

// LoadConfig reads the configuration at path, applying defaults for absent
// keys. When path is empty, soquery.ini is used if present and pure
// defaults otherwise; an explicit path must exist.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Location:  "US",
		Table:     posts.DefaultTable,
		OutDir:    "soposts",
		CountsDir: "langcounts",
	}

	explicit := path != ""
	if path == "" {
		path = DefaultConfigFile
	}

	ini, err := inifile.ParseFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	if v := ini.Get("bigquery", "project"); v != "" {
		cfg.Project = v
	}
	if v := ini.Get("bigquery", "location"); v != "" {
		cfg.Location = v
	}
	if v := ini.Get("bigquery", "table"); v != "" {
		cfg.Table = v
	}
	if v := ini.Get("output", "dir"); v != "" {
		cfg.OutDir = v
	}
	if v := ini.Get("output", "counts_dir"); v != "" {
		cfg.CountsDir = v
	}
	if v := ini.Get("cache", "path"); v != "" {
		cfg.CachePath = v
	}
	return cfg, nil
}
