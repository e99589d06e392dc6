package main

import (
	"github.com/alt-code/Research/inifile"
	"github.com/alt-code/Research/src/posts"
)

// writeDefaultConfig writes a starter soquery.ini with every key present
// so the user only has to fill in the project.
func writeDefaultConfig(path string) error {
	f := &inifile.File{}
	f.Set("bigquery", "project", "")
	f.Set("bigquery", "location", "US")
	f.Set("bigquery", "table", posts.DefaultTable)
	f.Set("output", "dir", "soposts")
	f.Set("output", "counts_dir", "langcounts")
	f.Set("cache", "path", "")
	return f.WriteFile(path)
}
