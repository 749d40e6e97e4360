// Copyright (C) 2026 Sneller Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Config holds the defaults that flags on the command line may
// override. sigs.k8s.io/yaml converts the document to JSON before
// unmarshaling, so the struct is tagged with json, not yaml, tags.
type Config struct {
	Compress string `json:"compress"`
	Digest   bool   `json:"digest"`
}

func loadConfig(path string) (Config, error) {
	cfg := Config{Compress: "none"}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	switch cfg.Compress {
	case "", "none", "s2", "zstd":
	default:
		return cfg, fmt.Errorf("%s: unsupported compress value %q", path, cfg.Compress)
	}
	if cfg.Compress == "" {
		cfg.Compress = "none"
	}
	return cfg, nil
}
