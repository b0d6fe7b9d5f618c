// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ProjectFile is the name of the configuration file searched for in the
// working directory.
const ProjectFile = ".jlazy.yaml"

// EnvPrefix is the prefix of environment variables that override settings.
const EnvPrefix = "JLAZY_"

// Load returns the configuration from the file at path, or if path is empty,
// from the first of ProjectFile in the working directory or config.yaml in
// the user configuration directory that exists. Settings not given in the
// file keep their defaults. Environment overrides are applied last, and the
// result is validated.
//
// Load also reports the path of the file it read, or "" if it used none.
func Load(path string) (*Config, string, error) {
	explicit := path != ""
	if !explicit {
		path = discover()
	}
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, "", fmt.Errorf("read config: %w", err)
			}
			path = ""
		} else if err := decode(data, cfg); err != nil {
			return nil, "", fmt.Errorf("parse config %q: %w", path, err)
		}
	}
	if err := ApplyEnv(cfg, os.LookupEnv); err != nil {
		return nil, "", err
	}
	if err := cfg.Validate(); err != nil {
		if path != "" {
			return nil, "", fmt.Errorf("invalid config %q: %w", path, err)
		}
		return nil, "", fmt.Errorf("invalid config: %w", err)
	}
	return cfg, path, nil
}

// decode unmarshals YAML data into cfg, rejecting unknown fields. Empty input
// leaves cfg unchanged.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// discover returns the path of the first configuration file found in the
// standard locations, or "".
func discover() string {
	candidates := []string{ProjectFile}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "jlazy", "config.yaml"))
	}
	for _, path := range candidates {
		if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

// ApplyEnv applies overrides to cfg from environment variables, using lookup
// to find their values:
//
//	JLAZY_PAGE_SIZE    page_size (integer)
//	JLAZY_HUJSON       hujson (boolean)
//	JLAZY_COLOR        color
//	JLAZY_LOG_LEVEL    log_level
//
// Variables that are unset or empty are ignored.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	get := func(name string) (string, string, bool) {
		key := EnvPrefix + name
		v, ok := lookup(key)
		return key, v, ok && v != ""
	}
	if key, v, ok := get("PAGE_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", key, v)
		}
		cfg.PageSize = n
	}
	if key, v, ok := get("HUJSON"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", key, v)
		}
		cfg.HuJSON = b
	}
	if _, v, ok := get("COLOR"); ok {
		cfg.Color = v
	}
	if _, v, ok := get("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	return nil
}
