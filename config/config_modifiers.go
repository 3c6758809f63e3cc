// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"encoding/json"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/tidwall/jsonc"
	"io/ioutil"
	"os"
	"strconv"
	"strings"
	"time"
)

const ENVIRONMENT_PREFIX = "TICKETCHAIN_"

func (c *config) Modify(newValues ...NodeConfigKeyValue) {
	for _, kv := range newValues {
		c.kv[kv.Key] = kv.Value
	}
}

// config files may carry comments and trailing commas
func modifyFromJson(cfg mutableNodeConfig, source string) error {
	var data map[string]interface{}
	if err := json.Unmarshal(jsonc.ToJSON([]byte(source)), &data); err != nil {
		return err
	}

	return populateConfig(cfg, data)
}

func convertKeyName(key string) string {
	return strings.ToUpper(strings.Replace(key, "-", "_", -1))
}

func populateConfig(cfg mutableNodeConfig, data map[string]interface{}) error {
	for key, value := range data {
		switch typed := value.(type) {
		case bool:
			cfg.SetBool(convertKeyName(key), typed)
		case float64:
			if typed < 0 || typed != float64(uint32(typed)) {
				return errors.Errorf("config key %s expects a non negative integer, got %v", key, typed)
			}
			cfg.SetUint32(convertKeyName(key), uint32(typed))
		case string:
			cfg.Set(convertKeyName(key), parseRawValue(typed))
		default:
			return errors.Errorf("config key %s has unsupported value %v", key, value)
		}
	}

	return nil
}

// every reading of raw is kept so the typed getter of the key finds its value
func parseRawValue(raw string) NodeConfigValue {
	value := NodeConfigValue{StringValue: raw}
	if b, err := strconv.ParseBool(raw); err == nil {
		value.BoolValue = b
	}
	if u, err := strconv.ParseUint(raw, 10, 32); err == nil {
		value.Uint32Value = uint32(u)
	}
	if d, err := time.ParseDuration(raw); err == nil {
		value.DurationValue = d
	}
	return value
}

func modifyFromEnvironment(cfg mutableNodeConfig, environment map[string]string) {
	for name, raw := range environment {
		if !strings.HasPrefix(name, ENVIRONMENT_PREFIX) {
			continue
		}
		key := strings.TrimPrefix(name, ENVIRONMENT_PREFIX)
		if key == "" {
			continue
		}
		cfg.Set(key, parseRawValue(raw))
	}
}

// process environment wins over values read from dotenv files
func readEnvironment(dotenvFiles ...string) (map[string]string, error) {
	environment := make(map[string]string)

	for _, path := range dotenvFiles {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		values, err := godotenv.Read(path)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read env file %s", path)
		}
		for k, v := range values {
			environment[k] = v
		}
	}

	for _, entry := range os.Environ() {
		if i := strings.Index(entry, "="); i > 0 {
			environment[entry[:i]] = entry[i+1:]
		}
	}

	return environment, nil
}

// For main reading several files into one config

type FilesPaths []string

func (i *FilesPaths) String() string {
	return strings.Join(*i, ",")
}

func (i *FilesPaths) Set(value string) error {
	*i = append(*i, value)
	return nil
}

func (i *FilesPaths) Type() string {
	return "path"
}

func GetNodeConfigFromFiles(configFiles FilesPaths, httpAddress string, dotenvFiles ...string) (NodeConfig, error) {
	cfg := ForProduction()

	for _, configFile := range configFiles {
		if _, err := os.Stat(configFile); os.IsNotExist(err) {
			return nil, errors.Errorf("could not open config file: %s", err)
		}

		contents, err := ioutil.ReadFile(configFile)
		if err != nil {
			return nil, err
		}

		if err := modifyFromJson(cfg, string(contents)); err != nil {
			return nil, errors.Wrapf(err, "could not parse config file %s", configFile)
		}
	}

	environment, err := readEnvironment(dotenvFiles...)
	if err != nil {
		return nil, err
	}
	modifyFromEnvironment(cfg, environment)

	if httpAddress != "" {
		cfg.SetString(HTTP_ADDRESS, httpAddress)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
