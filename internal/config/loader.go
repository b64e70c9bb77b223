package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultDotEnv is the .env file Load looks for in the working directory.
const DefaultDotEnv = ".env"

// lookupFunc resolves an environment key.
type lookupFunc func(key string) (string, bool)

// Load builds the configuration from defaults, the optional file at path,
// ./.env when present and the process environment.
func Load(path string) (*Config, error) {
	return LoadFrom(path, DefaultDotEnv)
}

// LoadFrom is Load with an explicit .env location. An empty dotenv or a
// missing file skips that layer; a missing config file is an error.
func LoadFrom(path, dotenv string) (*Config, error) {
	cfg := &Config{}

	if err := loadStruct(reflect.ValueOf(cfg).Elem(), fromDefaults); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}

	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	lookup, err := envLookup(dotenv)
	if err != nil {
		return nil, err
	}
	if err = loadStruct(reflect.ValueOf(cfg).Elem(), fromEnv(lookup)); err != nil {
		return nil, fmt.Errorf("config env: %w", err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// decodeFile reads path as TOML (default) or YAML (.yaml, .yml).
// Keys absent from the file keep their current values.
func decodeFile(path string, cfg *Config) error {
	content, err := os.ReadFile(os.ExpandEnv(path))
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("config file %s: YAML parse error: %w", path, err)
		}
	default:
		md, err := toml.Decode(string(content), cfg)
		if err != nil {
			return fmt.Errorf("config file %s: TOML parse error: %w", path, err)
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			return fmt.Errorf("config file %s: unknown keys %v", path, undec)
		}
	}

	return nil
}

// envLookup layers the process environment over the .env file at dotenv.
func envLookup(dotenv string) (lookupFunc, error) {
	vars := map[string]string{}
	if dotenv != "" {
		read, err := godotenv.Read(dotenv)
		switch {
		case err == nil:
			vars = read
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("config dotenv %s: %w", dotenv, err)
		}
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]

		return v, ok
	}, nil
}

// source yields the raw value for a tagged field, or "" to leave it alone.
type source func(field reflect.StructField, envName string) string

func fromDefaults(field reflect.StructField, _ string) string {
	return field.Tag.Get("default")
}

func fromEnv(lookup lookupFunc) source {
	return func(_ reflect.StructField, envName string) string {
		v, _ := lookup(envName)

		return strings.TrimSpace(v)
	}
}

var durationType = reflect.TypeOf(Duration{})

// loadStruct recursively populates fields carrying an `env` tag from src.
func loadStruct(v reflect.Value, src source) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := v.Field(i)

		// Skip unexported fields
		if !fieldVal.CanSet() {
			continue
		}

		// Recurse into nested structs
		if field.Type.Kind() == reflect.Struct && field.Type != durationType {
			if err := loadStruct(fieldVal, src); err != nil {
				return err
			}
			continue
		}

		tag := field.Tag.Get("env")
		if tag == "" {
			continue
		}
		envName := EnvPrefix + tag

		value := src(field, envName)
		if value == "" {
			continue
		}

		if err := setField(fieldVal, value); err != nil {
			return fmt.Errorf("invalid value for %s=%q: %w", envName, value, err)
		}
	}

	return nil
}

// setField sets a reflect.Value from a string based on its type.
func setField(field reflect.Value, value string) error {
	if field.Type() == durationType {
		var d Duration
		if err := d.UnmarshalText([]byte(value)); err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}
		field.Set(reflect.ValueOf(d))

		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int64:
		i, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer: %w", err)
		}
		field.SetInt(i)

	case reflect.Float64:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid float: %w", err)
		}
		field.SetFloat(f)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %w", err)
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}
