package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes the environment variables that override file settings,
// for example NOCIF_FLIT_SIZE overrides flit_size.
const EnvPrefix = "NOCIF_"

// Loader reads a configuration from a YAML file, applies overrides from the
// environment and from optional dotenv files, fills defaults, and validates.
type Loader struct {
	envFiles []string
	environ  func() []string
}

// MakeLoader creates a loader that reads the process environment and a
// ".env" file in the working directory when there is one.
func MakeLoader() Loader {
	return Loader{
		envFiles: []string{".env"},
		environ:  os.Environ,
	}
}

// WithEnvFiles replaces the dotenv files to read.
func (l Loader) WithEnvFiles(files ...string) Loader {
	l.envFiles = files
	return l
}

// WithEnviron replaces the source of process environment variables.
func (l Loader) WithEnviron(environ func() []string) Loader {
	l.environ = environ
	return l
}

// Load reads the file at path. An empty path starts from a zero Config so
// that the environment alone can configure a run.
func (l Loader) Load(path string) (Config, error) {
	var data []byte

	if path != "" {
		var err error

		data, err = os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	return l.Parse(data)
}

// Parse decodes YAML bytes and applies overrides, defaults and validation.
func (l Loader) Parse(data []byte) (Config, error) {
	c := Config{}

	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	env, err := l.readEnv()
	if err != nil {
		return Config{}, err
	}

	if err := applyOverrides(&c, env); err != nil {
		return Config{}, err
	}

	c = c.WithDefaults()

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Load reads the configuration at path with the default loader.
func Load(path string) (Config, error) {
	return MakeLoader().Load(path)
}

// readEnv merges dotenv files with the process environment. Process
// variables win over dotenv entries.
func (l Loader) readEnv() (map[string]string, error) {
	env := make(map[string]string)

	for _, f := range l.envFiles {
		values, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("reading env file %s: %w", f, err)
		}

		for k, v := range values {
			env[k] = v
		}
	}

	if l.environ != nil {
		for _, kv := range l.environ() {
			k, v, found := strings.Cut(kv, "=")
			if found {
				env[k] = v
			}
		}
	}

	return env, nil
}

func applyOverrides(c *Config, env map[string]string) error {
	v := reflect.ValueOf(c).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("yaml")
		key := EnvPrefix + strings.ToUpper(tag)

		raw, ok := env[key]
		if !ok {
			continue
		}

		if err := setField(v.Field(i), raw); err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, raw, err)
		}
	}

	return nil
}

func setField(f reflect.Value, raw string) error {
	switch f.Kind() {
	case reflect.Int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}

		f.SetInt(int64(n))
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}

		f.SetBool(b)
	case reflect.String:
		f.SetString(raw)
	default:
		return fmt.Errorf("unsupported field kind %s", f.Kind())
	}

	return nil
}
