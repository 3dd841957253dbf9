package config

import (
	stderrors "errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/go-drift/floatlabel/pkg/errors"
)

// Environment variable names.
const (
	EnvLogLevel = "FLOATDEMO_LOG_LEVEL"
	EnvTheme    = "FLOATDEMO_THEME"
)

// LoadEnv reads dir/.env when present. Variables already set in the process
// environment win over the file. The process environment is not modified.
func LoadEnv(dir string) (Env, error) {
	values := map[string]string{}
	path := filepath.Join(dir, EnvFile)
	if _, err := os.Stat(path); err == nil {
		values, err = godotenv.Read(path)
		if err != nil {
			return Env{}, errors.New("config.LoadEnv", errors.KindConfig, err)
		}
	} else if !stderrors.Is(err, os.ErrNotExist) {
		return Env{}, errors.New("config.LoadEnv", errors.KindConfig, err)
	}

	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return values[key]
	}
	return Env{
		LogLevel: lookup(EnvLogLevel),
		Theme:    lookup(EnvTheme),
	}, nil
}
