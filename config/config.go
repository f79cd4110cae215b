package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	Storage StorageConfig `yaml:"storage"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// StorageConfig points at the directory holding the flat JSON collections
// (offers.json, requests.json, users.json).
type StorageConfig struct {
	DataDir string `yaml:"data_dir"`
}

var config *AppConfig

// InitApp loads environment variables and the optional config.yaml. Missing
// files fall back to defaults; environment variables win over the file so a
// deployment can override PORT and DATA_DIR without editing it.
func InitApp() {
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	c := AppConfig{
		Server:  ServerConfig{Addr: ":3000"},
		Logging: LoggingConfig{Level: "info"},
		Storage: StorageConfig{DataDir: filepath.Join(GetBasePath(), "data")},
	}

	if data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE)); err == nil {
		if err := yaml.Unmarshal(data, &c); err != nil {
			panic(err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		c.Server.Addr = ":" + port
	}
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		c.Storage.DataDir = dir
	}

	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return cwd
}
