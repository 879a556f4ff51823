package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Create new config instance with defaults matching the strictest
// service revision.
func NewConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:             3000,
			ReadTimeout:      30 * time.Second,
			MaxRequestBodyKB: 64,
		},
		Download: DownloadConfig{
			MaxFileMB: 100,
			Timeout:   30 * time.Second,
		},
		Upload: UploadConfig{
			Timeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Read loads the configuration file in json format on top of the
// defaults. The PORT environment variable overrides server.port so the
// service can be deployed without editing the file.
func (c *Config) Read(file string) error {
	v := viper.New()
	v.SetConfigFile(file)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	if err := v.Unmarshal(c); err != nil {
		return err
	}

	if p := os.Getenv("PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("invalid PORT value %q: %w", p, err)
		}
		c.Server.Port = port
	}

	return nil
}
