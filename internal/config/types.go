package config

import "time"

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Download DownloadConfig `mapstructure:"download"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Decoder  DecoderConfig  `mapstructure:"decoder"`
	Archive  ArchiveConfig  `mapstructure:"archive"`
	Sentry   SentryConfig   `mapstructure:"sentry"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port        int           `mapstructure:"port"`
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
	// WriteTimeout stays zero by default: RAW decoding is not
	// time-bounded, so the response deadline cannot be either.
	WriteTimeout     time.Duration `mapstructure:"write_timeout"`
	MaxRequestBodyKB int64         `mapstructure:"max_request_body_kb"`
}

type DownloadConfig struct {
	// MaxFileMB caps the bytes written to disk for one RAW download.
	MaxFileMB int64         `mapstructure:"max_file_mb"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type UploadConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type DecoderConfig struct {
	// WorkDir is the parent for per-request temp directories.
	// Empty means os.TempDir().
	WorkDir string `mapstructure:"work_dir"`
}

type ArchiveConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	AccountID   string `mapstructure:"account_id"`
	BucketName  string `mapstructure:"bucket_name"`
	AccessKeyID string `mapstructure:"access_key_id"`
	SecretKey   string `mapstructure:"secret_key"`
	KeyPrefix   string `mapstructure:"key_prefix"`
}

type SentryConfig struct {
	SentryDSN   string `mapstructure:"sentry_dsn"`
	Environment string `mapstructure:"environment"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}
