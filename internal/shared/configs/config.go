package configs

import "api-log-analytics/internal/models"

const (
	defaultMaxBatchBytes   = 2 * 1024 * 1024
	defaultShardSize       = 2500
	defaultMaxWorkers      = 4
	defaultQueuePartitions = 8
	defaultQueueBuffer     = 1024
)

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig          `mapstructure:"server" validate:"required"`
	Log         LogConfig             `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig     `mapstructure:"file_storage" validate:"required"`
	Ingestion   IngestionConfig       `mapstructure:"ingestion"`
	Queue       QueueConfig           `mapstructure:"queue"`
	Analysis    models.AnalysisConfig `mapstructure:"analysis"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// IngestionConfig bounds a single batch and the fan-out used to summarize it.
type IngestionConfig struct {
	MaxBatchBytes int64 `mapstructure:"max_batch_bytes" validate:"min=1"`
	ShardSize     int   `mapstructure:"shard_size" validate:"min=1"`
	MaxWorkers    int   `mapstructure:"max_workers" validate:"min=1,max=256"`
}

// QueueConfig sizes the in-process queue between ingestion and rollup.
type QueueConfig struct {
	Partitions int `mapstructure:"partitions" validate:"min=1,max=1024"`
	Buffer     int `mapstructure:"buffer" validate:"min=0"`
}

// Defaults holds the values used for every optional key missing from the file.
func Defaults() Config {
	return Config{
		Ingestion: IngestionConfig{
			MaxBatchBytes: defaultMaxBatchBytes,
			ShardSize:     defaultShardSize,
			MaxWorkers:    defaultMaxWorkers,
		},
		Queue: QueueConfig{
			Partitions: defaultQueuePartitions,
			Buffer:     defaultQueueBuffer,
		},
		Analysis: models.DefaultAnalysisConfig(),
	}
}
