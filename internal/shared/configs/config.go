package configs

// Config holds all configuration for the application.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Stats   StatsConfig   `mapstructure:"stats" validate:"required"`
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

// StorageConfig selects and configures the event log backend.
type StorageConfig struct {
	Driver      string `mapstructure:"driver" validate:"required,oneof=sqlite file memory"`
	SQLitePath  string `mapstructure:"sqlite_path" validate:"required_if=Driver sqlite"`
	FileRootDir string `mapstructure:"file_root_dir" validate:"required_if=Driver file"`
}

// StatsConfig holds aggregation query configuration.
type StatsConfig struct {
	// BatchPageLimit caps the number of records fetched per chapter inside a
	// batch stats request, bounding read cost on the backing store.
	BatchPageLimit int `mapstructure:"batch_page_limit" validate:"required,min=1"`
	// BatchPacingMs is the fixed wait between successive per-chapter queries
	// in a batch. It throttles read load on the shared store and must stay a
	// blocking, sequential wait.
	BatchPacingMs int `mapstructure:"batch_pacing_ms" validate:"min=0"`
}
