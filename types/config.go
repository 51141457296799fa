package types

// AppConfig holds everything resolved once at process start: CLI flags, the
// RUSK_* environment, and an optional config file, merged by viper. Core
// packages receive values from here instead of reading ambient state.
type AppConfig struct {
	DB      DBConfig `mapstructure:"db"`
	Verbose bool     `mapstructure:"verbose"`
	// Debug routes persistence to a fixed development path so manual
	// testing never touches the real task file.
	Debug bool `mapstructure:"debug"`
}

// DBConfig configures where the task file lives. Path may name either a file
// or a directory; a directory gets the default filename appended. Empty means
// the per-user default location.
type DBConfig struct {
	Path string `mapstructure:"path"`
}
