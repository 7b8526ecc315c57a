/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool         `mapstructure:"verbose"`
	Config  string       `mapstructure:"config"`
	Data    DataConfig   `mapstructure:"data" validate:"required"`
	Output  OutputConfig `mapstructure:"output"`
	Log     LogConfig    `mapstructure:"log"`
}

// DataConfig holds data storage configuration
type DataConfig struct {
	File string `mapstructure:"file" validate:"required"`
}

// OutputConfig controls how human-readable output is decorated
type OutputConfig struct {
	// UseEmoji keeps decorative symbols only when set to "1"
	UseEmoji string `mapstructure:"useEmoji"`
}

// EmojiEnabled reports whether decorative symbols should be printed.
func (o OutputConfig) EmojiEnabled() bool {
	return o.UseEmoji == "1"
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn warning error"`
	// CrashDir overrides where crash logs are written
	CrashDir string `mapstructure:"crashDir"`
}
