package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/task-cli/internal/config"
	"github.com/josephgoksu/task-cli/internal/exitcode"
	"github.com/josephgoksu/task-cli/internal/logger"
	"github.com/josephgoksu/task-cli/store"
	"github.com/josephgoksu/task-cli/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// appLogger is built from configuration on every command run.
var appLogger = logger.Discard()

// validate is a single instance of Validate, it caches struct info
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// validateAppConfig performs validation on the AppConfig struct.
func validateAppConfig(cfg *types.AppConfig) error {
	return validate.Struct(cfg)
}

// InitConfig reads in config file and ENV variables if set, then prepares
// the logger for the command about to run.
func InitConfig(cmd *cobra.Command) error {
	// Load .env file first if present. It's okay if it doesn't exist.
	_ = godotenv.Load()

	// Flags are bound here rather than in init so a viper.Reset between runs keeps them.
	flags := cmd.Root().PersistentFlags()
	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("data.file", flags.Lookup("file"))

	viper.SetEnvPrefix(config.EnvPrefix)                   // e.g., TASK_CLI_DATA_FILE
	viper.AutomaticEnv()                                   // Read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // Replace dots with underscores in env var names
	viper.AllowEmptyEnv(true)                              // USE_EMOJI= disables emoji
	_ = viper.BindEnv("output.useEmoji", "USE_EMOJI")

	viper.SetDefault("data.file", store.DefaultDataFile)
	viper.SetDefault("output.useEmoji", "1")
	viper.SetDefault("log.level", "info")

	cfgFileFlag := viper.GetString("config")
	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		for _, dir := range config.SearchPaths() {
			viper.AddConfigPath(dir)
		}
		viper.SetConfigName(config.FileName)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFileFlag != "" || !errors.As(err, &notFound) {
			return types.NewCLIError(exitcode.FileError,
				fmt.Sprintf("%s: cannot read %s", exitcode.Message(exitcode.FileError), configPathForError(cfgFileFlag)), err)
		}
	}

	var cfg types.AppConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.NewCLIError(exitcode.FileError, exitcode.Message(exitcode.FileError), err)
	}
	if err := validateAppConfig(&cfg); err != nil {
		return types.NewCLIError(exitcode.FileError,
			fmt.Sprintf("Configuration validation error: %s", err), err)
	}
	GlobalAppConfig = cfg

	appLogger = logger.NewFromConfig(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Verbose)
	if used := viper.ConfigFileUsed(); used != "" {
		appLogger.Debug("using config file", "path", used)
	}
	if cfg.Log.CrashDir != "" {
		logger.SetBasePath(cfg.Log.CrashDir)
	}
	logger.SetCommand(cmd.Name())
	return nil
}

func configPathForError(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return viper.ConfigFileUsed()
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}

// GetLogger returns the logger configured for the current run.
func GetLogger() *log.Logger {
	return appLogger
}
