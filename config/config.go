// Package config loads engine configuration from file and environment
// and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sells-group/leadqual/dedupe"
	"github.com/sells-group/leadqual/pipeline"
)

// Config holds the full engine configuration. Scorer weights are fixed
// constants in the score package and deliberately absent here.
type Config struct {
	Dedupe   dedupe.Config    `yaml:"dedupe" mapstructure:"dedupe"`
	Pipeline pipeline.Options `yaml:"pipeline" mapstructure:"pipeline"`
	Log      LogConfig        `yaml:"log" mapstructure:"log"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LEADQUAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	def := dedupe.DefaultConfig()
	v.SetDefault("dedupe.name_similarity_threshold", def.NameSimilarityThreshold)
	v.SetDefault("dedupe.address_similarity_threshold", def.AddressSimilarityThreshold)
	v.SetDefault("dedupe.min_company_name_length", def.MinCompanyNameLength)
	v.SetDefault("dedupe.similarity_workers", def.SimilarityWorkers)
	v.SetDefault("pipeline.workers", pipeline.DefaultOptions().Workers)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
