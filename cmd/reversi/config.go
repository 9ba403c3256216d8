package main

import (
	"time"

	"github.com/gorgonia/reversi"
	"github.com/gorgonia/reversi/minimax"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config is read from reversi.yaml and REVERSI_* environment variables.
type Config struct {
	Depth      int           `mapstructure:"DEPTH"`
	MinDepth   int           `mapstructure:"MIN_DEPTH"`
	MaxDepth   int           `mapstructure:"MAX_DEPTH"`
	Epsilon    float32       `mapstructure:"EPSILON"`
	GameLength int           `mapstructure:"GAME_LENGTH"`
	Clock      time.Duration `mapstructure:"CLOCK"`
	CounterDir string        `mapstructure:"COUNTER_DIR"`
	GameLog    string        `mapstructure:"GAME_LOG"`
}

func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	def := minimax.DefaultConfig()
	v.SetDefault("DEPTH", def.Depth)
	v.SetDefault("MIN_DEPTH", def.MinDepth)
	v.SetDefault("MAX_DEPTH", def.MaxDepth)
	v.SetDefault("EPSILON", def.Epsilon)
	v.SetDefault("GAME_LENGTH", def.GameLength)
	v.SetDefault("CLOCK", reversi.DefaultConfig().ClockPerPlayer)
	v.SetDefault("COUNTER_DIR", ".")
	v.SetDefault("GAME_LOG", "gamelog.txt")

	v.SetEnvPrefix("REVERSI")
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "Unable to read config %q", cfgPath)
		}
	} else {
		v.SetConfigName("reversi")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, errors.Wrap(err, "Unable to read reversi.yaml")
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "Unable to parse config")
	}
	if !cfg.search(minimax.AlphaBeta).IsValid() {
		return nil, errors.Errorf("Invalid search settings %+v", cfg)
	}
	return &cfg, nil
}

func (c *Config) search(alg minimax.Algorithm) minimax.Config {
	conf := minimax.DefaultConfig()
	conf.Algorithm = alg
	conf.Depth = c.Depth
	conf.MinDepth = c.MinDepth
	conf.MaxDepth = c.MaxDepth
	conf.Epsilon = c.Epsilon
	conf.GameLength = c.GameLength
	return conf
}
