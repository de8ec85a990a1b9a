package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/faceoff-game/faceoff/internal/game"
)

type Config struct {
	Port string

	NatsEnabled bool
	NatsURL     string

	Rules game.Rules
}

func NewConfig() Config {
	var config Config

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs/server")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	defaults := game.DefaultRules()
	viper.SetDefault("Server.Port", "8080")
	viper.SetDefault("Nats.Enabled", false)
	viper.SetDefault("Nats.Url", "nats://localhost:4222")
	viper.SetDefault("Game.ReflexRounds", defaults.ReflexRounds)
	viper.SetDefault("Game.SequenceRounds", defaults.SequenceRounds)
	viper.SetDefault("Game.CountdownTicks", defaults.CountdownTicks)
	viper.SetDefault("Game.RoundDuration", defaults.RoundDuration.String())
	viper.SetDefault("Game.GuessDuration", defaults.GuessDuration.String())
	viper.SetDefault("Game.ReactionWindow", defaults.ReactionWindow.String())
	viper.SetDefault("Game.CombinationLength", defaults.CombinationLength)
	viper.SetDefault("Game.RoundEndDelay", defaults.RoundEndDelay.String())
	viper.SetDefault("Game.MatchEndDelay", defaults.MatchEndDelay.String())
	viper.SetDefault("Game.RematchDelay", defaults.RematchDelay.String())

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %s", err))
		}
	}

	config.Port = viper.GetString("Server.Port")
	config.NatsEnabled = viper.GetBool("Nats.Enabled")
	config.NatsURL = viper.GetString("Nats.Url")
	config.Rules = game.Rules{
		ReflexRounds:      viper.GetInt("Game.ReflexRounds"),
		SequenceRounds:    viper.GetInt("Game.SequenceRounds"),
		CountdownTicks:    viper.GetInt("Game.CountdownTicks"),
		RoundDuration:     mustDuration("Game.RoundDuration"),
		GuessDuration:     mustDuration("Game.GuessDuration"),
		ReactionWindow:    mustDuration("Game.ReactionWindow"),
		CombinationLength: viper.GetInt("Game.CombinationLength"),
		RoundEndDelay:     mustDuration("Game.RoundEndDelay"),
		MatchEndDelay:     mustDuration("Game.MatchEndDelay"),
		RematchDelay:      mustDuration("Game.RematchDelay"),
	}

	return config
}

func mustDuration(key string) time.Duration {
	d, err := time.ParseDuration(viper.GetString(key))
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %s", err))
	}
	return d
}
