package main

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BadgerFilepath    string `envconfig:"BADGER_FILEPATH"`
	LogLevel          string `envconfig:"LOG_LEVEL" default:"ERROR"`
	BotName           string `envconfig:"BOT_NAME" default:"Chatbot"`
	CommandPrefix     string `envconfig:"COMMAND_PREFIX"`
	GroupDailyLimit   int    `envconfig:"GROUP_DAILY_LIMIT" default:"1000"`
	PrivateDailyLimit int    `envconfig:"PRIVATE_DAILY_LIMIT" default:"100"`
	// CONSOLE_COLOURS enables colorized replies
	Colours bool `envconfig:"CONSOLE_COLOURS" default:"true"`

	GatewaySession     string        `envconfig:"GATEWAY_SESSION" default:"default"`
	GatewayTokenSecret string        `envconfig:"GATEWAY_TOKEN_SECRET"`
	GatewayTokenTTL    time.Duration `envconfig:"GATEWAY_TOKEN_TTL" default:"24h"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
