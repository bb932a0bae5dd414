package internal

import (
	"chatbot/auth"
	"chatbot/errors"
	"net/url"
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		GatewayWSURL:       "ws://localhost:3000/ws",
		GatewayAPIURL:      "http://localhost:3000",
		GatewaySession:     "default",
		GatewayTokenSecret: "0123456789abcdef0123",
		GatewayTokenTTL:    time.Hour,
		KeepaliveInterval:  10 * time.Second,
		ReconnectBaseDelay: time.Second,
		ReconnectMaxDelay:  30 * time.Second,
		ReconnectJitter:    500 * time.Millisecond,
		GroupDailyLimit:    1000,
		PrivateDailyLimit:  100,

		RateLimitSweepInterval: time.Minute,
		DedupTTL:               time.Minute,
		DedupStore:             "badger",
		BadgerFilepath:         "/tmp/chatbot",
		BadgerGCInterval:       5 * time.Minute,
		LogLevel:               "INFO",
		RestartInterval:        time.Second,
		StatsInterval:          time.Minute,
		ShutdownTimeout:        10 * time.Second,
		Admins:                 "+33611111111, 33622222222@c.us",
		BotName:                "Jukebox",
		CensorCharacter:        "*",
	}
}

func TestConfig_Loaded_From_Environment_With_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("GATEWAY_WS_URL", "ws://localhost:3000/ws")
	t.Setenv("GATEWAY_API_URL", "http://localhost:3000")
	t.Setenv("GATEWAY_TOKEN_SECRET", "0123456789abcdef0123")
	t.Setenv("BADGER_FILEPATH", t.TempDir())
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("ADMINS", "33611111111")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)

	req.Equal("default", config.GatewaySession)
	req.Equal(10*time.Second, config.KeepaliveInterval)
	req.Equal(30*time.Second, config.ReconnectMaxDelay)
	req.Equal(500*time.Millisecond, config.ReconnectJitter)
	req.Equal(1000, config.GroupDailyLimit)
	req.Equal(100, config.PrivateDailyLimit)
	req.Equal(60*time.Second, config.DedupTTL)
	req.Equal("badger", config.DedupStore)
	req.Zero(config.DebugPort)
	req.True(config.GatewayContextualReply)
	req.NoError(config.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"missing secret", func(c *Config) { c.GatewayTokenSecret = "" }},
		{"short secret", func(c *Config) { c.GatewayTokenSecret = "short" }},
		{"bad websocket url", func(c *Config) { c.GatewayWSURL = "localhost" }},
		{"max delay below base delay", func(c *Config) { c.ReconnectMaxDelay = 100 * time.Millisecond }},
		{"negative quota", func(c *Config) { c.PrivateDailyLimit = -1 }},
		{"unknown log level", func(c *Config) { c.LogLevel = "LOUD" }},
		{"invalid admin", func(c *Config) { c.Admins = "33611111111,bob" }},
		{"censor string", func(c *Config) { c.CensorCharacter = "**" }},
		{"unknown dedup store", func(c *Config) { c.DedupStore = "redis" }},
		{"debug port out of range", func(c *Config) { c.DebugPort = 70000 }},
	}
	require.NoError(t, validConfig().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.mutate(&config)
			require.Error(t, config.Validate())
		})
	}
}

func TestConfig_GatewayURL(t *testing.T) {
	req := require.New(t)
	config := validConfig()
	config.GatewayWSURL = "wss://gateway.example.com/ws?events=message"

	raw, err := config.GatewayURL(time.Now())
	req.NoError(err)

	u, err := url.Parse(raw)
	req.NoError(err)
	req.Equal("gateway.example.com", u.Host)
	req.Equal("message", u.Query().Get("events"))
	req.Equal("default", u.Query().Get("session"))

	claims, err := auth.ValidateGatewayToken([]byte(config.GatewayTokenSecret), u.Query().Get("token"))
	req.NoError(err)
	req.Equal("default", claims.Session)

	config.GatewayTokenSecret = ""
	_, err = config.GatewayURL(time.Now())
	req.ErrorIs(err, errors.ErrMissingCredentials)
}

func TestSplitList(t *testing.T) {
	req := require.New(t)
	req.Equal([]string{"a", "b"}, SplitList(" a, ,b,a "))
	req.Empty(SplitList(""))
	req.Equal([]string{"+33611111111", "33622222222@c.us"}, validConfig().AdminList())
}

func TestCharacterRune(t *testing.T) {
	req := require.New(t)
	r, err := CharacterRune("#")
	req.NoError(err)
	req.Equal('#', r)

	_, err = CharacterRune("")
	req.ErrorIs(err, errors.ErrInvalidCharacter)
}
