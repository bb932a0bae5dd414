package internal

import (
	"chatbot/auth"
	"chatbot/errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/samber/lo"
)

type Config struct {
	GatewayWSURL           string        `env:"GATEWAY_WS_URL,required=true" validate:"required,url"`
	GatewayAPIURL          string        `env:"GATEWAY_API_URL,required=true" validate:"required,url"`
	GatewaySession         string        `env:"GATEWAY_SESSION,default=default" validate:"required"`
	GatewayAPIKey          string        `env:"GATEWAY_API_KEY"`
	GatewayTokenSecret     string        `env:"GATEWAY_TOKEN_SECRET,required=true" validate:"required,min=16"`
	GatewayTokenTTL        time.Duration `env:"GATEWAY_TOKEN_TTL,default=24h" validate:"gt=0"`
	GatewayContextualReply bool          `env:"GATEWAY_CONTEXTUAL_REPLY,default=true"`

	KeepaliveInterval  time.Duration `env:"KEEPALIVE_INTERVAL,default=10s" validate:"gt=0"`
	AppLevelPing       bool          `env:"APP_LEVEL_PING,default=false"`
	ReconnectBaseDelay time.Duration `env:"RECONNECT_BASE_DELAY,default=1s" validate:"gt=0"`
	ReconnectMaxDelay  time.Duration `env:"RECONNECT_MAX_DELAY,default=30s" validate:"gtefield=ReconnectBaseDelay"`
	ReconnectJitter    time.Duration `env:"RECONNECT_JITTER,default=500ms" validate:"gte=0"`

	GroupDailyLimit        int           `env:"GROUP_DAILY_LIMIT,default=1000" validate:"gte=0"`
	PrivateDailyLimit      int           `env:"PRIVATE_DAILY_LIMIT,default=100" validate:"gte=0"`
	RateLimitSweepInterval time.Duration `env:"RATE_LIMIT_SWEEP_INTERVAL,default=1m" validate:"gt=0"`
	DedupTTL               time.Duration `env:"DEDUP_TTL,default=60s" validate:"gt=0"`
	DedupStore             string        `env:"DEDUP_STORE,default=badger" validate:"oneof=badger memory"`

	BadgerFilepath   string        `env:"BADGER_FILEPATH,required=true" validate:"required"`
	BadgerGCInterval time.Duration `env:"BADGER_GC_INTERVAL,default=5m" validate:"gt=0"`
	LogLevel         string        `env:"LOG_LEVEL,required=true" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error"`
	RestartInterval  time.Duration `env:"RESTART_INTERVAL,default=1s" validate:"gt=0"`
	StatsInterval    time.Duration `env:"STATS_INTERVAL,default=1m" validate:"gt=0"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s" validate:"gt=0"`
	DebugPort        int           `env:"DEBUG_PORT,default=0" validate:"gte=0,lte=65535"`

	Admins           string `env:"ADMINS"`
	BotName          string `env:"BOT_NAME,default=Chatbot" validate:"required"`
	CommandPrefix    string `env:"COMMAND_PREFIX"`
	CensoredWords    string `env:"CENSORED_WORDS"`
	CensoredWordsDir string `env:"CENSORED_WORDS_DIR"`
	CensorCharacter  string `env:"CENSOR_CHARACTER,default=*"`
}

// Validate is run before anything connects: a failure here is fatal at startup.
func (c Config) Validate() error {
	if err := auth.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := CharacterRune(c.CensorCharacter); err != nil {
		return err
	}
	if invalid := lo.Reject(c.AdminList(), func(id string, _ int) bool {
		return auth.IsIdentity(id)
	}); len(invalid) > 0 {
		return fmt.Errorf("ADMINS contains invalid identities %v", invalid)
	}
	return nil
}

func (c Config) AdminList() []string {
	return SplitList(c.Admins)
}

func (c Config) CensoredWordList() []string {
	return SplitList(c.CensoredWords)
}

// GatewayURL builds the websocket URL with a freshly signed token and the session as query parameters.
func (c Config) GatewayURL(now time.Time) (string, error) {
	u, err := url.Parse(c.GatewayWSURL)
	if err != nil {
		return "", fmt.Errorf("GATEWAY_WS_URL: %w", err)
	}
	if c.GatewayTokenSecret == "" {
		return "", errors.ErrMissingCredentials
	}
	token, err := auth.GenerateGatewayToken([]byte(c.GatewayTokenSecret), c.GatewaySession, c.GatewayTokenTTL, now)
	if err != nil {
		return "", fmt.Errorf("sign gateway token: %w", err)
	}
	query := u.Query()
	query.Set("session", c.GatewaySession)
	query.Set("token", token)
	u.RawQuery = query.Encode()
	return u.String(), nil
}

// SplitList splits a comma separated value, dropping blanks and duplicates.
func SplitList(value string) []string {
	return lo.Uniq(lo.Compact(lo.Map(strings.Split(value, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	})))
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf("CENSOR_CHARACTER %q: %w", str, errors.ErrInvalidCharacter)
	}
	return r[0], nil
}
