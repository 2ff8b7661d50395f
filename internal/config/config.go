// README: Config loader; .env file, then VADI_* environment with defaults. Read once at start.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ModelEndpoint is one configured downstream model route.
type ModelEndpoint struct {
	ID       string
	Name     string
	Endpoint string
	Color    string
}

type Config struct {
	HTTP struct {
		Addr        string
		Timeout     time.Duration
		CORSOrigins []string
	}
	Redis struct {
		Addr    string
		Channel string
	}
	Log struct {
		Level  string
		Format string
	}
	Maps struct {
		APIKey string
	}
	// Models are the endpoints the orchestrator fans out to, in display order.
	Models []ModelEndpoint
	// AI holds the credentials for the provider gateway routes. An empty key
	// disables that provider's routes.
	AI struct {
		OpenAIKey   string
		OpenAIModel string
		GeminiKey   string
		GeminiModel string
		ClaudeKey   string
		ClaudeModel string
	}
}

var ErrNoEndpoints = errors.New("config: no model endpoint configured")

// envKeys maps viper keys to the environment names the deployment uses.
var envKeys = map[string]string{
	"http.addr":          "VADI_HTTP_ADDR",
	"http.timeout":       "VADI_HTTP_TIMEOUT",
	"http.cors_origins":  "VADI_CORS_ORIGINS",
	"redis.addr":         "VADI_REDIS_ADDR",
	"redis.channel":      "VADI_NOTIFY_CHANNEL",
	"log.level":          "VADI_LOG_LEVEL",
	"log.format":         "VADI_LOG_FORMAT",
	"maps.api_key":       "VADI_GOOGLE_MAPS_API_KEY",
	"models.chatgpt.url": "VADI_OPENAI_URL",
	"models.gemini.url":  "VADI_GEMINI_URL",
	"models.claude.url":  "VADI_CLAUDE_URL",
	"ai.openai.key":      "OPENAI_API_KEY",
	"ai.openai.model":    "VADI_OPENAI_MODEL",
	"ai.gemini.key":      "GEMINI_API_KEY",
	"ai.gemini.model":    "VADI_GEMINI_MODEL",
	"ai.claude.key":      "CLAUDE_API_KEY",
	"ai.claude.model":    "VADI_CLAUDE_MODEL",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.timeout", "120s")
	v.SetDefault("http.cors_origins", "http://localhost,http://localhost:5173")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.channel", "vadi:notifications")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("ai.openai.model", "gpt-3.5-turbo")
	v.SetDefault("ai.gemini.model", "gemini-2.0-flash")
	v.SetDefault("ai.claude.model", "claude-opus-4-20250514")
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	loadEnvFile()
	return FromViper(newViper())
}

func loadEnvFile() {
	for _, path := range []string{".env", "../.env", "../../.env"} {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for key, env := range envKeys {
		_ = v.BindEnv(key, env)
	}
	return v
}

// FromViper decodes an already populated viper instance. Tests use it with
// explicit Set calls instead of the environment.
func FromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.HTTP.Timeout = v.GetDuration("http.timeout")
	if cfg.HTTP.Timeout <= 0 {
		return cfg, fmt.Errorf("config: invalid http timeout %q", v.GetString("http.timeout"))
	}
	cfg.HTTP.CORSOrigins = splitList(v.GetString("http.cors_origins"))
	cfg.Redis.Addr = strings.TrimSpace(v.GetString("redis.addr"))
	cfg.Redis.Channel = v.GetString("redis.channel")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")
	cfg.Maps.APIKey = strings.TrimSpace(v.GetString("maps.api_key"))

	cfg.AI.OpenAIKey = v.GetString("ai.openai.key")
	cfg.AI.OpenAIModel = v.GetString("ai.openai.model")
	cfg.AI.GeminiKey = v.GetString("ai.gemini.key")
	cfg.AI.GeminiModel = v.GetString("ai.gemini.model")
	cfg.AI.ClaudeKey = v.GetString("ai.claude.key")
	cfg.AI.ClaudeModel = v.GetString("ai.claude.model")

	for _, m := range defaultModels {
		m.Endpoint = strings.TrimRight(strings.TrimSpace(v.GetString("models."+m.ID+".url")), "/")
		if m.Endpoint == "" {
			continue
		}
		cfg.Models = append(cfg.Models, m)
	}
	return cfg, nil
}

// RequireEndpoints fails when no model endpoint is configured; the server
// can still run the provider gateway without them, the CLI cannot.
func (c Config) RequireEndpoints() error {
	if len(c.Models) == 0 {
		return ErrNoEndpoints
	}
	return nil
}

var defaultModels = []ModelEndpoint{
	{ID: "chatgpt", Name: "ChatGPT", Color: "bg-green-500"},
	{ID: "gemini", Name: "Gemini", Color: "bg-blue-500"},
	{ID: "claude", Name: "Claude", Color: "bg-purple-500"},
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
