package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds everything read from the environment. Variables are
// prefixed VIBEFLOW_ and lowercased, so VIBEFLOW_MONGO_URI feeds
// mongo_uri.
type Config struct {
	Port          string `koanf:"port"`
	MongoURI      string `koanf:"mongo_uri"`
	MongoDatabase string `koanf:"mongo_database"`
	JWTSecret     string `koanf:"jwt_secret"`
	OpenAIKey     string `koanf:"openai_key"`
	OpenAIModel   string `koanf:"openai_model"`
	GroqKey       string `koanf:"groq_key"`
	GroqBaseURL   string `koanf:"groq_baseurl"`
	SeedOnStart   bool   `koanf:"seed_onstart"`
}

const envPrefix = "VIBEFLOW_"

func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env config: %w", err)
	}

	cfg := &Config{
		Port:          "8080",
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "vibeflow",
		OpenAIModel:   "gpt-4o-mini",
		GroqBaseURL:   "https://api.groq.com/openai/v1",
		SeedOnStart:   true,
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// GenerateRandomKey returns a random hex key used to sign JWTs when no
// secret is configured. Tokens do not survive a restart in that mode.
func GenerateRandomKey() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
