package core

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gorlea-ink/gorlea/app/core/srv"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	conf := &CoreConfig{}
	if err = toml.Unmarshal(raw, conf); err != nil {
		panic(err)
	}

	return *conf
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	return c
}

type CoreConfig struct {
	Addr          string              `toml:"addr"`
	Log           Log                 `toml:"log"`
	Postgres      PGConfig            `toml:"postgres"`
	Redis         RedisConfig         `toml:"redis"`
	ObjectStorage ObjectStorageDriver `toml:"object_storage"`

	AI srv.AIConfig `toml:"ai"`

	Security Security `toml:"security"`

	Prompt Prompt `toml:"prompt"`
}

type ObjectStorageDriver struct {
	Driver string    `toml:"driver"`
	S3     *S3Config `toml:"s3"`
}

type S3Config struct {
	Bucket    string `toml:"bucket"`
	Region    string `toml:"region"`
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
}

type Security struct {
	// PEM encoded RSA keys for signing and verifying JWTs.
	PrivateKey string `toml:"private_key"`
	PublicKey  string `toml:"public_key"`
	// TokenTTLHours bounds the lifetime of issued access tokens.
	TokenTTLHours int `toml:"token_ttl_hours"`
}

// Prompt lets deployments override the built-in poet persona.
type Prompt struct {
	Poet string `toml:"poet"`
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("GORLEA_API_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.Postgres.FromENV()
	c.Redis.FromENV()
	c.AI.OpenAI.Token = os.Getenv("GORLEA_OPENAI_TOKEN")
	c.AI.OpenAI.Endpoint = os.Getenv("GORLEA_OPENAI_ENDPOINT")
	c.AI.OpenAI.Model = os.Getenv("GORLEA_OPENAI_MODEL")
}

type PGConfig struct {
	DSN string `toml:"dsn"`
}

func (m *PGConfig) FromENV() {
	m.DSN = os.Getenv("GORLEA_API_POSTGRESQL_DSN")
}

func (c PGConfig) FormatDSN() string {
	return c.DSN
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`

	KeyPrefix string `toml:"key_prefix"`
}

func (r *RedisConfig) FromENV() {
	r.Addr = os.Getenv("GORLEA_REDIS_ADDR")
	r.Password = os.Getenv("GORLEA_REDIS_PASSWORD")
	if dbStr := os.Getenv("GORLEA_REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			r.DB = db
		}
	}
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("GORLEA_API_LOG_LEVEL")
	l.Path = os.Getenv("GORLEA_API_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
