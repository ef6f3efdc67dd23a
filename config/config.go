package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

const (
	KindMemory   = "memory"
	KindRedis    = "redis"
	KindSQLite   = "sqlite"
	KindS3       = "s3"
	KindTelegram = "telegram"
)

type Config struct {
	Phrases  []string
	Timezone string
	Target   TargetConfig
	Schedule ScheduleConfig
	Redis    RedisConfig
	DB       DBConfig
	S3       S3Config
	Telegram TelegramConfig
	Web      WebConfig
}

type TargetConfig struct {
	Kind string
	ID   string
}

type ScheduleConfig struct {
	Every time.Duration
}

type RedisConfig struct {
	Addr   string
	Prefix string
}

type DBConfig struct {
	Path string
}

type S3Config struct {
	Bucket string
	Region string
	Prefix string
}

type TelegramConfig struct {
	Token  string
	ChatID int64
}

type WebConfig struct {
	Addr string
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("timezone", "UTC")
	v.SetDefault("target.kind", KindMemory)
	v.SetDefault("target.id", "footermessage")
	v.SetDefault("schedule.every", "1m")
	v.SetDefault("redis.prefix", "phrasebot:")
	v.SetDefault("web.addr", ":8080")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file at path. An empty path searches for a file named
// config in the working directory and falls back to defaults when none exists.
func Load(path string) (Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	phrases, err := phraseList(v)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Phrases:  phrases,
		Timezone: v.GetString("timezone"),
		Target: TargetConfig{
			Kind: strings.ToLower(v.GetString("target.kind")),
			ID:   v.GetString("target.id"),
		},
		Schedule: ScheduleConfig{Every: v.GetDuration("schedule.every")},
		Redis: RedisConfig{
			Addr:   v.GetString("redis.addr"),
			Prefix: v.GetString("redis.prefix"),
		},
		DB: DBConfig{Path: v.GetString("db.path")},
		S3: S3Config{
			Bucket: v.GetString("s3.bucket"),
			Region: v.GetString("s3.region"),
			Prefix: v.GetString("s3.prefix"),
		},
		Telegram: TelegramConfig{
			Token:  v.GetString("telegram.token"),
			ChatID: v.GetInt64("telegram.chat_id"),
		},
		Web: WebConfig{Addr: v.GetString("web.addr")},
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
	}
	if cfg.DB.Path == "" {
		cfg.DB.Path = os.Getenv("DBPATH")
	}
	if cfg.DB.Path == "" {
		cfg.DB.Path = "phrasebot.db"
	}
	if cfg.S3.Region == "" {
		cfg.S3.Region = os.Getenv("AWS_REGION")
	}
	if cfg.S3.Region == "" {
		cfg.S3.Region = "us-east-1"
	}
	if cfg.Telegram.Token == "" {
		cfg.Telegram.Token = os.Getenv("TELEGRAM_APITOKEN")
	}
	if len(cfg.Phrases) == 0 && !v.IsSet("phrases") {
		cfg.Phrases = append([]string(nil), DefaultPhrases...)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// phraseList reads the phrases key. A string value comes from the environment
// and holds either a JSON array or one phrase per line.
func phraseList(v *viper.Viper) ([]string, error) {
	raw, ok := v.Get("phrases").(string)
	if !ok {
		return v.GetStringSlice("phrases"), nil
	}
	if strings.HasPrefix(strings.TrimSpace(raw), "[") {
		var phrases []string
		if err := json.Unmarshal([]byte(raw), &phrases); err != nil {
			return nil, fmt.Errorf("phrases: %w", err)
		}
		return phrases, nil
	}
	var phrases []string
	for _, line := range strings.Split(raw, "\n") {
		if line != "" {
			phrases = append(phrases, line)
		}
	}
	return phrases, nil
}

func (cfg Config) validate() error {
	if len(cfg.Phrases) == 0 {
		return fmt.Errorf("phrases: list is empty")
	}
	switch cfg.Target.Kind {
	case KindMemory, KindRedis, KindSQLite, KindS3, KindTelegram:
	default:
		return fmt.Errorf("target.kind: unknown kind %q", cfg.Target.Kind)
	}
	if cfg.Target.ID == "" {
		return fmt.Errorf("target.id: must be set")
	}
	if cfg.Schedule.Every <= 0 {
		return fmt.Errorf("schedule.every: must be positive, got %s", cfg.Schedule.Every)
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	return nil
}

func (cfg Config) Location() *time.Location {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return time.UTC
	}
	return location
}
