package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ResumeSourceBuiltin  = "builtin"
	ResumeSourceFile     = "file"
	ResumeSourcePostgres = "postgres"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	Resume struct {
		Source string `mapstructure:"source"`
		File   string `mapstructure:"file"`
		Slug   string `mapstructure:"slug"`
	} `mapstructure:"resume"`
	Chat struct {
		ReplyDelay time.Duration `mapstructure:"reply_delay"`
		PendingTTL time.Duration `mapstructure:"pending_ttl"`
	} `mapstructure:"chat"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers   []string `mapstructure:"brokers"`
		ChatTopic string   `mapstructure:"chat_topic"`
	} `mapstructure:"kafka"`
}

// LoadConfig reads .env and config.yaml from the given paths (the working
// directory when none are given), then lets environment variables override.
func LoadConfig(paths ...string) (cfg Config, err error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	v := viper.New()

	envFiles := make([]string, 0, len(paths))
	for _, p := range paths {
		envFiles = append(envFiles, strings.TrimSuffix(p, "/")+"/.env")
		v.AddConfigPath(p)
	}
	for _, f := range envFiles {
		if err = godotenv.Load(f); err == nil {
			break
		}
	}
	if err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err = v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read env only. Error: %v", err)
	}

	v.SetDefault("app.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("resume.source", ResumeSourceBuiltin)
	v.SetDefault("resume.slug", "default")
	v.SetDefault("chat.reply_delay", 800*time.Millisecond)
	v.SetDefault("chat.pending_ttl", 30*time.Second)
	v.SetDefault("kafka.chat_topic", "chat.events")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.port", "APP_PORT")
	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("resume.source", "RESUME_SOURCE")
	v.BindEnv("resume.file", "RESUME_FILE")
	v.BindEnv("resume.slug", "RESUME_SLUG")
	v.BindEnv("chat.reply_delay", "CHAT_REPLY_DELAY")
	v.BindEnv("chat.pending_ttl", "CHAT_PENDING_TTL")
	v.BindEnv("db.dsn", "DB_DSN")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	v.BindEnv("kafka.chat_topic", "KAFKA_CHAT_TOPIC")

	err = v.Unmarshal(&cfg)
	if err != nil {
		return
	}

	// KAFKA_BROKERS arrives as one comma separated string.
	if len(cfg.Kafka.Brokers) == 1 && strings.Contains(cfg.Kafka.Brokers[0], ",") {
		cfg.Kafka.Brokers = strings.Split(cfg.Kafka.Brokers[0], ",")
	}
	return
}
