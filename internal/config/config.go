package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string            `yaml:"env" env:"ENV" env-default:"local"`
	HTTP        HTTPConfig        `yaml:"http"`
	PocketBase  PocketBaseConfig  `yaml:"pocketbase"`
	Telegram    TelegramConfig    `yaml:"telegram"`
	Cache       CacheConfig       `yaml:"cache"`
	Maintenance MaintenanceConfig `yaml:"maintenance"`
	Contact     ContactConfig     `yaml:"contact"`
}

type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type PocketBaseConfig struct {
	BaseURL string        `yaml:"base_url" env:"POCKETBASE_URL" env-required:"true"`
	Timeout time.Duration `yaml:"timeout" env:"POCKETBASE_TIMEOUT" env-default:"10s"`
}

type TelegramConfig struct {
	BotToken    string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN"`
	ChatID      int64  `yaml:"chat_id" env:"TELEGRAM_CHAT_ID"`
	APIEndpoint string `yaml:"api_endpoint" env:"TELEGRAM_API_ENDPOINT"`
}

type CacheConfig struct {
	TTL time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"5m"`
}

type MaintenanceConfig struct {
	MaxRetries int           `yaml:"max_retries" env:"MAINTENANCE_MAX_RETRIES" env-default:"3"`
	RetryDelay time.Duration `yaml:"retry_delay" env:"MAINTENANCE_RETRY_DELAY" env-default:"5s"`
}

type ContactConfig struct {
	RatePerMinute int `yaml:"rate_per_minute" env:"CONTACT_RATE_PER_MINUTE" env-default:"10"`
}

// MustLoad читает конфигурацию из yaml-файла, путь к которому задаётся
// флагом --config или переменной CONFIG_PATH. Без пути конфигурация
// собирается только из переменных окружения.
func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		var cfg Config
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			panic("cannot read config from env: " + err.Error())
		}
		return &cfg
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
