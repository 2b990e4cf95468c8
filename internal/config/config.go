package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel          string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort        string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"8080"`
	Redis             Redis  `yaml:"redis"`
	SQLiteStoragePath string `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"dooz.db"`
	Game              Game   `yaml:"game"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Game holds the defaults a session falls back to when a setting was never
// stored by the host.
type Game struct {
	BoardSize   int    `yaml:"board-size" env-default:"3"`
	WinLength   int    `yaml:"win-length" env-default:"3"`
	Mode        string `yaml:"mode" env-default:"pvp"`
	Difficulty  string `yaml:"difficulty" env-default:"easy"`
	Player1Name string `yaml:"player1-name" env-default:"Player 1"`
	Player2Name string `yaml:"player2-name" env-default:"Player 2"`
	Player1Mark string `yaml:"player1-mark" env-default:"X"`
	Player2Mark string `yaml:"player2-mark" env-default:"O"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
