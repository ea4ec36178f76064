package config

import (
	"net"
	"os"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBHost    string
	DBPort    string
	DBUser    string
	DBPass    string
	DBName    string
	SecretKey string
}

func Load() Config {
	// .env как в оригинальном деплое; отсутствие файла - не ошибка
	godotenv.Load()

	return Config{
		Port:      getEnv("PORT", "5000"),
		DBHost:    getEnv("DB_HOST", "localhost"),
		DBPort:    getEnv("DB_PORT", "3306"),
		DBUser:    getEnv("DB_USER", "root"),
		DBPass:    getEnv("DB_PASS", ""),
		DBName:    getEnv("DB_NAME", "task_manager"),
		SecretKey: getEnv("SECRET_KEY", "fallback_default_key"),
	}
}

// DSN собирает строку подключения к MySQL. Таймаут только на установку
// соединения (5s), остальные операции без ограничений.
func (c Config) DSN() string {
	mc := mysql.NewConfig()
	mc.User = c.DBUser
	mc.Passwd = c.DBPass
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.DBHost, c.DBPort)
	mc.DBName = c.DBName
	mc.Timeout = 5 * time.Second
	mc.ParseTime = true
	mc.Params = map[string]string{"charset": "utf8"}
	return mc.FormatDSN()
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
