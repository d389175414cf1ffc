package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port           string
	WorkerCount    int
	Timezone       string
	SeedSampleTask bool
}

func Load() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		WorkerCount:    getInt("WORKER_COUNT", 3),
		Timezone:       getEnv("TIMEZONE", "Local"),
		SeedSampleTask: getBool("SEED_SAMPLE_TASK", true),
	}
}

// Location - часовой пояс, в котором разбираются дедлайны без смещения
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return def
}
