package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"public-auction/utils"
)

// Config holds runtime settings for the auction app.
type Config struct {
	UsersFile    string
	WindowWidth  int
	WindowHeight int
	TargetFPS    int
}

// Load reads an optional .env file and falls back to built-in defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Info("no .env file found, using default values", map[string]any{"error": err.Error()})
	}

	cfg := &Config{
		UsersFile:    envString("AUCTION_USERS_FILE", "users.txt"),
		WindowWidth:  envInt("AUCTION_WINDOW_WIDTH", 800),
		WindowHeight: envInt("AUCTION_WINDOW_HEIGHT", 600),
		TargetFPS:    envInt("AUCTION_FPS", 60),
	}

	utils.Info("config loaded", map[string]any{
		"users_file": cfg.UsersFile,
		"window":     strconv.Itoa(cfg.WindowWidth) + "x" + strconv.Itoa(cfg.WindowHeight),
		"fps":        cfg.TargetFPS,
	})
	return cfg
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		utils.Warn("invalid numeric setting, using default", map[string]any{"key": key, "value": v})
		return fallback
	}
	return n
}
