package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/beka-birhanu/maze-garden/collectible"
	"github.com/joho/godotenv"
)

// Quota holds the tuning of one collectible kind.
type Quota struct {
	Base  int // Count at level 0
	Every int // Levels per extra collectible
	Cap   int // Upper bound on the count
}

// Config holds the application's configuration values.
type Config struct {
	MazeBaseSize  int    // Maze side length on the first levels
	MazeSizeStep  int    // Growth of the side length every two levels
	MazeMaxSize   int    // Upper bound on the side length
	Seed          int64  // Seed for the random source, 0 picks one from the clock
	ControlScheme string // Initial control scheme (arrows or wasd)
	Stars         Quota  // Star quota
	Coins         Quota  // Coin quota
	Hearts        Quota  // Heart quota
	LogFile       string // File receiving the log output, empty discards it
	Sound         bool   // Whether pickups play a tone
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		MazeBaseSize:  getEnvAsIntWithDefault("MAZE_BASE_SIZE", 12),
		MazeSizeStep:  getEnvAsIntWithDefault("MAZE_SIZE_STEP", 2),
		MazeMaxSize:   getEnvAsIntWithDefault("MAZE_MAX_SIZE", 20),
		Seed:          int64(getEnvAsIntWithDefault("MAZE_SEED", 0)),
		ControlScheme: strings.ToLower(getEnvWithDefault("CONTROL_SCHEME", "arrows")),
		Stars:         getQuota("STAR", Quota{Base: 5, Every: 2, Cap: 10}),
		Coins:         getQuota("COIN", Quota{Base: 3, Every: 2, Cap: 6}),
		Hearts:        getQuota("HEART", Quota{Base: 1, Every: 3, Cap: 3}),
		LogFile:       getEnvWithDefault("LOG_FILE", ""),
		Sound:         getEnvAsBoolWithDefault("SOUND", true),
	}
}

// Rules converts the quotas into placement rules, rarest kind first.
func (c Config) Rules() []collectible.Rule {
	return []collectible.Rule{
		{Kind: collectible.Heart, Base: c.Hearts.Base, Every: c.Hearts.Every, Cap: c.Hearts.Cap},
		{Kind: collectible.Coin, Base: c.Coins.Base, Every: c.Coins.Every, Cap: c.Coins.Cap},
		{Kind: collectible.Star, Base: c.Stars.Base, Every: c.Stars.Every, Cap: c.Stars.Cap},
	}
}

// getQuota reads <PREFIX>_BASE, <PREFIX>_EVERY and <PREFIX>_CAP.
func getQuota(prefix string, def Quota) Quota {
	return Quota{
		Base:  getEnvAsIntWithDefault(prefix+"_BASE", def.Base),
		Every: getEnvAsIntWithDefault(prefix+"_EVERY", def.Every),
		Cap:   getEnvAsIntWithDefault(prefix+"_CAP", def.Cap),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an environment variable as an integer.
// Unset or malformed values fall back to the default; malformed ones are logged.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		log.Printf("[APP] [ERROR] Environment variable %s must be an integer, using %d: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}

// getEnvAsBoolWithDefault retrieves an environment variable as a boolean.
func getEnvAsBoolWithDefault(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(strings.TrimSpace(valueStr))
	if err != nil {
		log.Printf("[APP] [ERROR] Environment variable %s must be a boolean, using %t: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}
