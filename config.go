package main

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/adrg/xdg"
)

const configFileName = "gomoku-ai/config.json"

type Config struct {
	AiDepth          int             `json:"ai_depth"`
	AiMoveRadius     int             `json:"ai_move_radius"`
	AiLogSearchStats bool            `json:"ai_log_search_stats"`
	Heuristics       HeuristicConfig `json:"heuristics"`
}

// HeuristicConfig holds the window weights used by EvaluateBoard,
// keyed by how many stones of one color a window contains.
type HeuristicConfig struct {
	Five  float64 `json:"five"`
	Four  float64 `json:"four"`
	Three float64 `json:"three"`
	Two   float64 `json:"two"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		AiDepth:          3,
		AiMoveRadius:     2,
		AiLogSearchStats: false,
		Heuristics: HeuristicConfig{
			Five:  100000.0,
			Four:  10000.0,
			Three: 1000.0,
			Two:   100.0,
		},
	}
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}

// LoadConfigFile reads the saved config from the XDG config directory.
// A missing file is not an error; defaults are returned unchanged.
func LoadConfigFile() (Config, error) {
	config := DefaultConfig()
	path, err := xdg.SearchConfigFile(configFileName)
	if err != nil {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), err
	}
	return config, nil
}

func SaveConfigFile(config Config) error {
	path, err := xdg.ConfigFile(configFileName)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
