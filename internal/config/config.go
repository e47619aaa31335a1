// Package config 读 xiangqi.json：先取默认值，文件里有的字段覆盖，命令行参数再覆盖文件。
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"xiangqi/internal/engine"
)

const FileName = "xiangqi.json"

type Config struct {
	Addr         string `json:"addr"`
	WebDir       string `json:"web_dir"`
	MobileWebDir string `json:"mobile_web_dir"`
	OpenBrowser  bool   `json:"open_browser"`

	// 各难度对应的搜索深度
	EasyDepth         int    `json:"easy_depth"`
	NormalDepth       int    `json:"normal_depth"`
	HardDepth         int    `json:"hard_depth"`
	DefaultDifficulty string `json:"default_difficulty"`

	// 0 = 不限时
	AITimeoutMs    int64 `json:"ai_timeout_ms"`
	ParallelSearch bool  `json:"parallel_search"`
	LogAI          bool  `json:"log_ai"`

	// 会话空闲多久被清理，0 = 不清理
	SessionIdleMinutes int `json:"session_idle_minutes"`
}

func Default() Config {
	return Config{
		Addr:               ":2888",
		WebDir:             "./web",
		OpenBrowser:        true,
		EasyDepth:          int(engine.Easy),
		NormalDepth:        int(engine.Normal),
		HardDepth:          int(engine.Hard),
		DefaultDifficulty:  engine.Normal.String(),
		ParallelSearch:     true,
		LogAI:              true,
		SessionIdleMinutes: 120,
	}
}

// FindConfigPath 从当前目录往上找 xiangqi.json
func FindConfigPath() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	dir := cwd
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("%s not found from %s", FileName, cwd)
}

// Load 在默认值上叠加文件内容
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.EasyDepth < 1 || c.NormalDepth < 1 || c.HardDepth < 1 {
		return fmt.Errorf("search depths must be >= 1 (easy=%d normal=%d hard=%d)", c.EasyDepth, c.NormalDepth, c.HardDepth)
	}
	if _, err := engine.ParseDifficulty(c.DefaultDifficulty); err != nil {
		return fmt.Errorf("default_difficulty %q: %w", c.DefaultDifficulty, err)
	}
	return nil
}

// DepthFor 难度换成深度；空串用 DefaultDifficulty
func (c Config) DepthFor(name string) (int, error) {
	if name == "" {
		name = c.DefaultDifficulty
	}
	d, err := engine.ParseDifficulty(name)
	if err != nil {
		return 0, err
	}
	switch d {
	case engine.Easy:
		return c.EasyDepth, nil
	case engine.Hard:
		return c.HardDepth, nil
	}
	return c.NormalDepth, nil
}

func (c Config) AITimeout() time.Duration {
	return time.Duration(c.AITimeoutMs) * time.Millisecond
}

func (c Config) SessionIdle() time.Duration {
	return time.Duration(c.SessionIdleMinutes) * time.Minute
}

// NewEngine 按配置建引擎
func (c Config) NewEngine() *engine.Engine {
	e := engine.NewEngine()
	e.Parallel = c.ParallelSearch
	e.Verbose = c.LogAI
	return e
}
