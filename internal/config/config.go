// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	ScreenWidth  = 1000
	ScreenHeight = 600
	TargetFPS    = 60
	MaxDeltaTime = 0.06

	SpawnButtonSize    = 120
	SpawnButtonSpacing = 20
	SpawnButtonX       = 30
	SpawnButtonBottom  = 130

	HPBarWidth  = 200
	HPBarHeight = 20
)

var (
	BackgroundColor   = color.RGBA{235, 235, 225, 255}
	GroundColor       = color.RGBA{120, 150, 90, 255}
	FriendlyColor     = color.RGBA{0, 0, 255, 255}
	EnemyColor        = color.RGBA{255, 0, 0, 255}
	BossColor         = color.RGBA{120, 0, 140, 255}
	AttackFlashColor  = color.RGBA{255, 255, 0, 255}
	EffectColor       = color.RGBA{255, 255, 255, 255}
	HPBackColor       = color.RGBA{255, 0, 0, 255}
	HPFrontColor      = color.RGBA{0, 200, 0, 255}
	TextDarkColor     = color.RGBA{0, 0, 0, 255}
	TextLightColor    = color.RGBA{255, 255, 255, 255}
	MoneyEnoughColor  = color.RGBA{255, 255, 0, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 180}
	ButtonColor       = color.RGBA{70, 130, 180, 255}
	ButtonLockedColor = color.RGBA{100, 100, 100, 255}
)

// Config - неизменяемый набор балансовых чисел и геометрии линии.
// Передаётся в app.NewGame по значению.
type Config struct {
	BaseHP        int     `yaml:"base_hp"`
	BasePenalty   int     `yaml:"base_penalty"`
	MoneyRate     int     `yaml:"money_rate"`
	MoneyInterval float64 `yaml:"money_interval"`
	MaxMoney      int     `yaml:"max_money"`
	StartMoney    int     `yaml:"start_money"`

	FirstSpawnInterval float64 `yaml:"first_spawn_interval"`
	MinSpawnInterval   float64 `yaml:"min_spawn_interval"`
	MaxSpawnInterval   float64 `yaml:"max_spawn_interval"`
	EnemiesBase        int     `yaml:"enemies_base"`
	EnemiesPerLevel    int     `yaml:"enemies_per_level"`
	BossFromDifficulty int     `yaml:"boss_from_difficulty"`

	FriendlySpawnX float64 `yaml:"friendly_spawn_x"`
	EnemySpawnX    float64 `yaml:"enemy_spawn_x"`
	Baseline       float64 `yaml:"baseline"`
	BaseBoundary   int     `yaml:"base_boundary"`

	EffectRiseSpeed float64 `yaml:"effect_rise_speed"`
	EffectFadeSpeed float64 `yaml:"effect_fade_speed"`
	EffectSize      float64 `yaml:"effect_size"`
}

// Default возвращает стандартный баланс.
func Default() Config {
	return Config{
		BaseHP:        150,
		BasePenalty:   50,
		MoneyRate:     10,
		MoneyInterval: 0.5,
		MaxMoney:      2000,
		StartMoney:    0,

		FirstSpawnInterval: 3.0,
		MinSpawnInterval:   2.0,
		MaxSpawnInterval:   5.0,
		EnemiesBase:        5,
		EnemiesPerLevel:    5,
		BossFromDifficulty: 2,

		FriendlySpawnX: 100,
		EnemySpawnX:    ScreenWidth - 50,
		Baseline:       ScreenHeight - 100,
		BaseBoundary:   0,

		EffectRiseSpeed: 1.0,
		EffectFadeSpeed: 0.8,
		EffectSize:      150,
	}
}

// PlannedEnemies - размер волны для уровня сложности.
func (c Config) PlannedEnemies(difficulty int) int {
	return c.EnemiesBase + c.EnemiesPerLevel*difficulty
}

// Validate проверяет, что числа имеют смысл для симуляции.
func (c Config) Validate() error {
	var errs []error
	if c.BaseHP <= 0 {
		errs = append(errs, fmt.Errorf("base_hp must be positive, got %d", c.BaseHP))
	}
	if c.BasePenalty < 0 {
		errs = append(errs, fmt.Errorf("base_penalty must not be negative, got %d", c.BasePenalty))
	}
	if c.MoneyRate < 0 {
		errs = append(errs, fmt.Errorf("money_rate must not be negative, got %d", c.MoneyRate))
	}
	if c.MoneyInterval <= 0 {
		errs = append(errs, fmt.Errorf("money_interval must be positive, got %v", c.MoneyInterval))
	}
	if c.MaxMoney < 0 || c.StartMoney < 0 || c.StartMoney > c.MaxMoney {
		errs = append(errs, fmt.Errorf("start_money %d must be within [0, max_money %d]", c.StartMoney, c.MaxMoney))
	}
	if c.MinSpawnInterval < 0 || c.MaxSpawnInterval < c.MinSpawnInterval {
		errs = append(errs, fmt.Errorf("spawn interval range [%v, %v] is invalid", c.MinSpawnInterval, c.MaxSpawnInterval))
	}
	if c.EnemiesBase < 0 || c.EnemiesPerLevel < 0 {
		errs = append(errs, errors.New("enemy counts must not be negative"))
	}
	if c.EffectFadeSpeed <= 0 {
		errs = append(errs, fmt.Errorf("effect_fade_speed must be positive, got %v", c.EffectFadeSpeed))
	}
	return errors.Join(errs...)
}

// Load читает YAML-файл поверх значений по умолчанию.
// Пустой путь означает баланс по умолчанию.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
