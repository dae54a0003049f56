package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Overrides is the YAML shape of a rules file. Absent keys keep their
// current value.
type Overrides struct {
	PlayerSpeed    *float64       `yaml:"player_speed"`
	EnemyBaseSpeed *float64       `yaml:"enemy_base_speed"`
	EnemyInterval  *time.Duration `yaml:"enemy_interval"`
	LevelTimeLimit *time.Duration `yaml:"level_time_limit"`
	Walls          *int           `yaml:"walls"`
	Coins          *int           `yaml:"coins"`
	MaxAttempts    *int           `yaml:"max_attempts"`
	OpeningEnemies *EnemyCounts   `yaml:"opening_enemies"`
	RegenEnemies   *EnemyCounts   `yaml:"regen_enemies"`
}

// Apply copies every set field onto cfg.
func (o Overrides) Apply(cfg *GameConfig) {
	if o.PlayerSpeed != nil {
		cfg.Player.Speed = *o.PlayerSpeed
	}
	if o.EnemyBaseSpeed != nil {
		cfg.Enemy.BaseSpeed = *o.EnemyBaseSpeed
	}
	if o.EnemyInterval != nil {
		cfg.Enemy.MoveInterval = *o.EnemyInterval
	}
	if o.LevelTimeLimit != nil {
		cfg.Session.LevelTimeLimit = *o.LevelTimeLimit
	}
	if o.Walls != nil {
		cfg.Layout.NumWalls = *o.Walls
	}
	if o.Coins != nil {
		cfg.Layout.NumCoins = *o.Coins
	}
	if o.MaxAttempts != nil {
		cfg.Layout.MaxAttempts = *o.MaxAttempts
	}
	if o.OpeningEnemies != nil {
		cfg.Layout.OpeningEnemies = *o.OpeningEnemies
	}
	if o.RegenEnemies != nil {
		cfg.Layout.RegenEnemies = *o.RegenEnemies
	}
}

// DecodeOverrides reads a rules file. Unknown keys are an error.
func DecodeOverrides(r io.Reader) (Overrides, error) {
	var o Overrides
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return Overrides{}, fmt.Errorf("decode overrides: %w", err)
	}
	return o, nil
}

// LoadOverrides applies the rules file at path to cfg.
func LoadOverrides(path string, cfg *GameConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	o, err := DecodeOverrides(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	o.Apply(cfg)
	return nil
}
