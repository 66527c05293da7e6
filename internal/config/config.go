package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Harrowfield-Ag/Advisor/internal/scoring"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Events    EventsConfig    `yaml:"events"`
	Retention RetentionConfig `yaml:"retention"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
	AdminToken  string `yaml:"admin_token"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type EventsConfig struct {
	URL string `yaml:"url"`
}

type RetentionConfig struct {
	MaxAgeDays      int `yaml:"max_age_days"`
	SweepIntervalMs int `yaml:"sweep_interval_ms"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
}

type ScoringConfig struct {
	Weights   ScoringWeights `yaml:"weights"`
	Baselines Baselines      `yaml:"baselines"`
}

type ScoringWeights struct {
	CostEffectiveness     float64 `yaml:"cost_effectiveness"`
	ApplicationEfficiency float64 `yaml:"application_efficiency"`
	EnvironmentalImpact   float64 `yaml:"environmental_impact"`
	LaborRequirements     float64 `yaml:"labor_requirements"`
	EquipmentNeeds        float64 `yaml:"equipment_needs"`
	FieldSuitability      float64 `yaml:"field_suitability"`
	NutrientUseEfficiency float64 `yaml:"nutrient_use_efficiency"`
	TimingFlexibility     float64 `yaml:"timing_flexibility"`
	SkillRequirements     float64 `yaml:"skill_requirements"`
	WeatherDependency     float64 `yaml:"weather_dependency"`
}

type Baselines struct {
	CostBaselinePerAcre    float64 `yaml:"cost_baseline_per_acre"`
	SlopeThresholdPercent  float64 `yaml:"slope_threshold_percent"`
	SlopePenaltyPerPercent float64 `yaml:"slope_penalty_per_percent"`
	SmallFieldAcres        float64 `yaml:"small_field_acres"`
	LargeFieldAcres        float64 `yaml:"large_field_acres"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.Retention.SweepIntervalMs) * time.Millisecond
}

func (c *Config) RetentionAge() time.Duration {
	return time.Duration(c.Retention.MaxAgeDays) * 24 * time.Hour
}

// EngineWeights converts the config weight block to the engine type.
func (c *Config) EngineWeights() scoring.Weights {
	w := c.Scoring.Weights
	return scoring.Weights{
		scoring.CostEffectiveness:     w.CostEffectiveness,
		scoring.ApplicationEfficiency: w.ApplicationEfficiency,
		scoring.EnvironmentalImpact:   w.EnvironmentalImpact,
		scoring.LaborRequirements:     w.LaborRequirements,
		scoring.EquipmentNeeds:        w.EquipmentNeeds,
		scoring.FieldSuitability:      w.FieldSuitability,
		scoring.NutrientUseEfficiency: w.NutrientUseEfficiency,
		scoring.TimingFlexibility:     w.TimingFlexibility,
		scoring.SkillRequirements:     w.SkillRequirements,
		scoring.WeatherDependency:     w.WeatherDependency,
	}
}

// EngineBaselines converts the config baseline block to the engine type.
func (c *Config) EngineBaselines() scoring.Baselines {
	b := c.Scoring.Baselines
	return scoring.Baselines{
		CostBaselinePerAcre:    b.CostBaselinePerAcre,
		SlopeThresholdPercent:  b.SlopeThresholdPercent,
		SlopePenaltyPerPercent: b.SlopePenaltyPerPercent,
		SmallFieldAcres:        b.SmallFieldAcres,
		LargeFieldAcres:        b.LargeFieldAcres,
	}
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
		},
		Events: EventsConfig{
			URL: "nats://localhost:4222",
		},
		Retention: RetentionConfig{
			MaxAgeDays:      90,
			SweepIntervalMs: 3600000,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 120,
		},
		Scoring: ScoringConfig{
			Weights: ScoringWeights{
				CostEffectiveness:     0.20,
				ApplicationEfficiency: 0.15,
				EnvironmentalImpact:   0.15,
				LaborRequirements:     0.10,
				EquipmentNeeds:        0.10,
				FieldSuitability:      0.10,
				NutrientUseEfficiency: 0.10,
				TimingFlexibility:     0.05,
				SkillRequirements:     0.03,
				WeatherDependency:     0.02,
			},
			Baselines: Baselines{
				CostBaselinePerAcre:    200.0,
				SlopeThresholdPercent:  5.0,
				SlopePenaltyPerPercent: 0.02,
				SmallFieldAcres:        20.0,
				LargeFieldAcres:        100.0,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.EngineWeights().Validate(); err != nil {
		return nil, fmt.Errorf("scoring weights: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ADVISOR_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("ADVISOR_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("ADVISOR_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("ADVISOR_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("ADVISOR_EVENTS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("ADVISOR_RETENTION_MAX_AGE_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Retention.MaxAgeDays = n
		}
	}
	if v := os.Getenv("ADVISOR_SWEEP_INTERVAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Retention.SweepIntervalMs = n
		}
	}
	if v := os.Getenv("ADVISOR_RATE_LIMIT_RPM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimit.RequestsPerMinute = n
		}
	}
	if v := os.Getenv("ADVISOR_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
