// Package config loads the pragbank settings from a YAML file and the
// environment. Priority: ENV > YAML > defaults (via env-default tags).
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	LemmatizerGolem = "golem"
	LemmatizerNone  = "none"
)

type Config struct {
	// Corpus is the events repository: a .csv file or a SQLite database.
	Corpus string `yaml:"corpus" env:"PRAGBANK_CORPUS" env-default:"fb-semprag.csv"`

	// Split restricts the reports to the train or test events. Empty means
	// all events.
	Split string `yaml:"split" env:"PRAGBANK_SPLIT"`

	// TopN is the number of words listed per category by the lexical
	// report.
	TopN int `yaml:"top_n" env:"PRAGBANK_TOP_N" env-default:"10"`

	// Lemmatizer is "golem" or "none".
	Lemmatizer string `yaml:"lemmatizer" env:"PRAGBANK_LEMMATIZER" env-default:"golem"`

	Log     Log    `yaml:"log"`
	Scorer  Scorer `yaml:"scorer"`
	VerbNet string `yaml:"verbnet_dir" env:"PRAGBANK_VERBNET_DIR"`
}

type Log struct {
	Level  string `yaml:"level"  env:"PRAGBANK_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"PRAGBANK_LOG_FORMAT" env-default:"text"`
}

// Scorer locates the timeline evaluation scripts.
type Scorer struct {
	Python    string `yaml:"python"     env:"PRAGBANK_PYTHON"     env-default:"python"`
	ScriptDir string `yaml:"script_dir" env:"PRAGBANK_SCRIPT_DIR" env-default:"."`
}

// Load reads the configuration file at path, if path is not empty, and the
// environment.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Corpus == "" {
		return errors.New("config: corpus is required")
	}
	if c.TopN < 0 {
		return fmt.Errorf("config: top_n must not be negative, got %d", c.TopN)
	}

	switch c.Split {
	case "", "train", "test":
	default:
		return fmt.Errorf("config: split must be train or test, got %q", c.Split)
	}

	switch c.Lemmatizer {
	case LemmatizerGolem, LemmatizerNone:
	default:
		return fmt.Errorf("config: lemmatizer must be golem or none, got %q", c.Lemmatizer)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: log format must be text or json, got %q", c.Log.Format)
	}

	return nil
}
