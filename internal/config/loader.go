package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/love-no-jutsu/internal/quiz"
)

// LoadLevels loads the level tables.
// Search order: customPath -> ~/.lovenojutsu/configs/levels.yaml -> ./configs/levels.yaml -> embedded default
func LoadLevels(customPath string) (LevelsConfig, error) {
	return load(customPath, "levels.yaml", defaultLevelsYAML, DefaultLevels)
}

// LoadQuiz loads the quiz content with the same search order as LoadLevels.
func LoadQuiz(customPath string) (quiz.Content, error) {
	return load(customPath, "quiz.yaml", defaultQuizYAML, DefaultQuiz)
}

// load resolves one YAML document. Only an explicit customPath can fail;
// broken user or local files are skipped in favor of the next candidate.
func load[T any](customPath, filename string, embedded []byte, fallback func() T) (T, error) {
	var cfg T

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var candidate T
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lovenojutsu", "configs", filename)
}
