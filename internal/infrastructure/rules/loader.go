package rules

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"alfred/internal/domain/entity"
)

// Load reads correction rules from a YAML, JSON or TOML file.
// An empty path yields the built-in rules; tables missing from the file keep their defaults.
func Load(path string) (entity.CorrectionRules, error) {
	if path == "" {
		return entity.DefaultCorrectionRules(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return entity.CorrectionRules{}, fmt.Errorf("read rules file %s: %w", path, err)
	}

	var r entity.CorrectionRules
	if err := v.Unmarshal(&r); err != nil {
		return entity.CorrectionRules{}, fmt.Errorf("decode rules file %s: %w", path, err)
	}

	for i, n := range r.Nicknames {
		if n.Name == "" || n.Domain == "" {
			return entity.CorrectionRules{}, fmt.Errorf("rules file %s: nickname %d needs both name and domain", path, i)
		}
		r.Nicknames[i].Name = strings.ToLower(n.Name)
	}
	// Targets and utterances are matched in lower case.
	lower(r.ScrollPlaceholders)
	lower(r.ClickTriggers)
	lower(r.ClickPrefixes)

	return r.WithDefaults(), nil
}

func lower(words []string) {
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
}
