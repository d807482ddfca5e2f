package config

import (
	"bytes"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/brennanr9/claude-profile-manager/pkg/errors"
)

// Marshal renders a configuration as TOML, used to write a starter
// .claude-profiles.toml reflecting the effective pattern set.
func Marshal(cfg *Config) ([]byte, error) {
	doc := map[string]interface{}{
		"selection": map[string]interface{}{
			"allow":   cfg.Selection.Allow,
			"exclude": cfg.Selection.Exclude,
		},
	}

	var buf bytes.Buffer
	enc := gotoml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode config")
	}
	return buf.Bytes(), nil
}
