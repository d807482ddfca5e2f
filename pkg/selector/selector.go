// Package selector walks a source directory tree and decides, per path,
// whether it belongs in a snapshot: allowlisted first, then filtered
// against exclude patterns. The pattern set is an explicit input so
// callers and tests can supply their own.
package selector

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/brennanr9/claude-profile-manager/pkg/config"
	"github.com/brennanr9/claude-profile-manager/pkg/errors"
	"github.com/brennanr9/claude-profile-manager/pkg/logging"
	"github.com/brennanr9/claude-profile-manager/pkg/types"
)

// subtreeSuffix marks an allow rule covering a directory and its whole
// subtree ("commands/**").
const subtreeSuffix = "/**"

type allowRule struct {
	// exact relative path or leaf name
	pattern string
	// non-empty for dir/** rules: the directory prefix
	subtree string
}

func (r allowRule) matches(rel, base string) bool {
	if r.subtree != "" {
		return rel == r.subtree || strings.HasPrefix(rel, r.subtree+"/")
	}
	return rel == r.pattern || base == r.pattern
}

// Rules is a compiled selection pattern set.
type Rules struct {
	allow   []allowRule
	exclude []glob.Glob
}

// Compile turns a selection config into matchable rules. Exclude patterns
// are compiled as slash-separated globs so suffix (*.ext), prefix (name*),
// and exact forms all work against base names and full relative paths.
func Compile(sel config.Selection) (*Rules, error) {
	rules := &Rules{}

	for _, p := range sel.Allow {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if strings.HasSuffix(p, subtreeSuffix) {
			rules.allow = append(rules.allow, allowRule{pattern: p, subtree: strings.TrimSuffix(p, subtreeSuffix)})
		} else {
			rules.allow = append(rules.allow, allowRule{pattern: p})
		}
	}

	for _, p := range sel.Exclude {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid exclude pattern %q", p)
		}
		rules.exclude = append(rules.exclude, g)
	}

	return rules, nil
}

// Allowed reports whether the slash-normalized relative path rel matches
// at least one allow rule.
func (r *Rules) Allowed(rel string) bool {
	base := path.Base(rel)
	for _, rule := range r.allow {
		if rule.matches(rel, base) {
			return true
		}
	}
	return false
}

// Excluded reports whether rel matches at least one exclude pattern.
func (r *Rules) Excluded(rel string) bool {
	base := path.Base(rel)
	for _, g := range r.exclude {
		if g.Match(base) || g.Match(rel) {
			return true
		}
	}
	return false
}

// Select walks root depth-first and returns the relative paths (slash
// normalized, directories before their children) that pass allow-then-
// exclude filtering. When includeSecrets is true the exclude patterns are
// not consulted at all.
//
// An unreadable directory fails the whole selection; there is no partial
// best-effort snapshot.
func Select(fsys types.FS, root string, sel config.Selection, includeSecrets bool) ([]string, error) {
	logger := logging.GetLogger("selector")

	if _, err := fsys.Stat(root); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceMissing, "source directory %s does not exist", root)
	}

	rules, err := Compile(sel)
	if err != nil {
		return nil, err
	}

	var selected []string
	if err := walk(fsys, root, "", rules, includeSecrets, &selected); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("root", root).
		Int("selected", len(selected)).
		Bool("includeSecrets", includeSecrets).
		Msg("Selection complete")

	return selected, nil
}

func walk(fsys types.FS, root, dir string, rules *Rules, includeSecrets bool, selected *[]string) error {
	entries, err := fsys.ReadDir(filepath.Join(root, filepath.FromSlash(dir)))
	if err != nil {
		return errors.Wrapf(err, errors.ErrWalkFailed, "cannot read directory %s", path.Join(root, dir))
	}

	for _, entry := range entries {
		rel := path.Join(dir, entry.Name())

		// Allowlist first; a non-allowlisted directory is never descended.
		if !rules.Allowed(rel) {
			continue
		}

		// Exclusion is per-entry, so an excluded file inside an allowed
		// directory is skipped while its siblings survive.
		if !includeSecrets && rules.Excluded(rel) {
			continue
		}

		*selected = append(*selected, rel)

		if entry.IsDir() {
			if err := walk(fsys, root, rel, rules, includeSecrets, selected); err != nil {
				return err
			}
		}
	}

	return nil
}
