// Package summary derives a categorized inventory from an archive
// manifest: one category per top-level directory, plus fixed categories
// for the instructions file and the MCP server configuration.
package summary

import (
	"encoding/json"
	"path/filepath"
	"sort"
	"strings"

	"github.com/brennanr9/claude-profile-manager/pkg/logging"
	"github.com/brennanr9/claude-profile-manager/pkg/types"
)

// Well-known manifest entries with fixed categories.
const (
	InstructionsFile     = "CLAUDE.md"
	InstructionsCategory = "instructions"

	MCPConfigFile = ".mcp.json"
	MCPCategory   = "mcp"
)

// Summarize builds a content summary from a manifest. It is a pure
// function of the manifest except for one best-effort enrichment: when
// root is non-empty and the MCP config file parses as JSON, the mcp
// category lists the configured server names instead of the filename.
// Enrichment failures fall back silently to the unenriched form.
func Summarize(manifest []string, fsys types.FS, root string) types.ContentSummary {
	out := types.NewContentSummary()

	for _, rel := range manifest {
		switch rel {
		case InstructionsFile:
			out.Add(InstructionsCategory, InstructionsFile)
			continue
		case MCPConfigFile:
			out.Add(MCPCategory, MCPConfigFile)
			continue
		}

		parts := strings.Split(rel, "/")
		if len(parts) < 2 || parts[1] == "" {
			// Single-segment paths stay in the manifest but are not
			// categorized.
			continue
		}
		item := strings.TrimSuffix(parts[1], filepath.Ext(parts[1]))
		out.Add(parts[0], item)
	}

	if root != "" && len(out.Items(MCPCategory)) > 0 {
		if servers := mcpServerNames(fsys, filepath.Join(root, MCPConfigFile)); len(servers) > 0 {
			out.Replace(MCPCategory, servers)
		}
	}

	return out
}

// mcpServerNames extracts server names from an MCP config file holding
// either a nested {"mcpServers": {...}} mapping or a flat mapping. Any
// failure yields nil so the caller keeps the unenriched category.
func mcpServerNames(fsys types.FS, path string) []string {
	logger := logging.GetLogger("summary")

	data, err := fsys.ReadFile(path)
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("MCP enrichment skipped")
		return nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("MCP enrichment skipped, not a JSON object")
		return nil
	}

	mapping := doc
	if nested, ok := doc["mcpServers"]; ok {
		var inner map[string]json.RawMessage
		if err := json.Unmarshal(nested, &inner); err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("MCP enrichment skipped, mcpServers is not a mapping")
			return nil
		}
		mapping = inner
	}

	names := make([]string, 0, len(mapping))
	for name := range mapping {
		names = append(names, name)
	}
	// Map iteration order is random; keep the output stable.
	sort.Strings(names)
	return names
}
