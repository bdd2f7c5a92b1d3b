// Package graphfile reads and writes workflow graphs as JSON or YAML files,
// chosen by file extension.
package graphfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/RealZimboGuy/flowbuilder/internal/xjson"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/domain"
)

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Load reads a graph file. Exported workflow documents load as well; their
// metadata is ignored.
func Load(path string) (domain.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Graph{}, err
	}
	return Parse(data, isYAML(path))
}

// Parse decodes a graph from JSON, or from YAML when asYAML is set. YAML is
// converted to JSON first so both go through the same node decoding.
func Parse(data []byte, asYAML bool) (domain.Graph, error) {
	if asYAML {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return domain.Graph{}, fmt.Errorf("parse yaml: %w", err)
		}
		converted, err := xjson.Marshal(doc)
		if err != nil {
			return domain.Graph{}, fmt.Errorf("convert yaml: %w", err)
		}
		data = converted
	}
	return domain.ParseGraph(data)
}

// Save writes g to path in the format its extension selects.
func Save(path string, g domain.Graph) error {
	data, err := Render(g, isYAML(path))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func Render(g domain.Graph, asYAML bool) ([]byte, error) {
	if g.Nodes == nil {
		g.Nodes = []domain.Node{}
	}
	if g.Edges == nil {
		g.Edges = []domain.Edge{}
	}
	if !asYAML {
		var buf bytes.Buffer
		enc := xjson.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(g); err != nil {
			return nil, fmt.Errorf("encode graph: %w", err)
		}
		return buf.Bytes(), nil
	}

	// yaml.v3 ignores json tags, so go through a generic document.
	encoded, err := xjson.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("encode graph: %w", err)
	}
	var doc map[string]any
	if err := xjson.Unmarshal(encoded, &doc); err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}
