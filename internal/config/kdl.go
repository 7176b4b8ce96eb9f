package config

import (
	"fmt"
	"os"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// loadKDL parses a .wordsim.kdl file:
//
//	compare {
//	    min_match 80.0
//	    workers 0
//	    algorithm "levenshtein"
//	    stem false
//	    stream_threshold 10000
//	}
//	watch {
//	    debounce_ms 250
//	}
//
// Unknown nodes are ignored; omitted nodes keep their defaults.
func loadKDL(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := kdl.Parse(strings.NewReader(string(content)))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg := Default()
	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "compare":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "min_match":
					if v, ok := firstFloatArg(cn); ok {
						cfg.Compare.MinMatch = v
					}
				case "workers":
					if v, ok := firstIntArg(cn); ok {
						cfg.Compare.Workers = v
					}
				case "algorithm":
					if s, ok := firstStringArg(cn); ok {
						cfg.Compare.Algorithm = s
					}
				case "stem":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Compare.Stem = b
					}
				case "stream_threshold":
					if v, ok := firstIntArg(cn); ok {
						cfg.Compare.StreamThreshold = v
					}
				}
			}
		case "watch":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "debounce_ms":
					if v, ok := firstIntArg(cn); ok {
						cfg.Watch.DebounceMs = v
					}
				}
			}
		}
	}
	return cfg, nil
}

// Helpers over the kdl-go document model.
func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstFloatArg(n *document.Node) (float64, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}
