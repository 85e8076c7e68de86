package manager

import (
	"bufio"
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"go.trai.ch/packsync/internal/core/domain"
	"go.trai.ch/zerr"
)

// yarnEntry matches "name@version" inside a yarn global list line.
// The optional leading @ admits scoped package names.
var yarnEntry = regexp.MustCompile(`"(@?[^@"]+)@([^"]+)"`)

type dependency struct {
	Version string `json:"version"`
}

// orderedTree keeps dependency names in document order.
type orderedTree struct {
	Dependencies domain.OrderedMap[dependency] `json:"dependencies"`
}

// parseDependencyTree reads npm or pnpm list output. pnpm reports an array of
// trees, one per global directory; npm reports a single tree. Entries without
// a version are dropped.
func parseDependencyTree(out []byte) (domain.PackageSet, error) {
	var set domain.PackageSet
	trimmed := bytes.TrimSpace(out)
	if len(trimmed) == 0 {
		return set, nil
	}

	var trees []orderedTree
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &trees); err != nil {
			return set, err
		}
	case '{':
		var tree orderedTree
		if err := json.Unmarshal(trimmed, &tree); err != nil {
			return set, err
		}
		trees = append(trees, tree)
	default:
		return set, zerr.New("expected a JSON object or array")
	}

	for _, tree := range trees {
		for name, dep := range tree.Dependencies.All() {
			if dep.Version != "" {
				set.Set(name, dep.Version)
			}
		}
	}
	return set, nil
}

// parseYarnList scans yarn's line-delimited JSON for quoted name@version
// pairs. JSON events are matched only when they are info events with a
// string data field; plain text lines are matched as they are.
func parseYarnList(out []byte) domain.PackageSet {
	var set domain.PackageSet

	scanner := bufio.NewScanner(bytes.NewReader(out))
	scanner.Buffer(make([]byte, 0, 64<<10), int(domain.MaxOutputBytes))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, `"`) {
			continue
		}

		var event struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		}
		if json.Unmarshal([]byte(line), &event) == nil {
			// Only info events name installed packages. list events carry
			// bin tables such as {"type":"bins-@vue/cli",...}.
			var data string
			if event.Type != "info" || json.Unmarshal(event.Data, &data) != nil {
				continue
			}
			line = data
		}

		if m := yarnEntry.FindStringSubmatch(line); m != nil {
			set.Set(m[1], m[2])
		}
	}
	return set
}

// parseVersionOutput extracts a version from a view or info command.
// It accepts a bare JSON string, a yarn event whose data is a string,
// or raw text with quotes stripped.
func parseVersionOutput(out []byte) string {
	trimmed := bytes.TrimSpace(out)

	var s string
	if json.Unmarshal(trimmed, &s) == nil {
		return strings.TrimSpace(s)
	}

	var event struct {
		Data string `json:"data"`
	}
	if json.Unmarshal(trimmed, &event) == nil && event.Data != "" {
		return strings.TrimSpace(event.Data)
	}

	return strings.TrimSpace(strings.ReplaceAll(string(trimmed), `"`, ""))
}
