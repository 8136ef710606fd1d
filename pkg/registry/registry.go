// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

func LoadRegistry(path string) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg ActivityRegistry
	err = json.Unmarshal(data, &reg)
	return &reg, err
}

// SaveRegistry writes reg as indented JSON, creating the parent directory.
func SaveRegistry(reg *ActivityRegistry, path string) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}
	return nil
}

// Validate checks required fields and rejects duplicate ids or task types.
func Validate(reg *ActivityRegistry) error {
	if len(reg.Activities) == 0 {
		return fmt.Errorf("registry contains no activities")
	}

	ids := make(map[string]bool)
	taskTypes := make(map[string]bool)
	for _, activity := range reg.Activities {
		if activity.ID == "" {
			return fmt.Errorf("activity missing required field: ID")
		}
		if ids[activity.ID] {
			return fmt.Errorf("duplicate activity ID: %s", activity.ID)
		}
		ids[activity.ID] = true

		if activity.DisplayName == "" {
			return fmt.Errorf("activity %s missing required field: DisplayName", activity.ID)
		}
		if activity.Category == "" {
			return fmt.Errorf("activity %s missing required field: Category", activity.ID)
		}
		if activity.TaskType == "" {
			return fmt.Errorf("activity %s missing required field: TaskType", activity.ID)
		}
		if taskTypes[activity.TaskType] {
			return fmt.Errorf("duplicate task type: %s", activity.TaskType)
		}
		taskTypes[activity.TaskType] = true
	}
	return nil
}

// Diff lists the activities whose task type, category or error codes differ
// between want and got, plus activities present on only one side.
func Diff(want, got *ActivityRegistry) []string {
	index := make(map[string]Activity, len(got.Activities))
	for _, a := range got.Activities {
		index[a.ID] = a
	}

	var drift []string
	for _, w := range want.Activities {
		g, ok := index[w.ID]
		if !ok {
			drift = append(drift, fmt.Sprintf("%s: missing", w.ID))
			continue
		}
		delete(index, w.ID)

		if g.TaskType != w.TaskType {
			drift = append(drift, fmt.Sprintf("%s: taskType %q, want %q", w.ID, g.TaskType, w.TaskType))
		}
		if g.Category != w.Category {
			drift = append(drift, fmt.Sprintf("%s: category %q, want %q", w.ID, g.Category, w.Category))
		}
		if !sameSet(g.ErrorCodes, w.ErrorCodes) {
			drift = append(drift, fmt.Sprintf("%s: errorCodes %v, want %v", w.ID, g.ErrorCodes, w.ErrorCodes))
		}
	}
	for id := range index {
		drift = append(drift, fmt.Sprintf("%s: not served by any worker", id))
	}

	sort.Strings(drift)
	return drift
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, s := range a {
		seen[s]++
	}
	for _, s := range b {
		if seen[s] == 0 {
			return false
		}
		seen[s]--
	}
	return true
}
