// cmd/tools/registry-updater/catalog_test.go
package main

import (
	"path/filepath"
	"testing"

	"marketplace-workers/pkg/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_IsValid(t *testing.T) {
	reg := catalog()

	require.NoError(t, registry.Validate(reg))
	assert.Len(t, reg.Activities, 7)
	for _, a := range reg.Activities {
		assert.NotEmpty(t, a.ErrorCodes, a.ID)
		assert.Contains(t, a.ErrorCodes, "PARSE_ERROR", a.ID)
		assert.NotEmpty(t, a.Timeout, a.ID)
	}
}

func TestExportThenValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity-registry.json")

	require.NoError(t, registry.SaveRegistry(catalog(), path))
	assert.NoError(t, validateRegistry(path))
}

func TestUpdateActivity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity-registry.json")
	require.NoError(t, registry.SaveRegistry(catalog(), path))

	require.NoError(t, updateActivity(path, "send-proposal", "status", "verified"))

	reg, err := registry.LoadRegistry(path)
	require.NoError(t, err)
	for _, a := range reg.Activities {
		if a.ID == "send-proposal" {
			assert.Equal(t, "verified", a.Status)
		}
	}

	assert.Error(t, updateActivity(path, "send-proposal", "taskType", "other"))
	assert.Error(t, updateActivity(path, "send-proposal", "timeout", "soon"))
	assert.Error(t, updateActivity(path, "unknown", "status", "verified"))
}

func TestValidateRegistry_Drift(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity-registry.json")
	reg := catalog()
	reg.Activities[0].TaskType = "estimate-roi-v0"
	require.NoError(t, registry.SaveRegistry(reg, path))

	assert.Error(t, validateRegistry(path))
}
