package config

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalRoundTrip(t *testing.T) {
	original, err := LoadFromBytes([]byte(sampleConfig))
	require.NoError(t, err)

	out, err := original.Marshal()
	require.NoError(t, err)

	reparsed, err := LoadFromBytes(out)
	require.NoError(t, err)

	if diff := cmp.Diff(original, reparsed); diff != "" {
		t.Errorf("config changed across marshal/parse (-original +reparsed):\n%s", diff)
	}
}

func TestMarshalPreservesRepoOrder(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(sampleConfig))
	require.NoError(t, err)

	out, err := cfg.Marshal()
	require.NoError(t, err)

	text := string(out)
	yamllint := strings.Index(text, "yamllint")
	ruff := strings.Index(text, "ruff-pre-commit")
	require.GreaterOrEqual(t, yamllint, 0)
	require.GreaterOrEqual(t, ruff, 0)
	assert.Less(t, yamllint, ruff, "repo blocks should keep their declared order")
}

func TestMarshalOmitsUnsetFields(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(sampleConfig))
	require.NoError(t, err)

	out, err := cfg.Marshal()
	require.NoError(t, err)

	text := string(out)
	assert.NotContains(t, text, "fail_fast")
	assert.NotContains(t, text, "exclude")
	assert.NotContains(t, text, "alias")
}

func TestRoundTripPreservesRegistrations(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(sampleConfig))
	require.NoError(t, err)

	out, err := cfg.Marshal()
	require.NoError(t, err)

	reparsed, err := LoadFromBytes(out)
	require.NoError(t, err)

	if diff := cmp.Diff(cfg.Registrations(), reparsed.Registrations()); diff != "" {
		t.Errorf("registrations changed across round-trip:\n%s", diff)
	}
}

func TestRoundTripPreservesUnknownBlocks(t *testing.T) {
	doc := sampleConfig + `ci:
  autofix_prs: true
  skip: [ruff]
`
	cfg, err := LoadFromBytes([]byte(doc))
	require.NoError(t, err)
	require.Contains(t, cfg.Extensions, "ci")

	out, err := cfg.Marshal()
	require.NoError(t, err)

	reparsed, err := LoadFromBytes(out)
	require.NoError(t, err)
	assert.Contains(t, reparsed.Extensions, "ci")
}

func TestExportJSON(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(sampleConfig))
	require.NoError(t, err)

	out, err := cfg.Export(FormatJSON)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &doc))
	repos, ok := doc["repos"].([]interface{})
	require.True(t, ok)
	assert.Len(t, repos, 4)
}

func TestExportTOML(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(sampleConfig))
	require.NoError(t, err)

	out, err := cfg.Export(FormatTOML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[[repos]]")
	assert.Contains(t, string(out), "yamllint")
}

func TestExportUnknownFormat(t *testing.T) {
	cfg := validConfig()
	_, err := cfg.Export(ExportFormat("xml"))
	require.Error(t, err)
}

func TestExportDefaultsToYAML(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(sampleConfig))
	require.NoError(t, err)

	viaExport, err := cfg.Export("")
	require.NoError(t, err)
	viaMarshal, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Equal(t, viaMarshal, viaExport)
}
