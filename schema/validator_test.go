package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorAcceptsWellFormedDocument(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	doc := map[string]interface{}{
		"repos": []interface{}{
			map[string]interface{}{
				"repo": "https://github.com/pre-commit/pre-commit-hooks",
				"rev":  "v5.0.0",
				"hooks": []interface{}{
					map[string]interface{}{"id": "trailing-whitespace"},
					map[string]interface{}{"id": "end-of-file-fixer"},
				},
			},
		},
	}

	assert.NoError(t, v.Validate(doc))
}

func TestValidatorRejectsMissingRepos(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	err = v.Validate(map[string]interface{}{"exclude": "^vendor/"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "repos")
}

func TestValidatorRejectsHookWithoutID(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	doc := map[string]interface{}{
		"repos": []interface{}{
			map[string]interface{}{
				"repo": "https://github.com/psf/black",
				"rev":  "24.3.0",
				"hooks": []interface{}{
					map[string]interface{}{"name": "black"},
				},
			},
		},
	}

	assert.Error(t, v.Validate(doc))
}

func TestValidatorRejectsUnknownHookField(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	doc := map[string]interface{}{
		"repos": []interface{}{
			map[string]interface{}{
				"repo": "https://github.com/psf/black",
				"rev":  "24.3.0",
				"hooks": []interface{}{
					map[string]interface{}{"id": "black", "entrypoint": "black"},
				},
			},
		},
	}

	assert.Error(t, v.Validate(doc))
}

func TestValidatorAllowsUnknownTopLevelBlocks(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	doc := map[string]interface{}{
		"repos": []interface{}{},
		"ci": map[string]interface{}{
			"autoupdate_schedule": "weekly",
		},
	}

	assert.NoError(t, v.Validate(doc))
}
