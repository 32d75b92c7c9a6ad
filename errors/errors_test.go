package errors

import (
	"fmt"
	"testing"
)

func TestHookError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeHookNotFound, "hook not found")
	if err.Code != ErrCodeHookNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeHookNotFound, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeConfigInvalid, "parse failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeConfigInvalid) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeHookNotFound) {
		t.Error("Is should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("repo", "https://github.com/psf/black").WithDetail("line", 12)
	if detailed.Details["repo"] != "https://github.com/psf/black" {
		t.Error("WithDetail should add details")
	}
}

func TestErrorConstructors(t *testing.T) {
	// Test DuplicateHook
	err := DuplicateHook("https://github.com/astral-sh/ruff-pre-commit", "ruff")
	if err.Code != ErrCodeDuplicateHook {
		t.Errorf("expected code %s, got %s", ErrCodeDuplicateHook, err.Code)
	}
	if err.Details["hook"] != "ruff" {
		t.Error("DuplicateHook should include hook detail")
	}

	// Test RevisionMissing
	err = RevisionMissing("https://github.com/pre-commit/pre-commit-hooks")
	if err.Code != ErrCodeRevisionMissing {
		t.Errorf("expected code %s, got %s", ErrCodeRevisionMissing, err.Code)
	}
	if err.Details["repo"] != "https://github.com/pre-commit/pre-commit-hooks" {
		t.Error("RevisionMissing should include repo detail")
	}

	// Test ConfigNotFound
	err = ConfigNotFound("/tmp/nope/.pre-commit-config.yaml")
	if err.Code != ErrCodeConfigNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeConfigNotFound, err.Code)
	}
}
