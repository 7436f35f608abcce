package config

import (
	"testing"
)

func TestSubstituteEnvVars_Simple(t *testing.T) {
	t.Setenv("FETCHARR_VAR_SIMPLE", "hello")

	content, missing := substituteEnvVars("value = ${FETCHARR_VAR_SIMPLE}")
	if content != "value = hello" {
		t.Errorf("expected 'value = hello', got %q", content)
	}
	if len(missing) != 0 {
		t.Errorf("expected no missing vars, got %v", missing)
	}
}

func TestSubstituteEnvVars_Missing(t *testing.T) {
	// Use a unique var name that definitely doesn't exist
	content, missing := substituteEnvVars("value = ${FETCHARR_NONEXISTENT_VAR_12345}")
	if content != "value = ${FETCHARR_NONEXISTENT_VAR_12345}" {
		t.Errorf("expected unchanged, got %q", content)
	}
	if len(missing) != 1 || missing[0] != "FETCHARR_NONEXISTENT_VAR_12345" {
		t.Errorf("expected [FETCHARR_NONEXISTENT_VAR_12345], got %v", missing)
	}
}

func TestSubstituteEnvVars_Default(t *testing.T) {
	// Empty string should trigger default (same as unset for :- syntax)
	t.Setenv("FETCHARR_VAR_EMPTY", "")

	content, missing := substituteEnvVars("value = ${FETCHARR_VAR_EMPTY:-default_value}")
	if content != "value = default_value" {
		t.Errorf("expected 'value = default_value', got %q", content)
	}
	if len(missing) != 0 {
		t.Errorf("expected no missing vars with default, got %v", missing)
	}
}

func TestSubstituteEnvVars_DefaultOverriddenByEnv(t *testing.T) {
	t.Setenv("FETCHARR_VAR_SET", "from_env")

	content, missing := substituteEnvVars("value = ${FETCHARR_VAR_SET:-default}")
	if content != "value = from_env" {
		t.Errorf("expected 'value = from_env', got %q", content)
	}
	if len(missing) != 0 {
		t.Errorf("expected no missing vars, got %v", missing)
	}
}

func TestSubstituteEnvVars_RequiredError(t *testing.T) {
	// Empty string should trigger :? error (same as unset)
	t.Setenv("FETCHARR_VAR_REQUIRED", "")

	content, missing := substituteEnvVars("value = ${FETCHARR_VAR_REQUIRED:?API key is required}")
	if content != "value = ${FETCHARR_VAR_REQUIRED:?API key is required}" {
		t.Errorf("expected unchanged, got %q", content)
	}
	if len(missing) != 1 || missing[0] != "FETCHARR_VAR_REQUIRED: API key is required" {
		t.Errorf("expected error message, got %v", missing)
	}
}

func TestSubstituteEnvVars_Multiple(t *testing.T) {
	t.Setenv("FETCHARR_VAR_ONE", "one")
	// FETCHARR_NONEXISTENT_VAR_2 is never set - truly missing
	t.Setenv("FETCHARR_VAR_THREE", "")

	content, missing := substituteEnvVars("${FETCHARR_VAR_ONE} ${FETCHARR_NONEXISTENT_VAR_2} ${FETCHARR_VAR_THREE:-three}")
	if content != "one ${FETCHARR_NONEXISTENT_VAR_2} three" {
		t.Errorf("expected 'one ${FETCHARR_NONEXISTENT_VAR_2} three', got %q", content)
	}
	if len(missing) != 1 || missing[0] != "FETCHARR_NONEXISTENT_VAR_2" {
		t.Errorf("expected [FETCHARR_NONEXISTENT_VAR_2], got %v", missing)
	}
}
