package config

import (
	"testing"
	"time"
)

func TestGetSystemSettingString_Defaults(t *testing.T) {
	t.Setenv(SERVER_WEB_PORT, "")
	if got := GetSystemSettingString(SERVER_WEB_PORT); got != "8080" {
		t.Errorf("Expected default port 8080, got %s", got)
	}
	if got := GetSystemSettingString("FB_SOMETHING_ELSE"); got != "" {
		t.Errorf("Expected empty value for unknown key, got %s", got)
	}
}

func TestGetSystemSettingString_Env(t *testing.T) {
	t.Setenv(DATABASE_TYPE, "postgres")
	if got := GetSystemSettingString(DATABASE_TYPE); got != "postgres" {
		t.Errorf("Expected postgres, got %s", got)
	}
	if got := DatabaseType(); got != DATABASE_TYPE_POSTGRES {
		t.Errorf("Expected %s, got %s", DATABASE_TYPE_POSTGRES, got)
	}
}

func TestGetSystemSettingDuration(t *testing.T) {
	t.Setenv(DRAFTS_TTL, "2h")
	if got := GetSystemSettingDuration(DRAFTS_TTL); got != 2*time.Hour {
		t.Errorf("Expected 2h, got %v", got)
	}
	t.Setenv(DRAFTS_TTL, "soon")
	if got := GetSystemSettingDuration(DRAFTS_TTL); got != 168*time.Hour {
		t.Errorf("Expected fallback 168h, got %v", got)
	}
}

func TestGetSystemSettingBool(t *testing.T) {
	t.Setenv(AUTH_ENABLED, "")
	if !GetSystemSettingBool(AUTH_ENABLED) {
		t.Error("Expected auth to default to enabled")
	}
	t.Setenv(AUTH_ENABLED, "false")
	if GetSystemSettingBool(AUTH_ENABLED) {
		t.Error("Expected auth to be disabled")
	}
	t.Setenv(AUTH_ENABLED, "nope")
	if !GetSystemSettingBool(AUTH_ENABLED) {
		t.Error("Expected unparseable value to fall back to enabled")
	}
}
