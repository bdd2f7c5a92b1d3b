package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const DATABASE_TYPE = "FB_DATABASE_TYPE"
const DATABASE_URL = "FB_DATABASE_URL"
const DATABASE_SQLLITE_FILE_NAME = "FB_DATABASE_SQLLITE_FILE_NAME"
const SERVER_WEB_PORT = "FB_SERVER_WEB_PORT"
const DRAFTS_DIR = "FB_DRAFTS_DIR" //badger directory holding autosaved drafts
const DRAFTS_TTL = "FB_DRAFTS_TTL" //how long an autosaved draft survives, go duration
const LOG_LEVEL = "FB_LOG_LEVEL"
const AUTH_ENABLED = "FB_AUTH_ENABLED"

const DATABASE_TYPE_POSTGRES = "POSTGRES"
const DATABASE_TYPE_MYSQL = "MYSQL"
const DATABASE_TYPE_SQLLITE = "SQLLITE"

func GetSystemSettingInteger(settingKey string) int {
	val := GetSystemSettingString(settingKey)
	if val != "" {
		intValue, _ := strconv.Atoi(val)
		return intValue
	}
	return 0
}

func GetSystemSettingBool(settingKey string) bool {
	val, err := strconv.ParseBool(GetSystemSettingString(settingKey))
	if err != nil {
		val, _ = strconv.ParseBool(defaultValue(settingKey))
	}
	return val
}

// GetSystemSettingDuration parses the setting as a go duration, falling back
// to the default when the configured value does not parse.
func GetSystemSettingDuration(settingKey string) time.Duration {
	d, err := time.ParseDuration(GetSystemSettingString(settingKey))
	if err != nil {
		d, _ = time.ParseDuration(defaultValue(settingKey))
	}
	return d
}

func GetSystemSettingString(settingKey string) string {
	val := os.Getenv(settingKey)
	if val != "" {
		return val
	}
	return defaultValue(settingKey)
}

func defaultValue(settingKey string) string {
	switch settingKey {
	case DATABASE_TYPE:
		return DATABASE_TYPE_SQLLITE
	case DATABASE_SQLLITE_FILE_NAME:
		return "./flowbuilder.db"
	case SERVER_WEB_PORT:
		return "8080"
	case DRAFTS_DIR:
		return "./drafts"
	case DRAFTS_TTL:
		return "168h" // one week
	case LOG_LEVEL:
		return "info"
	case AUTH_ENABLED:
		return "true"
	}
	return ""
}

// DatabaseType returns the configured database type upper-cased.
func DatabaseType() string {
	return strings.ToUpper(GetSystemSettingString(DATABASE_TYPE))
}
