package handler

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

func queryString(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}

func requireQuery(values url.Values, key string) (string, error) {
	value := queryString(values, key)
	if value == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return value, nil
}

// parseOptionalInt returns nil for a missing value.
func parseOptionalInt(values url.Values, key string) (*int, error) {
	value := queryString(values, key)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return nil, fmt.Errorf("%s must be a non-negative integer", key)
	}
	return &parsed, nil
}

func parseIntParam(values url.Values, key string, fallback int) (int, error) {
	parsed, err := parseOptionalInt(values, key)
	if err != nil {
		return 0, err
	}
	if parsed == nil {
		return fallback, nil
	}
	return *parsed, nil
}

func parseRequiredInt(values url.Values, key string) (int, error) {
	parsed, err := parseOptionalInt(values, key)
	if err != nil {
		return 0, err
	}
	if parsed == nil {
		return 0, fmt.Errorf("%s is required", key)
	}
	return *parsed, nil
}

func parseRequiredInt64(values url.Values, key string) (int64, error) {
	value := queryString(values, key)
	if value == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return parsed, nil
}
