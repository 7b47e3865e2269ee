package service

import (
	"encoding/json"
	"fmt"
	"strings"
)

// cleanReply strips markdown code fences the models like to wrap JSON in.
func cleanReply(reply string) string {
	clean := strings.TrimSpace(reply)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

// decodeReply parses a model reply into v. When the cleaned reply is not valid
// JSON, the outermost object or array embedded in surrounding prose is tried.
func decodeReply(reply string, v any) error {
	clean := cleanReply(reply)
	if clean == "" {
		return fmt.Errorf("empty reply")
	}

	err := json.Unmarshal([]byte(clean), v)
	if err == nil {
		return nil
	}

	if inner, ok := extractJSON(clean); ok && inner != clean {
		if innerErr := json.Unmarshal([]byte(inner), v); innerErr == nil {
			return nil
		}
	}
	return fmt.Errorf("failed to parse AI JSON: %w", err)
}

func extractJSON(s string) (string, bool) {
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return "", false
	}
	closer := "}"
	if s[start] == '[' {
		closer = "]"
	}
	end := strings.LastIndex(s, closer)
	if end <= start {
		return "", false
	}
	return s[start : end+1], true
}
