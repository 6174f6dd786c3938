package getsafe

func String(payload map[string]any, key string) string {
	if v, ok := payload[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func StringOr(payload map[string]any, key string, fallback string) string {
	if s := String(payload, key); len(s) > 0 {
		return s
	}
	return fallback
}

func Strings(payload map[string]any, key string) []string {
	v, ok := payload[key]
	if !ok {
		return nil
	}

	switch typed := v.(type) {
	case []string:
		return typed
	case []any:
		var out []string
		for _, item := range typed {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}

	return nil
}

func Metadata(payload map[string]any, key string) map[string]any {
	if v, ok := payload[key]; ok {
		if m, ok := v.(map[string]any); ok {
			return m
		}
	}
	return nil
}
