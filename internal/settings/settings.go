package settings

import "strings"

type Matcher func(string) bool
type ApplyFunc func(key, val string) error

type Handler struct {
	Match Matcher
	Apply ApplyFunc
}

// Applier routes -set key=value overrides to the first matching handler.
// Unmatched keys are returned so the caller can warn about them.
type Applier struct {
	handlers []Handler
}

func New(handlers ...Handler) Applier {
	return Applier{handlers: handlers}
}

func (a Applier) ApplyAll(overrides map[string]string) (map[string]string, error) {
	if len(overrides) == 0 || len(a.handlers) == 0 {
		return overrides, nil
	}
	left := make(map[string]string)
	for k, v := range overrides {
		key := strings.ToLower(strings.TrimSpace(k))
		if key == "" {
			continue
		}
		applied := false
		for _, h := range a.handlers {
			if h.Match != nil && h.Match(key) {
				if h.Apply != nil {
					if err := h.Apply(key, v); err != nil {
						return nil, err
					}
				}
				applied = true
				break
			}
		}
		if !applied {
			left[key] = v
		}
	}
	return left, nil
}

func PrefixMatcher(prefixes ...string) Matcher {
	return func(key string) bool {
		lower := strings.ToLower(strings.TrimSpace(key))
		for _, p := range prefixes {
			if strings.HasPrefix(lower, strings.ToLower(strings.TrimSpace(p))) {
				return true
			}
		}
		return false
	}
}

func ExactMatcher(keys ...string) Matcher {
	return func(key string) bool {
		lower := strings.ToLower(strings.TrimSpace(key))
		for _, k := range keys {
			if lower == strings.ToLower(strings.TrimSpace(k)) {
				return true
			}
		}
		return false
	}
}

// ParsePairs splits repeated "key=value" flag values into an override map.
// Malformed pairs without "=" are skipped.
func ParsePairs(pairs []string) map[string]string {
	if len(pairs) == 0 {
		return nil
	}
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, val, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			continue
		}
		out[key] = strings.TrimSpace(val)
	}
	return out
}
