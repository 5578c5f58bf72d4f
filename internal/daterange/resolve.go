package daterange

import "strings"

// LocalTimezone is the name time.LoadLocation maps to the host timezone.
const LocalTimezone = "Local"

// ResolveTimezone picks the viewer's timezone from candidates in priority
// order, typically a flag, the config value and $TZ. The first non-blank
// candidate is used and must be valid; a bad name is reported rather than
// skipped. With no candidates set it returns LocalTimezone.
func ResolveTimezone(candidates ...string) (string, error) {
	for _, c := range candidates {
		name := strings.TrimSpace(c)
		if name == "" {
			continue
		}
		if _, err := LoadLocation(name); err != nil {
			return "", err
		}
		return name, nil
	}
	return LocalTimezone, nil
}
