package postgres

import (
	"net/url"
	"strings"
)

// ConnString adds application_name and, when requested,
// disable_prepared_binary_result=yes to a lib/pq connection string unless
// the operator already set them. URL and key=value forms are both accepted.
func ConnString(raw, appName string, disablePreparedBinary bool) string {
	opts := [][2]string{{"application_name", appName}}
	if disablePreparedBinary {
		opts = append(opts, [2]string{"disable_prepared_binary_result", "yes"})
	}

	raw = strings.TrimSpace(raw)
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		query := u.Query()
		for _, opt := range opts {
			if opt[1] != "" && query.Get(opt[0]) == "" {
				query.Set(opt[0], opt[1])
			}
		}
		u.RawQuery = query.Encode()
		return u.String()
	}

	present := keywordValues(raw)
	for _, opt := range opts {
		if opt[1] != "" && present[opt[0]] == "" {
			raw += " " + opt[0] + "=" + opt[1]
		}
	}
	return strings.TrimSpace(raw)
}

// DatabaseName reports the dbname of a URL or key=value connection string.
func DatabaseName(raw string) string {
	raw = strings.TrimSpace(raw)
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		return strings.TrimPrefix(u.Path, "/")
	}
	return keywordValues(raw)["dbname"]
}

func keywordValues(dsn string) map[string]string {
	out := make(map[string]string)
	for _, token := range strings.Fields(dsn) {
		if key, value, ok := strings.Cut(token, "="); ok {
			out[key] = strings.Trim(value, `"'`)
		}
	}
	return out
}
