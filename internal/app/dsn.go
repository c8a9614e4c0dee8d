package app

import (
	"net/url"
	"strings"
)

const (
	preparedBinaryParam = "disable_prepared_binary_result"
	maxTracedQueryLen   = 512
)

// withPreparedBinaryDisabled sets disable_prepared_binary_result=yes unless the
// DSN already carries a value for it. Both URL and keyword DSNs are handled.
func withPreparedBinaryDisabled(dsn string) string {
	if isURLDSN(dsn) {
		parsed, err := url.Parse(dsn)
		if err != nil {
			return dsn
		}
		query := parsed.Query()
		if query.Has(preparedBinaryParam) {
			return dsn
		}
		query.Set(preparedBinaryParam, "yes")
		parsed.RawQuery = query.Encode()
		return parsed.String()
	}

	if _, ok := keywordValue(dsn, preparedBinaryParam); ok {
		return dsn
	}
	return strings.TrimSpace(dsn) + " " + preparedBinaryParam + "=yes"
}

// databaseName extracts the database name for span attributes.
func databaseName(dsn string) string {
	if isURLDSN(dsn) {
		parsed, err := url.Parse(strings.TrimSpace(dsn))
		if err != nil {
			return ""
		}
		return strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
	}

	name, _ := keywordValue(dsn, "dbname")
	return name
}

// traceQuery collapses whitespace and caps the statement recorded on spans.
func traceQuery(query string) string {
	compact := strings.Join(strings.Fields(query), " ")
	if len(compact) <= maxTracedQueryLen {
		return compact
	}
	return compact[:maxTracedQueryLen] + "..."
}

func isURLDSN(dsn string) bool {
	trimmed := strings.TrimSpace(dsn)
	return strings.HasPrefix(trimmed, "postgres://") || strings.HasPrefix(trimmed, "postgresql://")
}

func keywordValue(dsn, key string) (string, bool) {
	for _, token := range strings.Fields(dsn) {
		k, v, found := strings.Cut(token, "=")
		if !found || k != key {
			continue
		}
		return strings.Trim(v, `"'`), true
	}
	return "", false
}
