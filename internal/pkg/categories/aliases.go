package categories

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/nivekneved/travellounge-sub002/internal/pkg/errs"
)

// The storefront filter bar exposes a small set of logical categories, but the
// catalog carries a decade of literal category names ("Luxury Resort",
// "Golf Resort", ...). The alias table maps one to the other and lives in an
// editable JSON file so new literals don't require a deploy.

const All = "all"

type AliasTable map[string][]string

func Load(path string) (AliasTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read category alias file")
	}

	var table AliasTable
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, errs.Wrap(err, "failed to parse category alias file")
	}
	return table, nil
}

// Expand returns the literal category names for a logical filter key. The
// second return value reports whether the key had an alias entry; callers fall
// back to a substring match on the singularized key when it did not.
func (t AliasTable) Expand(logical string) ([]string, bool) {
	literals, ok := t[strings.ToLower(strings.TrimSpace(logical))]
	if !ok || len(literals) == 0 {
		return nil, false
	}
	return literals, true
}

// Singularize strips a plural suffix from a filter key so "hotels" still
// matches a literal category named "Hotel". Naive on purpose: the logical
// keys are a closed, hand-maintained set.
func Singularize(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "ies") {
		return s[:len(s)-3] + "y"
	}
	if strings.HasSuffix(s, "s") && !strings.HasSuffix(s, "ss") {
		return s[:len(s)-1]
	}
	return s
}
