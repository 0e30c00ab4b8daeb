// Package queries holds the parameterized SQL templates used by the
// repositories, embedded in the binary and loaded by name.
package queries

import (
	"embed"
	"fmt"
	"strings"
	"sync"
)

//go:embed sql
var files embed.FS

const (
	FetchEmailByID                = "fetch_email_by_id.sql"
	FetchAllMutations             = "fetch_all_mutations.sql"
	FetchEmailPreviewByID         = "preview/fetch_email_preview_by_id.sql"
	FetchEmailPreviewByInternalID = "preview/fetch_email_preview_by_internal_id.sql"
	FetchEmailPreviewByParentID   = "preview/fetch_email_preview_by_parent_id.sql"
	FetchEmailPreviewByTag        = "preview/fetch_email_preview_by_tag.sql"
)

var (
	cache   = make(map[string]string)
	cacheMu sync.RWMutex
)

// Load returns the SQL text of the named template. Templates are read once and
// served from memory afterwards. An unknown name panics, as it can only be a
// programming error.
func Load(name string) string {
	cacheMu.RLock()
	query, ok := cache[name]
	cacheMu.RUnlock()
	if ok {
		return query
	}

	data, err := files.ReadFile("sql/" + strings.TrimPrefix(name, "/"))
	if err != nil {
		panic(fmt.Sprintf("queries: unknown template %q: %v", name, err))
	}
	query = strings.TrimSpace(string(data))

	cacheMu.Lock()
	cache[name] = query
	cacheMu.Unlock()

	return query
}
