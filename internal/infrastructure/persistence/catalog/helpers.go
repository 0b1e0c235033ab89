// Package catalog provides the SQL-backed repositories for the catalog tables.
package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ShantiHimalaya/shanti-go/internal/domain/repositories"
)

var columnPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// listClauses translates a ListFilter into a WHERE/ORDER BY/LIMIT suffix
// plus bind arguments. OrderBy is whitelisted to bare column names so it
// can never smuggle SQL in.
func listClauses(filter repositories.ListFilter, defaultOrder string) (string, []any) {
	var conds []string
	var args []any

	if filter.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.FeaturedOnly {
		conds = append(conds, "featured = 1")
	}

	var sb strings.Builder
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	orderBy := defaultOrder
	if filter.OrderBy != "" && columnPattern.MatchString(filter.OrderBy) {
		orderBy = filter.OrderBy
	}
	sb.WriteString(" ORDER BY ")
	sb.WriteString(orderBy)
	if filter.Ascending {
		sb.WriteString(" ASC")
	} else {
		sb.WriteString(" DESC")
	}

	if filter.Limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT %d", filter.Limit))
	}

	return sb.String(), args
}

// jsonList serializes a string slice for a JSON-text column; nil becomes "[]".
func jsonList(items []string) string {
	if items == nil {
		items = []string{}
	}
	data, _ := json.Marshal(items)
	return string(data)
}

// parseList deserializes a JSON-text column into a string slice.
// Malformed or empty values come back as an empty slice rather than an error.
func parseList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []string{}
	}
	return items
}

// jsonValue serializes an arbitrary structured column; nil stays NULL.
func jsonValue(v any) any {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return string(data)
}

func strOrNil(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func timeOrNil(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
