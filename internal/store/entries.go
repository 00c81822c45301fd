package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/blackwell-systems/trackrecord/internal/career"
)

const entryColumns = "id, entry_date, description, impact, skills, tags, project, category"

// SaveEntry inserts the entry, or replaces the stored version when an entry
// with the same ID already exists.
func (db *DB) SaveEntry(e career.Entry) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := db.conn.Exec(`
		INSERT INTO entries (id, entry_date, description, impact, skills, tags, project, category, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			entry_date  = excluded.entry_date,
			description = excluded.description,
			impact      = excluded.impact,
			skills      = excluded.skills,
			tags        = excluded.tags,
			project     = excluded.project,
			category    = excluded.category,
			updated_at  = excluded.updated_at`,
		e.ID, e.Date, e.Description, e.Impact, encodeList(e.Skills), encodeList(e.Tags),
		e.Project, e.Category, now, now,
	)
	return err
}

// GetEntry returns the entry with the given ID, or nil if it does not exist.
func (db *DB) GetEntry(id string) (*career.Entry, error) {
	row := db.conn.QueryRow("SELECT "+entryColumns+" FROM entries WHERE id = ?", id)
	e, err := scanEntry(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// FindEntryByPrefix resolves an entry by ID prefix. It returns nil, nil when
// nothing matches and an error when more than one entry matches.
func (db *DB) FindEntryByPrefix(prefix string) (*career.Entry, error) {
	rows, err := db.conn.Query(
		"SELECT "+entryColumns+" FROM entries WHERE id LIKE ? || '%' ORDER BY id LIMIT 2",
		prefix,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var matches []career.Entry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		matches = append(matches, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("entry id prefix %q is ambiguous", prefix)
	}
}

// ListEntries returns entries matching the filter, ordered by date then ID.
// That order is stable across runs and is what the analysis passes expect.
func (db *DB) ListEntries(f Filter) ([]career.Entry, error) {
	query := "SELECT " + entryColumns + " FROM entries"
	var conds []string
	var args []any

	if f.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, f.Category)
	}
	if f.Project != "" {
		conds = append(conds, "project = ?")
		args = append(args, f.Project)
	}
	if f.Days > 0 {
		// ISO dates compare correctly as strings.
		cutoff := time.Now().UTC().AddDate(0, 0, -f.Days).Format("2006-01-02")
		conds = append(conds, "entry_date >= ?")
		args = append(args, cutoff)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY entry_date, id"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []career.Entry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteEntry removes the entry with the given ID and reports whether a row
// was actually deleted.
func (db *DB) DeleteEntry(id string) (bool, error) {
	result, err := db.conn.Exec("DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CountEntries returns the total number of stored entries.
func (db *DB) CountEntries() (int, error) {
	var n int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM entries").Scan(&n)
	return n, err
}

// scanEntry reads one entries row through the given Scan function.
func scanEntry(scan func(dest ...any) error) (career.Entry, error) {
	var e career.Entry
	var impact, project sql.NullString
	var skillsJSON, tagsJSON string
	if err := scan(&e.ID, &e.Date, &e.Description, &impact, &skillsJSON, &tagsJSON, &project, &e.Category); err != nil {
		return career.Entry{}, err
	}
	e.Impact = impact.String
	e.Project = project.String
	if err := json.Unmarshal([]byte(skillsJSON), &e.Skills); err != nil {
		return career.Entry{}, fmt.Errorf("decoding skills for %s: %w", e.ID, err)
	}
	if err := json.Unmarshal([]byte(tagsJSON), &e.Tags); err != nil {
		return career.Entry{}, fmt.Errorf("decoding tags for %s: %w", e.ID, err)
	}
	// Empty lists are stored as [] and loaded as nil.
	if len(e.Skills) == 0 {
		e.Skills = nil
	}
	if len(e.Tags) == 0 {
		e.Tags = nil
	}
	return e, nil
}

func encodeList(vals []string) string {
	if len(vals) == 0 {
		return "[]"
	}
	b, _ := json.Marshal(vals)
	return string(b)
}
