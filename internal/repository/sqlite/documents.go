package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Houeta/shelf-watch/internal/repository"
)

// Fetch returns the body of the named document.
func (r *Repository) Fetch(ctx context.Context, name string) ([]byte, error) {
	const opn = "repository.sqlite.Fetch"

	var body []byte
	err := r.db.QueryRowContext(ctx, "SELECT body FROM documents WHERE name = ?", name).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %s: %w", opn, name, repository.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("%s: failed to get document %s: %w", opn, name, err)
	}

	r.log.DebugContext(ctx, "Read document", "op", opn, "document", name, "bytes", len(body))

	return body, nil
}

// Documents lists the stored document names.
func (r *Repository) Documents(ctx context.Context) ([]string, error) {
	const opn = "repository.sqlite.Documents"

	rows, err := r.db.QueryContext(ctx, "SELECT name FROM documents ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opn, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%s: failed to scan name: %w", opn, err)
		}
		names = append(names, name)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration error: %w", opn, err)
	}

	return names, nil
}
