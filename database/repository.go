package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"email-dataset/metrics"
	"email-dataset/models"
)

// ErrThreadCycle is returned when following PARENT_ID links revisits an email.
var ErrThreadCycle = errors.New("cycle in email parent chain")

// EmailRepository reads and updates the emails of one dataset.
type EmailRepository struct {
	db     *DB
	logger *slog.Logger
}

func NewEmailRepository(db *DB, logger *slog.Logger) *EmailRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &EmailRepository{db: db, logger: logger}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// observe records the duration and outcome of a repository operation.
// Call it deferred with a pointer to the named error result.
func observe(operation string, start time.Time, err *error) {
	metrics.RecordDBQuery(operation, start, *err)
}

func scanEmail(s rowScanner) (*models.Email, error) {
	var email models.Email
	var parentID sql.NullInt64
	var inReplyTo sql.NullString

	if err := s.Scan(
		&email.ID, &parentID, &email.MessageID, &email.Subject, &inReplyTo,
		&email.SentFrom, &email.Date, &email.Body, &email.Hidden,
	); err != nil {
		return nil, err
	}

	if parentID.Valid {
		email.ParentID = &parentID.Int64
	}
	email.InReplyTo = inReplyTo.String
	return &email, nil
}

func scanPreview(s rowScanner) (*models.EmailPreview, error) {
	var preview models.EmailPreview
	var parentID sql.NullInt64
	var inReplyTo sql.NullString

	if err := s.Scan(
		&preview.ID, &parentID, &preview.MessageID, &preview.Subject, &inReplyTo,
		&preview.SentFrom, &preview.Date, &preview.Hidden, &preview.ReplyCount,
	); err != nil {
		return nil, err
	}

	if parentID.Valid {
		preview.ParentID = &parentID.Int64
	}
	preview.InReplyTo = inReplyTo.String
	return &preview, nil
}

// fetchPreviews runs a preview query and collects every row.
// The result is never nil.
func fetchPreviews(q interface {
	Query(query string, args ...any) (*sql.Rows, error)
}, query string, args ...any) ([]models.EmailPreview, error) {
	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	previews := make([]models.EmailPreview, 0)
	for rows.Next() {
		preview, err := scanPreview(rows)
		if err != nil {
			return nil, err
		}
		previews = append(previews, *preview)
	}

	return previews, rows.Err()
}

// fetchStrings collects the first column of every row.
func fetchStrings(rows *sql.Rows) ([]string, error) {
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	return values, rows.Err()
}

func (r *EmailRepository) count(query string, args ...any) (int64, error) {
	var n int64
	if err := r.db.QueryRow(query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func wrapErr(operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", operation, err)
}
