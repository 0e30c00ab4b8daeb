package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"email-dataset/database/queries"
	"email-dataset/models"
)

// ==================== EMAIL READ OPERATIONS ====================

// CountEmails returns the total number of emails in the dataset
func (r *EmailRepository) CountEmails() (n int64, err error) {
	defer observe("count_emails", time.Now(), &err)

	n, err = r.count("SELECT COUNT(MESSAGE_ID) FROM EMAIL")
	return n, wrapErr("count emails", err)
}

// CountTaggedEmails returns the number of emails with at least one tag
func (r *EmailRepository) CountTaggedEmails() (n int64, err error) {
	defer observe("count_tagged_emails", time.Now(), &err)

	n, err = r.count("SELECT COUNT(DISTINCT MESSAGE_ID) FROM EMAIL_TAG")
	return n, wrapErr("count tagged emails", err)
}

// FindEmailByID fetches a full email, body included, by its message id.
// Returns nil, nil if no email matches.
func (r *EmailRepository) FindEmailByID(messageID string) (email *models.Email, err error) {
	defer observe("find_email_by_id", time.Now(), &err)

	email, err = scanEmail(r.db.QueryRow(queries.Load(queries.FetchEmailByID), messageID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find email %q: %w", messageID, err)
	}

	return email, nil
}

// FindPreviewByID fetches the preview of an email by its message id.
// Returns nil, nil if no email matches.
func (r *EmailRepository) FindPreviewByID(messageID string) (preview *models.EmailPreview, err error) {
	defer observe("find_preview_by_id", time.Now(), &err)

	preview, err = scanPreview(r.db.QueryRow(queries.Load(queries.FetchEmailPreviewByID), messageID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find preview %q: %w", messageID, err)
	}

	return preview, nil
}

// FindAllReplies returns previews of the direct replies to an email, most
// recent first. Hidden replies are included.
func (r *EmailRepository) FindAllReplies(messageID string) (replies []models.EmailPreview, err error) {
	defer observe("find_all_replies", time.Now(), &err)

	replies, err = fetchPreviews(r.db, queries.Load(queries.FetchEmailPreviewByParentID), messageID)
	if err != nil {
		return nil, fmt.Errorf("find replies to %q: %w", messageID, err)
	}

	return replies, nil
}

// GetBody returns only the body of an email.
// The bool result is false if no email matches.
func (r *EmailRepository) GetBody(messageID string) (body string, found bool, err error) {
	defer observe("get_body", time.Now(), &err)

	err = r.db.QueryRow("SELECT BODY FROM EMAIL WHERE MESSAGE_ID = ?", messageID).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get body of %q: %w", messageID, err)
	}

	return body, true, nil
}

// FindRootEmailByChildID follows PARENT_ID links up from the email with the
// given internal id and returns the preview of the thread root. An email with
// no parent is its own root. Returns nil, nil if the chain reaches a missing
// row, and ErrThreadCycle if an email is visited twice.
func (r *EmailRepository) FindRootEmailByChildID(id int64) (root *models.EmailPreview, err error) {
	defer observe("find_root_email", time.Now(), &err)

	visited := make(map[int64]struct{})
	current := id
	for {
		if _, seen := visited[current]; seen {
			return nil, fmt.Errorf("find root of email %d: %w (revisited %d)", id, ErrThreadCycle, current)
		}
		visited[current] = struct{}{}

		var parentID sql.NullInt64
		err = r.db.QueryRow("SELECT PARENT_ID FROM EMAIL WHERE ID = ?", current).Scan(&parentID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("find root of email %d: %w", id, err)
		}

		if !parentID.Valid {
			break
		}
		current = parentID.Int64
	}

	root, err = scanPreview(r.db.QueryRow(queries.Load(queries.FetchEmailPreviewByInternalID), current))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find root of email %d: %w", id, err)
	}

	return root, nil
}

// FindPreviewsByTag returns previews of every email carrying the tag, most
// recent first.
func (r *EmailRepository) FindPreviewsByTag(tagID int64) (previews []models.EmailPreview, err error) {
	defer observe("find_previews_by_tag", time.Now(), &err)

	previews, err = fetchPreviews(r.db, queries.Load(queries.FetchEmailPreviewByTag), tagID)
	if err != nil {
		return nil, fmt.Errorf("find emails tagged %d: %w", tagID, err)
	}

	return previews, nil
}

// ==================== EMAIL WRITE OPERATIONS ====================

// InsertEmail stores a new email and sets its generated ID.
// Datasets are filled through the importer; the API never inserts.
func (r *EmailRepository) InsertEmail(email *models.Email) (err error) {
	defer observe("insert_email", time.Now(), &err)

	var inReplyTo sql.NullString
	if email.InReplyTo != "" {
		inReplyTo = sql.NullString{String: email.InReplyTo, Valid: true}
	}

	res, err := r.db.Exec(`
		INSERT INTO EMAIL (PARENT_ID, MESSAGE_ID, SUBJECT, IN_REPLY_TO, SENT_FROM, DATE, BODY, HIDDEN)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		email.ParentID, email.MessageID, email.Subject, inReplyTo,
		email.SentFrom, email.Date.UTC(), email.Body, email.Hidden,
	)
	if err != nil {
		return fmt.Errorf("insert email %q: %w", email.MessageID, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert email %q: %w", email.MessageID, err)
	}
	email.ID = id

	return nil
}

// LinkReplies sets PARENT_ID on every root email whose IN_REPLY_TO names
// an earlier email in the dataset (same DATE breaks ties on ID). Links only
// point backwards in that order, so they cannot form a cycle.
// Returns the number of emails linked.
func (r *EmailRepository) LinkReplies() (linked int64, err error) {
	defer observe("link_replies", time.Now(), &err)

	res, err := r.db.Exec(`
		UPDATE EMAIL
		SET PARENT_ID = (SELECT P.ID FROM EMAIL P WHERE P.MESSAGE_ID = EMAIL.IN_REPLY_TO)
		WHERE PARENT_ID IS NULL
			AND IN_REPLY_TO IS NOT NULL
			AND EXISTS (
				SELECT 1 FROM EMAIL P
				WHERE P.MESSAGE_ID = EMAIL.IN_REPLY_TO
					AND (P.DATE < EMAIL.DATE OR (P.DATE = EMAIL.DATE AND P.ID < EMAIL.ID))
			)
	`)
	if err != nil {
		return 0, fmt.Errorf("link replies: %w", err)
	}

	linked, err = res.RowsAffected()
	return linked, wrapErr("link replies", err)
}

// HideEmail marks one email as hidden. No audit record is written.
func (r *EmailRepository) HideEmail(messageID string) (err error) {
	defer observe("hide_email", time.Now(), &err)

	_, err = r.db.Exec("UPDATE EMAIL SET HIDDEN = TRUE WHERE MESSAGE_ID = ?", messageID)
	return wrapErr("hide email", err)
}

// ShowEmail clears the hidden flag of one email. No audit record is written.
func (r *EmailRepository) ShowEmail(messageID string) (err error) {
	defer observe("show_email", time.Now(), &err)

	_, err = r.db.Exec("UPDATE EMAIL SET HIDDEN = FALSE WHERE MESSAGE_ID = ?", messageID)
	return wrapErr("show email", err)
}
