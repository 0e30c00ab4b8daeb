package database

import (
	"fmt"
	"time"

	"email-dataset/database/queries"
	"email-dataset/metrics"
	"email-dataset/models"
)

const (
	MutationKindHideByBody   = "hide_by_body"
	MutationKindHideBySender = "hide_by_sender"
	MutationKindDeleteHidden = "delete_hidden"
)

// ==================== AUDITED BULK OPERATIONS ====================

// HideAllEmailsByBody hides every visible email whose body matches the SQL
// LIKE pattern, and records one mutation listing the affected message ids.
// Returns the number of emails hidden.
func (r *EmailRepository) HideAllEmailsByBody(pattern string) (int, error) {
	return r.hideEmailsByQuery(
		MutationKindHideByBody,
		"Hiding all emails with a body like:\n\n"+pattern,
		"BODY LIKE ?",
		pattern,
	)
}

// HideAllEmailsBySentFrom hides every visible email whose sender matches the
// SQL LIKE pattern, and records one mutation listing the affected message ids.
// Returns the number of emails hidden.
func (r *EmailRepository) HideAllEmailsBySentFrom(pattern string) (int, error) {
	return r.hideEmailsByQuery(
		MutationKindHideBySender,
		"Hiding all emails sent by email addresses like: "+pattern,
		"SENT_FROM LIKE ?",
		pattern,
	)
}

// hideEmailsByQuery hides the visible emails matching condition and writes the
// mutation and its MUTATION_EMAIL links in the same transaction. Nothing is
// kept if any step fails.
func (r *EmailRepository) hideEmailsByQuery(kind, description, condition string, args ...any) (count int, err error) {
	defer observe(kind, time.Now(), &err)
	defer func() {
		if err != nil {
			r.logger.Error("bulk hide aborted",
				"kind", kind,
				"condition", condition,
				"error", err,
			)
		}
	}()

	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("%s: begin: %w", kind, err)
	}
	// Rollback after Commit is a no-op
	defer tx.Rollback()

	rows, err := tx.Query("SELECT MESSAGE_ID FROM EMAIL WHERE "+condition+" AND HIDDEN = FALSE ORDER BY ID", args...)
	if err != nil {
		return 0, fmt.Errorf("%s: select affected: %w", kind, err)
	}
	messageIDs, err := fetchStrings(rows)
	if err != nil {
		return 0, fmt.Errorf("%s: select affected: %w", kind, err)
	}

	res, err := tx.Exec(
		"INSERT INTO MUTATION (DESCRIPTION, PERFORMED_AT) VALUES (?, ?)",
		description, time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("%s: insert mutation: %w", kind, err)
	}
	mutationID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: insert mutation: %w", kind, err)
	}

	stmt, err := tx.Prepare("INSERT INTO MUTATION_EMAIL (MUTATION_ID, MESSAGE_ID) VALUES (?, ?)")
	if err != nil {
		return 0, fmt.Errorf("%s: link emails: %w", kind, err)
	}
	defer stmt.Close()
	for _, messageID := range messageIDs {
		if _, err := stmt.Exec(mutationID, messageID); err != nil {
			return 0, fmt.Errorf("%s: link email %q: %w", kind, messageID, err)
		}
	}

	res, err = tx.Exec("UPDATE EMAIL SET HIDDEN = TRUE WHERE "+condition+" AND HIDDEN = FALSE", args...)
	if err != nil {
		return 0, fmt.Errorf("%s: hide emails: %w", kind, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: hide emails: %w", kind, err)
	}

	if _, err := tx.Exec(
		"UPDATE MUTATION SET AFFECTED_EMAIL_COUNT = ? WHERE ID = ?",
		affected, mutationID,
	); err != nil {
		return 0, fmt.Errorf("%s: update mutation count: %w", kind, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: commit: %w", kind, err)
	}

	metrics.RecordMutation(kind, int(affected))
	r.logger.Info("emails hidden",
		"kind", kind,
		"mutation_id", mutationID,
		"count", affected,
	)

	return int(affected), nil
}

// DeleteAllHidden permanently removes every hidden email and records a
// mutation with the number removed. The removed message ids are not linked to
// the mutation. Returns the number of emails deleted.
func (r *EmailRepository) DeleteAllHidden() (count int, err error) {
	defer observe(MutationKindDeleteHidden, time.Now(), &err)
	defer func() {
		if err != nil {
			r.logger.Error("delete hidden aborted", "error", err)
		}
	}()

	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("delete hidden: begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM EMAIL WHERE HIDDEN = TRUE")
	if err != nil {
		return 0, fmt.Errorf("delete hidden: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete hidden: %w", err)
	}

	if _, err := tx.Exec(
		"INSERT INTO MUTATION (DESCRIPTION, PERFORMED_AT, AFFECTED_EMAIL_COUNT) VALUES (?, ?, ?)",
		"Permanently deleting all hidden emails.", time.Now().UTC(), affected,
	); err != nil {
		return 0, fmt.Errorf("delete hidden: insert mutation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("delete hidden: commit: %w", err)
	}

	metrics.RecordMutation(MutationKindDeleteHidden, int(affected))
	r.logger.Info("hidden emails deleted", "count", affected)

	return int(affected), nil
}

// ==================== MUTATION HISTORY ====================

// GetAllMutations returns every mutation, latest first
func (r *EmailRepository) GetAllMutations() (mutations []models.Mutation, err error) {
	defer observe("get_all_mutations", time.Now(), &err)

	rows, err := r.db.Query(queries.Load(queries.FetchAllMutations))
	if err != nil {
		return nil, fmt.Errorf("get mutations: %w", err)
	}
	defer rows.Close()

	mutations = make([]models.Mutation, 0)
	for rows.Next() {
		var m models.Mutation
		if err := rows.Scan(&m.ID, &m.Description, &m.PerformedAt, &m.AffectedEmailCount); err != nil {
			return nil, fmt.Errorf("get mutations: %w", err)
		}
		mutations = append(mutations, m)
	}

	return mutations, wrapErr("get mutations", rows.Err())
}

// FindMutationByID returns one mutation, or nil, nil if it does not exist
func (r *EmailRepository) FindMutationByID(id int64) (mutation *models.Mutation, err error) {
	defer observe("find_mutation_by_id", time.Now(), &err)

	var m models.Mutation
	err = r.db.QueryRow(`
		SELECT ID, DESCRIPTION, PERFORMED_AT, AFFECTED_EMAIL_COUNT
		FROM MUTATION
		WHERE ID = ?
	`, id).Scan(&m.ID, &m.Description, &m.PerformedAt, &m.AffectedEmailCount)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find mutation %d: %w", id, err)
	}

	return &m, nil
}

// FindMutationEmails returns the message ids linked to a mutation, sorted
func (r *EmailRepository) FindMutationEmails(mutationID int64) (messageIDs []string, err error) {
	defer observe("find_mutation_emails", time.Now(), &err)

	rows, err := r.db.Query(`
		SELECT MESSAGE_ID
		FROM MUTATION_EMAIL
		WHERE MUTATION_ID = ?
		ORDER BY MESSAGE_ID
	`, mutationID)
	if err != nil {
		return nil, fmt.Errorf("find emails of mutation %d: %w", mutationID, err)
	}

	messageIDs, err = fetchStrings(rows)
	return messageIDs, wrapErr(fmt.Sprintf("find emails of mutation %d", mutationID), err)
}
