package database

import (
	"fmt"
	"time"

	"email-dataset/models"
)

// TagRepository manages tags and their assignment to emails.
type TagRepository struct {
	db *DB
}

func NewTagRepository(db *DB) *TagRepository {
	return &TagRepository{db: db}
}

// ==================== TAG OPERATIONS ====================

// FindAll returns every tag ordered by name
func (r *TagRepository) FindAll() (tags []models.Tag, err error) {
	defer observe("find_all_tags", time.Now(), &err)

	rows, err := r.db.Query(`
		SELECT ID, NAME, DESCRIPTION
		FROM TAG
		ORDER BY NAME ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("find tags: %w", err)
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	tags = make([]models.Tag, 0)
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Description); err != nil {
			return nil, fmt.Errorf("find tags: %w", err)
		}
		tags = append(tags, tag)
	}

	return tags, wrapErr("find tags", rows.Err())
}

// FindByID returns a tag, or nil, nil if it does not exist
func (r *TagRepository) FindByID(id int64) (tag *models.Tag, err error) {
	defer observe("find_tag_by_id", time.Now(), &err)

	var t models.Tag
	err = r.db.QueryRow(`
		SELECT ID, NAME, DESCRIPTION
		FROM TAG
		WHERE ID = ?
	`, id).Scan(&t.ID, &t.Name, &t.Description)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find tag %d: %w", id, err)
	}

	return &t, nil
}

// FindByName returns a tag, or nil, nil if it does not exist
func (r *TagRepository) FindByName(name string) (tag *models.Tag, err error) {
	defer observe("find_tag_by_name", time.Now(), &err)

	var t models.Tag
	err = r.db.QueryRow(`
		SELECT ID, NAME, DESCRIPTION
		FROM TAG
		WHERE NAME = ?
	`, name).Scan(&t.ID, &t.Name, &t.Description)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find tag %q: %w", name, err)
	}

	return &t, nil
}

// Create inserts a new tag and returns it with its generated ID
func (r *TagRepository) Create(name, description string) (tag *models.Tag, err error) {
	defer observe("create_tag", time.Now(), &err)

	res, err := r.db.Exec("INSERT INTO TAG (NAME, DESCRIPTION) VALUES (?, ?)", name, description)
	if err != nil {
		return nil, fmt.Errorf("create tag %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create tag %q: %w", name, err)
	}

	return &models.Tag{ID: id, Name: name, Description: description}, nil
}

// FindTagsForEmail returns the tags applied to an email, ordered by name
func (r *TagRepository) FindTagsForEmail(messageID string) (tags []models.Tag, err error) {
	defer observe("find_tags_for_email", time.Now(), &err)

	rows, err := r.db.Query(`
		SELECT T.ID, T.NAME, T.DESCRIPTION
		FROM TAG T
		JOIN EMAIL_TAG ET ON ET.TAG_ID = T.ID
		WHERE ET.MESSAGE_ID = ?
		ORDER BY T.NAME ASC
	`, messageID)
	if err != nil {
		return nil, fmt.Errorf("find tags of %q: %w", messageID, err)
	}
	defer rows.Close()

	tags = make([]models.Tag, 0)
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Description); err != nil {
			return nil, fmt.Errorf("find tags of %q: %w", messageID, err)
		}
		tags = append(tags, tag)
	}

	return tags, wrapErr(fmt.Sprintf("find tags of %q", messageID), rows.Err())
}

// AddTag applies a tag to an email. Applying a tag twice is a no-op.
func (r *TagRepository) AddTag(messageID string, tagID int64) (err error) {
	defer observe("add_tag", time.Now(), &err)

	_, err = r.db.Exec(`
		INSERT INTO EMAIL_TAG (MESSAGE_ID, TAG_ID) VALUES (?, ?)
		ON CONFLICT(MESSAGE_ID, TAG_ID) DO NOTHING
	`, messageID, tagID)
	return wrapErr(fmt.Sprintf("tag %q with %d", messageID, tagID), err)
}

// RemoveTag removes a tag from an email
func (r *TagRepository) RemoveTag(messageID string, tagID int64) (err error) {
	defer observe("remove_tag", time.Now(), &err)

	_, err = r.db.Exec("DELETE FROM EMAIL_TAG WHERE MESSAGE_ID = ? AND TAG_ID = ?", messageID, tagID)
	return wrapErr(fmt.Sprintf("untag %q from %d", messageID, tagID), err)
}
