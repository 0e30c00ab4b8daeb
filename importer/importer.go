package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/mail"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"email-dataset/models"

	"github.com/jhillyerd/enmime"
)

var ErrMissingMessageID = errors.New("message has no Message-ID header")

// Store is the part of the email repository the importer writes through
type Store interface {
	FindPreviewByID(messageID string) (*models.EmailPreview, error)
	InsertEmail(email *models.Email) error
	LinkReplies() (int64, error)
}

// Result summarizes one import run
type Result struct {
	Files    int   `json:"files"`
	Imported int   `json:"imported"`
	Skipped  int   `json:"skipped"`
	Failed   int   `json:"failed"`
	Linked   int64 `json:"linked"`
}

// Importer loads RFC 5322 message files into a dataset
type Importer struct {
	store  Store
	logger *slog.Logger
}

func New(store Store, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{store: store, logger: logger}
}

// ==================== DIRECTORY IMPORT ====================

// ImportDir parses every .eml file below dir, inserts the messages not yet in
// the dataset oldest first, then links replies to their parents.
// Unparseable files are counted and logged, not fatal.
func (im *Importer) ImportDir(ctx context.Context, dir string) (*Result, error) {
	paths, err := collectFiles(dir)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: len(paths)}
	emails := make([]*models.Email, 0, len(paths))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		email, err := ParseFile(path)
		if err != nil {
			result.Failed++
			im.logger.Warn("skipping unparseable message", "path", path, "error", err)
			continue
		}
		emails = append(emails, email)
	}

	sort.SliceStable(emails, func(i, j int) bool {
		return emails[i].Date.Before(emails[j].Date)
	})

	for _, email := range emails {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		existing, err := im.store.FindPreviewByID(email.MessageID)
		if err != nil {
			return result, err
		}
		if existing != nil {
			result.Skipped++
			continue
		}

		if err := im.store.InsertEmail(email); err != nil {
			result.Failed++
			im.logger.Warn("failed to insert message", "message_id", email.MessageID, "error", err)
			continue
		}
		result.Imported++
	}

	linked, err := im.store.LinkReplies()
	if err != nil {
		return result, err
	}
	result.Linked = linked

	im.logger.Info("import finished",
		"dir", dir,
		"files", result.Files,
		"imported", result.Imported,
		"skipped", result.Skipped,
		"failed", result.Failed,
		"linked", result.Linked,
	)

	return result, nil
}

func collectFiles(dir string) ([]string, error) {
	paths := make([]string, 0)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".eml") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	sort.Strings(paths)
	return paths, nil
}

// ==================== MESSAGE PARSING ====================

// ParseFile reads one message file
func ParseFile(path string) (*models.Email, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	email, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return email, nil
}

// Parse converts a raw message into an email row. The parent link is left
// unset; it is resolved from InReplyTo after import.
func Parse(r io.Reader) (*models.Email, error) {
	env, err := enmime.ReadEnvelope(r)
	if err != nil {
		return nil, err
	}

	messageID := strings.TrimSpace(env.GetHeader("Message-Id"))
	if messageID == "" {
		return nil, ErrMissingMessageID
	}

	date, err := parseDate(env.GetHeader("Date"))
	if err != nil {
		return nil, err
	}

	body := env.Text
	if strings.TrimSpace(body) == "" && env.HTML != "" {
		body = StripHTML(env.HTML)
	}

	return &models.Email{
		MessageID: messageID,
		Subject:   strings.TrimSpace(env.GetHeader("Subject")),
		InReplyTo: firstMessageID(env.GetHeader("In-Reply-To")),
		SentFrom:  sender(env),
		Date:      date,
		Body:      body,
	}, nil
}

func parseDate(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, errors.New("message has no Date header")
	}
	date, err := mail.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad Date header %q: %w", value, err)
	}
	return date.UTC(), nil
}

// sender prefers the bare address over the display form
func sender(env *enmime.Envelope) string {
	addresses, err := env.AddressList("From")
	if err == nil && len(addresses) > 0 {
		return addresses[0].Address
	}
	return strings.TrimSpace(env.GetHeader("From"))
}

// firstMessageID returns the first <id> of an In-Reply-To header
func firstMessageID(value string) string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
