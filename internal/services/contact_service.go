package services

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/google/uuid"
	"github.com/sevasetu/ngo-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrMessageNotFound       = errors.New("contact message not found")
	ErrInvalidMessageStatus  = errors.New("invalid contact message status")
	ErrMessageLooksLikeSpam  = errors.New("message was rejected by the content filter")
)

// spamWords is a short denylist for the public contact form. It only has to
// stop the obvious drive-by submissions; a human reads everything that gets
// through.
var spamWords = []string{
	"viagra", "casino", "lottery", "bitcoin doubler", "forex signals",
	"seo service", "backlinks", "escort",
}

type ContactService struct {
	db                  *gorm.DB
	spamWordRegexps     []*regexp.Regexp
	urlPattern          *regexp.Regexp
	repeatedCharPattern *regexp.Regexp
	compiled            bool
	mu                  sync.RWMutex
}

func NewContactService(db *gorm.DB) *ContactService {
	cs := &ContactService{db: db}
	cs.compilePatterns()
	return cs
}

func (cs *ContactService) compilePatterns() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if cs.compiled {
		return
	}

	cs.spamWordRegexps = make([]*regexp.Regexp, 0, len(spamWords))
	for _, word := range spamWords {
		pattern := `(?i)\b` + regexp.QuoteMeta(word) + `\b`
		re, err := regexp.Compile(pattern)
		if err == nil {
			cs.spamWordRegexps = append(cs.spamWordRegexps, re)
		}
	}

	cs.urlPattern = regexp.MustCompile(`(?i)(https?://\S+|www\.\S+\.\S+)`)
	cs.repeatedCharPattern = regexp.MustCompile(`(?i)([a-z!?.])\1{5,}`)
	cs.compiled = true
}

// FilterMessage screens a contact submission. Returns false with a reason
// code when the message should not be stored.
func (cs *ContactService) FilterMessage(text string) (bool, string) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	if text == "" {
		return false, "empty_message"
	}
	for _, re := range cs.spamWordRegexps {
		if re.MatchString(text) {
			return false, "spam_detected"
		}
	}
	// More than two links in a contact message is near-certain link spam.
	if len(cs.urlPattern.FindAllString(text, -1)) > 2 {
		return false, "too_many_links"
	}
	if cs.repeatedCharPattern.MatchString(text) {
		return false, "spam_detected"
	}
	return true, ""
}

// Submit stores a contact-form message after screening it.
func (cs *ContactService) Submit(msg *models.ContactMessage) error {
	if ok, reason := cs.FilterMessage(msg.Message); !ok {
		return fmt.Errorf("%w: %s", ErrMessageLooksLikeSpam, reason)
	}
	msg.ID = uuid.New()
	msg.Status = models.ContactNew
	if err := cs.db.Create(msg).Error; err != nil {
		return fmt.Errorf("failed to store contact message: %w", err)
	}
	return nil
}

// List returns messages newest first, optionally filtered by status.
func (cs *ContactService) List(status string) ([]models.ContactMessage, error) {
	query := cs.db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var messages []models.ContactMessage
	if err := query.Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch contact messages: %w", err)
	}
	return messages, nil
}

// SetStatus moves a message through new → read → responded.
func (cs *ContactService) SetStatus(id uuid.UUID, status string) (*models.ContactMessage, error) {
	switch status {
	case models.ContactNew, models.ContactRead, models.ContactResponded:
	default:
		return nil, ErrInvalidMessageStatus
	}

	var msg models.ContactMessage
	if err := cs.db.First(&msg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to fetch contact message: %w", err)
	}
	if err := cs.db.Model(&msg).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update contact message: %w", err)
	}
	msg.Status = status
	return &msg, nil
}
