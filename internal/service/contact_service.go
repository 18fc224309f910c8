package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/johndn/portfolio/internal/api/dto/common"
	"github.com/johndn/portfolio/internal/api/dto/v1/contact"
	"github.com/johndn/portfolio/internal/api/mapper"
	"github.com/johndn/portfolio/internal/api/validation"
	"github.com/johndn/portfolio/internal/logging"
	"github.com/johndn/portfolio/internal/models"
	"github.com/johndn/portfolio/internal/repository"
	"github.com/johndn/portfolio/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	// DefaultListLimit caps how many messages List returns
	DefaultListLimit = 50

	ContactSuccessMessage     = "Message sent successfully! I'll get back to you soon."
	ContactFailureMessage     = "Failed to send message. Please try again later."
	ContactListFailureMessage = "Failed to fetch messages"

	// notifyWarnInterval limits how often notification failures are logged
	notifyWarnInterval = time.Minute
	// notifyTimeout bounds a single background notification, retries included
	notifyTimeout = 45 * time.Second
)

type notifyFailure struct {
	id  uuid.UUID
	err error
}

// ContactService validates, stores and lists contact form submissions
type ContactService struct {
	repo     repository.ContactRepository
	notifier Notifier
	validate *validator.Validate
	now      func() time.Time
	warn     *utils.Throttled[notifyFailure]
	pending  sync.WaitGroup
}

// NewContactService creates a ContactService backed by the given repository.
// notifier may be nil.
func NewContactService(repo repository.ContactRepository, notifier Notifier) *ContactService {
	return &ContactService{
		repo:     repo,
		notifier: notifier,
		validate: validation.NewValidator(),
		now:      time.Now,
		warn: utils.Throttle(func(f notifyFailure) {
			logging.GetGlobalLogger().Warn("Contact message %s stored but notification failed: %v", f.id, f.err)
		}, notifyWarnInterval),
	}
}

// Validate checks a submission and returns a *ValidationError naming every
// failing field, or nil.
func (s *ContactService) Validate(req *contact.ContactRequest) error {
	if err := s.validate.Struct(req); err != nil {
		if details := validation.FormatValidationError(err); details != nil {
			return &ValidationError{Fields: details}
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// Submit validates req and persists it as a new unread message.
//
// Invalid input returns a *ValidationError and nothing is stored. Storage
// faults are logged and reported as ErrOperationFailed without their detail.
// The notifier runs after Submit returns and cannot change its outcome.
func (s *ContactService) Submit(ctx context.Context, req *contact.ContactRequest) (*models.ContactMessage, error) {
	if err := s.Validate(req); err != nil {
		return nil, err
	}

	msg := mapper.ContactRequestToMessage(req, uuid.New(), s.now().UTC())

	if err := s.repo.Create(ctx, msg); err != nil {
		logging.GetGlobalLogger().Error("Failed to store contact message from %s: %v", msg.Email, err)
		return nil, ErrOperationFailed
	}

	logging.GetGlobalLogger().Info("Stored contact message %s", msg.ID)

	if s.notifier != nil {
		s.notify(ctx, msg)
	}

	return msg, nil
}

// notify hands msg to the notifier in the background. The request context
// only contributes its values; the send outlives the response.
func (s *ContactService) notify(ctx context.Context, msg *models.ContactMessage) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()

		if err := s.notifier.NotifyContactMessage(notifyCtx, msg); err != nil {
			s.warn.Call(notifyFailure{id: msg.ID, err: err})
		}
	}()
}

// Wait blocks until background notifications have finished
func (s *ContactService) Wait() {
	s.pending.Wait()
}

// List returns up to limit messages, newest first.
// A limit outside 1..DefaultListLimit becomes DefaultListLimit.
func (s *ContactService) List(ctx context.Context, limit int) ([]*models.ContactMessage, error) {
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}

	messages, err := s.repo.List(ctx, limit)
	if err != nil {
		logging.GetGlobalLogger().Error("Failed to list contact messages: %v", err)
		return nil, ErrOperationFailed
	}
	return messages, nil
}

// CountUnread returns how many stored messages are still unread
func (s *ContactService) CountUnread(ctx context.Context) (int, error) {
	count, err := s.repo.CountByStatus(ctx, models.ContactStatusUnread)
	if err != nil {
		logging.GetGlobalLogger().Error("Failed to count unread contact messages: %v", err)
		return 0, ErrOperationFailed
	}
	return count, nil
}

// DecodeContactRequest parses a JSON submission body. Type mismatches are
// reported as validation errors on the offending field.
func DecodeContactRequest(body []byte) (*contact.ContactRequest, error) {
	var req contact.ContactRequest
	if err := json.Unmarshal(body, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, &ValidationError{Fields: common.FieldErrors{
				typeErr.Field: {"Expected " + typeErr.Type.String() + ", received " + typeErr.Value},
			}}
		}
		return nil, &ValidationError{Fields: common.FieldErrors{
			"body": {"Request body must be a JSON object"},
		}}
	}
	return &req, nil
}
