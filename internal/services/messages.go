package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/samba/internal/common"
	"github.com/dmitrijs2005/samba/internal/dbx"
	"github.com/dmitrijs2005/samba/internal/models"
	"github.com/dmitrijs2005/samba/internal/repositories/repomanager"
)

// ErrRecipientNotFound distinguishes an unknown recipient from an unknown
// sender, which surfaces as common.ErrorNotFound.
var ErrRecipientNotFound = errors.New("recipient does not exist")

// textInput carries the validation rules for message bodies.
type textInput struct {
	Text string `validate:"max=255"`
}

// InboxItem is one received message with the sender name resolved.
type InboxItem struct {
	From string
	Date time.Time
	Text string
}

// MessageService implements sending messages and reading a user's inbox.
type MessageService struct {
	db       dbx.DBTX
	repos    repomanager.RepositoryManager
	validate *validator.Validate
}

func NewMessageService(db dbx.DBTX, repos repomanager.RepositoryManager) *MessageService {
	return &MessageService{
		db:       db,
		repos:    repos,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Send authenticates the sender, resolves the recipient and stores a new
// message. Text longer than MaxMessageLength is rejected before any store
// access.
func (s *MessageService) Send(ctx context.Context, fromUsername, password, toUsername, text string) (*models.Message, error) {
	if err := s.validate.Struct(textInput{Text: text}); err != nil {
		return nil, fmt.Errorf("%w: message too long, max %d characters",
			common.ErrorValidation, MaxMessageLength)
	}

	userRepo := s.repos.Users(s.db)

	sender, err := authenticateUser(ctx, userRepo, fromUsername, password)
	if err != nil {
		return nil, err
	}

	recipient, err := userRepo.GetByUsername(ctx, toUsername)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrRecipientNotFound
		}
		return nil, err
	}

	msg := models.NewMessage(sender.ID, recipient.ID, text)
	if err := s.repos.Messages(s.db).Save(ctx, msg); err != nil {
		return nil, err
	}

	return msg, nil
}

// Inbox authenticates the user and returns the messages addressed to them,
// with sender usernames resolved through the users repository. Filtering by
// recipient happens here; the message repository has no per-participant
// lookup.
func (s *MessageService) Inbox(ctx context.Context, username, password string) ([]InboxItem, error) {
	userRepo := s.repos.Users(s.db)

	user, err := authenticateUser(ctx, userRepo, username, password)
	if err != nil {
		return nil, err
	}

	msgs, err := s.repos.Messages(s.db).GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var items []InboxItem
	for _, m := range msgs {
		if m.ToID != user.ID {
			continue
		}

		sender, err := userRepo.GetByID(ctx, m.FromID)
		if err != nil {
			return nil, err
		}

		items = append(items, InboxItem{
			From: sender.Username,
			Date: m.CreationDate,
			Text: m.Text,
		})
	}

	return items, nil
}
