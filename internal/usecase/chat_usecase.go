package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-live/internal/domain"
	"github.com/DRSN-tech/catalog-live/pkg/e"
	"github.com/DRSN-tech/catalog-live/pkg/logger"
)

// ChatUseCase implements the conversation store: append and list, no update
// or delete. Any store failure aborts the operation outright.
type ChatUseCase struct {
	messageRepo MessageRepository
	logger      logger.Logger
}

func NewChatUC(messageRepo MessageRepository, logger logger.Logger) *ChatUseCase {
	return &ChatUseCase{
		messageRepo: messageRepo,
		logger:      logger,
	}
}

func (c *ChatUseCase) ListMessages(ctx context.Context) ([]domain.Message, error) {
	const op = "ChatUseCase.ListMessages"

	messages, err := c.messageRepo.ListAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return messages, nil
}

func (c *ChatUseCase) CreateMessage(ctx context.Context, req *SaveMessageReq) (*domain.Message, error) {
	const op = "ChatUseCase.CreateMessage"

	created, err := c.messageRepo.Create(ctx, req.ToDomain())
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return created, nil
}
