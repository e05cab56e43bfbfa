package notifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/DarkestAbed/fridai-backend/internal/domain/notifications"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/logger"

	"github.com/containrrr/shoutrrr"
	"github.com/containrrr/shoutrrr/pkg/types"
)

type shoutrrrNotifier struct {
	logger logger.Logger
}

// NewShoutrrrNotifier creates a Notifier that delivers messages through
// shoutrrr service URLs (discord://, telegram://, smtp:// and so on).
func NewShoutrrrNotifier(logger logger.Logger) (notifications.Notifier, error) {
	return &shoutrrrNotifier{
		logger: logger,
	}, nil
}

func (n *shoutrrrNotifier) Send(ctx context.Context, destinations []string, title, body string) ([]string, error) {
	if len(destinations) == 0 {
		return nil, nil
	}

	var reached []string
	var sendErrs []error

	for _, destination := range destinations {
		sender, err := shoutrrr.CreateSender(destination)
		if err != nil {
			sendErrs = append(sendErrs, fmt.Errorf("invalid destination %q: %w", destination, err))
			continue
		}

		params := types.Params{"title": title}
		failed := false
		for _, err := range sender.Send(body, &params) {
			if err != nil {
				failed = true
				sendErrs = append(sendErrs, fmt.Errorf("failed to notify %q: %w", destination, err))
			}
		}
		if failed {
			continue
		}

		reached = append(reached, destination)
		n.logger.Info("Delivered notification to ", destination)
	}

	return reached, errors.Join(sendErrs...)
}
