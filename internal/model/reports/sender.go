package reports

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/logger"
)

type messageSender interface {
	SendMessage(text string, userID int64) error
}

// Sender delivers formatted reports to a chat.
type Sender struct {
	client messageSender
}

func NewSender(client messageSender) *Sender {
	return &Sender{client: client}
}

func (s *Sender) SendReport(ctx context.Context, userID int64, report Report) error {
	span, _ := opentracing.StartSpanFromContext(ctx, "sendReport")
	defer span.Finish()

	logger.Info("SendReport - start", zap.Int64("userID", userID), zap.String("period", report.Period))
	defer logger.Info("SendReport - end")

	if err := s.client.SendMessage(FormatReport(report), userID); err != nil {
		return errors.Wrap(err, "send report")
	}
	return nil
}
