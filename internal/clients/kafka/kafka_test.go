package kafka

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/expense-tracker/internal/clients/kafka/mock"
	"max.ks1230/expense-tracker/internal/entity/record"
	"max.ks1230/expense-tracker/internal/model/reports"
)

type fakeSession struct {
	sarama.ConsumerGroupSession
	ctx    context.Context
	marked []int64
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func claimOf(values ...[]byte) *fakeClaim {
	ch := make(chan *sarama.ConsumerMessage, len(values))
	for i, v := range values {
		ch <- &sarama.ConsumerMessage{Offset: int64(i), Value: v}
	}
	close(ch)
	return &fakeClaim{messages: ch}
}

func Test_OnRequestReport_ShouldProduceJSONRequest(t *testing.T) {
	sync := mocks.NewSyncProducer(t, nil)
	sync.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var req ReportRequest
		if err := json.Unmarshal(val, &req); err != nil {
			return err
		}
		if req.UserID != 123 || req.Period != "month" {
			return errors.Errorf("unexpected request %+v", req)
		}
		return nil
	})

	producer := newProducer(sync, "expense-reports")
	err := producer.RequestReport(context.Background(), 123, "month")
	assert.NoError(t, err)
	producer.Close()
}

func Test_OnBrokerFailure_ShouldReturnError(t *testing.T) {
	sync := mocks.NewSyncProducer(t, nil)
	sync.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	producer := newProducer(sync, "expense-reports")
	err := producer.RequestReport(context.Background(), 123, "")
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	producer.Close()
}

func Test_OnConsumeClaim_ShouldGenerateAndSendReports(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	generator := mock.NewReportGeneratorMock(m)
	sender := mock.NewReportSenderMock(m)

	report := reports.Report{
		Period:  "week",
		Records: []record.CategoryTotal{{Category: "Food", Amount: decimal.NewFromInt(12)}},
		Total:   decimal.NewFromInt(12),
	}
	generator.GenerateReportMock.
		Inspect(func(_ context.Context, period string) {
			assert.Equal(m, "week", period)
		}).
		Return(report, nil)
	sender.SendReportMock.
		Inspect(func(_ context.Context, userID int64, got reports.Report) {
			assert.Equal(m, int64(123), userID)
			assert.Equal(m, report, got)
		}).
		Return(nil)

	raw, err := encodeRequest(ReportRequest{UserID: 123, Period: "week"})
	require.NoError(t, err)

	consumer := &Consumer{generator: generator, sender: sender}
	session := &fakeSession{ctx: context.Background()}
	err = consumer.ConsumeClaim(session, claimOf([]byte("not json"), raw))
	assert.NoError(t, err)
	assert.Equal(t, []int64{0, 1}, session.marked, "malformed messages are skipped, not retried")
}

func Test_OnGenerateFailure_ShouldNotSend(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	generator := mock.NewReportGeneratorMock(m)
	sender := mock.NewReportSenderMock(m)

	generator.GenerateReportMock.Return(reports.Report{}, errors.New("database is locked"))

	raw, err := encodeRequest(ReportRequest{UserID: 123, Period: "year"})
	require.NoError(t, err)

	consumer := &Consumer{generator: generator, sender: sender}
	session := &fakeSession{ctx: context.Background()}
	assert.NoError(t, consumer.ConsumeClaim(session, claimOf(raw)))
	assert.Equal(t, []int64{0}, session.marked)
}
