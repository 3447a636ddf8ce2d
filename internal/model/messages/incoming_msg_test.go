package messages

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/expense-tracker/internal/model/budget"
	"max.ks1230/expense-tracker/internal/model/expenses"
	"max.ks1230/expense-tracker/internal/model/messages/mock"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/storage"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type owner int64

func (o owner) OwnerID() int64 { return int64(o) }

var today = fixedClock{now: time.Date(2024, time.March, 22, 10, 0, 0, 0, time.UTC)}

func newTestHandler(requester reportRequester) *HandlerService {
	store := storage.NewInMemStorage()
	return NewHandler(
		expenses.NewService(store),
		budget.NewEngine(store, today),
		reports.NewGenerator(store, today),
		requester,
		today,
	)
}

func Test_OnStartCommand_ShouldAnswerWithIntroMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(helloMessage+"\n\n"+helpMessage, int64(123)).
		Return(nil)

	model := NewService(sender, newTestHandler(nil), owner(123))
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/start",
		UserID: 123,
	})

	assert.NoError(t, err)
}

func Test_OnUnknownCommand_ShouldAnswerWithHelpMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect("I don't understand you :(", int64(123)).
		Return(nil)

	model := NewService(sender, newTestHandler(nil), owner(0))
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/none",
		UserID: 123,
	})

	assert.NoError(t, err)
}

func Test_OnMessageFromStranger_ShouldRefuse(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(strangerMessage, int64(777)).
		Return(nil)

	model := NewService(sender, newTestHandler(nil), owner(123))
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/status",
		UserID: 777,
	})

	assert.NoError(t, err)
}

func Test_OnBudgetFlow_ShouldReportStatusAndGoal(t *testing.T) {
	ctx := context.Background()
	handler := newTestHandler(nil)

	steps := []struct {
		text string
		want string
	}{
		{"/category Food", "Category 'Food' added"},
		{"/category Food", "Category 'Food' already exists"},
		{"/expense Food 120 2024-03-05 weekly groceries", okMessage},
		{"/budget 2024-03 300", "Budget for 2024-03 set to 300.00"},
		{"/status", "Total expense: 120.00, Budget: 300.00, Remaining: 180.00"},
		{"/status 2024-03", "Total expense: 120.00, Budget: 300.00, Remaining: 180.00"},
		{"/status 2024-04", "Total expense: 0.00, Budget: 0.00, Remaining: 0.00"},
		{"/goal", "Daily spending goal: 20.00"},
		{"/goal 2024-02", "Daily spending goal: 0.00"},
		{"/report", "Food: 120.00\n\nTotal: 120.00"},
		{"/saving New bike 900", "Saving goal 'New bike' added"},
	}
	for _, step := range steps {
		resp, err := handler.HandleMessage(ctx, step.text, 123)
		require.NoError(t, err, step.text)
		assert.Equal(t, step.want, resp, step.text)
	}
}

func Test_OnExpenseDefaults_ShouldUseToday(t *testing.T) {
	ctx := context.Background()
	handler := newTestHandler(nil)

	_, err := handler.HandleMessage(ctx, "/category Fun", 1)
	require.NoError(t, err)
	resp, err := handler.HandleMessage(ctx, "/expense Fun 12,50", 1)
	require.NoError(t, err)
	assert.Equal(t, okMessage, resp)

	resp, err = handler.HandleMessage(ctx, "/report month", 1)
	require.NoError(t, err)
	assert.Equal(t, "Fun: 12.50\n\nTotal: 12.50", resp)
}

func Test_OnBadInput_ShouldAnswerWithHints(t *testing.T) {
	ctx := context.Background()
	handler := newTestHandler(nil)
	_, err := handler.HandleMessage(ctx, "/category Food", 1)
	require.NoError(t, err)

	cases := []struct {
		text string
		want string
	}{
		{"/category", incorrectUsageMessage},
		{"/expense Food", incorrectUsageMessage},
		{"/expense Food ten", incorrectAmountMessage},
		{"/expense Food -5", incorrectAmountMessage},
		{"/expense Food 5 05.03.2024", incorrectDateMessage},
		{"/expense Pets 5", "Sorry, category 'Pets' does not exist. Add it with /category first"},
		{"/budget March 300", incorrectMonthMessage},
		{"/budget 2024-03", incorrectUsageMessage},
		{"/status 2024-3", incorrectMonthMessage},
		{"/goal someday", incorrectMonthMessage},
		{"/saving 100", incorrectUsageMessage},
		{"/report decade", incorrectPeriodMessage},
		{"just chatting", loveToTalkMessage},
	}
	for _, tc := range cases {
		resp, err := handler.HandleMessage(ctx, tc.text, 1)
		require.NoError(t, err, tc.text)
		assert.Equal(t, tc.want, resp, tc.text)
	}
}

func Test_OnReportWithRequester_ShouldQueueRequest(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	requester := mock.NewReportRequesterMock(m)

	requester.RequestReportMock.
		Inspect(func(_ context.Context, userID int64, period string) {
			assert.Equal(m, int64(123), userID)
			assert.Equal(m, "week", period)
		}).
		Return(nil)

	handler := newTestHandler(requester)
	resp, err := handler.HandleMessage(ctx, "/report week", 123)
	require.NoError(t, err)
	assert.Equal(t, reportQueuedMessage, resp)

	resp, err = handler.HandleMessage(ctx, "/report decade", 123)
	require.NoError(t, err)
	assert.Equal(t, incorrectPeriodMessage, resp)
}

func Test_OnRequesterFailure_ShouldApologize(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	requester := mock.NewReportRequesterMock(m)

	requester.RequestReportMock.Return(errors.New("broker is down"))
	sender.SendMessageMock.
		Expect("Sorry, something wrong happened...\n"+cannotGetExpensesMessage, int64(123)).
		Return(nil)

	model := NewService(sender, newTestHandler(requester), owner(123))
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/report",
		UserID: 123,
	})

	assert.Error(t, err)
}
