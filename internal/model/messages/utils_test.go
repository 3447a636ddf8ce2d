package messages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnParseCommand_ShouldSplitAtFirstWhitespace(t *testing.T) {
	cases := []struct {
		text string
		cmd  string
		arg  string
	}{
		{"/start", "/start", ""},
		{"  /status 2024-03  ", "/status", "2024-03"},
		{"/category\nFood", "/category", "Food"},
		{"/expense\tFood 12 2024-03-05", "/expense", "Food 12 2024-03-05"},
		{"just chatting", "", "just chatting"},
		{"hello", "", "hello"},
		{"", "", ""},
	}
	for _, tc := range cases {
		cmd, arg := parseCommand(tc.text)
		assert.Equal(t, tc.cmd, cmd, tc.text)
		assert.Equal(t, tc.arg, arg, tc.text)
	}
}

func Test_OnCommandAfterNewline_ShouldBeHandled(t *testing.T) {
	ctx := context.Background()
	handler := newTestHandler(nil)

	resp, err := handler.HandleMessage(ctx, "/category\nFood", 1)
	require.NoError(t, err)
	assert.Equal(t, "Category 'Food' added", resp)

	resp, err = handler.HandleMessage(ctx, "nice weather today", 1)
	require.NoError(t, err)
	assert.Equal(t, loveToTalkMessage, resp)
}
