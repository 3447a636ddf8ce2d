package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type addr string

func (a addr) Addr() string { return string(a) }

func freeAddr(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = lis.Close() }()
	return lis.Addr().String()
}

func Test_OnEmptyAddr_ShouldReturnImmediately(t *testing.T) {
	assert.NoError(t, Serve(context.Background(), addr("")))
}

func Test_OnServe_ShouldExposeMetricsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	listen := freeAddr(t)

	done := make(chan error, 1)
	go func() { done <- Serve(ctx, addr(listen)) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		var err error
		resp, err = http.Get("http://" + listen + "/metrics")
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "go_goroutines")

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
