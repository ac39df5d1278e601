package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConnectMongoRejectsBadURI(t *testing.T) {
	_, err := ConnectMongo(context.Background(), "not-a-mongo-uri", time.Second)
	require.Error(t, err)
	require.Contains(t, err.Error(), "mongo connect")
}

func TestConnectMongoWithRetryStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ConnectMongoWithRetry(ctx, "not-a-mongo-uri", time.Second, 3, time.Hour)
	require.ErrorIs(t, err, context.Canceled)
}

func TestConnectMongoWithRetryReportsAttempts(t *testing.T) {
	_, err := ConnectMongoWithRetry(context.Background(), "not-a-mongo-uri", time.Second, 2, time.Millisecond)
	require.Error(t, err)
	require.Contains(t, err.Error(), "after 2 attempts")
}
