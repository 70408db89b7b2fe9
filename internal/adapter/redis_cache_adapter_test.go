package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"autoquiz/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

const (
	quizKey  = "autoquiz:quiz:generated:5d41402abc4b2a76"
	quizJSON = `[{"question":"What is 2+2?","options":["3","4","5","6"],"answer":"4"}]`
)

var errRedisDown = errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")

func TestRedisCacheAdapter_Get(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock redismock.ClientMock)
		want    string
		wantErr error
	}{
		{
			name:  "hit",
			setup: func(mock redismock.ClientMock) { mock.ExpectGet(quizKey).SetVal(quizJSON) },
			want:  quizJSON,
		},
		{
			name:    "miss becomes ErrCacheMiss",
			setup:   func(mock redismock.ClientMock) { mock.ExpectGet(quizKey).SetErr(redis.Nil) },
			wantErr: domain.ErrCacheMiss,
		},
		{
			name:    "connection error is passed through",
			setup:   func(mock redismock.ClientMock) { mock.ExpectGet(quizKey).SetErr(errRedisDown) },
			wantErr: errRedisDown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			cache := NewRedisCacheAdapter(client)
			tt.setup(mock)

			got, err := cache.Get(context.Background(), quizKey)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisCacheAdapter_Set(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(client)
	ctx := context.Background()
	ttl := 24 * time.Hour

	mock.ExpectSet(quizKey, quizJSON, ttl).SetVal("OK")
	assert.NoError(t, cache.Set(ctx, quizKey, quizJSON, ttl))

	mock.ExpectSet(quizKey, quizJSON, ttl).SetErr(errRedisDown)
	assert.ErrorIs(t, cache.Set(ctx, quizKey, quizJSON, ttl), errRedisDown)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Delete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(client)
	ctx := context.Background()

	mock.ExpectDel(quizKey).SetVal(1)
	assert.NoError(t, cache.Delete(ctx, quizKey))

	// Deleting an absent key is not an error.
	mock.ExpectDel(quizKey).SetVal(0)
	assert.NoError(t, cache.Delete(ctx, quizKey))

	mock.ExpectDel(quizKey).SetErr(errRedisDown)
	assert.ErrorIs(t, cache.Delete(ctx, quizKey), errRedisDown)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Ping(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(client)

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, cache.Ping(context.Background()))

	mock.ExpectPing().SetErr(errRedisDown)
	assert.ErrorIs(t, cache.Ping(context.Background()), errRedisDown)

	assert.NoError(t, mock.ExpectationsWereMet())
}
