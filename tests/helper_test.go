package tests_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"campustix/service"
	"campustix/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/lithammer/shortuuid/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serverAddr = "localhost:8089"

func getEnvOrDefault(key string, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// setupRedis needs a running Redis, e.g. `docker run -p 6379:6379 redis:7`.
func setupRedis(t *testing.T) *redis.Client {
	t.Helper()

	rdb := redis.NewClient(&redis.Options{
		Addr: getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
	})
	t.Cleanup(func() {
		_ = rdb.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Skipf("redis not available: %s", err)
	}

	return rdb
}

func startService(t *testing.T, rdb *redis.Client, textAdvisor *MockTextAdvisor) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	svc, err := service.New(
		service.Config{
			HTTPAddr:        serverAddr,
			ShutdownTimeout: time.Second,
		},
		watermill.NopLogger{},
		rdb,
		store.NewSeededMemory(time.Now()),
		textAdvisor,
	)
	require.NoError(t, err)

	go func() {
		assert.NoError(t, svc.Run(ctx))
	}()

	waitForHttpServer(t)
}

func waitForHttpServer(t *testing.T) {
	t.Helper()

	require.EventuallyWithT(
		t,
		func(t *assert.CollectT) {
			resp, err := http.Get("http://" + serverAddr + "/health")
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()

			if assert.Less(t, resp.StatusCode, 300, "API not ready, http status: %d", resp.StatusCode) {
				return
			}
		},
		time.Second*10,
		time.Millisecond*50,
	)
}

func sendJSON(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(method, "http://"+serverAddr+path, bytes.NewBuffer(payload))
	require.NoError(t, err)

	req.Header.Set("Correlation-ID", shortuuid.New())
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = resp.Body.Close()
	})

	return resp
}

type marketInsights struct {
	AnalysesCompleted     int    `json:"analyses_completed"`
	LastFairPriceEstimate string `json:"last_fair_price_estimate"`
	TicketsSold           int    `json:"tickets_sold"`
}

func getInsights(t assert.TestingT, eventID string) (marketInsights, bool) {
	var insights marketInsights

	resp, err := http.Get("http://" + serverAddr + "/events/" + eventID + "/insights")
	if !assert.NoError(t, err) {
		return insights, false
	}
	defer resp.Body.Close()

	if !assert.Equal(t, http.StatusOK, resp.StatusCode) {
		return insights, false
	}

	return insights, assert.NoError(t, json.NewDecoder(resp.Body).Decode(&insights))
}
