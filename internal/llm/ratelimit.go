package llm

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// rateLimitedClient waits for a token before every request.
type rateLimitedClient struct {
	Client
	limiter *rate.Limiter
}

// withRateLimit wraps client with a token bucket of requestsPerMinute.
func withRateLimit(client Client, requestsPerMinute int) Client {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}

	every := time.Minute / time.Duration(requestsPerMinute)
	return &rateLimitedClient{
		Client:  client,
		limiter: rate.NewLimiter(rate.Every(every), requestsPerMinute),
	}
}

func (c *rateLimitedClient) Chat(ctx context.Context, history []Turn) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter canceled: %w", err)
	}
	return c.Client.Chat(ctx, history)
}
