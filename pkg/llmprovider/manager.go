package llmprovider

import (
	"context"
	"fmt"
	"time"

	"voice-todo-api/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager.
type Config struct {
	FallbackEnabled bool          // try the next provider when one is exhausted
	RetryAttempts   int           // attempts per provider (min 1)
	RetryBaseDelay  time.Duration // first backoff delay
	RetryMaxDelay   time.Duration // backoff cap
}

// NewManager creates a new Provider Manager with the given providers, config, and logger.
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config.RetryAttempts < 1 {
		config.RetryAttempts = 1
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// GenerateContent iterates through providers in priority order with fallback logic.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var lastErr error

	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry retries a single provider with exponential backoff.
// Total attempts are bounded by RetryAttempts; the delay before attempt n is
// RetryBaseDelay * 2^(n-1), capped at RetryMaxDelay.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(m.backoffDelay(attempt)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			return resp, nil
		}

		lastErr = err
	}

	return nil, lastErr
}

// backoffDelay returns the delay to wait before the given retry attempt (1-based).
func (m *Manager) backoffDelay(attempt int) time.Duration {
	delay := m.config.RetryBaseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if m.config.RetryMaxDelay > 0 && delay >= m.config.RetryMaxDelay {
			return m.config.RetryMaxDelay
		}
	}
	if m.config.RetryMaxDelay > 0 && delay > m.config.RetryMaxDelay {
		delay = m.config.RetryMaxDelay
	}
	return delay
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	if m.logger == nil {
		return
	}
	m.logger.Infof(ctx, "llmprovider: generation ok provider=%s model=%s", provider.Name(), provider.Model())
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	if m.logger == nil {
		return
	}
	m.logger.Warnf(ctx, "llmprovider: generation failed provider=%s model=%s: %v", provider.Name(), provider.Model(), err)
}
