package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aaravmahajanofficial/storefront-gateway/internal/config"
	"github.com/hellofresh/health-go/v5"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

type Endpoints struct {
	BackendBaseURL string
	HTTPClient     *http.Client
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{

			Name:    "storefront-gateway",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "redis",
				Timeout:   2 * time.Second,
				SkipOnErr: false,
				Check: healthRedis.New(
					healthRedis.Config{
						DSN: cfg.RedisConnect.GetDSN(),
					},
				),
			},
			health.Config{
				Name:      "backend",
				Timeout:   5 * time.Second,
				SkipOnErr: false,
				Check: func(ctx context.Context) error {
					if endpoints.HTTPClient == nil {
						return fmt.Errorf("backend client is not initialized")
					}
					req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoints.BackendBaseURL+"/api/categories", nil)
					if err != nil {
						return fmt.Errorf("failed to build backend probe: %w", err)
					}
					resp, err := endpoints.HTTPClient.Do(req)
					if err != nil {
						return fmt.Errorf("failed to connect to backend: %w", err)
					}
					defer resp.Body.Close()
					if resp.StatusCode >= http.StatusInternalServerError {
						return fmt.Errorf("backend returned status %d", resp.StatusCode)
					}
					return nil
				},
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
