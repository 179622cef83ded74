package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Dependency é uma dependência verificada pelo healthcheck
type Dependency struct {
	Name  string
	Check func(ctx context.Context) error
}

func HealthcheckHandler(dependencies ...Dependency) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		checks := make(map[string]string, len(dependencies))
		for _, dependency := range dependencies {
			if err := dependency.Check(ctx); err != nil {
				logrus.WithError(err).WithField("dependency", dependency.Name).Warn("healthcheck: dependência indisponível")
				checks[dependency.Name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			checks[dependency.Name] = "ok"
		}

		response := map[string]any{
			"time":   time.Now().Format(time.RFC3339),
			"checks": checks,
		}

		if err := writeJSON(w, status, response); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
