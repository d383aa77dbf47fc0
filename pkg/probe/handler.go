package probe

import (
	"context"
	"net/http"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const checkTimeout = 2 * time.Second

// Check проверка зависимости для /ready.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

type Info struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type readyResponse struct {
	Info
	Failed map[string]string `json:"failed,omitempty"`
}

// NewHandler отдаёт /healthz (процесс жив) и /ready (все Check прошли).
func NewHandler(info Info, checks ...Check) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		write(w, http.StatusOK, info)
	})

	mux.HandleFunc("GET /ready", func(w http.ResponseWriter, r *http.Request) {
		failed := runChecks(r.Context(), checks)
		if len(failed) > 0 {
			write(w, http.StatusServiceUnavailable, readyResponse{Info: info, Failed: failed})

			return
		}

		write(w, http.StatusOK, readyResponse{Info: info})
	})

	return mux
}

func runChecks(ctx context.Context, checks []Check) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		failed = make(map[string]string)
	)

	for _, check := range checks {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if err := check.Ping(ctx); err != nil {
				mu.Lock()
				failed[check.Name] = err.Error()
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	return failed
}

func write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
