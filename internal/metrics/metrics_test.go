package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorderValues(t *testing.T) {
	r := NewRecorder("")

	r.SetWeek(3)
	r.SetGamesFetched(28)
	r.SetGamesPosted(16)
	r.SetRequestsRemaining(471)
	r.Finished(1500 * time.Millisecond)
	r.Succeeded(time.Unix(1726000000, 0))
	r.Failed("fetch")
	r.Failed("fetch")

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"week", testutil.ToFloat64(r.week), 3},
		{"fetched", testutil.ToFloat64(r.gamesFetched), 28},
		{"posted", testutil.ToFloat64(r.gamesPosted), 16},
		{"remaining", testutil.ToFloat64(r.requestsRemaining), 471},
		{"duration", testutil.ToFloat64(r.runDuration), 1.5},
		{"last success", testutil.ToFloat64(r.lastSuccess), 1726000000},
		{"fetch failures", testutil.ToFloat64(r.failures.WithLabelValues("fetch")), 2},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestPushDisabled(t *testing.T) {
	if err := NewRecorder("").Push(context.Background()); err != nil {
		t.Errorf("Push without gateway = %v, want nil", err)
	}
}

func TestPush(t *testing.T) {
	var method, path, body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r := NewRecorder(srv.URL)
	r.SetWeek(5)

	if err := r.Push(context.Background()); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if method != http.MethodPut {
		t.Errorf("method = %s, want PUT", method)
	}
	if path != "/metrics/job/"+JobName {
		t.Errorf("path = %s", path)
	}
	if body == "" {
		t.Error("expected a metrics payload")
	}
}

func TestPushGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewRecorder(srv.URL).Push(context.Background())
	if err == nil || !strings.Contains(err.Error(), "pushing metrics") {
		t.Errorf("Push = %v, want wrapped error", err)
	}
}
