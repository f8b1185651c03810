package payment_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/storekit/storefront-service/internal/config"
	"github.com/storekit/storefront-service/internal/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(t *testing.T, handler http.HandlerFunc) *payment.HTTPGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return payment.NewHTTPGateway(logger, config.Gateway{
		BaseURL: srv.URL,
		Timeout: 200 * time.Millisecond,
	})
}

func TestHTTPGateway_Verify(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    payment.Status
		wantErr bool
	}{
		{
			name: "success status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/verify/ord-1", r.URL.Path)
				fmt.Fprint(w, `{"data":{"status":"success"}}`)
			},
			want: payment.StatusSuccess,
		},
		{
			name: "pending status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"data":{"status":"pending"}}`)
			},
			want: payment.StatusPending,
		},
		{
			name: "unknown provider status passes through",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"data":{"status":"cancelled"}}`)
			},
			want: payment.Status("cancelled"),
		},
		{
			name: "http error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantErr: true,
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `not json`)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGateway(t, tt.handler)

			got, err := g.Verify(context.Background(), "ord-1")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTTPGateway_Timeout(t *testing.T) {
	g := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	})

	_, err := g.Verify(context.Background(), "ord-1")
	assert.Error(t, err)
}

func TestHTTPGateway_BreakerOpensAfterFailures(t *testing.T) {
	g := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	for range 5 {
		_, err := g.Verify(context.Background(), "ord-1")
		require.Error(t, err)
	}

	// breaker is open now, calls fail fast without hitting the server
	_, err := g.Verify(context.Background(), "ord-1")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}
