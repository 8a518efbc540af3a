package cache

import (
	"net/http"
	"testing"
	"time"

	"github.com/tobfell/respond/pkg/respond"
	"github.com/tobfell/respond/pkg/status"
)

func TestFromResponse(t *testing.T) {
	tests := []struct {
		name    string
		resp    *respond.Response
		wantErr bool
		wantMin time.Duration
		wantMax time.Duration
	}{
		{
			name: "max-age wins",
			resp: &respond.Response{
				Status: status.OK,
				Headers: map[string]string{
					"max-age": "3600",
					"Expires": time.Now().Add(10 * time.Minute).Format(http.TimeFormat),
				},
			},
			wantMin: 59 * time.Minute,
			wantMax: 61 * time.Minute,
		},
		{
			name: "expires fallback",
			resp: &respond.Response{
				Status: status.OK,
				Headers: map[string]string{
					"Expires": time.Now().Add(30 * time.Minute).Format(http.TimeFormat),
				},
			},
			wantMin: 29 * time.Minute,
			wantMax: 31 * time.Minute,
		},
		{
			name: "no cache headers uses default",
			resp: &respond.Response{
				Status:  status.OK,
				Headers: map[string]string{"Content-Type": "text/html"},
			},
			wantMin: DefaultTTL - time.Minute,
			wantMax: DefaultTTL + time.Minute,
		},
		{
			name: "no-store is immediately stale",
			resp: &respond.Response{
				Status: status.OK,
				Headers: map[string]string{
					"Cache-Control": "no-store, no-cache, must-revalidate, post-check=0, pre-check=0",
					"Expires":       "Mon, 26 Jul 1997 05:00:00 GMT",
				},
			},
			wantMin: 0,
			wantMax: time.Second,
		},
		{
			name: "past expires is immediately stale",
			resp: &respond.Response{
				Status: status.OK,
				Headers: map[string]string{
					"Expires": "Mon, 26 Jul 1997 05:00:00 GMT",
				},
			},
			wantMin: 0,
			wantMax: time.Second,
		},
		{
			name:    "nil response",
			resp:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := FromResponse(tt.resp)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if entry.StatusCode != tt.resp.Status.Int() {
				t.Errorf("StatusCode = %d, want %d", entry.StatusCode, tt.resp.Status.Int())
			}

			ttl := entry.TTL()
			if ttl < tt.wantMin || ttl > tt.wantMax {
				t.Errorf("TTL() = %v, want between %v and %v", ttl, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestFromResponse_BuiltResponse(t *testing.T) {
	resp := respond.New().
		WithCache("+1 day").
		WithBody("<h1>hi</h1>").
		Build()

	entry, err := FromResponse(resp)
	if err != nil {
		t.Fatalf("FromResponse() error = %v", err)
	}

	wantMin := 24*time.Hour - time.Minute
	wantMax := 24*time.Hour + time.Minute
	if ttl := entry.TTL(); ttl < wantMin || ttl > wantMax {
		t.Errorf("TTL() = %v, want about one day", ttl)
	}

	if entry.LastModified.IsZero() {
		t.Error("LastModified should be parsed from the builder's header")
	}
}

func TestEntry_IsExpired(t *testing.T) {
	tests := []struct {
		name    string
		expires time.Time
		want    bool
	}{
		{
			name:    "expired entry",
			expires: time.Now().Add(-1 * time.Hour),
			want:    true,
		},
		{
			name:    "valid entry",
			expires: time.Now().Add(1 * time.Hour),
			want:    false,
		},
		{
			name:    "just expired",
			expires: time.Now().Add(-1 * time.Second),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &Entry{
				Expires: tt.expires,
			}
			if got := entry.IsExpired(); got != tt.want {
				t.Errorf("IsExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEntry_ToResponse(t *testing.T) {
	original := respond.New().
		WithStatus(status.Created).
		WithHeader("X-Page", "welcome").
		WithBody("body").
		Build()

	entry, err := FromResponse(original)
	if err != nil {
		t.Fatalf("FromResponse() error = %v", err)
	}

	restored := entry.ToResponse()
	if restored.Status != original.Status {
		t.Errorf("Status = %v, want %v", restored.Status, original.Status)
	}
	if restored.Body != original.Body {
		t.Errorf("Body = %q, want %q", restored.Body, original.Body)
	}
	if restored.Headers["X-Page"] != "welcome" {
		t.Errorf("Headers[X-Page] = %q, want %q", restored.Headers["X-Page"], "welcome")
	}

	// The restored headers are a copy, not a live reference
	restored.Headers["X-Page"] = "mutated"
	if entry.Headers["X-Page"] != "welcome" {
		t.Error("mutating a restored response must not touch the entry")
	}
}
