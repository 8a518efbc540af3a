package cache

import (
	"net/url"
	"testing"
)

func TestKey_String(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		want string
	}{
		{
			name: "route only",
			key:  Key{Route: "/pages/welcome"},
			want: "resp:pages/welcome",
		},
		{
			name: "empty route",
			key:  Key{},
			want: "resp",
		},
		{
			name: "route with query",
			key: Key{
				Route: "/pages/welcome",
				Query: url.Values{"lang": []string{"en"}},
			},
			want: "resp:pages/welcome:lang=en",
		},
		{
			name: "query params sorted",
			key: Key{
				Route: "/pages/docs",
				Query: url.Values{
					"section": []string{"api"},
					"lang":    []string{"de"},
				},
			},
			want: "resp:pages/docs:lang=de:section=api",
		},
		{
			name: "trailing slash normalized",
			key:  Key{Route: "/pages/welcome/"},
			want: "resp:pages/welcome",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKey_String_Deterministic(t *testing.T) {
	key := Key{
		Route: "/pages/docs",
		Query: url.Values{
			"c": []string{"3"},
			"a": []string{"1"},
			"b": []string{"2"},
		},
	}

	first := key.String()
	for i := 0; i < 10; i++ {
		if got := key.String(); got != first {
			t.Fatalf("String() not deterministic: %q vs %q", got, first)
		}
	}
}
