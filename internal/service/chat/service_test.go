package chat

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short text untouched", in: "hello", max: 10, want: "hello"},
		{name: "long text cut with ellipsis", in: "hello world", max: 5, want: "hello..."},
		{name: "multi byte runes stay whole", in: "héllo wörld", max: 5, want: "héllo..."},
		{name: "emoji preview", in: "🙂🙂🙂🙂", max: 2, want: "🙂🙂..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}
