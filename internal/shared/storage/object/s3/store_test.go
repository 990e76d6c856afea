package s3

import "testing"

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "3f9a/priya_cv.pdf", want: "3f9a/priya_cv.pdf"},
		{name: "screening prefix", prefix: "screening", key: "3f9a/priya_cv.pdf", want: "screening/3f9a/priya_cv.pdf"},
		{name: "prefix slashes", prefix: "/screening/uploads/", key: "/3f9a/priya_cv.pdf", want: "screening/uploads/3f9a/priya_cv.pdf"},
		{name: "empty key", prefix: "screening", key: "", want: "screening"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}
