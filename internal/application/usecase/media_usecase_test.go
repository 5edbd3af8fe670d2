package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaTypeOf(t *testing.T) {
	cases := []struct {
		mime string
		want string
	}{
		{"image/png", "image"},
		{"image/jpeg", "image"},
		{"video/mp4", "video"},
		{"application/pdf", "application"},
		{"", "other"},
		{"sinbarra", "other"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, mediaTypeOf(tc.mime), "mime %q", tc.mime)
	}
}
