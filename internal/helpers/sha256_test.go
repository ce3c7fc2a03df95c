package helpers

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	emptyDigest      = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	helloWorldDigest = "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
)

type errorReader struct{}

func (r *errorReader) Read(p []byte) (int, error) {
	return 0, errors.New("forced read error")
}

func TestSHA256(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty string", in: "", want: emptyDigest},
		{name: "basic string", in: "hello world", want: helloWorldDigest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SHA256(tt.in))
			require.Equal(t, tt.want, SHA256Bytes([]byte(tt.in)))
		})
	}
}

func TestSHA256Reader(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   io.Reader
		want    string
		wantErr bool
	}{
		{name: "empty string reader", input: strings.NewReader(""), want: emptyDigest},
		{name: "basic string input", input: strings.NewReader("hello world"), want: helloWorldDigest},
		{name: "error case", input: &errorReader{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SHA256Reader(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestShortID(t *testing.T) {
	t.Parallel()

	require.Equal(t, helloWorldDigest[:8], ShortID("hello world", 8))
	require.Equal(t, helloWorldDigest, ShortID("hello world", 0))
	require.Equal(t, helloWorldDigest, ShortID("hello world", 1000))
}
