package storage

import (
	"alcyxob/football-training/internal/config"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsObjectKey(t *testing.T) {
	cases := []struct {
		ref  string
		want bool
	}{
		{"", false},
		{"https://images.unsplash.com/photo-1", false},
		{"HTTP://example.test/a.jpg", false},
		{"sessions/1.jpg", true},
		{"a.png", true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsObjectKey(c.ref), c.ref)
	}
}

func TestEndpointURL(t *testing.T) {
	assert.Equal(t, "http://minio:9000", endpointURL("minio:9000", false))
	assert.Equal(t, "https://minio:9000", endpointURL("minio:9000", true))
	assert.Equal(t, "http://minio:9000", endpointURL("http://minio:9000", true))
}

func TestS3Storage_PresignedDownloadURL(t *testing.T) {
	fs, err := NewS3Storage(config.S3Config{
		Endpoint:        "localhost:9000",
		Region:          "us-east-1",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio-secret",
		BucketName:      "media",
		UseSSL:          false,
	})
	require.NoError(t, err)

	url, err := fs.GeneratePresignedDownloadURL(context.Background(), "sessions/1.jpg", 0)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:9000/media/sessions/1.jpg?"), url)
	assert.Contains(t, url, "X-Amz-Expires=900")
	assert.Contains(t, url, "X-Amz-Signature=")

	url, err = fs.GeneratePresignedDownloadURL(context.Background(), "sessions/1.jpg", time.Hour)
	require.NoError(t, err)
	assert.Contains(t, url, "X-Amz-Expires=3600")
}
