package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromDriverUnknown(t *testing.T) {
	_, err := NewFromDriver(context.Background(), "ftp", FactoryOptions{})
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestNewFromDriverMinIO(t *testing.T) {
	st, err := NewFromDriver(context.Background(), "MinIO", FactoryOptions{
		MinIO: MinIOOptions{
			Endpoint:  "localhost:9000",
			AccessKey: "minio",
			SecretKey: "minio123",
			Bucket:    "media",
		},
	})
	require.NoError(t, err)

	adapter, ok := st.(*MinIOAdapter)
	require.True(t, ok)
	assert.Equal(t, "media", adapter.bucket)
	assert.Equal(t, "http://localhost:9000/media", adapter.baseURL)
	assert.NoError(t, adapter.Close())
}

func TestMinIOPublicURL(t *testing.T) {
	adapter, err := NewMinIO(MinIOOptions{
		Endpoint: "media.example.com",
		UseSSL:   true,
		Bucket:   "assets",
		BaseURL:  "https://cdn.example.com/",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com", adapter.baseURL)
}
