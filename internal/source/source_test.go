package source

import (
	"context"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystemRead(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.csv"), []byte("A01 x;1;2\n"), 0o644))

	src := NewFilesystem(dir)
	assert.Equal(t, DriverFilesystem, src.Driver())

	b, err := src.Read(context.Background(), "index.csv")
	require.NoError(t, err)
	assert.Equal(t, "A01 x;1;2\n", string(b))

	_, err = src.Read(context.Background(), "missing.csv")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMemoryRead(t *testing.T) {
	src := NewMemory()
	data := []byte("abc")
	src.Put("k", data)
	data[0] = 'z'

	b, err := src.Read(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(b))

	_, err = src.Read(context.Background(), "nope")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.Read(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: "ftp"})
	assert.Error(t, err)

	_, err = Open(context.Background(), Config{Driver: DriverS3})
	assert.Error(t, err)
}

func TestS3Read(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/exports/index.csv" {
			_, _ = w.Write([]byte("A01 x;1;2\n"))
			return
		}
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>missing</Message></Error>`))
	}))
	defer srv.Close()

	client := s3.New(s3.Options{
		Region:       "us-east-1",
		BaseEndpoint: aws.String(srv.URL),
		UsePathStyle: true,
		Credentials:  credentials.NewStaticCredentialsProvider("id", "secret", ""),
	})
	src := NewS3WithClient(client, "exports")
	assert.Equal(t, DriverS3, src.Driver())

	b, err := src.Read(context.Background(), "index.csv")
	require.NoError(t, err)
	assert.Equal(t, "A01 x;1;2\n", string(b))

	_, err = src.Read(context.Background(), "other.csv")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
