package media

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SURA-RentalService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockStorage struct {
	uploadErr error

	gotToken       string
	gotBucket      string
	gotFilename    string
	gotContentType string
	gotData        []byte
}

func (m *mockStorage) UploadFile(ctx context.Context, token, bucket, filename, contentType string, data []byte) (string, error) {
	m.gotToken = token
	m.gotBucket = bucket
	m.gotFilename = filename
	m.gotContentType = contentType
	m.gotData = data
	if m.uploadErr != nil {
		return "", m.uploadErr
	}
	return "https://storage.example.com/" + bucket + "/" + filename, nil
}

type mockAdmin struct {
	adminEmail string
}

func (m *mockAdmin) IsAdmin(session *domain.Session) bool {
	return session != nil && session.Email == m.adminEmail
}

func adminSession() *domain.Session {
	return &domain.Session{Email: "admin@sura-rental.com", AccessToken: "admin-token"}
}

func newTestService(storage *mockStorage) *Service {
	return NewService(storage, &mockAdmin{adminEmail: "admin@sura-rental.com"}, "car-images", nopLogger{})
}

func TestUploadCarImage_Success(t *testing.T) {
	storage := &mockStorage{}
	svc := newTestService(storage)

	url, err := svc.UploadCarImage(context.Background(), adminSession(), "Photo.JPG", "image/jpeg", []byte("jpeg-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "admin-token", storage.gotToken)
	assert.Equal(t, "car-images", storage.gotBucket)
	assert.Equal(t, "image/jpeg", storage.gotContentType)
	assert.Equal(t, []byte("jpeg-bytes"), storage.gotData)
	assert.True(t, strings.HasPrefix(url, "https://storage.example.com/car-images/"))

	// Имя объекта уникальное, расширение исходного файла сохранено в нижнем регистре
	require.True(t, strings.HasSuffix(storage.gotFilename, ".jpg"))
	_, err = uuid.Parse(strings.TrimSuffix(storage.gotFilename, ".jpg"))
	assert.NoError(t, err)
}

func TestUploadCarImage_AdminOnly(t *testing.T) {
	storage := &mockStorage{}
	svc := newTestService(storage)

	tests := []struct {
		name    string
		session *domain.Session
	}{
		{name: "no session", session: nil},
		{name: "regular user", session: &domain.Session{Email: "user@example.com", AccessToken: "t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UploadCarImage(context.Background(), tt.session, "img.png", "image/png", []byte("x"))
			assert.ErrorIs(t, err, ErrAccessDenied)
			assert.Empty(t, storage.gotFilename)
		})
	}
}

func TestUploadCarImage_Validation(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		data        []byte
	}{
		{name: "empty file", contentType: "image/png", data: nil},
		{name: "oversized file", contentType: "image/png", data: make([]byte, MaxImageSize+1)},
		{name: "not an image", contentType: "application/pdf", data: []byte("pdf")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := &mockStorage{}
			svc := newTestService(storage)

			_, err := svc.UploadCarImage(context.Background(), adminSession(), "file.bin", tt.contentType, tt.data)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, storage.gotFilename)
		})
	}
}

func TestUploadCarImage_StorageFailure(t *testing.T) {
	storage := &mockStorage{uploadErr: errors.New("bucket not found")}
	svc := newTestService(storage)

	_, err := svc.UploadCarImage(context.Background(), adminSession(), "img.png", "image/png", []byte("x"))

	assert.ErrorIs(t, err, ErrUploadFailed)
}
