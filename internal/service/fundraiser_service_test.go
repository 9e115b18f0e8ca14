package service

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/givehub/backend/internal/models"
	"github.com/givehub/backend/pkg/storage"
)

// makeImageHeader builds a real multipart.FileHeader the way Fiber
// hands it to the service.
func makeImageHeader(t *testing.T, filename, contentType string, size int) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("a"), size))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["image"][0]
}

func validFundraiserRequest() models.FundraiserRequest {
	return models.FundraiserRequest{
		Title:        "Help the shelter",
		Category:     "medical",
		TargetAmount: 500,
		Description:  "Emergency surgery fund",
	}
}

func TestFundraiserService_Create(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)

	repo := &fakeFundraiserRepo{}
	svc := NewFundraiserService(repo, store)

	image := makeImageHeader(t, "cat.png", "image/png", 128)
	fundraiser, err := svc.Create(3, validFundraiserRequest(), image)
	require.NoError(t, err)

	assert.Equal(t, uint(3), fundraiser.CreatorID)
	assert.Equal(t, models.FundraiserActive, fundraiser.Status)
	assert.Equal(t, models.CategoryMedical, fundraiser.Category)
	assert.Zero(t, fundraiser.CurrentAmount)
	assert.True(t, strings.HasPrefix(fundraiser.ImageURL, "/uploads/"))
	assert.True(t, strings.HasSuffix(fundraiser.ImageURL, ".png"))

	// The file actually landed on disk.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".png", filepath.Ext(entries[0].Name()))
}

func TestFundraiserService_Create_MissingImage(t *testing.T) {
	t.Parallel()

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	svc := NewFundraiserService(&fakeFundraiserRepo{}, store)

	_, err = svc.Create(1, validFundraiserRequest(), nil)
	assert.ErrorIs(t, err, models.ErrImageRequired)
}

func TestFundraiserService_Create_RejectsWrongType(t *testing.T) {
	t.Parallel()

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	svc := NewFundraiserService(&fakeFundraiserRepo{}, store)

	t.Run("bad extension", func(t *testing.T) {
		image := makeImageHeader(t, "report.pdf", "application/pdf", 64)
		_, err := svc.Create(1, validFundraiserRequest(), image)
		assert.ErrorIs(t, err, models.ErrImageType)
	})

	t.Run("image extension with non-image content type", func(t *testing.T) {
		image := makeImageHeader(t, "fake.png", "text/html", 64)
		_, err := svc.Create(1, validFundraiserRequest(), image)
		assert.ErrorIs(t, err, models.ErrImageType)
	})
}

func TestFundraiserService_Create_AcceptsJpgContentType(t *testing.T) {
	t.Parallel()

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	svc := NewFundraiserService(&fakeFundraiserRepo{}, store)

	// Nonstandard but seen in the wild alongside image/jpeg.
	image := makeImageHeader(t, "cat.jpg", "image/jpg", 64)
	fundraiser, err := svc.Create(1, validFundraiserRequest(), image)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(fundraiser.ImageURL, ".jpg"))
}

func TestFundraiserService_Create_RejectsOversize(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)
	svc := NewFundraiserService(&fakeFundraiserRepo{}, store)

	image := makeImageHeader(t, "big.jpg", "image/jpeg", MaxImageSize+1)
	_, err = svc.Create(1, validFundraiserRequest(), image)
	assert.ErrorIs(t, err, models.ErrImageTooLarge)

	// Rejected before anything was written.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFundraiserService_Create_CleansUpOnStoreFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)

	repo := &fakeFundraiserRepo{createErr: assert.AnError}
	svc := NewFundraiserService(repo, store)

	image := makeImageHeader(t, "cat.jpg", "image/jpeg", 64)
	_, err = svc.Create(1, validFundraiserRequest(), image)
	require.Error(t, err)

	// The orphaned upload was removed.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFundraiserService_ListAndGet(t *testing.T) {
	t.Parallel()

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	repo := &fakeFundraiserRepo{}
	svc := NewFundraiserService(repo, store)

	image := makeImageHeader(t, "dog.gif", "image/gif", 64)
	created, err := svc.Create(2, validFundraiserRequest(), image)
	require.NoError(t, err)

	all, err := svc.List()
	require.NoError(t, err)
	require.Len(t, all, 1)

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)

	_, err = svc.GetByID(999)
	assert.ErrorIs(t, err, models.ErrFundraiserNotFound)
}
