package upload

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multipartBody assembles a multipart/form-data body from ordered field
// pairs and {field, filename, content} file triples.
func multipartBody(t *testing.T, fields [][2]string, files [][3]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, f := range fields {
		require.NoError(t, writer.WriteField(f[0], f[1]))
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f[0], f[1])
		require.NoError(t, err)
		_, err = part.Write([]byte(f[2]))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestSplitterSplit(t *testing.T) {
	t.Parallel()

	t.Run("partitions fields and files", func(t *testing.T) {
		t.Parallel()
		body, contentType := multipartBody(t,
			[][2]string{{"name", "Books"}, {"description", "Printed things"}},
			[][3]string{{"image", "cover.png", "fake-png-bytes"}},
		)

		req := httptest.NewRequest("POST", "/", body)
		req.Header.Set("Content-Type", contentType)

		form, err := NewSplitter(DefaultMaxBytes).Split(req)
		require.NoError(t, err)

		assert.Equal(t, "Books", form.Fields["name"])
		assert.Equal(t, "Printed things", form.Fields["description"])

		file := form.Files["image"]
		require.NotNil(t, file)
		assert.Equal(t, "cover.png", file.OriginalName)

		content, err := io.ReadAll(file.Reader)
		require.NoError(t, err)
		assert.Equal(t, "fake-png-bytes", string(content))
	})

	t.Run("last write wins on duplicate fields", func(t *testing.T) {
		t.Parallel()
		body, contentType := multipartBody(t,
			[][2]string{{"name", "first"}, {"name", "second"}},
			nil,
		)

		req := httptest.NewRequest("POST", "/", body)
		req.Header.Set("Content-Type", contentType)

		form, err := NewSplitter(DefaultMaxBytes).Split(req)
		require.NoError(t, err)
		assert.Equal(t, "second", form.Fields["name"])
	})

	t.Run("rejects non-multipart body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Books"}`))
		req.Header.Set("Content-Type", "application/json")

		_, err := NewSplitter(DefaultMaxBytes).Split(req)
		assert.ErrorIs(t, err, ErrNotMultipart)
	})

	t.Run("rejects body over the size cap", func(t *testing.T) {
		t.Parallel()
		big := strings.Repeat("x", 300)
		body, contentType := multipartBody(t,
			[][2]string{{"name", "Books"}},
			[][3]string{{"image", "big.png", big}},
		)

		req := httptest.NewRequest("POST", "/", body)
		req.Header.Set("Content-Type", contentType)

		_, err := NewSplitter(100).Split(req)
		assert.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("cap counts fields and files together", func(t *testing.T) {
		t.Parallel()
		body, contentType := multipartBody(t,
			[][2]string{{"a", strings.Repeat("x", 60)}, {"b", strings.Repeat("y", 60)}},
			nil,
		)

		req := httptest.NewRequest("POST", "/", body)
		req.Header.Set("Content-Type", contentType)

		_, err := NewSplitter(100).Split(req)
		assert.ErrorIs(t, err, ErrTooLarge)
	})
}

func TestFormRequire(t *testing.T) {
	t.Parallel()

	t.Run("passes when all fields present", func(t *testing.T) {
		t.Parallel()
		form := &Form{Fields: map[string]string{"name": "Books", "description": "x"}}
		assert.NoError(t, form.Require("name", "description"))
	})

	t.Run("collects all absences sorted", func(t *testing.T) {
		t.Parallel()
		form := &Form{Fields: map[string]string{"phone": "5550100"}}
		err := form.Require("username", "email", "phone")

		var missing *MissingFieldsError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"email", "username"}, missing.Fields)
	})

	t.Run("empty string counts as missing", func(t *testing.T) {
		t.Parallel()
		form := &Form{Fields: map[string]string{"name": ""}}
		var missing *MissingFieldsError
		require.ErrorAs(t, form.Require("name"), &missing)
		assert.Equal(t, []string{"name"}, missing.Fields)
	})
}

func TestUniqueFilename(t *testing.T) {
	t.Parallel()

	name := UniqueFilename("photo.jpg")
	assert.True(t, strings.HasSuffix(name, "-photo.jpg"))

	fallback := UniqueFilename("")
	assert.True(t, strings.HasSuffix(fallback, "-upload.png"))

	// Prefixes are random; two calls never collide on the same input.
	assert.NotEqual(t, UniqueFilename("photo.jpg"), UniqueFilename("photo.jpg"))
}
