package upload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// DefaultMaxBytes caps the total multipart body size when no explicit limit
// is configured.
const DefaultMaxBytes = 5 << 20 // 5 MiB

// Splitter errors.
var (
	// ErrNotMultipart indicates the request body is not multipart/form-data.
	ErrNotMultipart = errors.New("request body is not multipart")

	// ErrTooLarge indicates the body exceeded the configured size cap. The
	// whole request fails; nothing is persisted.
	ErrTooLarge = errors.New("multipart body exceeds size limit")

	// ErrInvalidFilePart indicates a part declared as a file whose stream
	// could not be read. Distinct from a missing field.
	ErrInvalidFilePart = errors.New("uploaded file is invalid or missing")
)

// MissingFieldsError reports the required scalar fields absent from a
// multipart body. The request is rejected as a unit.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required field(s): %s", strings.Join(e.Fields, ", "))
}

// FilePart is one named file from a multipart body, buffered and ready to
// stream to a sink.
type FilePart struct {
	Reader       io.Reader
	OriginalName string
}

// Form holds the outcome of splitting a multipart body: scalar fields by
// name (last write wins on duplicates) and file parts by field name.
type Form struct {
	Fields map[string]string
	Files  map[string]*FilePart
}

// Require validates that every named field arrived. Absences are collected
// and returned together in a MissingFieldsError; a field whose value is the
// empty string counts as missing.
func (f *Form) Require(names ...string) error {
	var missing []string
	for _, name := range names {
		if f.Fields[name] == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}

// Splitter consumes multipart bodies part by part, keeping a running byte
// count against a total size cap.
type Splitter struct {
	maxBytes int64
}

// NewSplitter creates a Splitter with the given total size cap. A
// non-positive cap falls back to DefaultMaxBytes.
func NewSplitter(maxBytes int64) *Splitter {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Splitter{maxBytes: maxBytes}
}

// Split streams the request's multipart body to exhaustion, partitioning
// parts into fields and files. File contents are buffered in memory (the
// size cap bounds the total) so that required-field validation can reject
// the request before anything touches disk.
func (s *Splitter) Split(r *http.Request) (*Form, error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotMultipart, err)
	}

	form := &Form{
		Fields: make(map[string]string),
		Files:  make(map[string]*FilePart),
	}

	var total int64
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read multipart part: %w", err)
		}

		if part.FileName() == "" {
			value, err := s.readPart(part, &total)
			if err != nil {
				return nil, err
			}
			form.Fields[part.FormName()] = string(value)
			continue
		}

		content, err := s.readPart(part, &total)
		if err != nil {
			if errors.Is(err, ErrTooLarge) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %v", ErrInvalidFilePart, err)
		}
		form.Files[part.FormName()] = &FilePart{
			Reader:       bytes.NewReader(content),
			OriginalName: part.FileName(),
		}
	}

	return form, nil
}

// readPart drains one part into memory, charging its size against the
// running total. Reading one byte past the remaining budget trips the cap.
func (s *Splitter) readPart(part *multipart.Part, total *int64) ([]byte, error) {
	defer func() { _ = part.Close() }()

	remaining := s.maxBytes - *total
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(part, remaining+1))
	*total += n
	if err != nil {
		return nil, err
	}
	if *total > s.maxBytes {
		return nil, ErrTooLarge
	}
	return buf.Bytes(), nil
}

// UniqueFilename prefixes the original filename with a random id so
// concurrent uploads of identically named files never collide. An empty
// original name falls back to a generic default.
func UniqueFilename(originalName string) string {
	if originalName == "" {
		originalName = "upload.png"
	}
	return uuid.New().String() + "-" + originalName
}
