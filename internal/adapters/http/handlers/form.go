package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"strconv"
	"strings"

	"iadev-dashboard/internal/core/domain"
	"iadev-dashboard/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// formFields holds request fields from a multipart, urlencoded or JSON body,
// keeping track of which keys were actually sent
type formFields struct {
	values map[string]string
	files  map[string]*multipart.FileHeader
}

func readForm(c *fiber.Ctx) (*formFields, error) {
	f := &formFields{
		values: map[string]string{},
		files:  map[string]*multipart.FileHeader{},
	}

	contentType := strings.ToLower(c.Get(fiber.HeaderContentType))
	switch {
	case strings.HasPrefix(contentType, fiber.MIMEMultipartForm):
		form, err := c.MultipartForm()
		if err != nil {
			return nil, fmt.Errorf("%w: malformed multipart body", domain.ErrInvalidInput)
		}
		for key, vals := range form.Value {
			if len(vals) > 0 {
				f.values[key] = vals[0]
			}
		}
		for key, headers := range form.File {
			if len(headers) > 0 {
				f.files[key] = headers[0]
			}
		}
	case strings.HasPrefix(contentType, fiber.MIMEApplicationJSON):
		var raw map[string]json.RawMessage
		if len(c.Body()) > 0 {
			if err := json.Unmarshal(c.Body(), &raw); err != nil {
				return nil, fmt.Errorf("%w: malformed JSON body", domain.ErrInvalidInput)
			}
		}
		for key, value := range raw {
			text := strings.TrimSpace(string(value))
			if text == "null" {
				continue
			}
			var s string
			if err := json.Unmarshal(value, &s); err == nil {
				f.values[key] = s
				continue
			}
			// booleans, numbers and objects keep their JSON text
			f.values[key] = text
		}
	default:
		c.Request().PostArgs().VisitAll(func(key, value []byte) {
			f.values[string(key)] = string(value)
		})
	}

	return f, nil
}

// str returns the value of key, or nil when it was not sent
func (f *formFields) str(key string) *string {
	v, ok := f.values[key]
	if !ok {
		return nil
	}
	return &v
}

// text returns the value of key or ""
func (f *formFields) text(key string) string {
	return f.values[key]
}

// flag returns nil when key was not sent; only "true" is truthy
func (f *formFields) flag(key string) *bool {
	v, ok := f.values[key]
	if !ok {
		return nil
	}
	b := strings.TrimSpace(v) == "true"
	return &b
}

// capabilities decodes a permission map sent as a JSON object or JSON string
func (f *formFields) capabilities(key string) (*domain.Capabilities, error) {
	v, ok := f.values[key]
	if !ok {
		return nil, nil
	}
	caps, err := domain.ParseCapabilities(strings.TrimSpace(v))
	if err != nil {
		return nil, fmt.Errorf("%w: malformed %s", domain.ErrInvalidInput, key)
	}
	return &caps, nil
}

// file opens an uploaded file. The caller must call the returned closer.
func (f *formFields) file(key string) (*services.Upload, func(), error) {
	header, ok := f.files[key]
	if !ok {
		return nil, func() {}, nil
	}
	file, err := header.Open()
	if err != nil {
		return nil, func() {}, fmt.Errorf("%w: unreadable file %s", domain.ErrInvalidInput, key)
	}
	var content io.Reader = file
	return &services.Upload{Filename: header.Filename, Content: content}, func() { file.Close() }, nil
}

// parseID parses a numeric path parameter
func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// pathUnescape decodes a percent-encoded path parameter
func pathUnescape(s string) (string, error) {
	return url.PathUnescape(s)
}
