package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"careervector/internal/service"
)

// readFormFile pulls one optional file part into memory. A missing part is
// not an error; signup file fields are all optional.
func readFormFile(c echo.Context, field string) (*service.Upload, error) {
	header, err := c.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &service.Upload{Data: data, ContentType: contentType}, nil
}
