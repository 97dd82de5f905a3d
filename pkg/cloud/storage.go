// Copyright 2025 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cloud

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
)

const (
	gcsScheme = "gs://"

	ContentTypeText = "text/plain"
	ContentTypeJSON = "application/json"
)

var ErrInvalidGCSURI = errors.New("invalid GCS URI")

// BlobWriter uploads a complete object in one call.
type BlobWriter interface {
	Upload(ctx context.Context, uri string, data []byte, contentType string) error
}

// ParseGCSURI splits gs://bucket/path/to/object into its bucket and object name.
func ParseGCSURI(uri string) (string, string, error) {
	if !strings.HasPrefix(uri, gcsScheme) {
		return "", "", fmt.Errorf("%w: expected 'gs://bucket/object', got '%s'", ErrInvalidGCSURI, uri)
	}
	parts := strings.SplitN(strings.TrimPrefix(uri, gcsScheme), "/", 2)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: expected 'gs://bucket/object', got '%s'", ErrInvalidGCSURI, uri)
	}
	return parts[0], parts[1], nil
}

func GCSURI(bucket, object string) string {
	return gcsScheme + bucket + "/" + object
}

type GCSBlobWriter struct {
	client *storage.Client
}

func NewGCSBlobWriter(client *storage.Client) *GCSBlobWriter {
	return &GCSBlobWriter{client: client}
}

func (w *GCSBlobWriter) Upload(ctx context.Context, uri string, data []byte, contentType string) error {
	bucket, object, err := ParseGCSURI(uri)
	if err != nil {
		return err
	}
	writer := w.client.Bucket(bucket).Object(object).NewWriter(ctx)
	writer.ContentType = contentType
	if _, err := io.Copy(writer, bytes.NewReader(data)); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write %s: %w", uri, err)
	}
	// The object is only committed on Close.
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to upload %s: %w", uri, err)
	}
	return nil
}
