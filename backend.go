// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package pdfmd

// Document is the backend handle for an open paginated document. The pipeline
// only depends on this interface; OpenDocument provides the production PDF
// implementation.
type Document interface {
	// Path returns the source path the document was opened from. OCR
	// fallback re-reads the source, so the path must stay valid while
	// extraction runs.
	Path() string

	// PageCount returns the total number of pages.
	PageCount() int

	// Page returns the page with the given 1-based number.
	Page(n int) (Page, error)

	// Close releases resources associated with the document.
	Close() error
}

// Page exposes the raw content of a single page. All three accessors may
// return empty results; the pipeline decides how to degrade.
type Page interface {
	// Number returns the 1-based page number.
	Number() int

	// Text returns the raw extracted text, or "" when the page carries no
	// extractable text layer.
	Text() string

	// Tables returns the raw tables detected on the page. Rows may be
	// jagged; the table renderer normalizes them.
	Tables() []Table

	// Images returns descriptors for images present on the page. Only their
	// existence and count matter to the pipeline.
	Images() []ImageRef
}

// Table is a raw grid of cell values as detected on a page.
type Table struct {
	Rows [][]string
}

// ImageRef describes an image found on a page. The descriptor is opaque to
// the pipeline; Object identifies the image within the source document.
type ImageRef struct {
	Object int
}
