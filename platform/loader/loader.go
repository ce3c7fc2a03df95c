// Package loader provides line-oriented sources of postfix expressions for
// batch evaluation. Every loader can hand out any number of fresh readers over
// the same content, and names its origin with a source URL.
package loader

import (
	"io"
	"net/url"
)

// Loader is an interface used by the batch runner to read expressions, one per line.
type Loader interface {
	GetReader() (io.ReadCloser, error)
	GetSourceURL() *url.URL
}
