package storage

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"
)

// KeyMapper converts between object keys and the URLs stored in documents.
type KeyMapper struct {
	bucket  string
	baseURL string
	pathURL string
}

// NewKeyMapper builds a mapper for bucket. Public URLs are baseURL/key, or
// endpoint/bucket/key when baseURL is empty.
func NewKeyMapper(bucket, baseURL, endpoint string) KeyMapper {
	m := KeyMapper{bucket: bucket, baseURL: strings.TrimRight(baseURL, "/")}
	if endpoint != "" {
		m.pathURL = strings.TrimRight(endpoint, "/") + "/" + bucket
	}
	return m
}

// ObjectURL returns the public URL of key.
func (m KeyMapper) ObjectURL(key string) string {
	base := m.baseURL
	if base == "" {
		base = m.pathURL
	}
	return base + "/" + key
}

// KeyFromURL accepts the public base URL form, the path-style endpoint
// form, s3://bucket/key and download URLs that carry the escaped key after
// "/o/". Query strings are ignored.
func (m KeyMapper) KeyFromURL(rawURL string) (string, bool) {
	if rawURL == "" {
		return "", false
	}

	if rest, ok := strings.CutPrefix(rawURL, "s3://"); ok {
		bucket, key, found := strings.Cut(rest, "/")
		if !found || bucket != m.bucket {
			return "", false
		}
		return nonEmpty(stripQuery(key))
	}

	for _, prefix := range []string{m.baseURL, m.pathURL} {
		if prefix == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(rawURL, prefix+"/"); ok {
			key, err := url.PathUnescape(stripQuery(rest))
			if err != nil {
				return "", false
			}
			return nonEmpty(key)
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	if _, escaped, ok := strings.Cut(u.EscapedPath(), "/o/"); ok {
		key, err := url.PathUnescape(escaped)
		if err != nil {
			return "", false
		}
		return nonEmpty(key)
	}
	return "", false
}

// NewObjectKey returns a unique key for an upload belonging to memoryID.
func NewObjectKey(memoryID, filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" {
		name = "file"
	}
	return fmt.Sprintf("%s%s-%s", MemoryPrefix(memoryID), uuid.New(), name)
}

// MemoryPrefix is the key prefix shared by every upload of memoryID.
func MemoryPrefix(memoryID string) string {
	return "memories/" + memoryID + "/"
}

// OwnedBy reports whether key was issued by NewObjectKey for memoryID.
func OwnedBy(memoryID, key string) bool {
	if memoryID == "" || strings.Contains(memoryID, "/") {
		return false
	}
	rest, ok := strings.CutPrefix(key, MemoryPrefix(memoryID))
	return ok && rest != "" && !strings.Contains(rest, "/")
}

func stripQuery(s string) string {
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		return s[:i]
	}
	return s
}

func nonEmpty(key string) (string, bool) {
	return key, key != ""
}
