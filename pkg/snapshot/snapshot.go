// Package snapshot publishes rendered HTML to a directory or an S3 bucket.
package snapshot

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/vango-dev/vmini/internal/errors"
)

// Publisher stores a named HTML snapshot.
type Publisher interface {
	Publish(ctx context.Context, name string, html []byte) error
}

// Target is a parsed snapshot destination.
type Target struct {
	// Bucket is set for s3:// targets.
	Bucket string

	// Prefix is the key prefix inside Bucket, without a leading slash.
	Prefix string

	// Dir is set for directory targets.
	Dir string
}

// IsS3 reports whether t points at a bucket.
func (t Target) IsS3() bool {
	return t.Bucket != ""
}

// ParseTarget parses "s3://bucket[/prefix]" or a directory path.
func ParseTarget(s string) (Target, error) {
	if s == "" {
		return Target{}, errors.New("E031").WithDetail("empty target")
	}
	rest, ok := strings.CutPrefix(s, "s3://")
	if !ok {
		return Target{Dir: s}, nil
	}
	bucket, prefix, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return Target{}, errors.New("E031").WithDetail("missing bucket in " + s)
	}
	prefix = strings.Trim(prefix, "/")
	if prefix != "" {
		prefix += "/"
	}
	return Target{Bucket: bucket, Prefix: prefix}, nil
}

// Key joins the target prefix and a snapshot name.
func (t Target) Key(name string) string {
	return t.Prefix + path.Base(name)
}

// FilePublisher writes snapshots into a directory.
type FilePublisher struct {
	Dir string
}

// Publish implements Publisher.
func (p FilePublisher) Publish(_ context.Context, name string, html []byte) error {
	if err := os.MkdirAll(p.Dir, 0o755); err != nil {
		return errors.New("E030").Wrap(err)
	}
	dest := filepath.Join(p.Dir, filepath.Base(name))
	if err := os.WriteFile(dest, html, 0o644); err != nil {
		return errors.New("E030").WithDetail("cannot write " + dest).Wrap(err)
	}
	return nil
}
