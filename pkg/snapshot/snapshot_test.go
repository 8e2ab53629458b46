package snapshot

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/vmini/internal/errors"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in      string
		want    Target
		wantErr bool
	}{
		{in: "out", want: Target{Dir: "out"}},
		{in: "s3://bucket", want: Target{Bucket: "bucket"}},
		{in: "s3://bucket/", want: Target{Bucket: "bucket"}},
		{in: "s3://bucket/a/b/", want: Target{Bucket: "bucket", Prefix: "a/b/"}},
		{in: "s3://", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTarget(tt.in)
			if tt.wantErr {
				if !stderrors.Is(err, errors.New("E031")) {
					t.Errorf("err = %v, want E031", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ParseTarget(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTargetKey(t *testing.T) {
	tgt := Target{Bucket: "b", Prefix: "snaps/"}
	if got := tgt.Key("../x/index.html"); got != "snaps/index.html" {
		t.Errorf("Key = %q", got)
	}
}

func TestFilePublisher(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	p := FilePublisher{Dir: dir}

	if err := p.Publish(context.Background(), "index.html", []byte("<p>0</p>")); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "<p>0</p>" {
		t.Errorf("content = %q", got)
	}
}

type fakeS3 struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	b, _ := io.ReadAll(in.Body)
	f.body = string(b)
	return &s3.PutObjectOutput{}, f.err
}

func TestS3Publisher(t *testing.T) {
	fake := &fakeS3{}
	p := NewS3Publisher(fake, Target{Bucket: "site", Prefix: "v1/"})

	if err := p.Publish(context.Background(), "index.html", []byte("<p>5</p>")); err != nil {
		t.Fatal(err)
	}
	if aws.ToString(fake.input.Bucket) != "site" || aws.ToString(fake.input.Key) != "v1/index.html" {
		t.Errorf("input = %+v", fake.input)
	}
	if aws.ToString(fake.input.ContentType) != "text/html; charset=utf-8" {
		t.Errorf("content type = %q", aws.ToString(fake.input.ContentType))
	}
	if fake.body != "<p>5</p>" {
		t.Errorf("body = %q", fake.body)
	}
}

func TestS3PublisherError(t *testing.T) {
	boom := stderrors.New("denied")
	p := NewS3Publisher(&fakeS3{err: boom}, Target{Bucket: "site"})

	err := p.Publish(context.Background(), "index.html", nil)
	if !stderrors.Is(err, errors.New("E030")) || !stderrors.Is(err, boom) {
		t.Errorf("err = %v, want E030 wrapping denied", err)
	}
}

func TestOpen(t *testing.T) {
	if _, ok := Open(Target{Dir: "x"}, S3Config{}).(FilePublisher); !ok {
		t.Error("directory target should open a FilePublisher")
	}
	if _, ok := Open(Target{Bucket: "b"}, S3Config{Region: "us-east-1", Endpoint: "http://localhost:9000"}).(*S3Publisher); !ok {
		t.Error("s3 target should open an S3Publisher")
	}
}

func TestEnvCredentials(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
	if _, err := envCredentials(context.Background()); err == nil {
		t.Error("expected error without credentials")
	}

	t.Setenv("AWS_ACCESS_KEY_ID", "id")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	creds, err := envCredentials(context.Background())
	if err != nil || creds.AccessKeyID != "id" || creds.SecretAccessKey != "secret" {
		t.Errorf("creds = %+v, err = %v", creds, err)
	}
}
