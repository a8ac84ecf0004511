package storage

import "testing"

func TestNewS3BlobStorage_BucketFromEnv(t *testing.T) {
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("S3_ENDPOINT", "http://localhost:9000")
	t.Setenv("S3_BUCKET_NAME", "truetickets-test-bucket")

	s := NewS3BlobStorage()
	if s.bucket != "truetickets-test-bucket" {
		t.Fatalf("expected bucket from S3_BUCKET_NAME, got %q", s.bucket)
	}
}

func TestS3BlobStorage_PublicURL(t *testing.T) {
	s := &S3BlobStorage{bucket: "tickets", region: "us-east-1"}

	t.Run("default amazon url", func(t *testing.T) {
		t.Setenv("ATTACHMENTS_URL_BASE", "")
		got := s.publicURL("attachments/5481/x")
		want := "https://tickets.s3.us-east-1.amazonaws.com/attachments/5481/x"
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("override base", func(t *testing.T) {
		t.Setenv("ATTACHMENTS_URL_BASE", "https://cdn.example.com")
		if got := s.publicURL("k"); got != "https://cdn.example.com/k" {
			t.Fatalf("got %q", got)
		}
	})
}
