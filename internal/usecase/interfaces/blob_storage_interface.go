package interfaces

import "context"

// IBlobStorage abstracts the attachment object store. Upload returns
// the public URL of the stored object.
type IBlobStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
