package interfaces

import "context"

// IImageStore abstracts binary blob storage for request photos.
//
// Blobs are stored under a path keyed by request id and filename; Upload
// returns the retrievable URL. The offline implementation fabricates stable
// mock URLs instead of talking to a storage service.
type IImageStore interface {
	Upload(ctx context.Context, requestID, filename string, data []byte) (url string, err error)
}
