// Package media is the boundary to the external object store for message
// and profile images. Upload mechanics are out of scope; the passthrough
// implementation keeps the reference the client supplied.
package media

// Uploader turns client-supplied image data into a stored reference.
type Uploader interface {
	Upload(data string) (string, error)
}

// Passthrough returns the supplied reference unchanged.
type Passthrough struct{}

func (Passthrough) Upload(data string) (string, error) {
	return data, nil
}
