package dto

import "io"

// Upload archivo recibido en la petición, desacoplado de multipart.
type Upload struct {
	Filename string
	Size     int64
	Open     func() (io.ReadCloser, error)
}
