package storage

import "io"

// Storage persists uploaded images and hands back the URL under which
// they are reachable.
type Storage interface {
	Save(key string, reader io.Reader) (string, error)
	Delete(key string) error
}
