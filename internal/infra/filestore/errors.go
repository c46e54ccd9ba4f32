package filestore

import "errors"

var (
	// ErrReadFile возвращается при ошибке чтения файла снапшота
	ErrReadFile = errors.New("filestore: failed to read snapshot file")

	// ErrDecode возвращается при ошибке разбора JSON снапшота
	ErrDecode = errors.New("filestore: failed to decode snapshot")
)
