package storage

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskStorage 本地磁盘头像存储；文件名 uuid + 原扩展名
type DiskStorage struct {
	Dir string
}

func NewDiskStorage(dir string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStorage{Dir: dir}, nil
}

func (s *DiskStorage) Save(src io.Reader, originalName string) (string, error) {
	filename := uuid.NewString() + filepath.Ext(originalName)
	dst, err := os.Create(filepath.Join(s.Dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())
		return "", err
	}
	return filename, nil
}
