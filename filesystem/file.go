package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/knadh/koanf/providers/file"
)

var ErrNotText = errors.New("stream did not contain valid UTF-8")

func GetAbsPath(fPath string) (string, error) {
	absolutePath, err := filepath.Abs(fPath)
	if err == nil {
		absolutePath = NormalizePath(absolutePath)
	}
	return absolutePath, err
}

func IsExist(fPath string) bool {
	_, err := os.Stat(fPath)
	return !os.IsNotExist(err)
}

func IsFileExist(fPath string) bool {
	fileInfo, err := os.Stat(fPath)
	if err != nil {
		return false
	}
	return !fileInfo.IsDir()
}

func NormalizePath(fPath string) string {
	newPath := strings.ReplaceAll(fPath, "\\", "/") // enfore linux path style for clarity
	return newPath
}

// ReadTextFile returns the whole content of fPath, rejecting non UTF-8 data.
func ReadTextFile(fPath string) ([]byte, error) {
	data, err := file.Provider(fPath).ReadBytes()
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, ErrNotText
	}
	return data, nil
}
