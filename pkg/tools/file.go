package tools

import "os"

func Mkdir(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func FileExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
