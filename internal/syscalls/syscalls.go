// Package syscalls contains the real operating system implementations
// behind the provider interfaces declared by the consuming packages.
package syscalls

import (
	"os"

	"golang.org/x/sys/unix"
)

// RealOS wraps the [os] standard library functions.
type RealOS struct{}

func (RealOS) Getwd() (string, error) {
	return os.Getwd()
}

func (RealOS) Open(name string) (*os.File, error) {
	return os.Open(name)
}

func (RealOS) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

func (RealOS) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

func (RealOS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (RealOS) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// RealUnix wraps the [unix] syscall functions.
type RealUnix struct{}

func (RealUnix) Mkdir(path string, mode uint32) error {
	return unix.Mkdir(path, mode)
}

func (RealUnix) Rmdir(path string) error {
	return unix.Rmdir(path)
}

func (RealUnix) Unlink(path string) error {
	return unix.Unlink(path)
}
