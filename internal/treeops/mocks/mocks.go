// Package mocks contains hand-maintained [mock.Mock] implementations of the
// provider interfaces consumed by the treeops package.
package mocks

import (
	"os"

	"github.com/stretchr/testify/mock"
)

// OsProvider is a mock implementation of the treeops osProvider interface.
type OsProvider struct {
	mock.Mock
}

func (m *OsProvider) Open(name string) (*os.File, error) {
	args := m.Called(name)

	var file *os.File
	if args.Get(0) != nil {
		file = args.Get(0).(*os.File)
	}

	return file, args.Error(1)
}

func (m *OsProvider) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	args := m.Called(name, flag, perm)

	var file *os.File
	if args.Get(0) != nil {
		file = args.Get(0).(*os.File)
	}

	return file, args.Error(1)
}

func (m *OsProvider) ReadDir(name string) ([]os.DirEntry, error) {
	args := m.Called(name)

	var entries []os.DirEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]os.DirEntry)
	}

	return entries, args.Error(1)
}

func (m *OsProvider) Rename(oldpath, newpath string) error {
	args := m.Called(oldpath, newpath)

	return args.Error(0)
}

func (m *OsProvider) Stat(name string) (os.FileInfo, error) {
	args := m.Called(name)

	var info os.FileInfo
	if args.Get(0) != nil {
		info = args.Get(0).(os.FileInfo)
	}

	return info, args.Error(1)
}

// UnixProvider is a mock implementation of the treeops unixProvider
// interface.
type UnixProvider struct {
	mock.Mock
}

func (m *UnixProvider) Mkdir(path string, mode uint32) error {
	args := m.Called(path, mode)

	return args.Error(0)
}

func (m *UnixProvider) Rmdir(path string) error {
	args := m.Called(path)

	return args.Error(0)
}

func (m *UnixProvider) Unlink(path string) error {
	args := m.Called(path)

	return args.Error(0)
}
