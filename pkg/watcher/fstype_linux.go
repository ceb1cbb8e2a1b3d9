//go:build linux

package watcher

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Superblock magic numbers from statfs(2).
const (
	nfsMagic  = 0x6969
	smbMagic  = 0x517b
	cifsMagic = 0xff534d42
	smb2Magic = 0xfe534d42
	fuseMagic = 0x65735546
)

// DetectFilesystemType classifies the filesystem holding path. When path
// does not exist yet its parent directory is inspected.
func DetectFilesystemType(path string) FilesystemType {
	if path == "" {
		return FSTypeUnknown
	}
	target := path
	if _, err := os.Stat(target); err != nil {
		target = filepath.Dir(path)
	}

	var st unix.Statfs_t
	if err := unix.Statfs(target, &st); err != nil {
		return FSTypeUnknown
	}
	switch uint32(st.Type) {
	case nfsMagic:
		return FSTypeNFS
	case smbMagic, cifsMagic, smb2Magic:
		return FSTypeSMB
	case fuseMagic:
		return FSTypeFUSE
	}
	return FSTypeLocal
}
