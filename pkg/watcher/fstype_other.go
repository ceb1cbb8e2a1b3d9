//go:build !linux

package watcher

// DetectFilesystemType is only implemented on Linux.
func DetectFilesystemType(path string) FilesystemType {
	return FSTypeUnknown
}
