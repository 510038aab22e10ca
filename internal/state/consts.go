package state

// File names used by a mirror build.
const (
	SumFile   = "mirror.sum"
	LockFile  = ".pocmirror.lock"
	IndexFile = "index.html"
	FilesDir  = "files"
)

// File and directory permissions used across the project
const (
	FilePerm = 0644
	DirPerm  = 0755
)
