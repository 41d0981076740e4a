package cmdutil

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/daprgen/cli/internal/output"
)

// Snapshot records the content of every file below dir. A missing dir
// yields an empty snapshot.
func Snapshot(fsys billy.Filesystem, dir string) (map[string][]byte, error) {
	snap := make(map[string][]byte)
	if _, err := fsys.Stat(dir); os.IsNotExist(err) {
		return snap, nil
	}

	err := util.Walk(fsys, dir, func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		data, err := util.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		snap[filepath.ToSlash(p)] = data
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("snapshotting %s: %w", dir, err)
	}
	return snap, nil
}

// FileStatuses renders one status line per generated file by comparing
// its content with the snapshot taken before generation.
func FileStatuses(fsys billy.Filesystem, files []string, before map[string][]byte) []string {
	lines := make([]string, 0, len(files))
	for _, f := range files {
		status := output.StatusCreated
		if old, ok := before[f]; ok {
			status = output.StatusUnchanged
			data, err := util.ReadFile(fsys, f)
			switch {
			case err != nil:
				status = output.StatusFailed
			case !bytes.Equal(old, data):
				status = output.StatusModified
			}
		}
		lines = append(lines, output.FormatFileLine(f, status))
	}
	return lines
}
