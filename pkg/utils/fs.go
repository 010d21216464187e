package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/PoliNetworkOrg/uniqueint/pkg/constants"
)

func DoFolderExists(absPath string) (bool, error) {
	stat, err := os.Stat(absPath)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return false, nil
		default:
			return false, err
		}
	}

	return stat.IsDir(), nil
}

func CreateFolderIfNotExists(absPath string) error {
	path := absPath
	if !filepath.IsAbs(path) {
		slog.Warn("asking for absPath, provided a relative path", "provided", absPath)
		var err error
		path, err = filepath.Abs(absPath)
		if err != nil {
			return err
		}
	}

	exists, err := DoFolderExists(path)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	err = os.MkdirAll(path, os.ModePerm)
	return err
}

// ListFilesInFolder returns the names of the regular files directly inside
// absPath, sorted. Symlinks count when their target is a regular file.
// Subfolders, hidden files and dangling links are skipped.
func ListFilesInFolder(absPath string) ([]string, error) {
	exists, err := DoFolderExists(absPath)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("folder %s does not exist: %w", absPath, fs.ErrNotExist)
	}

	entries, err := os.ReadDir(absPath)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		stat, err := os.Stat(filepath.Join(absPath, entry.Name()))
		if err != nil {
			slog.Warn("skipping unreadable folder entry", "folder", absPath, "name", entry.Name(), "error", err)
			continue
		}
		if !stat.Mode().IsRegular() {
			continue
		}

		names = append(names, entry.Name())
	}

	slices.Sort(names)
	return names, nil
}

func TmpDirectory() (string, error) {
	tmpPath, err := filepath.Abs(constants.TmpDirectoryName)
	if err != nil {
		return "", err
	}

	err = CreateFolderIfNotExists(tmpPath)
	if err != nil {
		return "", err
	}

	return tmpPath, nil
}

// MakeResultsFilename maps an input file name to the name of its results
// file, e.g. sample_01.txt -> sample_01.txt_results.txt.
func MakeResultsFilename(inputName string) string {
	return filepath.Base(strings.TrimSpace(inputName)) + constants.ResultsSuffix
}
