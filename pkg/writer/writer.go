package writer

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PoliNetworkOrg/uniqueint/pkg/utils"
)

const filePerm = 0664

type Writer struct {
	DirPath string
}

// NewWriter returns a Writer rooted at dirPath, creating the folder if needed.
func NewWriter(dirPath string) (Writer, error) {
	err := utils.CreateFolderIfNotExists(dirPath)
	if err != nil {
		return Writer{}, err
	}

	return Writer{DirPath: dirPath}, nil
}

func (w *Writer) GetFilePath(filename string) string {
	return filepath.Join(w.DirPath, filename)
}

func (w *Writer) WriteLines(filename string, data []string) error {
	return WriteLines(w.GetFilePath(filename), data)
}

// WriteLines writes every line followed by '\n' to p, replacing any previous
// content. An empty slice produces an empty file.
func WriteLines(p string, data []string) error {
	return writeAtomic(p, func(bw *bufio.Writer) error {
		for _, line := range data {
			if _, err := bw.WriteString(line); err != nil {
				return err
			}
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeAtomic fills a temp file next to p and renames it over p, so readers
// never see a half written file. The parent folder must already exist.
func writeAtomic(p string, fill func(*bufio.Writer) error) error {
	dir := filepath.Dir(p)
	tmp, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(p)+"-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	fail := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}

	if err := tmp.Chmod(filePerm); err != nil {
		return fail(err)
	}

	bw := bufio.NewWriter(tmp)
	if err := fill(bw); err != nil {
		return fail(err)
	}
	if err := bw.Flush(); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, p); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("could not replace %s: %w", p, err)
	}

	return nil
}
