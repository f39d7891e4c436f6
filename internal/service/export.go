package service

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	pkgerrors "github.com/pkg/errors"
)

// Exporter writes generated documents under Dir so they can be served as
// attachments and kept for later download.
type Exporter struct {
	Dir string
	now func() time.Time
}

func NewExporter(dir string) *Exporter {
	return &Exporter{Dir: dir, now: time.Now}
}

// Save creates Dir/<timestamp>-<random>-<name> and lets write fill it. It
// returns the path of the finished file. Concurrent saves of the same name get
// distinct files, and a failed write leaves nothing behind.
func (e *Exporter) Save(name string, write func(w io.Writer) error) (path string, err error) {
	if _, err := os.Stat(e.Dir); errors.Is(err, os.ErrNotExist) {
		if err = os.MkdirAll(e.Dir, os.ModePerm); err != nil {
			return "", pkgerrors.Wrap(err, "creating export dir")
		}
	}

	out, err := os.CreateTemp(e.Dir, e.now().Format("20060102-150405")+"-*-"+filepath.Base(name))
	if err != nil {
		return "", pkgerrors.Wrap(err, "creating export file")
	}
	path = out.Name()

	err = write(out)
	if closeErr := out.Close(); closeErr != nil {
		log.Println("export out.Close() error:", closeErr)
		if err == nil {
			err = closeErr
		}
	}
	if err != nil {
		if rmErr := os.Remove(path); rmErr != nil {
			log.Println("export os.Remove() error:", rmErr)
		}
		return "", pkgerrors.Wrapf(err, "writing %s", name)
	}

	return path, nil
}
