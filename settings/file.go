package settings

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

const lockRetryDelay = 50 * time.Millisecond

// File stores settings for one dataset in a YAML document shared by many datasets.
// Access is serialized across processes with a lock file next to the document.
//
// Example document
//
//	datasets:
//	  trees:
//	    legend_data_filter_!!SLIDERS!!: height###diameter
type File struct {
	path    string
	dataset string
	lock    *flock.Flock
}

type document struct {
	Datasets map[string]map[string]string `yaml:"datasets"`
}

func NewFile(path, dataset string) *File {
	return &File{
		path:    path,
		dataset: dataset,
		lock:    flock.New(path + ".lock"),
	}
}

func (f *File) Setting(ctx context.Context, key, def string) (string, error) {
	if err := f.acquire(ctx, f.lock.TryRLockContext); err != nil {
		return "", err
	}
	defer f.lock.Unlock()

	doc, err := f.read()
	if err != nil {
		return "", err
	}
	if v, ok := doc.Datasets[f.dataset][key]; ok {
		return v, nil
	}
	return def, nil
}

func (f *File) SetSetting(ctx context.Context, key, value string) error {
	if err := f.acquire(ctx, f.lock.TryLockContext); err != nil {
		return err
	}
	defer f.lock.Unlock()

	doc, err := f.read()
	if err != nil {
		return err
	}
	if doc.Datasets == nil {
		doc.Datasets = make(map[string]map[string]string)
	}
	if doc.Datasets[f.dataset] == nil {
		doc.Datasets[f.dataset] = make(map[string]string)
	}
	doc.Datasets[f.dataset][key] = value

	return f.write(doc)
}

func (f *File) acquire(ctx context.Context, try func(context.Context, time.Duration) (bool, error)) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}
	ok, err := try(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("locking %s: %w", f.path, err)
	}
	if !ok {
		return fmt.Errorf("locking %s: lock not acquired", f.path)
	}
	return nil
}

func (f *File) read() (*document, error) {
	doc := &document{}

	b, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	if err = yaml.Unmarshal(b, doc); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", f.path, err)
	}
	return doc, nil
}

func (f *File) write(doc *document) error {
	b, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	tmp := f.path + ".tmp"
	if err = os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	if err = os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replacing settings: %w", err)
	}
	return nil
}
