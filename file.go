package ini

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/KimNorgaard/go-ini/ast"
)

// LoadFile reads and parses the named file.
func LoadFile(name string, opts ...Option) (*ast.Document, error) {
	return LoadFileContext(context.Background(), name, opts...)
}

// LoadFileContext is like LoadFile but gives up if ctx is done before the
// file has been read.
func LoadFileContext(ctx context.Context, name string, opts ...Option) (*ast.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("ini: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Parse(data, opts...)
}

// SaveFile writes doc to the named file. The document is written to a
// temporary file in the same directory which then replaces the target, so
// readers never see a partial file. An existing file keeps its permissions.
func SaveFile(name string, doc *ast.Document, opts ...Option) error {
	return SaveFileContext(context.Background(), name, doc, opts...)
}

// SaveFileContext is like SaveFile but gives up if ctx is done before the
// target is replaced.
func SaveFileContext(ctx context.Context, name string, doc *ast.Document, opts ...Option) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(doc); err != nil {
		return err
	}

	mode := os.FileMode(0o644)
	if fi, err := os.Stat(name); err == nil {
		mode = fi.Mode().Perm()
	}

	f, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*.tmp")
	if err != nil {
		return fmt.Errorf("ini: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if tmp != "" {
			_ = os.Remove(tmp)
		}
	}()

	if _, err := f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		return fmt.Errorf("ini: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("ini: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("ini: %w", err)
	}
	if err := os.Chmod(tmp, mode); err != nil {
		return fmt.Errorf("ini: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Rename(tmp, name); err != nil {
		return fmt.Errorf("ini: %w", err)
	}
	tmp = ""
	return nil
}
