package initcmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
)

type runner struct {
	fs FS
	o  Opt
	t  template
}

func (r *runner) run() error {
	if err := r.ensureDir(); err != nil {
		return err
	}
	ops, err := r.plan()
	if err != nil {
		return err
	}
	return r.apply(ops)
}

func (r *runner) plan() ([]op, error) {
	var ops []op
	var conflicts []string

	for _, f := range r.t.Files {
		rel := normalizeTemplatePath(f.Path)
		abs, err := safeJoin(r.o.Dir, rel)
		if err != nil {
			return nil, err
		}

		info, err := r.fs.Stat(abs)
		switch {
		case err == nil && info.IsDir():
			conflicts = append(conflicts, rel+" (dir)")
			continue
		case err == nil && !r.o.Force:
			conflicts = append(conflicts, rel)
			continue
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("init: stat %s: %w", rel, err)
		}

		act := ActionCreate
		if err == nil {
			act = ActionOverwrite
		}

		ops = append(ops, op{
			Action: act,
			Path:   rel,
			Abs:    abs,
			Mode:   f.Mode,
			Data:   f.Data,
		})
	}

	if len(conflicts) > 0 {
		return nil, fmt.Errorf(
			"init: files already exist: %s (use --force to overwrite)",
			strings.Join(conflicts, ", "),
		)
	}

	return ops, nil
}

func (r *runner) apply(ops []op) error {
	for _, op := range ops {
		if r.o.DryRun {
			if err := r.report(string(op.Action), op.Path); err != nil {
				return err
			}
			continue
		}

		if err := r.fs.MkdirAll(filepath.Dir(op.Abs), dirPerm); err != nil {
			return fmt.Errorf("init: create dir for %s: %w", op.Path, err)
		}

		if err := r.writeAtomic(op.Abs, op.Mode, op.Data, r.o.Force); err != nil {
			return fmt.Errorf("init: write %s: %w", op.Path, err)
		}

		if err := r.report(string(op.Action), op.Path); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) ensureDir() error {
	d := r.o.Dir
	info, err := r.fs.Stat(d)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("init: %s is not a directory", d)
		}
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("init: stat %s: %w", d, err)
	}
	if r.o.DryRun {
		return nil
	}
	if err = r.fs.MkdirAll(d, dirPerm); err != nil {
		return fmt.Errorf("init: create %s: %w", d, err)
	}
	return nil
}

// writeAtomic stages the file next to its target and renames into place, so
// a crash never leaves a half-written scaffold file.
func (r *runner) writeAtomic(p string, m fs.FileMode, data string, force bool) (err error) {
	d := filepath.Dir(p)
	f, err := r.fs.CreateTemp(d, ".tabletify-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		_ = f.Close()
		if err != nil {
			_ = r.fs.Remove(tmp)
		}
	}()
	if err = f.Chmod(m); err != nil {
		return err
	}
	if _, err = io.WriteString(f, data); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if !force {
		if _, err = r.fs.Stat(p); err == nil {
			return fs.ErrExist
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	if err = r.fs.Rename(tmp, p); err == nil {
		return nil
	}
	if !force || !errors.Is(err, fs.ErrExist) {
		return err
	}
	if err = r.fs.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return r.fs.Rename(tmp, p)
}

func (r *runner) report(act, path string) error {
	_, err := fmt.Fprintf(r.o.Out, "%-9s %s\n", act, path)
	return err
}
