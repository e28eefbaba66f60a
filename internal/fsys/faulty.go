package fsys

import (
	"os"
)

// Op names a filesystem operation for fault injection.
type Op string

// Operations that can be failed by Faulty.
const (
	OpLstat    Op = "lstat"
	OpStat     Op = "stat"
	OpReadlink Op = "readlink"
	OpSymlink  Op = "symlink"
	OpRemove   Op = "remove"
)

// Faulty wraps an FS and fails selected operations on selected paths.
// It records every mutating call so tests can assert that nothing was
// changed.
type Faulty struct {
	FS
	faults map[fault]error

	// Mutations lists "symlink <new>" and "remove <name>" calls in order,
	// including ones that failed.
	Mutations []string
}

type fault struct {
	op   Op
	path string
}

// NewFaulty wraps base.
func NewFaulty(base FS) *Faulty {
	return &Faulty{FS: base, faults: make(map[fault]error)}
}

// Fail makes op on path return err.
func (f *Faulty) Fail(op Op, path string, err error) *Faulty {
	f.faults[fault{op: op, path: path}] = err
	return f
}

func (f *Faulty) check(op Op, path string) error {
	if err, ok := f.faults[fault{op: op, path: path}]; ok {
		return &os.PathError{Op: string(op), Path: path, Err: err}
	}
	return nil
}

func (f *Faulty) Lstat(name string) (os.FileInfo, error) {
	if err := f.check(OpLstat, name); err != nil {
		return nil, err
	}
	return f.FS.Lstat(name)
}

func (f *Faulty) Stat(name string) (os.FileInfo, error) {
	if err := f.check(OpStat, name); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *Faulty) Readlink(name string) (string, error) {
	if err := f.check(OpReadlink, name); err != nil {
		return "", err
	}
	return f.FS.Readlink(name)
}

func (f *Faulty) Symlink(oldname, newname string) error {
	f.Mutations = append(f.Mutations, "symlink "+newname)
	if err := f.check(OpSymlink, newname); err != nil {
		return err
	}
	return f.FS.Symlink(oldname, newname)
}

func (f *Faulty) Remove(name string) error {
	f.Mutations = append(f.Mutations, "remove "+name)
	if err := f.check(OpRemove, name); err != nil {
		return err
	}
	return f.FS.Remove(name)
}
