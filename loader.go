package stockroom

import (
	"errors"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// DefaultFile is the inventory file path used when the caller has no
// opinion.
const DefaultFile = "inventory.json"

// Load replaces the whole ledger with the mapping stored at path and
// reports whether it succeeded.
//
// When the file does not exist the ledger is reset to empty, a warning
// is emitted, and Load returns false. When the file exists but cannot
// be decoded the ledger keeps its previous contents, an error is
// emitted, and Load returns false. The two failure paths deliberately
// leave the ledger in different states.
func (l *Ledger) Load(path string) bool {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.replace(nil, nil)
		l.log.Warn("inventory file not found, starting empty", zap.String("file", path))
		return false
	}
	if err != nil {
		l.log.Error("cannot open inventory file", zap.String("file", path), zap.Error(err))
		return false
	}
	defer f.Close()

	loaded, err := DecodeInventory(f)
	if err != nil {
		l.log.Error("cannot decode inventory file", zap.String("file", path), zap.Error(err))
		return false
	}

	l.replace(loaded.quantities, loaded.names)
	l.log.Info("loaded inventory", zap.String("file", path), zap.Int("items", l.Len()))
	return true
}

// Save serializes the whole ledger to path as an indented JSON object
// and reports whether it succeeded. The write is in place: a failure
// mid-write can leave a partial file behind.
func (l *Ledger) Save(path string) bool {
	f, err := os.Create(path)
	if err != nil {
		l.log.Error("cannot create inventory file", zap.String("file", path), zap.Error(err))
		return false
	}

	if err := EncodeInventory(f, l); err != nil {
		f.Close()
		l.log.Error("cannot write inventory file", zap.String("file", path), zap.Error(err))
		return false
	}
	if err := f.Close(); err != nil {
		l.log.Error("cannot write inventory file", zap.String("file", path), zap.Error(err))
		return false
	}

	l.log.Info("saved inventory", zap.String("file", path), zap.Int("items", l.Len()))
	return true
}
