// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"cogentcore.org/hsla/hsla"
	"github.com/fsnotify/fsnotify"
)

// Watch calls fn with the result of [Open] for the given file, and then
// again every time the file is written or created, until ctx is done.
// The directory of the file is watched so that editors that replace
// the file on save are handled. It returns nil when ctx is done.
func Watch(ctx context.Context, file string, parser *hsla.Parser, fn func(Palette, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("palette.Watch: %w", err)
	}
	defer w.Close()

	file = filepath.Clean(file)
	if err := w.Add(filepath.Dir(file)); err != nil {
		return fmt.Errorf("palette.Watch: %w", err)
	}
	fn(Open(file, parser))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != file || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			slog.Debug("palette changed", "file", file, "op", ev.Op.String())
			fn(Open(file, parser))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("palette watch error", "file", file, "err", err)
		}
	}
}
