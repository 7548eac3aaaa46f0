package state

import (
	"errors"
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// NotesChangedMsg reports that the notes file was replaced on disk, for
// example by a CLI command running in another terminal.
type NotesChangedMsg struct {
	Path string
}

type NotesWatcherErrMsg struct {
	Err error
}

// NotesWatcher watches a single file in the storage directory. The
// directory is watched rather than the file because atomic writes replace
// the inode.
type NotesWatcher struct {
	watcher *fsnotify.Watcher
	dir     string
	file    string
	done    chan struct{}
	once    sync.Once
	onClose func()
}

func NewNotesWatcher(dir, file string) (*NotesWatcher, error) {
	if dir == "" || file == "" {
		return nil, errors.New("watch directory and file cannot be empty")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	return &NotesWatcher{
		watcher: w,
		dir:     filepath.Clean(dir),
		file:    file,
		done:    make(chan struct{}),
	}, nil
}

// Start waits for the next relevant event. The TUI calls it again after
// every message it returns.
func (w *NotesWatcher) Start() tea.Cmd {
	if w == nil {
		return nil
	}

	return func() tea.Msg {
		for {
			select {
			case <-w.done:
				return nil
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}
				if !w.isRelevant(event) {
					continue
				}
				return NotesChangedMsg{Path: event.Name}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil {
					return NotesWatcherErrMsg{Err: err}
				}
			}
		}
	}
}

func (w *NotesWatcher) isRelevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Clean(filepath.Dir(event.Name)) == w.dir &&
		filepath.Base(event.Name) == w.file
}

// OnClose registers a callback that is invoked exactly once when the watcher
// shuts down.
func (w *NotesWatcher) OnClose(fn func()) {
	if w == nil {
		return
	}
	w.onClose = fn
}

func (w *NotesWatcher) Close() error {
	if w == nil {
		return nil
	}

	var closeErr error
	w.once.Do(func() {
		close(w.done)
		closeErr = w.watcher.Close()
		if w.onClose != nil {
			w.onClose()
		}
	})

	return closeErr
}
