package util

import (
	"dirdiff/internal/logging"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

type FileWatcher struct {
	RootPath   string
	stop       chan bool
	actionLock sync.Mutex
	watcher    *fsnotify.Watcher
	newEvent   *fsnotify.Event
}

func NewFileWatcher(path string) *FileWatcher {
	return &FileWatcher{
		RootPath:   path,
		stop:       make(chan bool),
		actionLock: sync.Mutex{},
	}
}

func (fileWatcher *FileWatcher) Stop() {
	go func() {
		fileWatcher.stop <- true
	}()
}

// WatchRecursive watches all files and folders below the root path and calls
// action with the path of the last event. Events are debounced so that a burst
// of filesystem changes triggers a single action call.
func (fileWatcher *FileWatcher) WatchRecursive(action func(s string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	fileWatcher.watcher = watcher

	// starting at the root of the tree, walk each file/directory searching for directories
	if err := filepath.Walk(fileWatcher.RootPath, fileWatcher.addFolderWatch); err != nil {
		return err
	}

	t := time.NewTicker(1 * time.Second)

	go func() {
		for {
			select {
			case <-t.C:
				if fileWatcher.newEvent == nil {
					continue
				}

				fileWatcher.actionLock.Lock()
				event := fileWatcher.newEvent
				fileWatcher.newEvent = nil
				action(event.Name)
				fileWatcher.actionLock.Unlock()
			// watch for events
			case event, ok := <-fileWatcher.watcher.Events:
				if !ok {
					return
				}
				fileWatcher.newEvent = &event
			// watch for errors
			case err := <-fileWatcher.watcher.Errors:
				if err != nil {
					logging.Error(err.Error())
				}
			case <-fileWatcher.stop:
				t.Stop()
				err := fileWatcher.watcher.Close()
				if err != nil {
					logging.Error(err.Error())
				}
				return
			}
		}
	}()
	return nil
}

// adds a path to the watcher
func (fileWatcher *FileWatcher) addFolderWatch(path string, fi os.FileInfo, err error) error {
	// since fsnotify can watch all the files in a directory, watchers only need
	// to be added to each nested directory
	if err != nil {
		return err
	}

	if fi.Mode().IsDir() {
		return fileWatcher.watcher.Add(path)
	}

	return nil
}
