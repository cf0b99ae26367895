package services

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"praise-board/internal/logger"

	"github.com/fsnotify/fsnotify"
)

const localeReloadDelay = 200 * time.Millisecond

// LocaleWatcher reloads the translator when the active locale file changes on
// disk. The directory is watched rather than the file so that editors which
// save through a rename are noticed.
type LocaleWatcher struct {
	translator *Translator
	logger     logger.Logger
	onReload   func(error)

	watcher  *fsnotify.Watcher
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewLocaleWatcher prepares a watcher; onReload runs on the watcher goroutine
// after each reload attempt.
func NewLocaleWatcher(translator *Translator, log logger.Logger, onReload func(error)) *LocaleWatcher {
	return &LocaleWatcher{
		translator: translator,
		logger:     log,
		onReload:   onReload,
		done:       make(chan struct{}),
	}
}

func (lw *LocaleWatcher) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create locale watcher: %w", err)
	}
	if err := watcher.Add(lw.translator.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", lw.translator.dir, err)
	}
	lw.watcher = watcher

	lw.wg.Add(1)
	go lw.run()

	lw.logger.Debug("LocaleWatcher", "watching locales", map[string]interface{}{"dir": lw.translator.dir})
	return nil
}

func (lw *LocaleWatcher) run() {
	defer lw.wg.Done()

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)

	for {
		select {
		case event, ok := <-lw.watcher.Events:
			if !ok {
				return
			}
			if !lw.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(localeReloadDelay)
			} else {
				timer.Reset(localeReloadDelay)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			err := lw.translator.Reload()
			if err != nil {
				lw.logger.Error("LocaleWatcher", err, nil)
			} else {
				lw.logger.Info("LocaleWatcher", "locale reloaded", map[string]interface{}{"language": string(lw.translator.Language())})
			}
			if lw.onReload != nil {
				lw.onReload(err)
			}

		case err, ok := <-lw.watcher.Errors:
			if !ok {
				return
			}
			lw.logger.Error("LocaleWatcher", err, nil)

		case <-lw.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (lw *LocaleWatcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	active := lw.translator.LocaleFile(lw.translator.Language())
	return filepath.Clean(event.Name) == filepath.Clean(active)
}

// Shutdown stops the watcher goroutine and releases the OS watch
func (lw *LocaleWatcher) Shutdown() {
	lw.stopOnce.Do(func() {
		close(lw.done)
		if lw.watcher != nil {
			lw.watcher.Close()
		}
		lw.wg.Wait()
	})
}
