package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/go-shparse/shparse/internal/flags"
	"github.com/go-shparse/shparse/internal/fsnotifyext"
	"github.com/go-shparse/shparse/internal/hash"
	"github.com/go-shparse/shparse/internal/logger"
)

const defaultWaitTime = 100 * time.Millisecond

// watch renders every file once, then re-renders a file each time it
// changes on disk. Events that leave the content byte-identical (as
// editors that touch files tend to produce) are skipped by comparing
// content hashes.
func (a *app) watch(files []string) error {
	hashes := make(map[string]string, len(files))
	for _, file := range files {
		if err := a.watchRender(file, hashes); err != nil {
			return err
		}
	}

	waitTime := defaultWaitTime
	if flags.Interval != 0 {
		waitTime = flags.Interval
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	for _, file := range files {
		if err := w.Add(file); err != nil {
			return err
		}
	}

	a.log.Errf(logger.Green, "shparse: Started watching: %s", files)
	closeOnInterrupt(w)

	events := fsnotifyext.NewDeduper(w, waitTime).GetChan()
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return nil
			}
			a.log.VerboseErrf(logger.Magenta, "shparse: received watch event: %v", event)
			if event.Has(fsnotify.Remove) {
				continue
			}
			if err := a.watchRender(event.Name, hashes); err != nil {
				a.log.Errf(logger.Red, "%v", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.log.Errf(logger.Red, "%v", err)
		}
	}
}

// watchRender renders file unless its content hash is unchanged.
func (a *app) watchRender(file string, hashes map[string]string) error {
	src, err := readScript(file)
	if err != nil {
		return err
	}
	sum := hash.Content(src)
	if hashes[file] == sum {
		a.log.VerboseErrf(logger.Magenta, "shparse: content unchanged, skipping: %s", file)
		return nil
	}
	hashes[file] = sum

	if !flags.Silent {
		a.log.Outf(logger.Green, "== %s", file)
	}
	return a.render(file, src)
}

func closeOnInterrupt(w *fsnotify.Watcher) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ch
		w.Close()
	}()
}
