// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"cogentcore.org/linkdiagram/base/errors"
	"cogentcore.org/linkdiagram/diagram"
	"cogentcore.org/linkdiagram/driver/ebitengine"
	"cogentcore.org/linkdiagram/graph"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newViewCommand(fl *flags) *cobra.Command {
	var watch, drag bool
	cmd := &cobra.Command{
		Use:   "view <data>",
		Short: "Open a window showing the diagram of a graph data file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := fl.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("drag") {
				c.Picking.DragNodes = drag
			}
			v := &viewer{game: ebitengine.NewGame(), opts: c.Options(), path: args[0]}
			if err := v.load(); err != nil {
				return err
			}
			if watch {
				w, err := newWatcher(v.path, func() { v.game.Post(v.reload) })
				if err != nil {
					return err
				}
				defer w.Close()
			}
			defer v.teardown()
			win := ebitengine.Window{Title: c.Window.Title, Width: c.Window.Width, Height: c.Window.Height, VSync: c.Window.VSync}
			win.Title = fmt.Sprintf("%s: %s", win.Title, filepath.Base(v.path))
			return ebitengine.Run(v.game, win)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the diagram when the data file changes")
	cmd.Flags().BoolVar(&drag, "drag", false, "drag nodes instead of panning")
	return cmd
}

// viewer is the diagram shown in a game window.
type viewer struct {
	game    *ebitengine.Game
	opts    diagram.Options
	path    string
	diagram *diagram.Diagram
}

// load replaces the current diagram with a new one from the data file.
// It must be called on the game thread once the game runs.
func (v *viewer) load() error {
	data, err := graph.Open(v.path)
	if err != nil {
		return err
	}
	if size := v.game.Size(); size.X > 0 && size.Y > 0 {
		v.opts.Size = size
	}
	d, err := diagram.New(data, v.game.Renderer, v.opts)
	if err != nil {
		return err
	}
	v.teardown()
	v.diagram = d
	v.game.SetHandler(d)
	d.Start(v.game)
	slog.Info("loaded diagram", "path", v.path, "nodes", len(d.Graph.Nodes), "links", len(d.Graph.Links))
	return nil
}

// reload loads the data file again, keeping the current diagram on error.
func (v *viewer) reload() {
	errors.Log(v.load())
}

func (v *viewer) teardown() {
	if v.diagram != nil {
		v.diagram.Teardown()
		v.diagram = nil
	}
}

// watcher calls a function when a file is written, coalescing
// the events of a burst of writes.
type watcher struct {
	fsw   *fsnotify.Watcher
	done  chan struct{}
	delay time.Duration
}

// newWatcher watches the directory of the file, so that editors
// that replace the file by renaming are seen too.
func newWatcher(path string, changed func()) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}
	w := &watcher{fsw: fsw, done: make(chan struct{}), delay: 100 * time.Millisecond}
	go w.run(abs, changed)
	return w, nil
}

func (w *watcher) run(path string, changed func()) {
	var timer *time.Timer
	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			slog.Debug("data file changed", "path", ev.Name, "op", ev.Op)
			if timer == nil {
				timer = time.AfterFunc(w.delay, changed)
			} else {
				timer.Reset(w.delay)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Error("watching data file", "err", err)
		}
	}
}

// Close stops watching.
func (w *watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
