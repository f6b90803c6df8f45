package agent

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mwantia/fabric/pkg/container"
	config "github.com/mwantia/tagsift/internal/config/server"
	"github.com/mwantia/tagsift/pkg/db/migrations"
	"github.com/mwantia/tagsift/pkg/db/store"
	"github.com/mwantia/tagsift/pkg/filter"
	"github.com/mwantia/tagsift/pkg/log"
	"github.com/mwantia/tagsift/pkg/pipeline"
)

type TagsiftAgent struct {
	mutex sync.RWMutex
	wait  sync.WaitGroup

	cfg   *config.BaseServerConfig
	sc    *container.ServiceContainer
	log   log.LoggerService
	store *store.SQLiteStore
}

func NewAgent(cfg *config.BaseServerConfig) *TagsiftAgent {
	return &TagsiftAgent{
		cfg: cfg,
		sc:  container.NewServiceContainer(),
		log: log.NewLoggerService("tagsift", cfg.Log),
	}
}

func (ta *TagsiftAgent) setupServices() error {
	errs := container.Errors{}

	ta.log.Debug("Registering 'LoggerService'...")
	errs.Add(container.Register[log.LoggerServiceImpl](ta.sc,
		container.With[log.LoggerService](),
		container.WithInstance(ta.log)))

	st, err := store.NewSQLiteStore(store.SQLiteConfig{
		Path: ta.cfg.Store.SQLite.Path,
	})
	if err != nil {
		errs.Add(err)
		return errs.Errors()
	}
	ta.store = st

	ta.log.Debug("Registering 'ConfigStore'...")
	errs.Add(container.Register[store.SQLiteStore](ta.sc,
		container.With[store.ConfigStore](),
		container.WithInstance(st)))

	return errs.Errors()
}

func (ta *TagsiftAgent) Serve(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	ta.mutex.Lock()

	if err := ta.setupServices(); err != nil {
		ta.mutex.Unlock()
		return err
	}

	if err := ta.store.Connect(ctx); err != nil {
		ta.mutex.Unlock()
		return fmt.Errorf("failed to connect configuration store: %w", err)
	}
	if err := migrations.NewMigrator(ta.store.DB()).Migrate(ctx); err != nil {
		ta.mutex.Unlock()
		return fmt.Errorf("failed to migrate configuration store: %w", err)
	}

	ta.mutex.Unlock()

	if ta.cfg.Watch.Input != "" {
		ta.wait.Add(1)
		go func() {
			defer ta.wait.Done()
			if err := ta.watch(ctx); err != nil {
				ta.log.Error("Watch loop stopped: %v", err)
			}
		}()
	} else {
		ta.log.Warn("No watch input configured, agent is idle")
	}

	<-ctx.Done()

	timeout, err := time.ParseDuration(ta.cfg.ShutdownTimeout)
	if err != nil {
		// Set default of 60 seconds if error
		timeout = 60 * time.Second
	}

	shutdown, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := ta.sc.Cleanup(shutdown); err != nil {
		return fmt.Errorf("failed to complete service container cleanup: %w", err)
	}

	if err := ta.store.Close(); err != nil {
		ta.log.Error("Failed to close configuration store: %v", err)
	}

	ta.wait.Wait()
	return nil
}

// watch converts the input file on every change. The parent directory is
// watched because editors tend to replace files instead of writing in place.
func (ta *TagsiftAgent) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	input := ta.cfg.Watch.Input
	if err := watcher.Add(filepath.Dir(input)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", input, err)
	}

	ta.log.Info("Watching %s", input)

	if _, err := os.Stat(input); err == nil {
		ta.convertFile(ctx, input)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != input {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			ta.convertFile(ctx, input)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			ta.log.Warn("Watcher error: %v", err)
		}
	}
}

func (ta *TagsiftAgent) convertFile(ctx context.Context, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		ta.log.Warn("Failed to read %s: %v", path, err)
		return
	}

	cfg, err := ta.store.LoadConfig(ctx)
	if err != nil {
		ta.log.Warn("Failed to load filter configuration, using defaults: %v", err)
		cfg = filter.DefaultConfig()
	}

	conv := pipeline.NewConverter(ta.log.Named("pipeline"), filter.NewEngine(cfg))
	tags := conv.Convert(string(data))
	status := conv.Status()

	if status.Error != "" {
		ta.log.Error("Conversion of %s failed: %s", path, status.Error)
		return
	}

	if ta.cfg.Watch.Output != "" {
		line := strings.Join(tags, ", ") + "\n"
		if err := os.WriteFile(ta.cfg.Watch.Output, []byte(line), 0644); err != nil {
			ta.log.Error("Failed to write %s: %v", ta.cfg.Watch.Output, err)
			return
		}
	}

	ta.log.Info("Converted %s: format=%s tags=%d filtered=%d simplified=%d",
		path, status.Format, status.TagCount, status.TotalFiltered, status.TotalSimplified)
}
