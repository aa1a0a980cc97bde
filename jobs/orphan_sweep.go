package jobs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"comfyinn-backend/services"
)

// DefaultOrphanMinAge keeps fresh uploads that a form has not saved yet.
const DefaultOrphanMinAge = time.Hour

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// OrphanSweeper removes files in the local upload directory that no record's
// image_url points to.
type OrphanSweeper struct {
	DB     *gorm.DB
	Store  *services.LocalImageStore
	MinAge time.Duration
}

func NewOrphanSweeper(db *gorm.DB, store *services.LocalImageStore) *OrphanSweeper {
	return &OrphanSweeper{DB: db, Store: store, MinAge: DefaultOrphanMinAge}
}

// Start schedules the sweep and starts the scheduler. Stop it on shutdown.
func (s *OrphanSweeper) Start(schedule string) (*cron.Cron, error) {
	sched := cron.New(cron.WithParser(cronParser))
	_, err := sched.AddFunc(schedule, func() {
		defer func() {
			if err := recover(); err != nil {
				zap.S().Error(err)
			}
		}()
		removed, err := s.Sweep(context.Background())
		if err != nil {
			zap.S().Errorf("orphan image sweep error %s", err.Error())
			return
		}
		if removed > 0 {
			zap.S().Infof("orphan image sweep removed %d files", removed)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule orphan sweep %q: %w", schedule, err)
	}
	sched.Start()
	return sched, nil
}

// Sweep deletes unreferenced upload files older than MinAge and reports how
// many were removed.
func (s *OrphanSweeper) Sweep(ctx context.Context) (int, error) {
	referenced, err := s.referencedPaths(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-s.MinAge)
	removed := 0
	err = filepath.WalkDir(s.Store.Dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if os.IsNotExist(walkErr) {
				return nil
			}
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := referenced[filepath.Clean(path)]; ok {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.ModTime().After(cutoff) {
			return nil
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			zap.L().Warn("failed to remove orphan image", zap.String("path", path), zap.Error(err))
			return nil
		}
		removed++
		return nil
	})
	return removed, err
}

func (s *OrphanSweeper) referencedPaths(ctx context.Context) (map[string]struct{}, error) {
	urls, err := services.ImageURLs(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	paths := make(map[string]struct{}, len(urls))
	for _, url := range urls {
		if path, ok := s.Store.PathFromURL(url); ok {
			paths[filepath.Clean(path)] = struct{}{}
		}
	}
	return paths, nil
}
