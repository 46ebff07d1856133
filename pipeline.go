package gbamap

import (
	"context"
	"errors"
	"path/filepath"
	"sync"

	"github.com/bodgit/gbamap/tileset"
)

const scanWorkers = 4

// Scan catalogues every layout in the table: its dimensions plus the
// checksum of each backing asset file. Checksumming is IO bound so
// layouts are spread across a small worker pool.
func (r *Renderer) Scan(db *CatalogDB, layouts []Layout) error {
	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	in, errc := r.findLayouts(ctx, layouts)
	errcList = append(errcList, errc)

	for i := 0; i < scanWorkers; i++ {
		errcList = append(errcList, r.layoutWorker(ctx, db, in))
	}

	return waitForPipeline(errcList...)
}

func (r *Renderer) findLayouts(ctx context.Context, layouts []Layout) (<-chan Layout, <-chan error) {
	out := make(chan Layout)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		for _, l := range layouts {
			select {
			case out <- l:
			case <-ctx.Done():
				errc <- errors.New("scan cancelled")
				return
			}
		}
	}()
	return out, errc
}

// assetPaths lists every file whose checksum describes the layout: the
// map and border data plus both tilesets' binary and image assets.
func (r *Renderer) assetPaths(l Layout) []string {
	paths := []string{
		filepath.Join(r.root, l.BlockdataFilepath),
		filepath.Join(r.root, l.BorderFilepath),
	}

	primaryDir, secondaryDir := r.tilesetDirs(l)
	paths = append(paths, tileset.AssetPaths(primaryDir)...)
	paths = append(paths, tileset.AssetPaths(secondaryDir)...)

	return paths
}

func (r *Renderer) layoutWorker(ctx context.Context, db *CatalogDB, in <-chan Layout) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for l := range in {
			id, err := db.AddLayout(l)
			if err != nil {
				errc <- err
				return
			}

			for _, path := range r.assetPaths(l) {
				crc, err := crcFile(path)
				if err != nil {
					// Incomplete asset trees are common, note and move on
					r.logger.Printf("skipping %s: %v", path, err)
					continue
				}

				rel, err := filepath.Rel(r.root, path)
				if err != nil {
					rel = path
				}

				if err := db.AddAsset(id, rel, crc); err != nil {
					errc <- err
					return
				}
			}
		}
	}()
	return errc
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}
