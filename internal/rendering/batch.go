package rendering

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/swingtrack/swing-pose/internal/poses"
	"github.com/swingtrack/swing-pose/internal/projection"
	"github.com/swingtrack/swing-pose/internal/skeleton"
)

// BatchOptions describe a render of every pose in a dataset.
type BatchOptions struct {
	OutDir      string
	Camera      projection.Camera
	Viewport    projection.Viewport
	Grid        projection.GridConfig
	Concurrency int
}

// FileName is the output file name for one pose, e.g. P4_left.png.
func FileName(position skeleton.PPosition, handedness skeleton.Handedness) string {
	return fmt.Sprintf("%s_%s.png", position, handedness)
}

// RenderAll writes one PNG per pose into opts.OutDir, at most opts.Concurrency at a time.
// The first failure cancels the remaining renders. Written paths are returned sorted.
func (r *Renderer) RenderAll(ctx context.Context, dataset *poses.Dataset, opts BatchOptions) ([]string, error) {
	if dataset == nil {
		return nil, &RenderError{Message: "dataset is nil"}
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, &RenderError{Message: "failed to create output directory", Cause: err}
	}

	type job struct {
		position   skeleton.PPosition
		handedness skeleton.Handedness
		pose       poses.Pose
	}
	jobs := make([]job, 0, len(skeleton.PositionOrder)*len(skeleton.HandednessOrder))
	for _, position := range skeleton.PositionOrder {
		for _, handedness := range skeleton.HandednessOrder {
			pose, ok := dataset.Pose(position, handedness)
			if !ok {
				return nil, &RenderError{
					Message:    "pose missing from dataset",
					Position:   string(position),
					Handedness: string(handedness),
				}
			}
			jobs = append(jobs, job{position: position, handedness: handedness, pose: pose})
		}
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Concurrency, 1))

	var (
		mu    sync.Mutex
		paths = make([]string, 0, len(jobs))
	)

	for _, j := range jobs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			path := filepath.Join(opts.OutDir, FileName(j.position, j.handedness))
			if err := r.renderFile(path, j.pose, opts); err != nil {
				return &RenderError{
					Message:    "failed to render " + path,
					Position:   string(j.position),
					Handedness: string(j.handedness),
					Cause:      err,
				}
			}

			r.logger.Debug().
				Str("position", string(j.position)).
				Str("handedness", string(j.handedness)).
				Str("path", path).
				Msg("pose rendered")

			mu.Lock()
			paths = append(paths, path)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.Sort(paths)
	return paths, nil
}

func (r *Renderer) renderFile(path string, pose poses.Pose, opts BatchOptions) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return r.RenderPose(f, pose, opts.Camera, opts.Viewport, opts.Grid)
}
