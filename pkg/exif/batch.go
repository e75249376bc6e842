package exif

import (
	"context"
	"os"

	"golang.org/x/sync/errgroup"
)

// FileResult is the outcome of decoding one file
type FileResult struct {
	Path    string
	Profile *Profile
	// Diagnostics lists what the decoder skipped; it is never fatal
	Diagnostics error
	// Err is set when the file could not be read
	Err error
}

// ReadFiles decodes files with at most workers reads in flight (unbounded
// when workers <= 0). Results keep the order of paths. Unreadable files are
// reported in their result; only a cancelled context fails the batch.
func (d *Decoder) ReadFiles(ctx context.Context, paths []string, workers int) ([]FileResult, error) {
	results := make([]FileResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = d.readFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func (d *Decoder) readFile(path string) FileResult {
	res := FileResult{Path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = err
		return res
	}
	res.Profile, res.Diagnostics = d.Decode(data)
	return res
}
