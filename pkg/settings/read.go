package settings

import (
	"fmt"
	"strconv"
)

// Option is a resolved key/value passed to the engine before a read
type Option struct {
	Key   string
	Value string
}

// ReadSettings configure how an image is read
type ReadSettings struct {
	// Defines are applied as options before the image is read
	Defines Definer

	// FrameIndex and FrameCount select frames of a multi-frame image
	FrameIndex *int
	FrameCount *int

	Width  *int
	Height *int

	// SyncImageWithExifProfile and SyncImageWithTiffProperties are only
	// emitted when set; the engine treats an unset option as true
	SyncImageWithExifProfile    *bool
	SyncImageWithTiffProperties *bool

	// UseMonochrome selects the monochrome reader (PCL, PDF, PS, XPS)
	UseMonochrome bool
}

// Resolved is the finalized form of ReadSettings
type Resolved struct {
	Options      []Option
	Size         string
	Scenes       string
	Scene        int
	NumberScenes int
	Monochrome   bool
}

// Option returns the value of key and whether it was set
func (r Resolved) Option(key string) (string, bool) {
	for _, o := range r.Options {
		if o.Key == key {
			return o.Value, true
		}
	}
	return "", false
}

// SyncsExifProfile reports whether the exif profile updates image properties
func (s *ReadSettings) SyncsExifProfile() bool {
	return boolOr(s.SyncImageWithExifProfile, true)
}

// SyncsTiffProperties reports whether the tiff properties update image properties
func (s *ReadSettings) SyncsTiffProperties() bool {
	return boolOr(s.SyncImageWithTiffProperties, true)
}

// Finalize resolves the settings. Defines come first, in the order the
// Definer emits them, followed by any sync options that were set.
func (s *ReadSettings) Finalize() (Resolved, error) {
	res := Resolved{Monochrome: s.UseMonochrome}

	if s.Defines != nil {
		defines, err := s.Defines.Defines()
		if err != nil {
			return Resolved{}, fmt.Errorf("resolve defines: %w", err)
		}
		for _, d := range defines {
			res.Options = append(res.Options, Option{Key: d.Key(), Value: d.Value})
		}
	}
	if s.SyncImageWithExifProfile != nil {
		res.Options = append(res.Options, Option{Key: "exif:sync-image", Value: strconv.FormatBool(*s.SyncImageWithExifProfile)})
	}
	if s.SyncImageWithTiffProperties != nil {
		res.Options = append(res.Options, Option{Key: "tiff:sync-image", Value: strconv.FormatBool(*s.SyncImageWithTiffProperties)})
	}

	res.Size = s.size()

	if s.FrameIndex != nil || s.FrameCount != nil {
		res.Scenes = s.scenes()
		res.Scene = intOr(s.FrameIndex, 0)
		res.NumberScenes = intOr(s.FrameCount, 1)
	}
	return res, nil
}

func (s *ReadSettings) size() string {
	switch {
	case s.Width != nil && s.Height != nil:
		return fmt.Sprintf("%dx%d", *s.Width, *s.Height)
	case s.Width != nil:
		return fmt.Sprintf("%dx", *s.Width)
	case s.Height != nil:
		return fmt.Sprintf("x%d", *s.Height)
	}
	return ""
}

func (s *ReadSettings) scenes() string {
	single := s.FrameCount == nil || *s.FrameCount == 1
	if s.FrameIndex == nil && single {
		return ""
	}
	if s.FrameIndex != nil && single {
		return strconv.Itoa(*s.FrameIndex)
	}
	frame := intOr(s.FrameIndex, 0)
	count := intOr(s.FrameCount, 1)
	return fmt.Sprintf("%d-%d", frame, frame+count)
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
