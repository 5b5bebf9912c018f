package exiftool

import (
	"context"

	"github.com/ytget/metadata-editor/internal/model"
)

// Inspector defines the interface for the metadata service.
type Inspector interface {
	SetUpdateCallback(func(*model.Invocation))
	ToolPath() string
	ReadMetadata(ctx context.Context, path string) model.Result
	StripMetadata(ctx context.Context, path string) model.Result
	ReadTags(ctx context.Context, path string) (map[string]string, error)
	History() []*model.Invocation
}

// Runner executes the tool binary and captures its output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (RunOutput, error)
}

// TagExtractor returns the tags of a file as a flat key/value map.
type TagExtractor interface {
	ReadTags(path string) (map[string]string, error)
}
