package exiftool

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ytget/metadata-editor/internal/model"
)

// ExifTool arguments for stripping metadata
const (
	DeleteAllTagsArg     = "-all="
	OverwriteOriginalArg = "-overwrite_original"
)

// JSONOutputArg is what the tag extractor asks the tool for
const JSONOutputArg = "-j"

// Display texts
const (
	NoMetadataText       = "No metadata found."
	RemovedText          = "Metadata removed successfully."
	ReadErrorPrefix      = "Error reading metadata: "
	RemoveErrorPrefix    = "Error removing metadata: "
	InvocationIDPrefix   = "exif-"
	DefaultHistoryLength = 100
)

// Service invokes the external tool and keeps the session history
type Service struct {
	toolPath      string
	runner        Runner
	tags          TagExtractor
	history       []*model.Invocation
	historyMutex  sync.RWMutex
	historyLength int
	onUpdate      func(*model.Invocation) // callback for UI updates
}

// NewService creates a metadata service for the tool at toolPath
func NewService(toolPath string, runner Runner) *Service {
	if runner == nil {
		runner = NewExecRunner()
	}
	return &Service{
		toolPath:      toolPath,
		runner:        runner,
		tags:          NewTagReader(toolPath),
		historyLength: DefaultHistoryLength,
	}
}

// SetUpdateCallback sets the callback function for invocation updates
func (s *Service) SetUpdateCallback(callback func(*model.Invocation)) {
	s.onUpdate = callback
}

// SetTagExtractor replaces the extractor used by ReadTags
func (s *Service) SetTagExtractor(tags TagExtractor) {
	s.tags = tags
}

// ToolPath returns the executable the service runs
func (s *Service) ToolPath() string {
	return s.toolPath
}

// BuildReadArgs builds the arguments for printing all metadata of path
func (s *Service) BuildReadArgs(path string) []string {
	return []string{path}
}

// BuildStripArgs builds the arguments for deleting every tag of path in place
func (s *Service) BuildStripArgs(path string) []string {
	return []string{
		DeleteAllTagsArg,     // delete all writable tags
		OverwriteOriginalArg, // no _original backup copy
		path,
	}
}

// BuildTagArgs returns the arguments the tag extractor sends for path
func (s *Service) BuildTagArgs(path string) []string {
	return []string{JSONOutputArg, path}
}

// ReadMetadata runs the tool on path and returns its standard output as text.
// Empty output yields NoMetadataText.
func (s *Service) ReadMetadata(ctx context.Context, path string) model.Result {
	if path == "" {
		return model.Failed(ReadErrorPrefix, ErrNoFile)
	}

	out, err := s.invoke(ctx, model.OperationRead, path, s.BuildReadArgs(path))
	if err != nil {
		return model.Failed(ReadErrorPrefix, err)
	}

	if len(out.Stdout) == 0 {
		return model.Success(NoMetadataText)
	}
	return model.Success(string(out.Stdout))
}

// StripMetadata deletes all metadata from path, overwriting the original.
// The exit code of the tool is not inspected.
func (s *Service) StripMetadata(ctx context.Context, path string) model.Result {
	if path == "" {
		return model.Failed(RemoveErrorPrefix, ErrNoFile)
	}

	if _, err := s.invoke(ctx, model.OperationStrip, path, s.BuildStripArgs(path)); err != nil {
		return model.Failed(RemoveErrorPrefix, err)
	}
	return model.Success(RemovedText)
}

// ReadTags returns the tags of path from the tag extractor. The call is
// recorded in the history like a direct tool run.
func (s *Service) ReadTags(ctx context.Context, path string) (map[string]string, error) {
	if path == "" {
		return nil, ErrNoFile
	}

	var tags map[string]string
	_, err := s.track(model.OperationTags, path, s.BuildTagArgs(path), func() (RunOutput, error) {
		var err error
		tags, err = s.tags.ReadTags(path)
		if err != nil {
			return RunOutput{ExitCode: -1}, err
		}
		return RunOutput{ExitCode: 0}, nil
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// History returns the recorded invocations, most recent first
func (s *Service) History() []*model.Invocation {
	s.historyMutex.RLock()
	defer s.historyMutex.RUnlock()

	items := make([]*model.Invocation, 0, len(s.history))
	for i := len(s.history) - 1; i >= 0; i-- {
		inv := *s.history[i]
		items = append(items, &inv)
	}
	return items
}

// invoke runs the tool and records the invocation
func (s *Service) invoke(ctx context.Context, op model.Operation, path string, args []string) (RunOutput, error) {
	return s.track(op, path, args, func() (RunOutput, error) {
		return s.runner.Run(ctx, s.toolPath, args...)
	})
}

// track records an invocation around run and publishes its progress
func (s *Service) track(op model.Operation, path string, args []string, run func() (RunOutput, error)) (RunOutput, error) {
	inv := s.record(op, path, args)

	log.Printf("Using ExifTool from: %s", s.toolPath)
	log.Printf("Invocation %s started: op=%s args=%v", inv.ID, op, args)

	out, err := run()

	s.historyMutex.Lock()
	inv.FinishedAt = time.Now()
	inv.ExitCode = out.ExitCode
	if err != nil {
		inv.Status = model.StatusError
		inv.LastError = err.Error()
	} else {
		inv.Status = model.StatusCompleted
	}
	snapshot := *inv
	s.historyMutex.Unlock()

	if err != nil {
		log.Printf("Invocation %s failed: %v", inv.ID, err)
	} else {
		log.Printf("Invocation %s finished: exit=%d stdout=%dB stderr=%dB",
			inv.ID, out.ExitCode, len(out.Stdout), len(out.Stderr))
	}

	s.notifyUpdate(&snapshot)
	return out, err
}

// record appends a running invocation to the history
func (s *Service) record(op model.Operation, path string, args []string) *model.Invocation {
	inv := &model.Invocation{
		ID:        generateInvocationID(),
		Op:        op,
		Path:      path,
		Tool:      s.toolPath,
		Args:      append([]string(nil), args...),
		Status:    model.StatusRunning,
		ExitCode:  -1,
		StartedAt: time.Now(),
	}

	s.historyMutex.Lock()
	s.history = append(s.history, inv)
	if len(s.history) > s.historyLength {
		s.history = s.history[len(s.history)-s.historyLength:]
	}
	snapshot := *inv
	s.historyMutex.Unlock()

	s.notifyUpdate(&snapshot)
	return inv
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(inv *model.Invocation) {
	if s.onUpdate != nil {
		s.onUpdate(inv)
	}
}

// generateInvocationID generates a unique, time-ordered invocation ID
func generateInvocationID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(InvocationIDPrefix+"%d", time.Now().UnixNano())
	}
	return InvocationIDPrefix + id.String()
}
