package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/KaramelBytes/colstat-cli/internal/utils"
	"github.com/google/uuid"
)

const (
	workspaceFileName = "workspace.json"
)

// Workspace is a named collection of saved analysis reports persisted on disk.
type Workspace struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Reports     map[string]*Report `json:"reports"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`

	// Not serialized: on-disk location of the workspace.json
	rootDir string `json:"-"`
}

// NewWorkspace constructs an in-memory workspace. Call Save() to persist.
func NewWorkspace(name, description, rootDir string) *Workspace {
	return &Workspace{
		Name:        name,
		Description: description,
		Reports:     make(map[string]*Report),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		rootDir:     rootDir,
	}
}

// LoadWorkspace loads a workspace.json from the provided directory.
func LoadWorkspace(dir string) (*Workspace, error) {
	path := filepath.Join(dir, workspaceFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("workspace not found at %s: %w", path, err)
		}
		return nil, fmt.Errorf("read workspace: %w", err)
	}
	var w Workspace
	if err := json.Unmarshal(b, &w); err != nil {
		return nil, fmt.Errorf("parse workspace: %w", err)
	}
	w.rootDir = dir
	return &w, nil
}

// RootDir returns the on-disk workspace directory path.
func (w *Workspace) RootDir() string { return w.rootDir }

// Save writes workspace.json using atomic write.
func (w *Workspace) Save() error {
	if w.rootDir == "" {
		return errors.New("workspace root directory not set")
	}
	if err := utils.EnsureDir(w.rootDir); err != nil {
		return fmt.Errorf("ensure dir: %w", err)
	}
	w.UpdatedAt = time.Now()
	data, err := utils.PrettyJSON(w)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(filepath.Join(w.rootDir, workspaceFileName), data)
}

// AddReport records a saved report file in the workspace metadata.
// source is the analyzed input path, path the on-disk report file.
func (w *Workspace) AddReport(source, path, description string, columns int) (*Report, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat report: %w", err)
	}
	r := &Report{
		ID:          uuid.NewString(),
		Source:      source,
		Path:        path,
		Name:        filepath.Base(path),
		Description: description,
		Columns:     columns,
		AddedAt:     time.Now(),
	}
	if w.Reports == nil {
		w.Reports = make(map[string]*Report)
	}
	w.Reports[r.ID] = r
	w.UpdatedAt = time.Now()
	return r, nil
}

// RemoveReport deletes a report entry by ID. The report file itself is left
// on disk.
func (w *Workspace) RemoveReport(id string) error {
	if _, ok := w.Reports[id]; !ok {
		return fmt.Errorf("report %s not found in workspace %s", id, w.Name)
	}
	delete(w.Reports, id)
	w.UpdatedAt = time.Now()
	return nil
}

// SortedReports returns the reports ordered by AddedAt, then ID, for stable
// listings.
func (w *Workspace) SortedReports() []*Report {
	out := make([]*Report, 0, len(w.Reports))
	for _, r := range w.Reports {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AddedAt.Equal(out[j].AddedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].AddedAt.Before(out[j].AddedAt)
	})
	return out
}
