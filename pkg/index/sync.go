// pkg/index/sync.go
package index

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

const (
	// RepoBranch is the branch synced from the rules repository
	RepoBranch = "main"
	// RulesDir is the directory of the repository holding the rules
	RulesDir = "rules"
)

// CloneFunc fetches url into dir
type CloneFunc func(ctx context.Context, dir, url string) error

// Syncer refreshes a local rules directory from a git repository
type Syncer struct {
	URL    string
	Logger *log.Logger
	clone  CloneFunc
}

// NewSyncer creates a Syncer that shallow-clones url with go-git
func NewSyncer(url string, logger *log.Logger) *Syncer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Syncer{URL: url, Logger: logger, clone: shallowClone}
}

// Sync clones the repository and replaces dst with its rules directory
func (s *Syncer) Sync(ctx context.Context, dst string) error {
	tempDir, err := os.MkdirTemp("", "sysdeps-clone-*")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	s.Logger.Info("updating rules", "url", s.URL, "branch", RepoBranch)
	if err := s.clone(ctx, tempDir, s.URL); err != nil {
		return fmt.Errorf("git clone failed: %w", err)
	}

	src := filepath.Join(tempDir, RulesDir)
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("repository %s has no %s directory", s.URL, RulesDir)
	}

	staging := dst + ".new"
	if err := os.RemoveAll(staging); err != nil {
		return err
	}
	if err := copyDir(src, staging); err != nil {
		os.RemoveAll(staging)
		return fmt.Errorf("copying rules: %w", err)
	}
	if err := os.RemoveAll(dst); err != nil {
		return fmt.Errorf("removing old rules: %w", err)
	}
	if err := os.Rename(staging, dst); err != nil {
		return fmt.Errorf("installing rules: %w", err)
	}

	s.Logger.Info("rules updated", "path", dst)
	return nil
}

func shallowClone(ctx context.Context, dir, url string) error {
	_, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:           url,
		ReferenceName: plumbing.NewBranchReferenceName(RepoBranch),
		SingleBranch:  true,
		Depth:         1,
	})
	return err
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

func copyDir(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, 0755); err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}

	return nil
}
