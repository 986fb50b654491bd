package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	m "autotestfix.dev/pkg/autotestfix/internal/model"
)

// Location reference schemes understood by LocalDocumentAccess.
const (
	JavaTestScheme  = "java:test://"
	JavaSuiteScheme = "java:suite://"
	FileScheme      = "file://"
)

// ProjectMarkers are the build files that mark a project root.
var ProjectMarkers = []string{"pom.xml", "build.gradle", "build.gradle.kts", "settings.gradle", "settings.gradle.kts"}

// DefaultSourceRoots are searched when a location names a class rather than a file.
var DefaultSourceRoots = []string{"src/test/java", "src/test/kotlin", "src/main/java", "."}

// LocalDocumentAccess maps location references to files below a project root.
// Documents are cached per file so every record in one run edits the same buffer.
type LocalDocumentAccess struct {
	projectRoot m.Path
	sourceRoots []string

	mu   sync.Mutex
	docs map[m.Path]*TextDocument
}

// NewLocalDocumentAccess constructs a LocalDocumentAccess. Relative source roots are
// resolved against projectRoot.
func NewLocalDocumentAccess(projectRoot m.Path, sourceRoots []string) *LocalDocumentAccess {
	if len(sourceRoots) == 0 {
		sourceRoots = DefaultSourceRoots
	}

	return &LocalDocumentAccess{
		projectRoot: projectRoot,
		sourceRoots: sourceRoots,
		docs:        make(map[m.Path]*TextDocument),
	}
}

// Open implements DocumentAccess.
func (a *LocalDocumentAccess) Open(ctx context.Context, locationRef string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := a.Resolve(locationRef)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if doc, ok := a.docs[path]; ok {
		return doc, nil
	}

	// #nosec G304 - path was resolved inside the configured source roots
	content, err := os.ReadFile(string(path))
	if err != nil {
		slog.Error("Failed to read document", "path", path, "error", err)
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc := NewTextDocument(path, string(content), writeFileAtomic)
	a.docs[path] = doc

	return doc, nil
}

// Resolve maps a location reference to an existing file.
func (a *LocalDocumentAccess) Resolve(locationRef string) (m.Path, error) {
	ref := strings.TrimSpace(locationRef)
	if ref == "" {
		return "", fmt.Errorf("%w: empty location", ErrUnresolved)
	}

	var candidates []string

	switch {
	case strings.HasPrefix(ref, JavaTestScheme):
		candidates = a.classCandidates(classFromTestURL(strings.TrimPrefix(ref, JavaTestScheme)))
	case strings.HasPrefix(ref, JavaSuiteScheme):
		candidates = a.classCandidates(strings.TrimPrefix(ref, JavaSuiteScheme))
	case strings.HasPrefix(ref, FileScheme):
		candidates = a.pathCandidates(strings.TrimPrefix(ref, FileScheme))
	case strings.ContainsAny(ref, `/\`) || filepath.Ext(ref) != "":
		candidates = append(a.pathCandidates(ref), a.classCandidates(ref)...)
	default:
		candidates = a.classCandidates(ref)
	}

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return m.Path(candidate), nil
		}
	}

	slog.Debug("Location did not resolve", "location", ref, "candidates", candidates)

	return "", fmt.Errorf("%w: %s", ErrUnresolved, ref)
}

// FindProjectRoot walks up from start to the nearest directory holding a build file.
func FindProjectRoot(start m.Path) (m.Path, error) {
	dir, err := filepath.Abs(string(start))
	if err != nil {
		return "", err
	}

	for {
		for _, marker := range ProjectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return m.Path(dir), nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no build file found in any parent directory of %s", start)
		}

		dir = parent
	}
}

// classFromTestURL strips the method part of "<fqcn>/<method>".
func classFromTestURL(rest string) string {
	if i := strings.Index(rest, "/"); i >= 0 {
		return rest[:i]
	}

	return rest
}

func (a *LocalDocumentAccess) classCandidates(fqcn string) []string {
	fqcn = strings.TrimSpace(fqcn)
	if i := strings.Index(fqcn, "$"); i >= 0 {
		fqcn = fqcn[:i]
	}

	fqcn = strings.TrimSuffix(fqcn, ".java")
	fqcn = strings.TrimSuffix(fqcn, ".kt")

	if fqcn == "" || strings.ContainsAny(fqcn, `/\`) {
		return nil
	}

	rel := filepath.FromSlash(strings.ReplaceAll(fqcn, ".", "/"))

	candidates := make([]string, 0, len(a.sourceRoots)*2)
	for _, root := range a.roots() {
		candidates = append(candidates,
			filepath.Join(root, rel+".java"),
			filepath.Join(root, rel+".kt"),
		)
	}

	return candidates
}

func (a *LocalDocumentAccess) pathCandidates(path string) []string {
	path = filepath.FromSlash(path)
	if filepath.IsAbs(path) {
		return []string{filepath.Clean(path)}
	}

	candidates := []string{filepath.Join(string(a.projectRoot), path)}
	for _, root := range a.roots() {
		candidates = append(candidates, filepath.Join(root, path))
	}

	return candidates
}

func (a *LocalDocumentAccess) roots() []string {
	roots := make([]string, 0, len(a.sourceRoots))

	for _, root := range a.sourceRoots {
		if filepath.IsAbs(root) {
			roots = append(roots, root)
			continue
		}

		roots = append(roots, filepath.Join(string(a.projectRoot), root))
	}

	return roots
}

// writeFileAtomic replaces path with content via a temp file and rename, keeping the
// original file mode.
func writeFileAtomic(ctx context.Context, path m.Path, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := string(path)

	mode := os.FileMode(0o644)
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpName := tmp.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmpName, target); err != nil {
		slog.Error("Failed to replace document", "path", target, "error", err)
		return fmt.Errorf("replace %s: %w", target, err)
	}

	return nil
}
