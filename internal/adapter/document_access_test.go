package adapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "autotestfix.dev/pkg/autotestfix/internal/model"
)

func newProject(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "pom.xml"), "<project/>")
	writeTestFile(t, filepath.Join(root, "src", "test", "java", "com", "acme", "FooTest.java"), "class FooTest {}\n")
	writeTestFile(t, filepath.Join(root, "src", "test", "kotlin", "com", "acme", "BarTest.kt"), "class BarTest\n")
	writeTestFile(t, filepath.Join(root, "modules", "api", "src", "test", "java", "ApiTest.java"), "class ApiTest {}\n")

	return root
}

func TestLocalDocumentAccess_Resolve(t *testing.T) {
	root := newProject(t)
	access := NewLocalDocumentAccess(m.Path(root), nil)

	fooTest := filepath.Join(root, "src", "test", "java", "com", "acme", "FooTest.java")

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{name: "test url", ref: "java:test://com.acme.FooTest/testSum", want: fooTest},
		{name: "suite url", ref: "java:suite://com.acme.FooTest", want: fooTest},
		{name: "nested class", ref: "java:test://com.acme.FooTest$Nested/testSum", want: fooTest},
		{name: "kotlin source root", ref: "java:suite://com.acme.BarTest", want: filepath.Join(root, "src", "test", "kotlin", "com", "acme", "BarTest.kt")},
		{name: "plain class name", ref: "com.acme.FooTest", want: fooTest},
		{name: "file url relative", ref: "file://src/test/java/com/acme/FooTest.java", want: fooTest},
		{name: "file url absolute", ref: "file://" + filepath.ToSlash(fooTest), want: fooTest},
		{name: "relative path", ref: "modules/api/src/test/java/ApiTest.java", want: filepath.Join(root, "modules", "api", "src", "test", "java", "ApiTest.java")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := access.Resolve(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, m.Path(tt.want), got)
		})
	}
}

func TestLocalDocumentAccess_Resolve_Unresolved(t *testing.T) {
	root := newProject(t)
	access := NewLocalDocumentAccess(m.Path(root), nil)

	for _, ref := range []string{
		"",
		"java:test://com.acme.MissingTest/testSum",
		"file://src/test/java/Missing.java",
		"java:suite://",
		"src/test/java",
	} {
		_, err := access.Resolve(ref)
		assert.True(t, errors.Is(err, ErrUnresolved), "ref %q: %v", ref, err)
	}
}

func TestLocalDocumentAccess_CustomRoots(t *testing.T) {
	root := newProject(t)
	access := NewLocalDocumentAccess(m.Path(root), []string{"modules/api/src/test/java"})

	got, err := access.Resolve("java:suite://ApiTest")
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(root, "modules", "api", "src", "test", "java", "ApiTest.java")), got)

	_, err = access.Resolve("java:suite://com.acme.FooTest")
	assert.ErrorIs(t, err, ErrUnresolved)
}

func TestLocalDocumentAccess_Open(t *testing.T) {
	root := newProject(t)
	access := NewLocalDocumentAccess(m.Path(root), nil)
	ctx := context.Background()

	doc, err := access.Open(ctx, "java:test://com.acme.FooTest/a")
	require.NoError(t, err)
	assert.Equal(t, "class FooTest {}\n", doc.Text())

	again, err := access.Open(ctx, "java:test://com.acme.FooTest/b")
	require.NoError(t, err)
	assert.Same(t, doc, again, "records of one file share a buffer")

	_, err = access.Open(ctx, "java:test://com.acme.Missing/a")
	assert.ErrorIs(t, err, ErrUnresolved)

	canceled, cancel := context.WithCancel(ctx)
	cancel()

	_, err = access.Open(canceled, "java:test://com.acme.FooTest/a")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocalDocumentAccess_SavePreservesMode(t *testing.T) {
	root := newProject(t)
	path := filepath.Join(root, "src", "test", "java", "com", "acme", "FooTest.java")
	require.NoError(t, os.Chmod(path, 0o640))

	access := NewLocalDocumentAccess(m.Path(root), nil)
	ctx := context.Background()

	doc, err := access.Open(ctx, "java:suite://com.acme.FooTest")
	require.NoError(t, err)

	require.NoError(t, doc.Edit(func(tx Transaction) error {
		return tx.Replace(6, 13, "RenamedTest")
	}))
	require.NoError(t, doc.Save(ctx))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "class RenamedTest {}\n", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are cleaned up")
}

func TestFindProjectRoot(t *testing.T) {
	root := newProject(t)

	got, err := FindProjectRoot(m.Path(filepath.Join(root, "src", "test", "java")))
	require.NoError(t, err)
	assert.Equal(t, m.Path(root), got)

	_, err = FindProjectRoot(m.Path(t.TempDir()))
	assert.Error(t, err)
}
