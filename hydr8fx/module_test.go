package hydr8fx_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/hydr8"
	"github.com/0xalexb/hydr8/hydr8fx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestModule_WithTree(t *testing.T) {
	tree := hydr8.Tree{"db": map[string]any{"host": "localhost"}}

	app := fxtest.New(t, hydr8fx.Module(hydr8fx.WithTree(tree)))

	app.RequireStart()
	defer app.RequireStop()

	got, err := hydr8.Get()
	require.NoError(t, err)
	assert.Contains(t, got, "db")
}

func TestModule_WithFile(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(fpath, []byte("db:\n  host: filehost\n"), 0o600))

	app := fxtest.New(t, hydr8fx.Module(hydr8fx.WithFile(fpath)))

	app.RequireStart()
	defer app.RequireStop()

	host, err := hydr8.Use("db").Get("host")
	require.NoError(t, err)
	assert.Equal(t, "filehost", host)
}

func TestModule_TreeAvailableInGraph(t *testing.T) {
	tree := hydr8.Tree{"db": map[string]any{"host": "localhost"}}

	var captured hydr8.Tree

	app := fxtest.New(t,
		hydr8fx.Module(hydr8fx.WithTree(tree)),
		fx.Invoke(func(tr hydr8.Tree) {
			captured = tr
		}),
	)

	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, captured)
	assert.Contains(t, captured, "db")
}

func TestModule_NoSource(t *testing.T) {
	app := fx.New(hydr8fx.Module())

	require.Error(t, app.Err())
	require.ErrorIs(t, app.Err(), hydr8fx.ErrNoSource)
}

func TestModule_MissingFile(t *testing.T) {
	app := fx.New(hydr8fx.Module(hydr8fx.WithFile(filepath.Join(t.TempDir(), "nope.yaml"))))

	require.Error(t, app.Err())
}
