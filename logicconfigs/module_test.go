package logicconfigs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tailogic/configs"
	"github.com/reusee/tailogic/modes"
)

func TestDefaults(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		level WarnLevel,
		dropMissing DefaultDropMissing,
	) {
		if level != WarnCollect {
			t.Fatalf("got %v", level)
		}
		if dropMissing {
			t.Fatal()
		}
	})
}

func TestFromConfig(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.NewSourceLoader([]configs.Source{
				{Name: "local.cue", Content: []byte("warn: 2\nna_rm: true\n")},
				{Name: "global.cue", Content: []byte("warn: 1\n")},
			}, Schema)
		},
	).Call(func(
		level WarnLevel,
		dropMissing DefaultDropMissing,
	) {
		if level != WarnError {
			t.Fatalf("got %v", level)
		}
		if !dropMissing {
			t.Fatal()
		}
	})
}

func TestSchema(t *testing.T) {
	loader := configs.NewSourceLoader([]configs.Source{
		{Name: "bad.cue", Content: []byte("warn: 3\n")},
	}, Schema)
	var n int
	if err := loader.AssignFirst("warn", &n); err == nil {
		t.Fatal("should error")
	}
}
