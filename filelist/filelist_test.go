package filelist

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDir = fstest.MapFS{
	"short.amos":            {Data: []byte("AMOS Basic V134 ")},
	"Game.AMOS":             {Data: []byte("AMOS Pro101V")},
	"alongername.amos":      {Data: []byte("x")},
	"readme.txt":            {Data: []byte("not a program")},
	".hidden.amos":          {Data: []byte("x")},
	"subdir/test1.amos":     {Data: []byte("x")},
	"asubdir/test2.amos":    {Data: []byte("x")},
	".git/config":           {Data: []byte("x")},
	"asubdir/deeper/x.amos": {Data: []byte("x")},
}

func TestBuild(t *testing.T) {
	fl := NewFileList()
	require.NoError(t, fl.Build(testDir, "."))

	var names []string
	for _, f := range fl.Files {
		names = append(names, f.Name)
	}

	assert.Equal(t, []string{"asubdir", "subdir", "Game.AMOS", "alongername.amos", "short.amos"}, names)
	assert.True(t, fl.Files[0].Subdir)
	assert.EqualValues(t, 16, fl.Files[4].Size)
}

func TestBuildSubdir(t *testing.T) {
	fl := NewFileList()
	require.NoError(t, fl.Build(testDir, "asubdir"))

	assert.JSONEq(t, `[{"name":"deeper","isdir":true},{"name":"test2.amos","isdir":false,"size":1}]`, string(fl.JSON()))
}

func TestBuildError(t *testing.T) {
	fl := NewFileList()
	fl.Files = append(fl.Files, dirEntry{Name: "stale.amos"})

	assert.Error(t, fl.Build(testDir, "nothere"))
	assert.Empty(t, fl.Files)
	assert.Equal(t, "[]", string(fl.JSON()))
}

func TestIsProgram(t *testing.T) {
	tests := []struct {
		inp string
		exp bool
	}{
		{inp: "game.amos", exp: true},
		{inp: "GAME.AMOS", exp: true},
		{inp: "dir/game.Amos", exp: true},
		{inp: "game.bas"},
		{inp: "amos"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.exp, IsProgram(tt.inp), tt.inp)
	}
}
