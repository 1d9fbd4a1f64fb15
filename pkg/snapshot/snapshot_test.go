package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	wd, err := os.Getwd()
	a.NoError(err)
	a.NoError(os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	obj := map[string]int{"pot": 15}
	a.True(Validate(t, obj))

	b, err := os.ReadFile(filepath.Join("testdata", "TestValidate-0.json"))
	a.NoError(err)
	a.Equal("{\n  \"pot\": 15\n}\n", string(b))

	a.Equal(filepath.Join("testdata", "TestValidate-1.json"), nextFilename(t.Name()))
	a.Equal(filepath.Join("testdata", "Other_sub_test-0.json"), nextFilename("Other/sub test"))
}
