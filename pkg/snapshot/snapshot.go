// Package snapshot compares JSON renderings of game state against golden files in testdata/
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"homegame-server/internal/util"
)

// UpdateEnv forces golden files to be rewritten when set to "1"
const UpdateEnv = "HOMEGAME_UPDATE_SNAPSHOTS"

var (
	mu    sync.Mutex
	calls = make(map[string]int)
)

// Validate compares obj with testdata/<test name>-<n>.json
// The golden file is written if it does not exist yet
func Validate(t *testing.T, obj interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()

	filename := nextFilename(t.Name())
	got, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not marshal snapshot: %v", err)
	}

	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) || util.Getenv(UpdateEnv, "") == "1" {
		if err := write(filename, got); err != nil {
			t.Fatalf("could not write snapshot %s: %v", filename, err)
		}

		return true
	} else if err != nil {
		t.Fatalf("could not read snapshot %s: %v", filename, err)
	}

	if !assert.Equal(t, strings.TrimSpace(string(expects)), strings.TrimSpace(string(got)), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
		return false
	}

	return true
}

func nextFilename(testName string) string {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(testName)

	mu.Lock()
	call := calls[name]
	calls[name] = call + 1
	mu.Unlock()

	return filepath.Join("testdata", fmt.Sprintf("%s-%d.json", name, call))
}

func write(filename string, data []byte) error {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	return os.WriteFile(filename, append(data, '\n'), 0644)
}
