package conf_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/KaiOnGitHub/galaxy/datatypes/conf"
	"github.com/stretchr/testify/assert"
)

func TestBool(t *testing.T) {
	assert.True(t, Bool("true"))
	assert.True(t, Bool("True"))
	assert.True(t, Bool("yes"))
	assert.True(t, Bool("1"))
	assert.False(t, Bool("False"))
	assert.False(t, Bool(""))
}

func TestInitialize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "datatypes.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("prefix_size: 1024\nlog_level: debug\ndebug: true\n"), 0644))

	CONFIG_FILE = path
	defer func() {
		CONFIG_FILE = ""
		PREFIX_SIZE = 32768
		LOG_LEVEL = "info"
		DEBUG = false
	}()

	assert.NoError(t, Initialize())
	assert.Equal(t, int64(1024), PREFIX_SIZE)
	assert.Equal(t, "debug", LOG_LEVEL)
	assert.True(t, DEBUG)
}
