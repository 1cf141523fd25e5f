package hello_world

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/GeertJohan/go.rice/embedded"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The binary must not depend on the source tree, so the box has to be embedded, and
// rice-box.go has to match the files in resources/.
func TestResourcesEmbedded(t *testing.T) {
	box, ok := embedded.EmbeddedBoxes["resources"]
	require.True(t, ok, "run go generate to embed the resources")

	var onDisk []string
	err := filepath.WalkDir("resources", func(path string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() {
			return err
		}
		name, err := filepath.Rel("resources", path)
		if err != nil {
			return err
		}
		name = filepath.ToSlash(name)
		onDisk = append(onDisk, name)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		embeddedFile, ok := box.Files[name]
		if assert.True(t, ok, "%s is not embedded", name) {
			assert.Equal(t, string(content), embeddedFile.Content, "%s is outdated in rice-box.go", name)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, box.Files, len(onDisk), "rice-box.go embeds removed files")
}

func TestGetResource(t *testing.T) {
	config, err := GetResource("config.yml")
	require.NoError(t, err)
	assert.Contains(t, config, "sysroot:")

	_, err = GetResource("missing.txt")
	assert.Error(t, err)

	languages, err := GetResourceFiltered("languages", regexp.MustCompile(`\.yml$`))
	require.NoError(t, err)
	assert.Len(t, languages, 2)
}
