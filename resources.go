package hello_world

import (
	"fmt"
	"os"
	"regexp"
	"sync"

	"github.com/GeertJohan/go.rice"
)

// rice-box.go embeds the resources directory into the binary. Regenerate it after
// changing any resource.
//go:generate rice embed-go

var (
	resourcesBox     *rice.Box
	resourcesBoxErr  error
	resourcesBoxOnce sync.Once
)

// openResources opens the resources box once. For rice embed-go to find the box, all
// calls to FindBox() have to be with a literal string parameter.
func openResources() (*rice.Box, error) {
	resourcesBoxOnce.Do(func() {
		resourcesBox, resourcesBoxErr = rice.FindBox("resources")
	})
	return resourcesBox, resourcesBoxErr
}

// GetResource returns the content of a file in the resources box.
func GetResource(name string) (string, error) {
	box, err := openResources()
	if err != nil {
		return "", err
	}
	text, err := box.String(name)
	if err != nil {
		return "", fmt.Errorf("resource %s not found: %w", name, err)
	}
	return text, nil
}

// GetResourceFiltered returns the content of all files inside dir (including
// subdirectories) whose path matches filter, indexed by their path in the box.
func GetResourceFiltered(dir string, filter *regexp.Regexp) (map[string]string, error) {
	box, err := openResources()
	if err != nil {
		return nil, err
	}
	contents := make(map[string]string)
	err = box.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !filter.MatchString(path) {
			return nil
		}
		text, err := box.String(path)
		if err != nil {
			return err
		}
		contents[path] = text
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("resource directory %s not readable: %w", dir, err)
	}
	return contents, nil
}

// MustGetResourceFiltered is GetResourceFiltered that panics on errors.
func MustGetResourceFiltered(dir string, filter *regexp.Regexp) map[string]string {
	contents, err := GetResourceFiltered(dir, filter)
	if err != nil {
		panic(err)
	}
	return contents
}
