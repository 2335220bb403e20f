package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

const iconDir = "icons/"

//go:embed icons/*.png
var iconFS embed.FS

//go:embed themes.yaml
var themePresets []byte

var iconCache sync.Map

// Icon returns a Fyne resource for the given icon file.
func Icon(fileName string) (fyne.Resource, error) {
	return loadIcon(iconDir + fileName)
}

// MustIcon returns a Fyne resource or panics on error.
func MustIcon(fileName string) fyne.Resource {
	resource, err := Icon(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

// ThemePresets returns the embedded theme preset YAML.
func ThemePresets() []byte {
	return themePresets
}

func loadIcon(path string) (fyne.Resource, error) {
	if cached, ok := iconCache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := iconFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(path, data)
	iconCache.Store(path, resource)
	return resource, nil
}
