// Package slots defines the fixed table of launcher icon outputs: one slot per
// Android density bucket plus the iOS App Store icon.
package slots

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/aellingwood/flowicons/internal/icon"
)

// Platform names.
const (
	Android = "android"
	IOS     = "ios"
)

// DefaultIOSProject is the Xcode project folder that holds the asset catalog.
const DefaultIOSProject = "Flow_Max"

// IOSSize is the single iOS App Store icon size.
const IOSSize = 1024

// Slot is one icon output: a named bucket, its pixel size and the file it is
// written to.
type Slot struct {
	Name     string
	Platform string
	Size     int
	Path     string
}

// Spec returns the render request for this slot.
func (s Slot) Spec() icon.Spec {
	return icon.Spec{Size: s.Size, Path: s.Path}
}

// Dimensions formats the slot size as WxH.
func (s Slot) Dimensions() string {
	n := strconv.Itoa(s.Size)
	return n + "x" + n
}

// Density is an Android density bucket and its launcher icon size.
type Density struct {
	Name string
	Size int
}

// Densities lists the Android buckets in output order.
var Densities = []Density{
	{"mdpi", 48},
	{"hdpi", 72},
	{"xhdpi", 96},
	{"xxhdpi", 144},
	{"xxxhdpi", 192},
}

// Layout controls where the table's paths are rooted.
type Layout struct {
	Root       string // project root; empty means relative paths
	IOSProject string // defaults to DefaultIOSProject
}

// AndroidPath returns the launcher icon path for an Android density bucket.
func AndroidPath(root, density string) string {
	return filepath.Join(root, "android", "app", "src", "main", "res", "mipmap-"+density, "ic_launcher.png")
}

// IOSPath returns the App Store icon path inside the named Xcode project.
func IOSPath(root, project string) string {
	if project == "" {
		project = DefaultIOSProject
	}
	return filepath.Join(root, "ios", project, "Images.xcassets", "AppIcon.appiconset", "Icon-1024.png")
}

// Table returns every slot: the Android buckets in Densities order followed by
// the iOS icon.
func Table(l Layout) []Slot {
	table := make([]Slot, 0, len(Densities)+1)
	for _, d := range Densities {
		table = append(table, Slot{
			Name:     d.Name,
			Platform: Android,
			Size:     d.Size,
			Path:     AndroidPath(l.Root, d.Name),
		})
	}
	table = append(table, Slot{
		Name:     IOS,
		Platform: IOS,
		Size:     IOSSize,
		Path:     IOSPath(l.Root, l.IOSProject),
	})
	return table
}

// Lookup finds a slot by name.
func Lookup(table []Slot, name string) (Slot, error) {
	for _, s := range table {
		if s.Name == name {
			return s, nil
		}
	}
	return Slot{}, fmt.Errorf("unknown slot %q", name)
}
