package slots

import (
	"path/filepath"
	"testing"
)

func TestTable_Default(t *testing.T) {
	table := Table(Layout{})

	want := []struct {
		name     string
		platform string
		size     int
		path     string
	}{
		{"mdpi", Android, 48, "android/app/src/main/res/mipmap-mdpi/ic_launcher.png"},
		{"hdpi", Android, 72, "android/app/src/main/res/mipmap-hdpi/ic_launcher.png"},
		{"xhdpi", Android, 96, "android/app/src/main/res/mipmap-xhdpi/ic_launcher.png"},
		{"xxhdpi", Android, 144, "android/app/src/main/res/mipmap-xxhdpi/ic_launcher.png"},
		{"xxxhdpi", Android, 192, "android/app/src/main/res/mipmap-xxxhdpi/ic_launcher.png"},
		{"ios", IOS, 1024, "ios/Flow_Max/Images.xcassets/AppIcon.appiconset/Icon-1024.png"},
	}

	if len(table) != len(want) {
		t.Fatalf("len(table) = %d; want %d", len(table), len(want))
	}
	for i, w := range want {
		got := table[i]
		if got.Name != w.name {
			t.Errorf("[%d] Name = %q; want %q", i, got.Name, w.name)
		}
		if got.Platform != w.platform {
			t.Errorf("[%d] Platform = %q; want %q", i, got.Platform, w.platform)
		}
		if got.Size != w.size {
			t.Errorf("[%d] Size = %d; want %d", i, got.Size, w.size)
		}
		if got.Path != filepath.FromSlash(w.path) {
			t.Errorf("[%d] Path = %q; want %q", i, got.Path, filepath.FromSlash(w.path))
		}
	}
}

func TestTable_RootAndProject(t *testing.T) {
	root := filepath.Join("tmp", "app")
	table := Table(Layout{Root: root, IOSProject: "Other"})

	mdpi, err := Lookup(table, "mdpi")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(root, "android", "app", "src", "main", "res", "mipmap-mdpi", "ic_launcher.png"); mdpi.Path != want {
		t.Errorf("mdpi path = %q; want %q", mdpi.Path, want)
	}

	ios, err := Lookup(table, "ios")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(root, "ios", "Other", "Images.xcassets", "AppIcon.appiconset", "Icon-1024.png"); ios.Path != want {
		t.Errorf("ios path = %q; want %q", ios.Path, want)
	}
}

func TestTable_DistinctPaths(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range Table(Layout{}) {
		if seen[s.Path] {
			t.Errorf("duplicate path %q", s.Path)
		}
		seen[s.Path] = true
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, err := Lookup(Table(Layout{}), "ldpi"); err == nil {
		t.Error("expected error for unknown slot")
	}
}

func TestSlot_SpecAndDimensions(t *testing.T) {
	s := Slot{Name: "hdpi", Size: 72, Path: "x.png"}
	spec := s.Spec()
	if spec.Size != 72 || spec.Path != "x.png" {
		t.Errorf("Spec() = %+v", spec)
	}
	if got := s.Dimensions(); got != "72x72" {
		t.Errorf("Dimensions() = %q; want %q", got, "72x72")
	}
}
