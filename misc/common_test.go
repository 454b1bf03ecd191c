package misc

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "ding.mp3")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if ok, err := CheckFileExists(file); !ok || err != nil {
		t.Fatalf("CheckFileExists(file) = %v, %v", ok, err)
	}
	if ok, err := CheckFileExists(filepath.Join(dir, "missing")); ok || err != nil {
		t.Fatalf("CheckFileExists(missing) = %v, %v", ok, err)
	}
	if _, err := CheckFileExists(dir); err == nil {
		t.Fatal("directory reported as regular file")
	}
}

func TestFindWithExtension(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "cabin.ogg"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	path, ok, err := FindWithExtension(dir, "cabin", ".mp3", "ogg", ".wav")
	if err != nil || !ok || filepath.Base(path) != "cabin.ogg" {
		t.Fatalf("FindWithExtension = %q, %v, %v", path, ok, err)
	}

	if _, ok, err := FindWithExtension(dir, "ding", ".mp3"); ok || err != nil {
		t.Fatalf("found a file that does not exist: %v, %v", ok, err)
	}
}
