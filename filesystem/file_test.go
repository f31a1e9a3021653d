package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadTextFile(t *testing.T) {
	dir := t.TempDir()
	textFile := filepath.Join(dir, "text.toml")
	binaryFile := filepath.Join(dir, "binary.toml")
	if err := os.WriteFile(textFile, []byte("rpc_url = \"http://localhost:26657\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(binaryFile, []byte{0xc3, 0x28}, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
		notText bool
	}{
		{"text", textFile, false, false},
		{"binary", binaryFile, true, true},
		{"not_exist", filepath.Join(dir, "nope.toml"), true, false},
		{"directory", dir, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadTextFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Error mismatch. Expected %t Actual %v", tt.wantErr, err)
			}
			if errors.Is(err, ErrNotText) != tt.notText {
				t.Fatalf("ErrNotText mismatch. Expected %t Actual %v", tt.notText, err)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Fatalf("Content of %s must not be empty.", tt.path)
			}
		})
	}
}

func TestIsFileExist(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "inges.yml")
	if err := os.WriteFile(f, []byte("cli:\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if !IsFileExist(f) {
		t.Fatalf("%s must exist.", f)
	}
	if IsFileExist(dir) {
		t.Fatalf("Directory %s must not count as a file.", dir)
	}
	if !IsExist(dir) {
		t.Fatalf("%s must exist.", dir)
	}
	if NormalizePath("a\\b\\c") != "a/b/c" {
		t.Fatalf("Path was not normalized.")
	}
}
