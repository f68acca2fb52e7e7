package crypto

import (
	"strings"
	"testing"
)

// Requirement: NewNanoID validates the optional custom alphabet.
func TestNanoIDGenerator_New(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "default alphabet", args: nil, wantErr: nil},
		{name: "custom alphabet", args: []string{"ABCDEFGH"}, wantErr: nil},
		{name: "empty string uses default", args: []string{""}, wantErr: nil},
		{name: "too many args", args: []string{"a", "b"}, wantErr: ErrTooManyInputAlphabet},
		{name: "alphabet too long", args: []string{strings.Repeat("a", 256)}, wantErr: ErrAlphabetTooLong},
		{name: "alphabet too short", args: []string{"abc"}, wantErr: ErrAlphabetTooShort},
		{name: "non-ascii alphabet", args: []string{"abcdefgñ"}, wantErr: ErrAlphabetNotASCII},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			nanoid, err := NewNanoID(test.args...)

			if err != test.wantErr {
				t.Fatalf("NewNanoID() error = %v, want %v", err, test.wantErr)
			}
			if test.wantErr == nil && nanoid == nil {
				t.Fatal("NewNanoID() returned nil, want *NanoIDGenerator")
			}
		})
	}
}

// Requirement: Generate emits IDs of the requested length drawn only from
// the configured alphabet.
func TestNanoIDGenerator_Generate(t *testing.T) {
	nanoid, err := NewNanoID()
	if err != nil {
		t.Fatalf("NewNanoID() error = %v", err)
	}

	tests := []struct {
		name     string
		length   []int
		wantSize int
	}{
		{name: "default size", length: nil, wantSize: defaultSize},
		{name: "custom size", length: []int{10}, wantSize: 10},
		{name: "zero uses default", length: []int{0}, wantSize: defaultSize},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			id, err := nanoid.Generate(test.length...)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if len(id) != test.wantSize {
				t.Errorf("Generate() length = %d, want %d", len(id), test.wantSize)
			}
			for _, c := range id {
				if !strings.ContainsRune(defaultAlphabet, c) {
					t.Errorf("Generate() produced character %q outside the alphabet", c)
				}
			}
		})
	}
}

// Requirement: consecutive IDs do not collide.
func TestNanoIDGenerator_Generate_Unique(t *testing.T) {
	nanoid, _ := NewNanoID()
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		id, err := nanoid.Generate()
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if seen[id] {
			t.Fatalf("Generate() produced duplicate ID %q", id)
		}
		seen[id] = true
	}
}
