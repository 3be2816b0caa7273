package fontdesc

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		size      float64
		family    string
		fallbacks []string
		want      Descriptor
	}{
		{20, "Virgil", nil, "20px Virgil"},
		{16.5, "Go", []string{"Segoe UI Emoji"}, "16.5px Go, Segoe UI Emoji"},
		{12, "Odd, Name", []string{"sans-serif"}, `12px "Odd, Name", sans-serif`},
	}
	for _, tt := range tests {
		if got := New(tt.size, tt.family, tt.fallbacks...); got != tt.want {
			t.Errorf("New(%v, %q, %q) = %q, want %q", tt.size, tt.family, tt.fallbacks, got, tt.want)
		}
	}
}

func TestSize(t *testing.T) {
	tests := []struct {
		d    Descriptor
		want float64
	}{
		{"20px Virgil", 20},
		{"16.5px Go", 16.5},
		{".5px tiny", 0.5},
		{"  28px spaced", 28},
		{"Virgil", 0},
		{"", 0},
		{"px Virgil", 0},
	}
	for _, tt := range tests {
		if got := tt.d.Size(); got != tt.want {
			t.Errorf("Descriptor(%q).Size() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestParseSizeError(t *testing.T) {
	_, err := Descriptor("Virgil").ParseSize()
	if !errors.Is(err, ErrNoSize) {
		t.Errorf("ParseSize() error = %v, want ErrNoSize", err)
	}
}

func TestFamilies(t *testing.T) {
	tests := []struct {
		d    Descriptor
		want []string
	}{
		{"20px Virgil", []string{"Virgil"}},
		{"20px Virgil, Segoe UI Emoji", []string{"Virgil", "Segoe UI Emoji"}},
		{`12px "Odd, Name", 'Quoted', plain`, []string{"Odd, Name", "Quoted", "plain"}},
		{"20px", nil},
		{"Go Mono", []string{"Go Mono"}},
	}
	for _, tt := range tests {
		got := tt.d.Families()
		if len(got) != len(tt.want) {
			t.Errorf("Descriptor(%q).Families() = %q, want %q", tt.d, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Descriptor(%q).Families()[%d] = %q, want %q", tt.d, i, got[i], tt.want[i])
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	d := New(18, "Odd, Name", "Go")
	if d.Size() != 18 {
		t.Errorf("Size() = %v, want 18", d.Size())
	}
	if d.Family() != "Odd, Name" {
		t.Errorf("Family() = %q, want %q", d.Family(), "Odd, Name")
	}
}
