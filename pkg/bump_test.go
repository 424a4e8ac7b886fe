package bumpversion

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/mod/semver"
)

// TestBump covers the documented bump scenarios.
func TestBump(t *testing.T) {
	tests := []struct {
		version    string
		bump       BumpKind
		prerelease string
		expected   string
	}{
		{"1.2.3", Major, "", "2.0.0"},
		{"1.2.3", Minor, "", "1.3.0"},
		{"1.2.0", Minor, "", "1.3.0"},
		{"2.2.3", Minor, "", "2.3.0"},
		{"1.2.3", Patch, "", "1.2.4"},
		{"1.2.0", Patch, "", "1.2.1"},
		{"1.0.0", Patch, "", "1.0.1"},
		{"1.1.0", Patch, "", "1.1.1"},
		{"1.2.3", Patch, "rc1", "1.2.4.rc1"},
		{"1.2.3", Major, "beta.2", "2.0.0.beta.2"},
		{"0.9.9", Minor, "", "0.10.0"},
	}
	for _, tc := range tests {
		res, err := Bump(tc.version, tc.bump, tc.prerelease)
		if err != nil {
			t.Errorf("Bump(%q, %q, %q) returned error: %v", tc.version, tc.bump, tc.prerelease, err)
			continue
		}
		if res != tc.expected {
			t.Errorf("Bump(%q, %q, %q) = %q, expected %q", tc.version, tc.bump, tc.prerelease, res, tc.expected)
		}
		if tag := Tag(res); tag != "v"+tc.expected {
			t.Errorf("Tag(%q) = %q, expected %q", res, tag, "v"+tc.expected)
		}
	}
}

func TestBumpInvalidKind(t *testing.T) {
	for _, version := range []string{"1.2.3", "0.0.0", "garbage", ""} {
		res, err := Bump(version, "invalid", "")
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Bump(%q, \"invalid\") error = %v, want ErrInvalidArgument", version, err)
		}
		if res != "" {
			t.Errorf("Bump(%q, \"invalid\") = %q, want empty result", version, res)
		}
	}
}

// TestBumpMissingComponents checks that absent components count as zero.
func TestBumpMissingComponents(t *testing.T) {
	tests := []struct {
		version  string
		bump     BumpKind
		expected string
	}{
		{"1.2", Patch, "1.2.1"},
		{"1.2", Minor, "1.3.0"},
		{"1", Patch, "1.0.1"},
		{"1", Minor, "1.1.0"},
		{"1", Major, "2.0.0"},
	}
	for _, tc := range tests {
		res, err := Bump(tc.version, tc.bump, "")
		if err != nil {
			t.Fatalf("Bump(%q, %q) returned error: %v", tc.version, tc.bump, err)
		}
		if res != tc.expected {
			t.Errorf("Bump(%q, %q) = %q, expected %q", tc.version, tc.bump, res, tc.expected)
		}
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input    string
		expected Version
	}{
		{"1.2.3", Version{1, 2, 3}},
		{"01.002.3", Version{1, 2, 3}},
		{" 1.2.3\n", Version{1, 2, 3}},
		{"1.2.4.rc1", Version{1, 2, 4}},
		{"3", Version{3, 0, 0}},
	}
	for _, tc := range tests {
		got, err := ParseVersion(tc.input)
		if err != nil {
			t.Errorf("ParseVersion(%q) returned error: %v", tc.input, err)
			continue
		}
		if diff := cmp.Diff(tc.expected, got); diff != "" {
			t.Errorf("ParseVersion(%q) mismatch (-want +got):\n%s", tc.input, diff)
		}
	}

	for _, bad := range []string{"", "v1.2.3", "1.x.3", "1.2.-3", "1..3"} {
		if _, err := ParseVersion(bad); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ParseVersion(%q) error = %v, want ErrInvalidArgument", bad, err)
		}
	}
}

func TestBumpOverflow(t *testing.T) {
	maxInt := strconv.Itoa(math.MaxInt)
	tests := []struct {
		version string
		bump    BumpKind
	}{
		{maxInt + ".0.0", Major},
		{"1." + maxInt + ".0", Minor},
		{"1.2." + maxInt, Patch},
	}
	for _, tc := range tests {
		res, err := Bump(tc.version, tc.bump, "")
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Bump(%q, %q) = %q, %v, want ErrInvalidArgument", tc.version, tc.bump, res, err)
		}
	}

	// Only the bumped component matters.
	if res, err := Bump("1.2."+maxInt, Minor, ""); err != nil || res != "1.3.0" {
		t.Errorf("Bump(%q, minor) = %q, %v, expected 1.3.0", "1.2."+maxInt, res, err)
	}
}

func TestParseBumpKind(t *testing.T) {
	for _, s := range []string{"major", "minor", "patch"} {
		k, err := ParseBumpKind(s)
		if err != nil || string(k) != s {
			t.Errorf("ParseBumpKind(%q) = %q, %v", s, k, err)
		}
	}
	for _, s := range []string{"", "Major", "prerelease", "invalid"} {
		if _, err := ParseBumpKind(s); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ParseBumpKind(%q) error = %v, want ErrInvalidArgument", s, err)
		}
	}
}

// TestBumpProperties checks the arithmetic over a grid of versions and that
// every bump sorts after its input.
func TestBumpProperties(t *testing.T) {
	for a := 0; a < 4; a++ {
		for b := 0; b < 4; b++ {
			for c := 0; c < 4; c++ {
				cur := fmt.Sprintf("%d.%d.%d", a, b, c)
				want := map[BumpKind]string{
					Major: fmt.Sprintf("%d.0.0", a+1),
					Minor: fmt.Sprintf("%d.%d.0", a, b+1),
					Patch: fmt.Sprintf("%d.%d.%d", a, b, c+1),
				}
				for kind, expected := range want {
					got, err := Bump(cur, kind, "")
					if err != nil {
						t.Fatalf("Bump(%q, %q) returned error: %v", cur, kind, err)
					}
					if got != expected {
						t.Errorf("Bump(%q, %q) = %q, expected %q", cur, kind, got, expected)
					}
					if semver.Compare(Tag(got), Tag(cur)) <= 0 {
						t.Errorf("Bump(%q, %q) = %q does not sort after the input", cur, kind, got)
					}
					withPre, err := Bump(cur, kind, "rc1")
					if err != nil {
						t.Fatalf("Bump(%q, %q, \"rc1\") returned error: %v", cur, kind, err)
					}
					if withPre != expected+".rc1" {
						t.Errorf("Bump(%q, %q, \"rc1\") = %q, expected %q", cur, kind, withPre, expected+".rc1")
					}
				}
			}
		}
	}
}
