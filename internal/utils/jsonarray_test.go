package utils

import (
	"reflect"
	"testing"
)

func TestDecodeStringArray(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"single encoded", `["Japan","France"]`, []string{"Japan", "France"}},
		{"double encoded", `"[\"Japan\",\"France\"]"`, []string{"Japan", "France"}},
		{"empty string", "", []string{}},
		{"empty array", "[]", []string{}},
		{"garbage", "not json", []string{}},
		{"double encoded garbage", `"not an array"`, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DecodeStringArray(tc.raw)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("DecodeStringArray(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestEncodeStringArraySingleEncodes(t *testing.T) {
	if got := EncodeStringArray([]string{"Tokyo", "Kyoto"}); got != `["Tokyo","Kyoto"]` {
		t.Fatalf("got %q", got)
	}
}

func TestEncodeStringArrayNilBecomesEmptyArray(t *testing.T) {
	if got := EncodeStringArray(nil); got != "[]" {
		t.Fatalf("got %q, want []", got)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := []string{"Japan"}
	if got := DecodeStringArray(EncodeStringArray(in)); !reflect.DeepEqual(got, in) {
		t.Fatalf("round trip = %v, want %v", got, in)
	}
}
