package textutil

import "testing"

func TestNormalizeGloss(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello", "hello"},
		{"THANK YOU", "thank you"},
		{"thank_you", "thank you"},
		{"  thank   you  ", "thank you"},
		{"thank_you ", "thank you"},
		{"", ""},
		{"   ", ""},
		{"___", ""},
	}
	for _, tc := range cases {
		if got := NormalizeGloss(tc.in); got != tc.want {
			t.Errorf("NormalizeGloss(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGlossFromStem(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"hello_1", "hello"},
		{"hello_2", "hello"},
		{"thank_you_12", "thank you"},
		{"thank_you", "thank you"},
		{"hello", "hello"},
		{"_7", "7"},
		{"route_66_4", "route 66"},
	}
	for _, tc := range cases {
		if got := GlossFromStem(tc.in); got != tc.want {
			t.Errorf("GlossFromStem(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAssetFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"hello", "hello.mp4"},
		{"thank you", "thank_you.mp4"},
		{"Thank You", "thank_you.mp4"},
		{"what/where", "whatwhere.mp4"},
	}
	for _, tc := range cases {
		if got := AssetFileName(tc.in); got != tc.want {
			t.Errorf("AssetFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFoldSpaces(t *testing.T) {
	if got := FoldSpaces("thank you"); got != "thankyou" {
		t.Fatalf("FoldSpaces = %q", got)
	}
}

func TestDisplayLabel(t *testing.T) {
	if got := DisplayLabel("thank_you"); got != "Thank You" {
		t.Fatalf("DisplayLabel = %q", got)
	}
}
