package vrml

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"empty", "", nil},
		{"spaces only", "  \t ", nil},
		{"words", "  coord Coordinate ", []string{"coord", "Coordinate"}},
		{"brackets glued", "point[0 1 2]", []string{"point", "[", "0", "1", "2", "]"}},
		{"braces glued", "Shape{geometry IndexedFaceSet{", []string{"Shape", "{", "geometry", "IndexedFaceSet", "{"}},
		{"commas", "0,1,2,-1,", []string{"0", ",", "1", ",", "2", ",", "-1", ","}},
		{"inline comment", "0 1 2 # first vertex", []string{"0", "1", "2"}},
		{"hash inside word", "a#b c", []string{"a#b", "c"}},
		{"quoted", `url "my texture.png"`, []string{"url", `"my texture.png"`}},
		{"quoted with delimiters", `url ["a,b[c].png"]`, []string{"url", "[", `"a,b[c].png"`, "]"}},
		{"unterminated quote", `url "open`, []string{"url", `"open`}},
		{"unterminated quote before brackets", `url "abc } } }`, []string{"url", `"abc`, "}", "}", "}"}},
		{"unterminated quote glued to bracket", `url ["abc]`, []string{"url", "[", `"abc`, "]"}},
		{"escaped quote", `url "my \"q\".png" }`, []string{"url", `"my \"q\".png"`, "}"}},
		{"escaped backslash", `url "dir\\" }`, []string{"url", `"dir\\"`, "}"}},
		{"escaped quote at end", `url "open\"`, []string{"url", `"open\"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestCheckHeader(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"#VRML V2.0 utf8", true},
		{"#VRML V1.0 ascii", true},
		{"#X3D V3.0 utf8", true},
		{"#Inventor V2.1 ascii", true},
		{"  #VRML V2.0 utf8", true},
		{"#vrml V2.0 utf8", false},
		{"#VRMLV2.0", false},
		{"VRML V2.0", false},
		{"solid cube", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := checkHeader(tt.line); got != tt.want {
			t.Errorf("checkHeader(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestSkipLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"# comment", true},
		{"   # indented comment", true},
		{"point [", false},
		{"0 0 0 # trailing", false},
	}

	for _, tt := range tests {
		if got := skipLine(tt.line); got != tt.want {
			t.Errorf("skipLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
