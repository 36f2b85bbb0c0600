package platform

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"Node.js", NodeJS},
		{"node", NodeJS},
		{"  NODEJS ", NodeJS},
		{"ASP.NET Core", ASPNetCore},
		{"aspnetcore", ASPNetCore},
		{".NET Core Console", DotNetConsole},
		{"dotnet", DotNetConsole},
		{"Java", Java},
		{"maven", Java},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if err != nil {
				t.Fatalf("ParseKind(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseKind_Unsupported(t *testing.T) {
	for _, input := range []string{"", "Python", "Ruby", "Go"} {
		if _, err := ParseKind(input); !errors.Is(err, ErrUnsupportedPlatform) {
			t.Errorf("ParseKind(%q) error = %v, want ErrUnsupportedPlatform", input, err)
		}
	}
}

func TestKindSchema(t *testing.T) {
	tests := []struct {
		kind        Kind
		port        int
		requiresOS  bool
		projectFile string
		exposes     bool
		compose     bool
	}{
		{NodeJS, 3000, false, "", true, true},
		{ASPNetCore, 80, true, CsprojPattern, true, false},
		{DotNetConsole, 80, true, CsprojPattern, false, false},
		{Java, 3000, false, PomPattern, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.DefaultPort(); got != tt.port {
				t.Errorf("DefaultPort() = %d, want %d", got, tt.port)
			}
			if got := tt.kind.RequiresOS(); got != tt.requiresOS {
				t.Errorf("RequiresOS() = %v, want %v", got, tt.requiresOS)
			}
			if got := tt.kind.ProjectFile(); got != tt.projectFile {
				t.Errorf("ProjectFile() = %q, want %q", got, tt.projectFile)
			}
			if got := tt.kind.ExposesPort(); got != tt.exposes {
				t.Errorf("ExposesPort() = %v, want %v", got, tt.exposes)
			}
			if got := tt.kind.HasCompose(); got != tt.compose {
				t.Errorf("HasCompose() = %v, want %v", got, tt.compose)
			}
		})
	}
}

func TestKindZeroValue(t *testing.T) {
	var k Kind
	if k.Valid() {
		t.Error("zero Kind should not be valid")
	}
	if k.String() != "Kind(0)" {
		t.Errorf("String() = %q, want Kind(0)", k.String())
	}
}

func TestParseOS(t *testing.T) {
	tests := []struct {
		input  string
		want   OS
		wantOK bool
	}{
		{"Windows", Windows, true},
		{"linux", Linux, true},
		{" LINUX ", Linux, true},
		{"darwin", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseOS(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseOS(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}
