package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		want    map[string]string
		wantErr bool
	}{
		{
			name:    "empty input",
			lines:   []string{},
			want:    map[string]string{},
			wantErr: false,
		},
		{
			name:  "single key-value",
			lines: []string{"key=value"},
			want: map[string]string{
				"key": "value",
			},
			wantErr: false,
		},
		{
			name: "multiple key-values",
			lines: []string{
				"key1=value1",
				"key2=value2",
				"key3=value3",
			},
			want: map[string]string{
				"key1": "value1",
				"key2": "value2",
				"key3": "value3",
			},
			wantErr: false,
		},
		{
			name: "ignores blank lines",
			lines: []string{
				"key1=value1",
				"",
				"key2=value2",
				"   ",
				"key3=value3",
			},
			want: map[string]string{
				"key1": "value1",
				"key2": "value2",
				"key3": "value3",
			},
			wantErr: false,
		},
		{
			name: "ignores comment lines",
			lines: []string{
				"# This is a comment",
				"key1=value1",
				"# Another comment",
				"key2=value2",
				"  # Indented comment",
			},
			want: map[string]string{
				"key1": "value1",
				"key2": "value2",
			},
			wantErr: false,
		},
		{
			name: "trims whitespace around key and value",
			lines: []string{
				"  key1  =  value1  ",
				"key2=  value2",
				"  key3=value3  ",
			},
			want: map[string]string{
				"key1": "value1",
				"key2": "value2",
				"key3": "value3",
			},
			wantErr: false,
		},
		{
			name: "handles equals sign in value",
			lines: []string{
				"url=https://example.com?param=value",
				"equation=x=y+z",
				"base64=SGVsbG8=",
			},
			want: map[string]string{
				"url":      "https://example.com?param=value",
				"equation": "x=y+z",
				"base64":   "SGVsbG8=",
			},
			wantErr: false,
		},
		{
			name: "invalid line without equals sign",
			lines: []string{
				"key1=value1",
				"invalid_line",
				"key2=value2",
			},
			want:    nil,
			wantErr: true,
		},
		{
			name: "invalid empty key",
			lines: []string{
				"=value",
			},
			want:    nil,
			wantErr: true,
		},
		{
			name: "empty value is valid",
			lines: []string{
				"key=",
			},
			want: map[string]string{
				"key": "",
			},
			wantErr: false,
		},
		{
			name: "BOM (Byte Order Mark) is stripped from first line",
			lines: []string{
				"\uFEFFkey1=value1",
				"key2=value2",
			},
			want: map[string]string{
				"key1": "value1",
				"key2": "value2",
			},
			wantErr: false,
		},
		{
			name: "mixed valid content",
			lines: []string{
				"# luvr configuration",
				"",
				"theme_default=system",
				"theme_storage_key=motel-ui-theme",
				"  # Storage settings",
				"storage_backend=file",
				"",
				"log_level=debug",
			},
			want: map[string]string{
				"theme_default":     "system",
				"theme_storage_key": "motel-ui-theme",
				"storage_backend":   "file",
				"log_level":         "debug",
			},
			wantErr: false,
		},
		{
			name: "inline comment after unquoted value",
			lines: []string{
				"storage_backend=sqlite # default backend",
			},
			want: map[string]string{
				"storage_backend": "sqlite",
			},
			wantErr: false,
		},
		{
			name: "quoted value keeps spaces and hashes",
			lines: []string{
				`settings="{\"primaryColor\": \"purple #1\"}" # trailing`,
				`empty=""`,
			},
			want: map[string]string{
				"settings": `{"primaryColor": "purple #1"}`,
				"empty":    "",
			},
			wantErr: false,
		},
		{
			name: "unterminated quote",
			lines: []string{
				`key="open`,
			},
			want:    nil,
			wantErr: true,
		},
		{
			name: "duplicate keys - last one wins",
			lines: []string{
				"key=value1",
				"key=value2",
			},
			want: map[string]string{
				"key": "value2",
			},
			wantErr: false,
		},
		{
			name: "special characters in values",
			lines: []string{
				"path=/path/to/storage.db",
				"remote=git@example.com:user/repo.git",
				"special=!@#$%^&*()",
			},
			want: map[string]string{
				"path":    "/path/to/storage.db",
				"remote":  "git@example.com:user/repo.git",
				"special": "!@#$%^&*()",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.lines)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFormatValue_RoundTrip(t *testing.T) {
	values := []string{
		"",
		"plain",
		"with space",
		`{"theme":{"mode":"dark"}}`,
		"hash#inside",
		"trailing ",
		"line\nbreak",
		`back\slash`,
	}

	for _, v := range values {
		t.Run(v, func(t *testing.T) {
			got, err := Parse([]string{"k=" + FormatValue(v)})
			require.NoError(t, err)
			require.Equal(t, v, got["k"])
		})
	}
}
