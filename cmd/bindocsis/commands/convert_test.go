package commands

import "testing"

func TestFormatFromExt(t *testing.T) {
	cases := map[string]string{
		"config.bin":  "bin",
		"config.cm":   "bin",
		"config.yaml": "yaml",
		"config.yml":  "yaml",
		"config.json": "json",
		"config.txt":  "",
	}
	for path, want := range cases {
		if got := formatFromExt(path); got != want {
			t.Errorf("formatFromExt(%q) = %q, want %q", path, got, want)
		}
	}
}
