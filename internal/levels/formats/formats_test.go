package formats

import "testing"

func TestNormalizeGrid(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"uppercase", "cat\ndog", "CAT\nDOG"},
		{"trailing spaces", "CAT   \n DOG\t", "CAT\n DOG"},
		{"outer blank lines", "\n\nCAT\n\n", "CAT"},
		{"crlf", "ab\r\ncd\r\n", "AB\nCD"},
		{"inner gap kept", "A\n\nB", "A\n\nB"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeGrid(tc.input); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestParseCatalog(t *testing.T) {
	data := "header # comment\n" +
		CatalogDelimiter + "\n" +
		"ab # tail\ncd\n" +
		CatalogDelimiter + "\n" +
		"   \n# only a comment\n" +
		CatalogDelimiter + "\n" +
		"ef\n"

	levels := ParseCatalog([]byte(data))
	expected := []string{"HEADER", "AB\nCD", "EF"}
	if len(levels) != len(expected) {
		t.Fatalf("expected %d levels, got %d", len(expected), len(levels))
	}
	for i, grid := range expected {
		if levels[i].Grid != grid {
			t.Errorf("level %d: expected %q, got %q", i, grid, levels[i].Grid)
		}
	}
}

func TestParseYAML(t *testing.T) {
	lvl, err := ParseYAML([]byte("id: l1\nname: First\ngrid: |\n  cat\n   at\n"))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if lvl.ID != "l1" || lvl.Name != "First" {
		t.Errorf("unexpected header: %+v", lvl)
	}
	if lvl.Grid != "CAT\n AT" {
		t.Errorf("expected \"CAT\\n AT\", got %q", lvl.Grid)
	}

	if _, err := ParseYAML([]byte("id: [")); err == nil {
		t.Error("expected error for malformed yaml")
	}
	if _, err := ParseYAML([]byte("id: x\n")); err == nil {
		t.Error("expected error for missing grid")
	}
}
