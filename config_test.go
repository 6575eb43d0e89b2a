package main

import "testing"

func TestParseConfig(t *testing.T) {
	data := []byte(`
grid_width: 48
grid_height: 30
draw_style: additive
save_directory: "~/paintings"
start_menu: false
debug: true
`)
	config := parseConfig(data, "/home/someone")

	if config.GridWidth != 48 || config.GridHeight != 30 {
		t.Fatalf("grid size: got %dx%d want 48x30", config.GridWidth, config.GridHeight)
	}
	if config.gridStyle() != StyleAdditive {
		t.Fatalf("draw style: got %v want %v", config.gridStyle(), StyleAdditive)
	}
	if config.SaveDirectory != "/home/someone/paintings" {
		t.Fatalf("save directory: got %q", config.SaveDirectory)
	}
	if config.StartMenu {
		t.Fatalf("start_menu should be false")
	}
	if !config.Debug {
		t.Fatalf("debug should be true")
	}
}

func TestParseConfigDefaultsOnGarbage(t *testing.T) {
	config := parseConfig([]byte("::: not yaml {"), "/home/someone")
	want := defaultConfig()
	if config.GridWidth != want.GridWidth || config.DrawStyle != want.DrawStyle {
		t.Fatalf("garbage input should fall back to defaults, got %+v", config)
	}
}

func TestParseConfigClampsBadValues(t *testing.T) {
	data := []byte(`
grid_width: -3
grid_height: 0
draw_style: cubist
`)
	config := parseConfig(data, "/home/someone")
	want := defaultConfig()

	if config.GridWidth != want.GridWidth || config.GridHeight != want.GridHeight {
		t.Fatalf("nonpositive sizes should reset to defaults, got %dx%d", config.GridWidth, config.GridHeight)
	}
	if config.gridStyle() != StyleSingle {
		t.Fatalf("unknown style should reset to single, got %v", config.gridStyle())
	}
}

func TestGetSavePathWithoutDirectory(t *testing.T) {
	config := defaultConfig()
	if got := config.GetSavePath("canvas.png"); got != "canvas.png" {
		t.Fatalf("bare filename expected, got %q", got)
	}
}
