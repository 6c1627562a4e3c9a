package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-barrage/internal/config"
	"github.com/vovakirdan/tui-barrage/internal/core"
	"github.com/vovakirdan/tui-barrage/internal/games/barrage"
	"github.com/vovakirdan/tui-barrage/internal/registry"
)

func TestParseKeySchedule(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		expected []keyStep
		wantErr  bool
	}{
		{"empty", "", nil, false},
		{"single", "10:up", []keyStep{{10, core.RawKey(core.KeyArrowUp)}}, false},
		{"spaces and order", " 3:left , 3:s,9:R ", []keyStep{
			{3, core.RawKey(core.KeyArrowLeft)},
			{3, core.UnicodeKey('s')},
			{9, core.RawKey(core.KeyR)},
		}, false},
		{"missing colon", "10up", nil, true},
		{"negative tick", "-1:up", nil, true},
		{"bad key", "1:jump", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseKeySchedule(tc.script)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseKeySchedule(%q) error = %v, wantErr %v", tc.script, err, tc.wantErr)
			}
			if len(got) != len(tc.expected) {
				t.Fatalf("parseKeySchedule(%q) = %v, expected %v", tc.script, got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("step %d = %v, expected %v", i, got[i], tc.expected[i])
				}
			}
		})
	}
}

func TestSimulateAppliesKeysBeforeTick(t *testing.T) {
	game, screen, err := registry.CreateWithScreen(config.VariantBarrage, registry.Options{})
	if err != nil {
		t.Fatalf("CreateWithScreen failed: %v", err)
	}

	steps := []keyStep{
		{0, core.RawKey(core.KeyArrowUp)},
		{0, core.RawKey(core.KeyArrowUp)},
	}
	simulate(game, 1, steps)

	if screen.Get(40, 10) != barrage.PlayerChar {
		got := screen.Row(10)
		t.Errorf("row 10 = %q, expected the player two rows above the center", got)
	}
	if game.State().Score != 1 {
		t.Errorf("score = %d, expected 1", game.State().Score)
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	run := func() string {
		game, screen, err := registry.CreateWithScreen(config.VariantDrift, registry.Options{})
		if err != nil {
			t.Fatalf("CreateWithScreen failed: %v", err)
		}
		simulate(game, 150, []keyStep{{20, core.RawKey(core.KeyArrowLeft)}})
		var buf bytes.Buffer
		report(&buf, game, screen)
		return buf.String()
	}

	first, second := run(), run()
	if first != second {
		t.Errorf("two identical runs differ:\n%s\n---\n%s", first, second)
	}
	if !strings.Contains(first, "status: ") {
		t.Errorf("report missing the snapshot:\n%s", first)
	}
}
