package core

import "testing"

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{InfoLevel, "INFO"},
		{ErrorLevel, "ERROR"},
		{FatalLevel, "FATAL"},
		{DebugLevel, "DEBUG"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevel_Rank(t *testing.T) {
	// The numeric encoding is observable through RankFilter.
	if InfoLevel != 0 || ErrorLevel != 1 || FatalLevel != 2 || DebugLevel != 3 {
		t.Fatalf("unexpected level encoding: %d %d %d %d", InfoLevel, ErrorLevel, FatalLevel, DebugLevel)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"info", InfoLevel, false},
		{"ERROR", ErrorLevel, false},
		{" Fatal ", FatalLevel, false},
		{"debug", DebugLevel, false},
		{"warn", InfoLevel, true},
		{"", InfoLevel, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRankFilter(t *testing.T) {
	levels := []Level{InfoLevel, ErrorLevel, FatalLevel, DebugLevel}

	// Quirk kept on purpose: InfoLevel is the most restrictive minimum
	// and DebugLevel lets everything through.
	want := map[Level][]bool{
		InfoLevel:  {true, false, false, false},
		ErrorLevel: {true, true, false, false},
		FatalLevel: {true, true, true, false},
		DebugLevel: {true, true, true, true},
	}

	for threshold, row := range want {
		for i, level := range levels {
			if got := RankFilter.Allows(threshold, level); got != row[i] {
				t.Errorf("RankFilter.Allows(threshold=%v, %v) = %v, want %v", threshold, level, got, row[i])
			}
		}
	}
}

func TestUrgencyFilter(t *testing.T) {
	levels := []Level{InfoLevel, ErrorLevel, FatalLevel, DebugLevel}

	want := map[Level][]bool{
		DebugLevel: {true, true, true, true},
		InfoLevel:  {true, true, true, false},
		ErrorLevel: {false, true, true, false},
		FatalLevel: {false, false, true, false},
	}

	for threshold, row := range want {
		for i, level := range levels {
			if got := UrgencyFilter.Allows(threshold, level); got != row[i] {
				t.Errorf("UrgencyFilter.Allows(threshold=%v, %v) = %v, want %v", threshold, level, got, row[i])
			}
		}
	}

	if UrgencyFilter.Allows(InfoLevel, Level(9)) {
		t.Error("UrgencyFilter should reject unknown levels")
	}
}

func TestFilter_RejectsUndeclaredLevels(t *testing.T) {
	for _, f := range []Filter{RankFilter, UrgencyFilter} {
		for _, level := range []Level{Level(-3), Level(-1), Level(4), Level(42)} {
			if f.Allows(DebugLevel, level) {
				t.Errorf("%s filter allowed undeclared level %d", f, level)
			}
		}
	}
}
