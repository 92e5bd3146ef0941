package skilleval

import "testing"

func TestParseScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"bare digit", "3", 3},
		{"max", "5", 5},
		{"zero", "0", 0},
		{"clamped above max", "7", 5},
		{"large number clamped", "100", 5},
		{"surrounding prose", "الدرجة هي 4 بناءً على الأداء", 4},
		{"first run wins", "بين 2 و 4", 2},
		{"no digits", "لا يمكن التقييم", 0},
		{"empty", "", 0},
		{"digits inside word", "score=3!", 3},
		{"multi-digit run", "45 نقطة", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseScore(tt.text); got != tt.want {
				t.Errorf("ParseScore(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestDecodeScore(t *testing.T) {
	score, err := DecodeScore([]byte(`{"score": 4}`))
	if err != nil {
		t.Fatalf("DecodeScore failed: %v", err)
	}
	if score != 4 {
		t.Errorf("score = %d, want 4", score)
	}

	score, err = DecodeScore([]byte(`{"score": 9}`))
	if err != nil {
		t.Fatalf("DecodeScore failed: %v", err)
	}
	if score != 5 {
		t.Errorf("out-of-range score = %d, want clamped 5", score)
	}

	if _, err := DecodeScore([]byte(`not json`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
