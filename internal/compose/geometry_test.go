package compose

import (
	"image"
	"testing"
)

func TestPosition_LeftTop(t *testing.T) {
	tests := []struct {
		name               string
		bgW, bgH, fgW, fgH int
		margin             int
	}{
		{"no margin", 800, 600, 200, 150, 0},
		{"typical margin", 800, 600, 200, 150, 50},
		{"margin exceeds background", 100, 100, 50, 50, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			align := Alignment{H: AlignLeft, V: AlignTop}
			got := Position(tt.bgW, tt.bgH, tt.fgW, tt.fgH, align, tt.margin)
			want := image.Pt(tt.margin, tt.margin)
			if got != want {
				t.Errorf("Position: got %v, want %v", got, want)
			}
		})
	}
}

func TestPosition_RightBottom(t *testing.T) {
	tests := []struct {
		name               string
		bgW, bgH, fgW, fgH int
		margin             int
		want               image.Point
	}{
		{"fits with margin", 800, 600, 200, 150, 50, image.Pt(550, 400)},
		{"flush at zero margin", 800, 600, 200, 150, 0, image.Pt(600, 450)},
		{"negative when oversized", 200, 100, 100, 100, 150, image.Pt(-50, -150)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			align := Alignment{H: AlignRight, V: AlignBottom}
			got := Position(tt.bgW, tt.bgH, tt.fgW, tt.fgH, align, tt.margin)
			if got != tt.want {
				t.Errorf("Position: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPosition_Center(t *testing.T) {
	tests := []struct {
		name               string
		bgW, bgH, fgW, fgH int
		want               image.Point
	}{
		{"even difference", 800, 600, 200, 150, image.Pt(300, 225)},
		{"odd difference", 801, 601, 200, 150, image.Pt(300, 225)},
		{"exact fit", 200, 150, 200, 150, image.Pt(0, 0)},
		{"oversized even difference", 700, 500, 800, 600, image.Pt(-50, -50)},
		// Floor, not truncation: (701-800)/2 = -99/2 floors to -50.
		{"oversized odd difference", 701, 501, 800, 600, image.Pt(-50, -50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			align := Alignment{H: AlignHCenter, V: AlignVCenter}
			got := Position(tt.bgW, tt.bgH, tt.fgW, tt.fgH, align, 999)
			if got != tt.want {
				t.Errorf("Position: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPosition_CenterIgnoresMargin(t *testing.T) {
	align := Alignment{H: AlignHCenter, V: AlignVCenter}
	for _, margin := range []int{0, 50, 1000} {
		got := Position(800, 600, 200, 150, align, margin)
		if got != image.Pt(300, 225) {
			t.Errorf("margin %d: got %v, want (300,225)", margin, got)
		}
	}
}

func TestParseHAlign(t *testing.T) {
	tests := []struct {
		in      string
		want    HAlign
		wantErr bool
	}{
		{"left", AlignLeft, false},
		{"center", AlignHCenter, false},
		{"right", AlignRight, false},
		{"RIGHT", AlignRight, false},
		{"top", "", true},
		{"middle", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseHAlign(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHAlign(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHAlign(%q): unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseHAlign(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseVAlign(t *testing.T) {
	tests := []struct {
		in      string
		want    VAlign
		wantErr bool
	}{
		{"top", AlignTop, false},
		{"center", AlignVCenter, false},
		{"bottom", AlignBottom, false},
		{"Bottom", AlignBottom, false},
		{"left", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseVAlign(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseVAlign(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseVAlign(%q): unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseVAlign(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}
