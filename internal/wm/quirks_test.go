package wm

import "testing"

func TestRecognizeType(t *testing.T) {
	cases := []struct {
		name string
		want ManagerType
	}{
		{"Metacity", Metacity},
		{"compiz", Compiz},
		{"KWin", KWin},
		{"Xfwm4", Xfwm},
		{"Openbox", Openbox},
		{"Fluxbox", Fluxbox},
		{"Blackbox", Blackbox},
		{"IceWM 1.3.8 (Linux 3.2.0/i686)", IceWM},
		{"e16", Enlightenment},
		{"Sawfish", Sawfish},
		{"Window Maker", WindowMaker},
		{"pekwm", Pekwm},
		{"herbstluftwm", Unknown},
		{"", Unknown},
	}
	for _, c := range cases {
		if got := RecognizeType(c.name); got != c.want {
			t.Fatalf("RecognizeType(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestQuirkTable(t *testing.T) {
	cases := []struct {
		mtype ManagerType
		want  Quirks
	}{
		{Compiz, Quirks{DontTranslateCoords: true, AdjustGeometry: true}},
		{Fluxbox, Quirks{DontTranslateCoords: true, ParentXY: true}},
		{WindowMaker, Quirks{DontTranslateCoords: true, ParentXY: true, CalculateExtents: true}},
		{KWin, Quirks{AdjustGeometry: true}},
		{Enlightenment, Quirks{AdjustGeometry: true}},
		{IceWM, Quirks{AdjustGeometry: true, CalculateExtents: true}},
		{Blackbox, Quirks{AdjustGeometry: true, CalculateExtents: true}},
		{Sawfish, Quirks{CalculateExtents: true}},
		{Unknown, Quirks{CalculateExtents: true}},
		{Metacity, Quirks{}},
		{Openbox, Quirks{}},
		{Xfwm, Quirks{}},
		{Pekwm, Quirks{}},
	}
	for _, c := range cases {
		if got := c.mtype.Quirks(); got != c.want {
			t.Fatalf("%v quirks = %+v, want %+v", c.mtype, got, c.want)
		}
	}
}

func TestInferLayout(t *testing.T) {
	cases := []struct {
		cols, rows, desktops int
		wantCols, wantRows   int
	}{
		{4, 2, 8, 4, 2}, // both given, untouched
		{0, 2, 8, 4, 2},
		{0, 2, 7, 4, 2}, // rounds up
		{4, 0, 8, 4, 2},
		{3, 0, 7, 3, 3},
	}
	for _, c := range cases {
		cols, rows := inferLayout(c.cols, c.rows, c.desktops)
		if cols != c.wantCols || rows != c.wantRows {
			t.Fatalf("inferLayout(%d, %d, %d) = (%d, %d), want (%d, %d)",
				c.cols, c.rows, c.desktops, cols, rows, c.wantCols, c.wantRows)
		}
	}
}
