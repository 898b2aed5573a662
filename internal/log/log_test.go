package log

import "testing"

func TestInit(Te *testing.T) {
	for _, debug := range []bool{true, false} {
		if err := Init(debug); err != nil {
			Te.Fatal(err)
		}
		l := GetSugaredLogger()
		if l == nil {
			Te.Fatal("nil logger after Init")
		}
		if got := l.Desugar().Core().Enabled(-1); got != debug {
			Te.Errorf("debug=%v, but debug level enabled: %v", debug, got)
		}
	}
}
