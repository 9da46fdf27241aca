package canvas

import "testing"

func TestSaveFlagsString(t *testing.T) {
	tests := []struct {
		f    SaveFlags
		want string
	}{
		{0, "None"},
		{SaveMatrix, "Matrix"},
		{SaveMatrix | SaveClip, "Matrix|Clip"},
		{SaveClipToLayer | SaveClip, "Clip|ClipToLayer"},
		{SaveAll, "All"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("SaveFlags(%d).String() = %q, want %q", uint8(tt.f), got, tt.want)
		}
	}
}

func TestBlendModeString(t *testing.T) {
	tests := []struct {
		m    BlendMode
		want string
	}{
		{BlendSourceOver, "SourceOver"},
		{BlendMultiply, "Multiply"},
		{BlendLuminosity, "Luminosity"},
		{BlendMode(200), "BlendMode(200)"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if got := blendOrDefault(BlendMode(200)); got != BlendSourceOver {
		t.Errorf("blendOrDefault(invalid) = %v, want SourceOver", got)
	}
	if got := blendOrDefault(BlendScreen); got != BlendScreen {
		t.Errorf("blendOrDefault(Screen) = %v", got)
	}
}
