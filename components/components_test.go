package components

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Shape
		want bool
	}{
		{"apart", Shape{X: 0, Y: 0, Size: 5}, Shape{X: 20, Y: 0, Size: 5}, false},
		{"touching", Shape{X: 0, Y: 0, Size: 5}, Shape{X: 10, Y: 0, Size: 5}, true},
		{"diagonal touching", Shape{X: 0, Y: 0, Size: 2}, Shape{X: 3, Y: 4, Size: 3}, true},
		{"diagonal apart", Shape{X: 0, Y: 0, Size: 2}, Shape{X: 3, Y: 4, Size: 2.9}, false},
		{"concentric", Shape{X: 7, Y: 7, Size: 1}, Shape{X: 7, Y: 7, Size: 30}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(&tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(&tt.a); got != tt.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorString(t *testing.T) {
	if got := (Color{1, 22, 255}).String(); got != "rgb(1 22 255)" {
		t.Errorf("String() = %q, want %q", got, "rgb(1 22 255)")
	}
}

func TestMultiplySize(t *testing.T) {
	tests := []struct {
		name   string
		start  float64
		factor float64
		want   float64
	}{
		{"double", 20, 2, 40},
		{"half", 20, 0.5, 10},
		{"zero clamps to one", 4, 0, 1},
		{"half of one", 1, 0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEvil(100, 100, 9, tt.start, Red)
			e.VelX = 3
			e.MultiplySize(tt.factor)
			if e.Size != tt.want {
				t.Errorf("Size = %v, want %v", e.Size, tt.want)
			}
			if e.VelX != 9 || e.VelY != 9 {
				t.Errorf("velocity = (%v, %v), want base speed 9", e.VelX, e.VelY)
			}
		})
	}
}

func TestBallSteps(t *testing.T) {
	b := NewBall(1, Shape{VelX: 3, VelY: 4, Size: 1}, Left, Down)
	if b.StepX() != -3 || b.StepY() != 4 {
		t.Errorf("steps = (%v, %v), want (-3, 4)", b.StepX(), b.StepY())
	}
	if b.Collision == nil {
		t.Error("expected initialized collision set")
	}
}
