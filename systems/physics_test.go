package systems

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/ballchase/components"
)

func TestUpdateBall(t *testing.T) {
	bounds := components.Bounds{Width: 100, Height: 80}

	tests := []struct {
		name  string
		x, y  float64
		h     components.HorizontalDir
		v     components.VerticalDir
		wantX float64
		wantY float64
		wantH components.HorizontalDir
		wantV components.VerticalDir
	}{
		{"free move", 50, 40, components.Right, components.Down, 53, 44, components.Right, components.Down},
		{"free move up left", 50, 40, components.Left, components.Up, 47, 36, components.Left, components.Up},
		{"clamp right wall", 88, 40, components.Right, components.Down, 90, 44, components.Left, components.Down},
		{"clamp left wall", 12, 40, components.Left, components.Down, 10, 44, components.Right, components.Down},
		{"clamp bottom wall", 50, 68, components.Right, components.Down, 53, 70, components.Right, components.Up},
		{"clamp top wall", 50, 12, components.Right, components.Up, 53, 10, components.Right, components.Down},
		{"corner", 89, 69, components.Right, components.Down, 90, 70, components.Left, components.Up},
		{"exact tangent still flips", 90, 40, components.Right, components.Down, 90, 44, components.Left, components.Down},
		{"land exactly on tangent", 87, 40, components.Right, components.Down, 90, 44, components.Right, components.Down},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := components.NewBall(1, components.Shape{X: tt.x, Y: tt.y, VelX: 3, VelY: 4, Size: 10}, tt.h, tt.v)
			UpdateBall(b, bounds)
			if b.X != tt.wantX || b.Y != tt.wantY {
				t.Errorf("position = (%v, %v), want (%v, %v)", b.X, b.Y, tt.wantX, tt.wantY)
			}
			if b.Horizontal != tt.wantH || b.Vertical != tt.wantV {
				t.Errorf("direction = (%v, %v), want (%v, %v)", b.Horizontal, b.Vertical, tt.wantH, tt.wantV)
			}
		})
	}
}

func TestUpdateBallContainment(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	bounds := components.Bounds{Width: 320, Height: 240}

	for n := 0; n < 50; n++ {
		size := float64(RandomInt(rng, 10, 40))
		b := components.NewBall(uint64(n), components.Shape{
			X:    float64(RandomInt(rng, int(size), int(bounds.Width-size))),
			Y:    float64(RandomInt(rng, int(size), int(bounds.Height-size))),
			VelX: float64(RandomInt(rng, 1, 10)),
			VelY: float64(RandomInt(rng, 1, 10)),
			Size: size,
		}, components.HorizontalDir(rng.Intn(2)), components.VerticalDir(rng.Intn(2)))

		for tick := 0; tick < 500; tick++ {
			UpdateBall(b, bounds)
			if b.X < b.Size || b.X > bounds.Width-b.Size || b.Y < b.Size || b.Y > bounds.Height-b.Size {
				t.Fatalf("ball %d escaped at tick %d: (%v, %v) size %v", n, tick, b.X, b.Y, b.Size)
			}
		}
	}
}

func TestUpdateEvil(t *testing.T) {
	bounds := components.Bounds{Width: 200, Height: 100}

	tests := []struct {
		name  string
		x, y  float64
		dirs  []Direction
		wantX float64
		wantY float64
	}{
		{"idle", 100, 50, nil, 100, 50},
		{"right", 100, 50, []Direction{DirRight}, 110, 50},
		{"left up", 100, 50, []Direction{DirLeft, DirUp}, 90, 40},
		{"right wins over left", 100, 50, []Direction{DirLeft, DirRight}, 110, 50},
		{"down wins over up", 100, 50, []Direction{DirUp, DirDown}, 100, 60},
		{"clamp right keeps y step", 175, 50, []Direction{DirRight, DirDown}, 180, 60},
		{"clamp left", 25, 50, []Direction{DirLeft}, 20, 50},
		{"clamp both", 175, 75, []Direction{DirRight, DirDown}, 180, 80},
		{"clamp top keeps x step", 100, 25, []Direction{DirUp, DirLeft}, 90, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := components.NewEvil(tt.x, tt.y, 10, 20, components.Red)
			var in Intent
			for _, d := range tt.dirs {
				in.Set(SourceArrow, d, true)
			}
			UpdateEvil(e, &in, bounds)
			if e.X != tt.wantX || e.Y != tt.wantY {
				t.Errorf("position = (%v, %v), want (%v, %v)", e.X, e.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestRandomInt(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := RandomInt(rng, 3, 6)
		if v < 3 || v > 6 {
			t.Fatalf("RandomInt(3, 6) = %d out of range", v)
		}
		seen[v] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected all 4 values in range, saw %v", seen)
	}

	if got := RandomInt(rng, 10, 5); got != 10 {
		t.Errorf("inverted range = %d, want 10", got)
	}
}
