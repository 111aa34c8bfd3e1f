package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-paint/common"
	"github.com/go-gl/mathgl/mgl32"
)

func TestCamera_DefaultAxes(t *testing.T) {
	c := NewCamera()
	if !c.Forward().ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("Forward = %v, want -Z", c.Forward())
	}
	if !c.Right().ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("Right = %v, want +X", c.Right())
	}
}

func TestCamera_PitchClamped(t *testing.T) {
	tests := []struct {
		name  string
		pitch float32
		want  float32
	}{
		{"within range", 0.5, 0.5},
		{"straight up", math.Pi / 2, MaxPitch},
		{"straight down", -math.Pi, -MaxPitch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(WithOrientation(0, tt.pitch))
			if c.Pitch() != tt.want {
				t.Errorf("builder pitch = %v, want %v", c.Pitch(), tt.want)
			}
			c.SetOrientation(0, tt.pitch)
			if c.Pitch() != tt.want {
				t.Errorf("SetOrientation pitch = %v, want %v", c.Pitch(), tt.want)
			}
		})
	}
}

func TestCamera_MouseLookClamps(t *testing.T) {
	c := NewCamera(WithMouseSensitivity(0.01))
	c.AddMouseDelta(0, -100000)
	c.Update(0)
	if c.Pitch() != MaxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch(), MaxPitch)
	}

	c.AddMouseDelta(50, 0)
	c.AddMouseDelta(50, 0)
	c.Update(0)
	if math.Abs(float64(c.Yaw()-1)) > 1e-5 {
		t.Errorf("Yaw = %v, want 1", c.Yaw())
	}

	c.Update(0)
	if math.Abs(float64(c.Yaw()-1)) > 1e-5 {
		t.Error("mouse delta should be consumed by Update")
	}
}

func TestCamera_Movement(t *testing.T) {
	tests := []struct {
		name string
		keys []int
		want mgl32.Vec3
	}{
		{"forward", []int{common.KeyW}, mgl32.Vec3{0, 0, -2}},
		{"strafe right", []int{common.KeyD}, mgl32.Vec3{2, 0, 0}},
		{"up", []int{common.KeyE}, mgl32.Vec3{0, 2, 0}},
		{"sprint back", []int{common.KeyS, common.KeyLeftShift}, mgl32.Vec3{0, 0, 6}},
		{"opposing keys cancel", []int{common.KeyA, common.KeyD}, mgl32.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(WithMoveSpeed(2), WithSprintMultiplier(3))
			for _, k := range tt.keys {
				c.SetKey(k, true)
			}
			c.Update(1)
			if !c.Position().ApproxEqualThreshold(tt.want, 1e-4) {
				t.Errorf("Position = %v, want %v", c.Position(), tt.want)
			}
		})
	}
}

func TestCamera_ViewLooksDownForward(t *testing.T) {
	c := NewCamera(WithPosition(1, 2, 3))
	p := c.View().Mul4x1(mgl32.Vec4{1, 2, 0, 1})
	if !p.Vec3().ApproxEqualThreshold(mgl32.Vec3{0, 0, -3}, 1e-4) {
		t.Errorf("view-space point = %v, want (0,0,-3)", p)
	}

	c.SetAspect(-1)
	c.SetAspect(2)
	if c.ViewProjection() != c.Projection().Mul4(c.View()) {
		t.Error("ViewProjection should equal Projection * View")
	}
}
