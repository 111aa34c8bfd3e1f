package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-paint/common"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxPitch is the pitch limit in radians, just short of straight up or down.
const MaxPitch = float32(89 * math.Pi / 180)

type cameraImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3
	yaw      float32
	pitch    float32

	fov    float32
	aspect float32
	near   float32
	far    float32

	moveSpeed        float32
	sprintMultiplier float32
	mouseSensitivity float32

	keys    map[int]bool
	mouseDX float64
	mouseDY float64
}

// Camera defines a free-look first-person camera.
// Input is fed in from window callbacks with SetKey and AddMouseDelta and applied on the next
// Update, so input and simulation can run on different goroutines.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Position() mgl32.Vec3

	// SetPosition moves the camera.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetPosition(x, y, z float32)

	// Yaw returns the heading in radians. 0 looks down -Z, positive turns toward +X.
	Yaw() float32

	// Pitch returns the elevation in radians, within ±MaxPitch.
	Pitch() float32

	// SetOrientation sets yaw and pitch. Pitch is clamped to ±MaxPitch.
	//
	// Parameters:
	//   - yaw: heading in radians
	//   - pitch: elevation in radians
	SetOrientation(yaw, pitch float32)

	// Forward returns the unit view direction.
	Forward() mgl32.Vec3

	// Right returns the unit vector to the right of the view direction, parallel to the ground.
	Right() mgl32.Vec3

	// SetKey records whether a key is held. Recognized keys are the movement keys in common.
	//
	// Parameters:
	//   - key: the key code
	//   - pressed: true while held
	SetKey(key int, pressed bool)

	// AddMouseDelta accumulates cursor movement in pixels until the next Update.
	//
	// Parameters:
	//   - dx, dy: cursor movement, +y pointing down the screen
	AddMouseDelta(dx, dy float64)

	// Update applies the accumulated mouse movement and moves the camera along held keys.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	Update(dt float32)

	// SetAspect sets the aspect ratio (width / height).
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// View returns the look-at view matrix.
	View() mgl32.Mat4

	// Projection returns the perspective projection matrix.
	Projection() mgl32.Mat4

	// ViewProjection returns Projection * View.
	ViewProjection() mgl32.Mat4
}

// Compile-time interface compliance check
var _ Camera = &cameraImpl{}

// NewCamera creates a free-look camera at the origin looking down -Z.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:               &sync.Mutex{},
		fov:              float32(math.Pi / 3),
		aspect:           16.0 / 9.0,
		near:             0.05,
		far:              500,
		moveSpeed:        3,
		sprintMultiplier: 2,
		mouseSensitivity: 0.0025,
		keys:             make(map[int]bool),
	}
	for _, option := range options {
		option(c)
	}
	c.pitch = common.Clamp(c.pitch, -MaxPitch, MaxPitch)
	return c
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) SetPosition(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = mgl32.Vec3{x, y, z}
}

func (c *cameraImpl) Yaw() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.yaw
}

func (c *cameraImpl) Pitch() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pitch
}

func (c *cameraImpl) SetOrientation(yaw, pitch float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.yaw = yaw
	c.pitch = common.Clamp(pitch, -MaxPitch, MaxPitch)
}

func (c *cameraImpl) Forward() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.DirectionFromYawPitch(c.yaw, c.pitch)
}

func (c *cameraImpl) Right() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.right()
}

// right is the horizontal right vector. Caller must hold the mutex.
func (c *cameraImpl) right() mgl32.Vec3 {
	return common.DirectionFromYawPitch(c.yaw, 0).Cross(mgl32.Vec3{0, 1, 0}).Normalize()
}

func (c *cameraImpl) SetKey(key int, pressed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keys[key] = pressed
}

func (c *cameraImpl) AddMouseDelta(dx, dy float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mouseDX += dx
	c.mouseDY += dy
}

func (c *cameraImpl) Update(dt float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.yaw += float32(c.mouseDX) * c.mouseSensitivity
	c.pitch = common.Clamp(c.pitch-float32(c.mouseDY)*c.mouseSensitivity, -MaxPitch, MaxPitch)
	c.mouseDX, c.mouseDY = 0, 0

	forward := common.DirectionFromYawPitch(c.yaw, c.pitch)
	right := c.right()
	up := mgl32.Vec3{0, 1, 0}

	var move mgl32.Vec3
	if c.keys[common.KeyW] {
		move = move.Add(forward)
	}
	if c.keys[common.KeyS] {
		move = move.Sub(forward)
	}
	if c.keys[common.KeyD] {
		move = move.Add(right)
	}
	if c.keys[common.KeyA] {
		move = move.Sub(right)
	}
	if c.keys[common.KeyE] {
		move = move.Add(up)
	}
	if c.keys[common.KeyQ] {
		move = move.Sub(up)
	}
	if move.Len() < 1e-6 {
		return
	}

	speed := c.moveSpeed
	if c.keys[common.KeyLeftShift] {
		speed *= c.sprintMultiplier
	}
	c.position = c.position.Add(move.Normalize().Mul(speed * dt))
}

func (c *cameraImpl) SetAspect(aspect float32) {
	if aspect <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
}

func (c *cameraImpl) View() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view()
}

func (c *cameraImpl) view() mgl32.Mat4 {
	eye := c.position
	return mgl32.LookAtV(eye, eye.Add(common.DirectionFromYawPitch(c.yaw, c.pitch)), mgl32.Vec3{0, 1, 0})
}

func (c *cameraImpl) Projection() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return mgl32.Perspective(c.fov, c.aspect, c.near, c.far)
}

func (c *cameraImpl) ViewProjection() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return mgl32.Perspective(c.fov, c.aspect, c.near, c.far).Mul4(c.view())
}
