package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ModelMatrix constructs a 4x4 model matrix from position, Euler rotation, and scale.
// The rotation order is Y * X * Z (yaw-pitch-roll), matching the transform order used for
// scene objects. Matrices are column-major (mgl32 convention).
//
// Parameters:
//   - pos: translation in world space
//   - rot: rotation angles in radians around each axis
//   - scale: scale factors along each axis
//
// Returns:
//   - mgl32.Mat4: T * Ry * Rx * Rz * S
func ModelMatrix(pos, rot, scale mgl32.Vec3) mgl32.Mat4 {
	r := mgl32.HomogRotate3DY(rot.Y()).Mul4(mgl32.HomogRotate3DX(rot.X())).Mul4(mgl32.HomogRotate3DZ(rot.Z()))
	return mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).Mul4(r).Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

// TransformPoint applies m to a point (w = 1).
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// TransformDirection applies m to a direction (w = 0), ignoring translation.
func TransformDirection(m mgl32.Mat4, d mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(d.Vec4(0)).Vec3()
}

// DirectionFromYawPitch converts yaw/pitch angles to a unit direction vector.
// Yaw 0 / pitch 0 looks down -Z; positive yaw turns toward +X, positive pitch looks up.
//
// Parameters:
//   - yaw: rotation around the world Y axis in radians
//   - pitch: elevation above the horizontal plane in radians
//
// Returns:
//   - mgl32.Vec3: normalized direction
func DirectionFromYawPitch(yaw, pitch float32) mgl32.Vec3 {
	cp := float32(math.Cos(float64(pitch)))
	return mgl32.Vec3{
		cp * float32(math.Sin(float64(yaw))),
		float32(math.Sin(float64(pitch))),
		-cp * float32(math.Cos(float64(yaw))),
	}.Normalize()
}

// OrthonormalBasis returns two unit vectors perpendicular to n and to each other.
// n must be normalized.
func OrthonormalBasis(n mgl32.Vec3) (t, b mgl32.Vec3) {
	up := mgl32.Vec3{0, 1, 0}
	if float32(math.Abs(float64(n.Dot(up)))) > 0.999 {
		up = mgl32.Vec3{1, 0, 0}
	}
	t = up.Cross(n).Normalize()
	b = n.Cross(t)
	return t, b
}
