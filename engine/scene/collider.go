package scene

import (
	"math"

	"github.com/Carmen-Shannon/oxy-paint/common"
	"github.com/go-gl/mathgl/mgl32"
)

// quadCollider is the world-space parallelogram covered by an object's unit quad.
// corner is the local (-0.5, 0.5) vertex, edgeU runs along +X and edgeV along -Y, so the
// barycentric (alpha, beta) of a hit is the texture coordinate with v = 0 on the top row.
type quadCollider struct {
	corner mgl32.Vec3
	edgeU  mgl32.Vec3
	edgeV  mgl32.Vec3
	normal mgl32.Vec3
	d      float32
	w      mgl32.Vec3
}

// newQuadCollider builds the collider for a model matrix.
// Returns false when the transform collapses the quad to a line or point.
func newQuadCollider(model mgl32.Mat4) (quadCollider, bool) {
	corner := common.TransformPoint(model, mgl32.Vec3{-0.5, 0.5, 0})
	u := common.TransformDirection(model, mgl32.Vec3{1, 0, 0})
	v := common.TransformDirection(model, mgl32.Vec3{0, -1, 0})

	cross := u.Cross(v)
	if cross.Len() < 1e-8 {
		return quadCollider{}, false
	}
	n := cross.Normalize()

	return quadCollider{
		corner: corner,
		edgeU:  u,
		edgeV:  v,
		// U x V points down local -Z; the front face is +Z.
		normal: n.Mul(-1),
		d:      n.Dot(corner),
		w:      n.Mul(1 / n.Dot(cross)),
	}, true
}

// hit intersects the ray with the quad. Both faces are solid.
func (q quadCollider) hit(origin, dir mgl32.Vec3, tMin, tMax float32) (t, alpha, beta float32, ok bool) {
	n := q.normal.Mul(-1)
	denom := dir.Dot(n)
	if float32(math.Abs(float64(denom))) < 1e-8 {
		return 0, 0, 0, false
	}

	t = (q.d - origin.Dot(n)) / denom
	if t < tMin || t > tMax {
		return 0, 0, 0, false
	}

	rel := origin.Add(dir.Mul(t)).Sub(q.corner)
	alpha = q.w.Dot(rel.Cross(q.edgeV))
	beta = q.w.Dot(q.edgeU.Cross(rel))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return 0, 0, 0, false
	}
	return t, alpha, beta, true
}

// faceNormal returns the normal on the side the ray arrived from.
func (q quadCollider) faceNormal(dir mgl32.Vec3) mgl32.Vec3 {
	if dir.Dot(q.normal) > 0 {
		return q.normal.Mul(-1)
	}
	return q.normal
}
