package systems

// BulletSeed is the spawn state for a bullet fired from the ship's nose.
type BulletSeed struct {
	X, Y       float32
	VelX, VelY float32
}

// MuzzleSpawn computes the bullet spawn position and velocity from the
// ship state. The bullet emerges at muzzleOffset along the nose and
// travels in the same direction; motion is pure ballistic afterwards.
func MuzzleSpawn(shipX, shipY, angle, muzzleOffset, speed float32) BulletSeed {
	fx, fy := Forward(angle)
	return BulletSeed{
		X:    shipX + fx*muzzleOffset,
		Y:    shipY + fy*muzzleOffset,
		VelX: fx * speed,
		VelY: fy * speed,
	}
}
