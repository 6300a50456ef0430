package systems

import "testing"

// TestCirclesOverlap verifies the radius-sum intersection test.
func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Circle
		want bool
	}{
		{name: "concentric", a: Circle{0, 0, 5}, b: Circle{0, 0, 1}, want: true},
		{name: "touching counts", a: Circle{0, 0, 3}, b: Circle{7, 0, 4}, want: true},
		{name: "separated", a: Circle{0, 0, 3}, b: Circle{8, 0, 4}, want: false},
		{name: "diagonal overlap", a: Circle{0, 0, 10}, b: Circle{6, 8, 1}, want: true},
		{name: "bullet grazes rock", a: Circle{0, 43, 3}, b: Circle{0, 0, 40}, want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CirclesOverlap(tc.a, tc.b); got != tc.want {
				t.Errorf("CirclesOverlap(%+v, %+v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

// TestResolveBulletHits verifies pairing and the one-to-one tie-break.
func TestResolveBulletHits(t *testing.T) {
	tests := []struct {
		name      string
		bullets   []Circle
		asteroids []Circle
		want      []Hit
	}{
		{
			name:      "single hit",
			bullets:   []Circle{{0, 0, 3}},
			asteroids: []Circle{{10, 0, 15}},
			want:      []Hit{{Bullet: 0, Asteroid: 0}},
		},
		{
			name:      "miss",
			bullets:   []Circle{{0, 0, 3}},
			asteroids: []Circle{{100, 100, 15}},
			want:      nil,
		},
		{
			name:      "bullet inside two rocks destroys only the first",
			bullets:   []Circle{{0, 0, 3}},
			asteroids: []Circle{{5, 0, 15}, {-5, 0, 15}},
			want:      []Hit{{Bullet: 0, Asteroid: 0}},
		},
		{
			name:      "two bullets share one rock",
			bullets:   []Circle{{0, 0, 3}, {1, 0, 3}},
			asteroids: []Circle{{5, 0, 15}},
			want:      []Hit{{Bullet: 0, Asteroid: 0}},
		},
		{
			name:      "second bullet falls through to the next rock",
			bullets:   []Circle{{0, 0, 3}, {0, 0, 3}},
			asteroids: []Circle{{5, 0, 15}, {-5, 0, 15}},
			want:      []Hit{{Bullet: 0, Asteroid: 0}, {Bullet: 1, Asteroid: 1}},
		},
		{
			name:      "no entities",
			bullets:   nil,
			asteroids: nil,
			want:      nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveBulletHits(tc.bullets, tc.asteroids)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d hits, want %d: %+v", len(got), len(tc.want), got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("hit %d = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}
