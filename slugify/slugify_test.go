package slugify

import "testing"

func TestFrom(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Amelie Lens", "amelie-lens"},
		{"Amélie Lens", "amelie-lens"},
		{"Röyksopp", "royksopp"},
		{"Awakenings   Festival", "awakenings-festival"},
		{"  DJ / Producer  ", "dj-producer"},
		{"999999999", "999999999"},
		{"", ""},
	}
	for _, c := range cases {
		if got := From(c.in); got != c.want {
			t.Errorf("From(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
