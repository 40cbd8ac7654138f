package contract

import "testing"

func TestValidSchedule(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want bool
	}{
		{"object", `{"mon":["08:00","18:30"],"fri":["08:00"]}`, true},
		{"array", `[{"day":"mon","pickup":"08:00"}]`, true},
		{"leading whitespace", "\n\t {\"sat\": []}", true},
		{"empty object", `{}`, true},
		{"bare string", `"mondays"`, false},
		{"bare number", `42`, false},
		{"malformed", `{"mon": [}`, false},
		{"empty", ``, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ValidSchedule(Schedule(c.raw)); got != c.want {
				t.Errorf("ValidSchedule(%q) = %v, want %v", c.raw, got, c.want)
			}
		})
	}
}
