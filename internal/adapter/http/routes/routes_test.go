package routes

import "testing"

func TestServerPort(t *testing.T) {
	cases := []struct {
		name string
		val  string
		want string
	}{
		{"unset falls back to default", "", "8080"},
		{"set", "9090", "9090"},
		{"whitespace only falls back", "   ", "8080"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Setenv("PORT", c.val)
			if got := serverPort(); got != c.want {
				t.Fatalf("serverPort() = %q, want %q", got, c.want)
			}
		})
	}
}
