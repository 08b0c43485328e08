package cmd

import "testing"

func TestGuide(t *testing.T) {
	t.Run("main guide", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("guide")
		env.contains(out, "aocgen")
		env.contains(out, "Quick start")
	})

	t.Run("lists available on not found", func(t *testing.T) {
		env := newTestEnv(t)

		out, _ := env.runErr("guide", "nonexistent")
		env.contains(out, "Available:")
	})
}

func TestGuide_Topics(t *testing.T) {
	tests := []struct {
		name    string
		topic   string
		contain string
	}{
		{"config", "config", "config.yaml"},
		{"languages", "languages", "solution.txt"},
		{"workspace", "workspace", "doctor"},
		{"mcp", "mcp", "aocgen serve"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)

			out := env.run("guide", tc.topic)
			env.contains(out, tc.contain)
		})
	}
}

func TestGuide_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.runErr("guide", "nonexistent")
	if err == nil {
		t.Error("guide nonexistent succeeded, want error")
	}
}

func TestGuide_RejectsPathTopics(t *testing.T) {
	env := newTestEnv(t)

	for _, topic := range []string{"../guide", "a/b", `a\b`} {
		_, err := env.runErr("guide", topic)
		if err == nil {
			t.Errorf("guide %q succeeded, want error", topic)
		}
	}
}
