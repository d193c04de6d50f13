package scaffold

import (
	"bytes"
	"strings"
	"testing"
)

// envKeys is the fixed key set every generated env file carries.
var envKeys = []string{
	"NODE_ENV",
	"PORT",
	"API_PREFIX",
	"MONGODB_URI",
	"JWT_SECRET",
	"JWT_EXPIRES_IN",
	"JWT_REFRESH_SECRET",
	"JWT_REFRESH_EXPIRES_IN",
	"CORS_ORIGIN",
	"CORS_CREDENTIALS",
	"RATE_LIMIT_WINDOW_MS",
	"RATE_LIMIT_MAX",
	"SWAGGER_ENABLED",
	"SWAGGER_PATH",
}

func envValues(t *testing.T, content []byte) map[string]string {
	t.Helper()
	values := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(string(content)), "\n") {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			t.Fatalf("malformed env line %q", line)
		}
		values[key] = value
	}
	return values
}

func TestRenderEnvFiles(t *testing.T) {
	c := newTestCatalog(t)

	artifacts, err := c.RenderEnvFiles("shop-api")
	if err != nil {
		t.Fatalf("RenderEnvFiles error: %v", err)
	}

	want := []string{".env", ".env.example", ".env.development", ".env.production"}
	if len(artifacts) != len(want) {
		t.Fatalf("RenderEnvFiles = %d files, want %d", len(artifacts), len(want))
	}
	for i, a := range artifacts {
		if a.Path != want[i] {
			t.Errorf("artifacts[%d].Path = %q, want %q", i, a.Path, want[i])
		}
	}

	t.Run("fixed_key_set", func(t *testing.T) {
		for _, a := range artifacts {
			values := envValues(t, a.Content)
			if len(values) != len(envKeys) {
				t.Errorf("%s carries %d keys, want %d", a.Path, len(values), len(envKeys))
			}
			for _, key := range envKeys {
				if _, ok := values[key]; !ok {
					t.Errorf("%s missing key %s", a.Path, key)
				}
			}
		}
	})

	t.Run("stage_values", func(t *testing.T) {
		base := envValues(t, findArtifact(t, artifacts, ".env").Content)
		dev := envValues(t, findArtifact(t, artifacts, ".env.development").Content)
		prod := envValues(t, findArtifact(t, artifacts, ".env.production").Content)

		if base["NODE_ENV"] != "development" || prod["NODE_ENV"] != "production" {
			t.Errorf("NODE_ENV: base %q, prod %q", base["NODE_ENV"], prod["NODE_ENV"])
		}
		if base["MONGODB_URI"] != "mongodb://localhost:27017/shop-api" {
			t.Errorf("base MONGODB_URI = %q", base["MONGODB_URI"])
		}
		if dev["MONGODB_URI"] != "mongodb://localhost:27017/shop-api-dev" {
			t.Errorf("dev MONGODB_URI = %q", dev["MONGODB_URI"])
		}
		if prod["SWAGGER_ENABLED"] != "false" {
			t.Errorf("prod SWAGGER_ENABLED = %q", prod["SWAGGER_ENABLED"])
		}
		if prod["CORS_ORIGIN"] != "" {
			t.Errorf("prod CORS_ORIGIN = %q, want empty", prod["CORS_ORIGIN"])
		}
	})

	t.Run("example_matches_base", func(t *testing.T) {
		base := findArtifact(t, artifacts, ".env").Content
		example := findArtifact(t, artifacts, ".env.example").Content
		if !bytes.Equal(base, example) {
			t.Error(".env.example should match .env")
		}
	})

	t.Run("no_random_secrets", func(t *testing.T) {
		first, err := c.RenderEnvFiles("shop-api")
		if err != nil {
			t.Fatalf("repeat RenderEnvFiles error: %v", err)
		}
		for i := range artifacts {
			if !bytes.Equal(artifacts[i].Content, first[i].Content) {
				t.Errorf("%s not deterministic across renders", artifacts[i].Path)
			}
		}
	})
}
