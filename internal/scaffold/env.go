package scaffold

// envData is the substitution set for environment configuration files. The
// key set is fixed: every generated variant carries all keys, only the
// values differ per stage.
type envData struct {
	Stage               string
	Port                int
	APIPrefix           string
	MongoURI            string
	JWTSecret           string
	JWTExpiresIn        string
	JWTRefreshSecret    string
	JWTRefreshExpiresIn string
	CORSOrigin          string
	CORSCredentials     bool
	RateLimitWindowMS   int
	RateLimitMax        int
	SwaggerEnabled      bool
	SwaggerPath         string
}

func defaultEnv(projectName string) envData {
	return envData{
		Stage:               "development",
		Port:                3000,
		APIPrefix:           "api",
		MongoURI:            "mongodb://localhost:27017/" + projectName,
		JWTSecret:           "change-me-in-production",
		JWTExpiresIn:        "15m",
		JWTRefreshSecret:    "change-me-too",
		JWTRefreshExpiresIn: "7d",
		CORSOrigin:          "*",
		CORSCredentials:     false,
		RateLimitWindowMS:   60000,
		RateLimitMax:        100,
		SwaggerEnabled:      true,
		SwaggerPath:         "docs",
	}
}

// RenderEnvFiles renders the default, per-stage, and example environment
// configuration files. Generated whenever persistence or auth is enabled.
func (c *Catalog) RenderEnvFiles(projectName string) ([]Artifact, error) {
	base := defaultEnv(projectName)

	dev := base
	dev.MongoURI = "mongodb://localhost:27017/" + projectName + "-dev"

	prod := base
	prod.Stage = "production"
	prod.MongoURI = "mongodb://localhost:27017/" + projectName
	prod.CORSOrigin = ""
	prod.CORSCredentials = true
	prod.RateLimitMax = 60
	prod.SwaggerEnabled = false

	variants := []struct {
		out  string
		data envData
	}{
		{".env", base},
		{".env.example", base},
		{".env.development", dev},
		{".env.production", prod},
	}

	artifacts := make([]Artifact, 0, len(variants))
	for _, v := range variants {
		a, err := c.render("env.tmpl", v.data, v.out)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, nil
}
