package env

import (
	"os"

	"github.com/joho/godotenv"
)

var Env map[string]string

// GetEnv resolves key against the loaded .env map first, then the process
// environment (container deployments pass config that way), then def.
func GetEnv(key, def string) string {
	if val, ok := Env[key]; ok {
		return val
	}
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// SetupEnvFile loads the nearest .env walking up from the working directory.
// The server binary runs from the repo root; cmd/migrate runs two levels
// below it.
func SetupEnvFile() {
	for _, envFile := range []string{".env", "../.env", "../../.env"} {
		if vars, err := godotenv.Read(envFile); err == nil {
			Env = vars
			return
		}
	}
	panic("telecloud: no .env file found (looked in ., .., ../..)")
}

// IsDev reports whether APP_ENV=dev. Dev mode serves session cookies without
// the Secure flag so local http logins work.
func IsDev() bool {
	return GetEnv("APP_ENV", "prod") == "dev"
}
