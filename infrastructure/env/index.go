package env

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"verilearn.io/infrastructure/logger"
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		logger.Info("error loading env variables")
	}
}

// RequireEnv panics when a secret the process cannot run without is missing.
// Silently continuing without the password pepper or the token signing key
// would enroll credentials that can never be verified again.
func RequireEnv(keys ...string) {
	for _, key := range keys {
		if os.Getenv(key) == "" {
			panic(fmt.Sprintf("required environment variable %s is not set", key))
		}
	}
}
