package connection

import (
	"os"

	"verilearn.io/infrastructure/database/connection/cache"
	"verilearn.io/infrastructure/database/connection/datastore"
)

func ConnectToDatabase() {
	datastore.ConnectToDatabase()
	if os.Getenv("SESSION_STORE") == "redis" {
		cache.ConnectToCache()
	}
}
