package startup

import (
	"verilearn.io/application/controller"
	auth_usecases "verilearn.io/application/usecases/auth"
	quiz_usecases "verilearn.io/application/usecases/quiz"
	"verilearn.io/infrastructure/biometric"
	"verilearn.io/infrastructure/cryptography"
	"verilearn.io/infrastructure/database"
	"verilearn.io/infrastructure/database/connection/datastore"
	"verilearn.io/infrastructure/database/repository/postgres"
	"verilearn.io/infrastructure/env"
	"verilearn.io/infrastructure/logger"
	"verilearn.io/infrastructure/quizprovider"
	"verilearn.io/infrastructure/session"
)

// Used to start services such as loggers, databases, the biometric pipeline
// and the usecases wired over them.
func StartServices() {
	logger.InitializeLogger()
	env.RequireEnv("PASSWORD_PEPPER", "JWT_SIGNING_KEY")
	cryptography.InitialiseHasher()
	database.SetUpDatabase()
	biometric.InitialiseFaceService()
	session.InitialiseStore()

	repos := postgres.NewManager(datastore.DB)
	controller.InitialiseControllers(
		auth_usecases.New(repos, session.DefaultStore(), biometric.DefaultService()),
		quiz_usecases.New(repos, quizprovider.NewQuizAPIProviderFromEnv()),
	)
}

// Used to clean up after services that have been shutdown.
func CleanUpServices() {
	datastore.CleanUp()
}
