package profile

import (
	"meca-api/core/database"
	"meca-api/modules/profile/repository"
	"meca-api/modules/profile/service"
)

// Init builds the profile directory used by other modules. It exposes no routes.
func Init(db database.Database) *service.ProfileService {
	repo := repository.NewProfileRepository(db)
	return service.NewProfileService(repo)
}
